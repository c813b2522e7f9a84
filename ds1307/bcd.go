package ds1307

// decToBcd converts 0..99 to binary coded decimal.
func decToBcd(v uint8) uint8 {
	return v/10*16 + v%10
}

// bcdToDec converts binary coded decimal to 0..99.
func bcdToDec(v uint8) uint8 {
	return v/16*10 + v%16
}
