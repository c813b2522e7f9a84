package pkg

// Must panics if err is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

func Must2(_ interface{}, err error) {
	if err != nil {
		panic(err)
	}
}
