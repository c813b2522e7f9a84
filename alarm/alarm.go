// Package alarm keeps a weekly wake-up schedule in the battery-backed
// NVRAM of a DS1307 and decides when an alarm fires.
//
// NVRAM layout, starting at logical offset 0:
//
//	0     clock-is-set token (owned by the ds1307 package)
//	1     weekday bitmask, bit i set = alarm enabled on weekday i
//	2..8  alarm code per weekday, 0xFF = no alarm stored
//
// A code counts 5-minute steps past 04:00, so 17 means 05:25.
package alarm

import (
	"errors"

	"wake/caltime"
)

// NVRAM is the byte-addressed persistent store the schedule lives in.
// *ds1307.Device satisfies it.
type NVRAM interface {
	ReadNVRAM(offset uint8, p []byte) error
	WriteNVRAM(offset uint8, p []byte) error
}

const (
	maskOffset = 1
	codeOffset = 2
)

// ErrInvalidTime rejects alarm times outside 04:00..20:55 or off the
// 5-minute grid.
var ErrInvalidTime = errors.New("alarm: time outside 04:00-20:55 or not on a 5 minute boundary")

// Code is a time of day packed into one byte: 5-minute steps past 04:00.
type Code uint8

// Unset marks an empty alarm slot.
const Unset Code = 0xFF

// EncodeCode packs an alarm time. Hours 4..20 are accepted; the minute
// must be a multiple of five.
func EncodeCode(hour, minute uint8) (Code, error) {
	if hour < 4 || hour >= 21 || minute > 55 || minute%5 != 0 {
		return 0, ErrInvalidTime
	}
	return Code((hour-4)*12 + minute/5), nil
}

// Time unpacks the code into an hour and minute.
func (c Code) Time() (hour, minute uint8) {
	return 4 + uint8(c)/12, uint8(c) % 12 * 5
}

// Schedule is one decoded copy of the persisted alarm block.
type Schedule struct {
	Mask  uint8
	Codes [7]Code
}

// Enabled reports whether an alarm is armed on the given weekday.
func (s Schedule) Enabled(day caltime.Weekday) bool {
	return s.Mask&(1<<day) != 0
}

// Store reads and writes the schedule block in NVRAM. The mask byte and
// the seven code bytes are contiguous and every mutation rewrites them in
// a single bus transaction, so no reader can observe an enabled bit
// without its code or the other way round.
type Store struct {
	mem NVRAM
}

func NewStore(mem NVRAM) *Store {
	return &Store{mem: mem}
}

// Schedule fetches the whole persisted block.
func (s *Store) Schedule() (Schedule, error) {
	var buf [8]byte
	if err := s.mem.ReadNVRAM(maskOffset, buf[:]); err != nil {
		return Schedule{}, err
	}
	sc := Schedule{Mask: buf[0]}
	for i := range sc.Codes {
		sc.Codes[i] = Code(buf[1+i])
	}
	return sc, nil
}

func (s *Store) write(sc Schedule) error {
	var buf [8]byte
	buf[0] = sc.Mask
	for i, c := range sc.Codes {
		buf[1+i] = byte(c)
	}
	return s.mem.WriteNVRAM(maskOffset, buf[:])
}

// Set validates and stores an alarm time for the weekday and enables it.
func (s *Store) Set(day caltime.Weekday, hour, minute uint8) error {
	code, err := EncodeCode(hour, minute)
	if err != nil {
		return err
	}
	return s.SetCode(day, code)
}

// SetCode stores a raw code for the weekday, bypassing time validation.
func (s *Store) SetCode(day caltime.Weekday, code Code) error {
	sc, err := s.Schedule()
	if err != nil {
		return err
	}
	sc.Mask |= 1 << day
	sc.Codes[day] = code
	return s.write(sc)
}

// Clear disables the weekday's alarm and blanks its code slot.
func (s *Store) Clear(day caltime.Weekday) error {
	sc, err := s.Schedule()
	if err != nil {
		return err
	}
	sc.Mask &^= 1 << day
	sc.Codes[day] = Unset
	return s.write(sc)
}

// ClearAll wipes the whole schedule.
func (s *Store) ClearAll() error {
	sc := Schedule{}
	for i := range sc.Codes {
		sc.Codes[i] = Unset
	}
	return s.write(sc)
}

// Get returns the stored code for the weekday and whether it is enabled.
func (s *Store) Get(day caltime.Weekday) (Code, bool, error) {
	sc, err := s.Schedule()
	if err != nil {
		return Unset, false, err
	}
	return sc.Codes[day], sc.Enabled(day), nil
}
