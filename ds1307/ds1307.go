// Package ds1307 drives the DS1307 real-time clock over I2C: the seven
// clock registers, the control register and the 56 bytes of battery-backed
// NVRAM behind them. The chip talks BCD on the wire; this package converts
// at the register boundary and hands out caltime.Clock values with all
// derived counters filled in.
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/DS1307.pdf
package ds1307

import (
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/i2c"

	"wake/caltime"
)

// Device is one DS1307 on a bus. Not safe for concurrent use; the chip
// has a single register pointer and the expected caller is one poll loop.
type Device struct {
	conn i2c.Dev
	log  *slog.Logger
}

func New(bus i2c.Bus) *Device {
	return &Device{
		conn: i2c.Dev{Bus: bus, Addr: Addr},
		log:  slog.Default(),
	}
}

// SetLogger replaces the logger used for debug output such as DumpNVRAM.
func (d *Device) SetLogger(l *slog.Logger) {
	d.log = l
}

// Present reports whether the chip acknowledges on the bus.
func (d *Device) Present() bool {
	return d.conn.Tx([]byte{regSeconds}, make([]byte, 1)) == nil
}

// ReadTime reads the seven clock registers and returns a fully derived
// reading. The chip's weekday register is not trusted: the weekday is
// recomputed from the date.
func (d *Device) ReadTime() (caltime.Clock, error) {
	var buf [7]byte
	if err := d.conn.Tx([]byte{regSeconds}, buf[:]); err != nil {
		return caltime.Clock{}, fmt.Errorf("ds1307: read clock registers: %w", err)
	}
	second := bcdToDec(buf[0] &^ haltBit)
	minute := bcdToDec(buf[1])
	hour := bcdToDec(buf[2] & 0x3F) // 24h mode
	day := bcdToDec(buf[4])
	month := bcdToDec(buf[5])
	year := uint16(bcdToDec(buf[6])) + 2000
	return caltime.FromDate(year, month, day).WithTimeOfDay(hour, minute, second), nil
}

// SetTime writes the reading to the clock registers. The halt bit is left
// set on the seconds register, so the oscillator stays stopped until
// StartClock runs.
func (d *Device) SetTime(c caltime.Clock) error {
	buf := []byte{
		regSeconds,
		decToBcd(c.Second) | haltBit,
		decToBcd(c.Minute),
		decToBcd(c.Hour) & 0x3F,
		decToBcd(uint8(c.Weekday) + 1), // chip numbers weekdays 1..7
		decToBcd(c.Day),
		decToBcd(c.Month),
		decToBcd(uint8(c.Year - 2000)),
	}
	if _, err := d.conn.Write(buf); err != nil {
		return fmt.Errorf("ds1307: write clock registers: %w", err)
	}
	return nil
}

// SetDateTime stops the clock, writes the reading, restarts the clock and
// records the clock-is-set token in NVRAM.
func (d *Device) SetDateTime(c caltime.Clock) error {
	if err := d.StopClock(); err != nil {
		return err
	}
	if err := d.SetTime(c); err != nil {
		return err
	}
	if err := d.StartClock(); err != nil {
		return err
	}
	return d.MarkTimeSet()
}

// StopClock raises the halt bit, preserving the seconds value.
func (d *Device) StopClock() error {
	return d.setHalt(true)
}

// StartClock clears the halt bit, preserving the seconds value.
func (d *Device) StartClock() error {
	return d.setHalt(false)
}

func (d *Device) setHalt(halt bool) error {
	var buf [1]byte
	if err := d.conn.Tx([]byte{regSeconds}, buf[:]); err != nil {
		return fmt.Errorf("ds1307: read seconds register: %w", err)
	}
	if halt {
		buf[0] |= haltBit
	} else {
		buf[0] &^= haltBit
	}
	if _, err := d.conn.Write([]byte{regSeconds, buf[0]}); err != nil {
		return fmt.Errorf("ds1307: write seconds register: %w", err)
	}
	return nil
}

// Control reads the control register (square wave output configuration).
func (d *Device) Control() (byte, error) {
	var buf [1]byte
	if err := d.conn.Tx([]byte{regControl}, buf[:]); err != nil {
		return 0, fmt.Errorf("ds1307: read control register: %w", err)
	}
	return buf[0], nil
}

func (d *Device) SetControl(v byte) error {
	if _, err := d.conn.Write([]byte{regControl, v}); err != nil {
		return fmt.Errorf("ds1307: write control register: %w", err)
	}
	return nil
}

// ReadNVRAM fills p from the battery-backed RAM starting at the logical
// offset. Offset 0 maps to physical address 8; the clock registers below
// are not reachable through this method.
func (d *Device) ReadNVRAM(offset uint8, p []byte) error {
	if err := checkNVRAMRange(offset, len(p)); err != nil {
		return err
	}
	if err := d.conn.Tx([]byte{nvramStart + offset}, p); err != nil {
		return fmt.Errorf("ds1307: read nvram at %d: %w", offset, err)
	}
	return nil
}

// WriteNVRAM stores p at the logical offset in a single bus transaction.
func (d *Device) WriteNVRAM(offset uint8, p []byte) error {
	if err := checkNVRAMRange(offset, len(p)); err != nil {
		return err
	}
	buf := make([]byte, 0, len(p)+1)
	buf = append(buf, nvramStart+offset)
	buf = append(buf, p...)
	if _, err := d.conn.Write(buf); err != nil {
		return fmt.Errorf("ds1307: write nvram at %d: %w", offset, err)
	}
	return nil
}

func checkNVRAMRange(offset uint8, n int) error {
	if int(offset)+n > NVRAMSize {
		return fmt.Errorf("ds1307: nvram access [%d,%d) outside 0..%d", offset, int(offset)+n, NVRAMSize-1)
	}
	return nil
}

// TimeSet reports whether the clock-is-set token is present, i.e. whether
// the clock was ever explicitly initialized.
func (d *Device) TimeSet() (bool, error) {
	var buf [1]byte
	if err := d.ReadNVRAM(timeSetOffset, buf[:]); err != nil {
		return false, err
	}
	return buf[0] == timeSetToken, nil
}

// MarkTimeSet records the clock-is-set token.
func (d *Device) MarkTimeSet() error {
	return d.WriteNVRAM(timeSetOffset, []byte{timeSetToken})
}

// ClearTimeSet removes the token, forcing reinitialization on the next
// start.
func (d *Device) ClearTimeSet() error {
	return d.WriteNVRAM(timeSetOffset, []byte{0xFF})
}

// LogTime logs the current reading, the summer time flag and the
// clock-is-set state at debug level.
func (d *Device) LogTime() error {
	c, err := d.ReadTime()
	if err != nil {
		return err
	}
	set, err := d.TimeSet()
	if err != nil {
		return err
	}
	d.log.Debug("clock",
		"time", fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second),
		"date", fmt.Sprintf("%04d-%02d-%02d", c.Year, c.Month, c.Day),
		"weekday", c.Weekday,
		"cet_summer_time", c.IsCETSummerTime(),
		"clock_was_set", set)
	return nil
}

// DumpNVRAM logs the whole battery-backed RAM at debug level.
func (d *Device) DumpNVRAM() error {
	var buf [NVRAMSize]byte
	if err := d.ReadNVRAM(0, buf[:]); err != nil {
		return err
	}
	for i, v := range buf {
		d.log.Debug("nvram", "offset", i, "value", fmt.Sprintf("%08b", v))
	}
	return nil
}
