package ar

import "strconv"

// Mode selects the cipher variant used to unscramble a record
type Mode uint8

// These are the modes the PIC sends. Modes 2 to 6 are reserved until their
// ciphers are known.
const (
	Mode1     Mode = 1
	Mode2     Mode = 2
	Mode3     Mode = 3
	Mode4     Mode = 4
	Mode5     Mode = 5
	Mode6     Mode = 6
	Mode7     Mode = 7
	ModeFixed Mode = 0xff
)

func (m Mode) String() string {
	strings := map[Mode]string{
		Mode1:     "Substitution",
		Mode2:     "Reserved 2",
		Mode3:     "Reserved 3",
		Mode4:     "Reserved 4",
		Mode5:     "Reserved 5",
		Mode6:     "Reserved 6",
		Mode7:     "Variant 7",
		ModeFixed: "Fixed",
	}

	if s, ok := strings[m]; ok {
		return s
	}

	return "Unknown " + strconv.Itoa(int(m))
}

// Variant returns the mode that will actually be used to decode r. A key
// byte of zero or with bit 5 set always selects Mode7 regardless of the mode
// byte.
func Variant(r Record) Mode {
	// XXX The PIC is meant to choose a random key byte, which is the best
	// guess so far for why these values are special cased
	if k := r.Key(); k == 0 || k&0x20 != 0 {
		return Mode7
	}
	return r.Mode()
}
