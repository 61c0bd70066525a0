package ar

import (
	"fmt"
	"strings"
)

const (
	// RecordSize is the size of a command record sent by the PIC
	RecordSize int = 8
	// ResponseSize is the size of a decoded response
	ResponseSize int = 4
)

const (
	modeOffset    = 0
	keyOffset     = 1
	payloadOffset = 2
	trailerOffset = 6
)

// Record is a single command record
type Record [RecordSize]byte

// Mode returns the mode byte
func (r Record) Mode() Mode {
	return Mode(r[modeOffset])
}

// Key returns the key byte
func (r Record) Key() byte {
	return r[keyOffset]
}

// Payload returns the scrambled payload bytes
func (r Record) Payload() (p [ResponseSize]byte) {
	copy(p[:], r[payloadOffset:trailerOffset])
	return
}

// Trailer returns the checksum carried by the record
func (r Record) Trailer() (t [2]byte) {
	copy(t[:], r[trailerOffset:])
	return
}

// Checksum computes the checksum over the mode, key and payload bytes
func (r Record) Checksum() [2]byte {
	return checksum(r[:trailerOffset])
}

// Valid reports whether the trailer matches the computed checksum
func (r Record) Valid() bool {
	return r.Checksum() == r.Trailer()
}

// Seal overwrites the trailer with the computed checksum
func (r *Record) Seal() {
	c := r.Checksum()
	copy(r[trailerOffset:], c[:])
}

// Decode verifies and unscrambles the record
func (r Record) Decode() (Response, error) {
	var out Response
	if err := Decode((*[ResponseSize]byte)(&out), r[:]); err != nil {
		return Response{}, err
	}
	return out, nil
}

// MarshalBinary returns the record bytes
func (r Record) MarshalBinary() ([]byte, error) {
	b := make([]byte, RecordSize)
	copy(b, r[:])
	return b, nil
}

// UnmarshalBinary sets the record from exactly RecordSize bytes
func (r *Record) UnmarshalBinary(b []byte) error {
	if len(b) != RecordSize {
		return fmt.Errorf("ar: record must be %d bytes, got %d", RecordSize, len(b))
	}
	copy(r[:], b)
	return nil
}

func (r Record) String() string {
	return hexBytes(r[:])
}

// Response is the decoded reply sent back to the PIC
type Response [ResponseSize]byte

func (r Response) String() string {
	return hexBytes(r[:])
}

func hexBytes(b []byte) string {
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = fmt.Sprintf("0x%02x", v)
	}
	return strings.Join(s, " ")
}
