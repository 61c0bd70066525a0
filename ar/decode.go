package ar

// Decode unscrambles the record at the start of src into dst. Only the first
// RecordSize bytes of src are used. dst is left untouched unless decoding
// succeeds.
func Decode(dst *[ResponseSize]byte, src []byte) error {
	if len(src) < RecordSize {
		return ErrShortRecord
	}

	var r Record
	copy(r[:], src)

	if !r.Valid() {
		return ErrInvalidChecksum
	}

	var out Response
	if err := decipher(&out, r); err != nil {
		return err
	}
	*dst = out

	return nil
}
