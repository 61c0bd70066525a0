package ar

// Output position i is scrambled with sboxes[substitutionOrder[i]]
var substitutionOrder = [ResponseSize]int{0, 2, 3, 1}

func substitute(out *Response, r Record) error {
	for i, table := range substitutionOrder {
		k, err := sbox(table, r.Key())
		if err != nil {
			return err
		}
		out[i] = swap(r[payloadOffset+i]) ^ k
	}
	return nil
}

func complement(out *Response, r Record) {
	for i := range out {
		out[i] = ^r[payloadOffset+i]
	}
}

func variant7(out *Response, r Record) error {
	if r.Key()&1 == 0 {
		return substitute(out, r)
	}
	complement(out, r)
	return nil
}

var fixedResponse = Response{0x00, 0x00, 0x01, 0x02}

func decipher(out *Response, r Record) error {
	switch m := Variant(r); m {
	case Mode1:
		return substitute(out, r)
	case Mode2, Mode3, Mode4, Mode5, Mode6:
		return &UnimplementedError{Mode: m}
	case Mode7:
		return variant7(out, r)
	case ModeFixed:
		*out = fixedResponse
		return nil
	default:
		return ErrInvalidMode
	}
}
