package ar

// rotateLeft shifts data left by one, moving *c into bit 0 and the old bit 7
// into *c
func rotateLeft(c, data *byte) {
	carry := *data >> 7
	*data = *data<<1 | *c
	*c = carry
}

func swap(b byte) byte {
	return b<<4 | b>>4
}
