package ar

const (
	checksumRounds = 3
	roundBits      = 16
)

// checksum runs the feedback shift register over the first six bytes of b.
// The register is four bytes wide; the first two are the running checksum
// and the last two are reloaded with the next pair of input bytes each
// round.
func checksum(b []byte) [2]byte {
	context := [4]byte{0xff, 0xff, 0x00, 0x00}

	for round := 0; round < checksumRounds; round++ {
		context[2], context[3] = b[2*round], b[2*round+1]

		for i := 0; i < roundBits; i++ {
			top := context[0]

			var c byte
			rotateLeft(&c, &context[1])
			rotateLeft(&c, &context[0])
			if context[2]&0x80 != 0 {
				context[1] |= 1
			}
			rotateLeft(&c, &context[3])
			rotateLeft(&c, &context[2])

			if top&0x80 != 0 {
				context[0] ^= 0x80
				context[1] ^= 0x05
			}
		}
	}

	return [2]byte{context[0], context[1]}
}
