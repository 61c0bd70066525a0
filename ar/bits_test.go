package ar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateLeft(t *testing.T) {
	tables := []struct {
		c, data       byte
		carry, result byte
	}{
		{0, 0xff, 1, 0xfe},
		{0, 0x55, 0, 0xaa},
		{1, 0xaa, 1, 0x55},
		{1, 0x00, 0, 0x01},
	}

	for _, table := range tables {
		c, data := table.c, table.data
		rotateLeft(&c, &data)
		assert.Equal(t, table.carry, c)
		assert.Equal(t, table.result, data)
	}
}

func TestSwap(t *testing.T) {
	assert.Equal(t, byte(0xf7), swap(0x7f))
	assert.Equal(t, byte(0x5a), swap(0xa5))
	assert.Equal(t, byte(0x49), swap(0x94))
}

func TestSbox(t *testing.T) {
	for i := range sboxes {
		v, err := sbox(i, 31)
		assert.Nil(t, err)
		assert.Equal(t, sboxes[i][31], v)

		_, err = sbox(i, 32)
		assert.Equal(t, ErrInvalidKey, err)
	}
}
