package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

var (
	fixedRecord        = []byte{0xff, 0x03, 0xde, 0xad, 0xbe, 0xef, 0x75, 0xc1}
	substitutionRecord = []byte{0x01, 0x03, 0x12, 0x34, 0x56, 0x78, 0x2e, 0x24}
	reservedRecord     = []byte{0x02, 0x03, 0x01, 0x02, 0x03, 0x04, 0xad, 0xef}
)

func init() {
	cli.OsExiter = func(int) {}
	cli.ErrWriter = ioutil.Discard
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "picard")
	require.Nil(t, err)
	return dir
}

func writeInput(t *testing.T, dir string, b ...[]byte) string {
	path := filepath.Join(dir, "input.bin")
	require.Nil(t, ioutil.WriteFile(path, bytes.Join(b, nil), 0644))
	return path
}

func TestDecodeOutput(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	input := writeInput(t, dir, fixedRecord, substitutionRecord, []byte{0x01})
	output := filepath.Join(dir, "output.bin")

	require.Nil(t, newApp().Run([]string{"picard", "decode", "-o", output, input}))

	b, err := ioutil.ReadFile(output)
	require.Nil(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x02, 0x48, 0x06, 0x2a, 0xfc}, b)
}

func TestDecodeOutputStopsOnError(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	input := writeInput(t, dir, fixedRecord, reservedRecord, substitutionRecord)
	output := filepath.Join(dir, "output.bin")

	err := newApp().Run([]string{"picard", "decode", "-o", output, input})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "record 1")

	b, err := ioutil.ReadFile(output)
	require.Nil(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x02}, b)
}

func TestDecodeOutputKeepGoing(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	input := writeInput(t, dir, fixedRecord, reservedRecord, substitutionRecord)
	output := filepath.Join(dir, "output.bin")

	err := newApp().Run([]string{"picard", "decode", "-k", "-o", output, input})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "1 records failed")

	b, err := ioutil.ReadFile(output)
	require.Nil(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x02, 0x48, 0x06, 0x2a, 0xfc}, b)
}

func TestDecodeTableWithOutput(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	input := writeInput(t, dir, fixedRecord)
	output := filepath.Join(dir, "output.bin")

	err := newApp().Run([]string{"picard", "decode", "-t", "-o", output, input})
	require.NotNil(t, err)
	assert.Equal(t, errTableWithOutput.Error(), err.Error())

	_, err = os.Stat(output)
	assert.True(t, os.IsNotExist(err))
}

func TestSeal(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	input := writeInput(t, dir, []byte{0x01, 0x03, 0x12, 0x34, 0x56, 0x78, 0x00, 0x00}, []byte{0xff, 0x03})
	output := filepath.Join(dir, "output.bin")

	require.Nil(t, newApp().Run([]string{"picard", "seal", "-o", output, input}))

	b, err := ioutil.ReadFile(output)
	require.Nil(t, err)
	assert.Equal(t, substitutionRecord, b)
}
