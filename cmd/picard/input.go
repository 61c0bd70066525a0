package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	formatAuto = "auto"
	formatRaw  = "raw"
	formatHex  = "hex"
)

// readInput returns the record bytes from path. A hex dump, such as the
// recv: lines printed by the decode command, is converted back into raw
// bytes.
func readInput(path, format string) ([]byte, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case formatRaw:
		return b, nil
	case formatHex:
		return parseHex(b)
	case formatAuto, "":
		if isText(b) {
			return parseHex(b)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func isText(b []byte) bool {
	return len(b) > 0 && mimetype.Detect(b).Is("text/plain")
}

// parseHex reads whitespace separated hex bytes, with or without a 0x
// prefix. Lines starting with send: are responses and are skipped, as is
// anything after a #.
func parseHex(b []byte) ([]byte, error) {
	out := new(bytes.Buffer)

	s := bufio.NewScanner(bytes.NewReader(b))
	for line := 1; s.Scan(); line++ {
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}

		fields := strings.Fields(text)
		if len(fields) > 0 && strings.HasSuffix(fields[0], ":") {
			if fields[0] == "send:" {
				continue
			}
			fields = fields[1:]
		}

		for _, f := range fields {
			v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(f), "0x"), 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad byte %q", line, f)
			}
			out.WriteByte(byte(v))
		}
	}

	if err := s.Err(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
