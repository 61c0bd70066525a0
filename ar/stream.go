package ar

import (
	"fmt"
	"io"
)

// Reader splits a byte stream into records. Any trailing bytes that don't
// make up a whole record are discarded.
type Reader struct {
	r       io.Reader
	n       int
	dropped int
}

// NewReader returns a Reader reading records from r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next record. It returns io.EOF once no more whole records
// remain.
func (r *Reader) Next() (Record, error) {
	var rec Record
	n, err := io.ReadFull(r.r, rec[:])
	switch err {
	case nil:
		r.n++
		return rec, nil
	case io.ErrUnexpectedEOF:
		r.dropped = n
		return Record{}, io.EOF
	default:
		return Record{}, err
	}
}

// Count returns the number of records read so far
func (r *Reader) Count() int {
	return r.n
}

// Dropped returns the number of trailing bytes discarded at the end of the
// stream
func (r *Reader) Dropped() int {
	return r.dropped
}

// Writer writes responses to an underlying io.Writer
type Writer struct {
	w io.Writer
	n int
}

// NewWriter returns a Writer writing responses to w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Write(resp Response) error {
	if _, err := w.w.Write(resp[:]); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of responses written so far
func (w *Writer) Count() int {
	return w.n
}

// DecodeAll decodes every record read from r and writes the responses to w.
// It stops at the first record that fails to decode and returns the number
// of responses written.
func DecodeAll(w io.Writer, r io.Reader) (int, error) {
	rr, ww := NewReader(r), NewWriter(w)

	for {
		rec, err := rr.Next()
		if err != nil {
			if err == io.EOF {
				return ww.Count(), nil
			}
			return ww.Count(), err
		}

		resp, err := rec.Decode()
		if err != nil {
			return ww.Count(), fmt.Errorf("record %d: %w", rr.Count()-1, err)
		}

		if err := ww.Write(resp); err != nil {
			return ww.Count(), err
		}
	}
}
