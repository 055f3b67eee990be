package progressr

import (
	"io"
	"sync/atomic"
)

// Writer counts bytes written towards a known total. Progress may be read
// from another goroutine while writes are in flight.
type Writer struct {
	io.Writer
	total   int64
	current atomic.Int64
}

func NewWriter(writer io.Writer, total int64) *Writer {
	return &Writer{
		Writer: writer,
		total:  total,
	}
}

func (p *Writer) Write(b []byte) (int, error) {
	n, err := p.Writer.Write(b)
	p.current.Add(int64(n))
	return n, err
}

// Written returns the number of bytes written so far.
func (p *Writer) Written() int64 {
	return p.current.Load()
}

// Progress returns the completed fraction in [0, 1], or 0 when the total
// is unknown.
func (p *Writer) Progress() float64 {
	if p.total <= 0 {
		return 0
	}
	return min(float64(p.current.Load())/float64(p.total), 1)
}
