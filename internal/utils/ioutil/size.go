package ioutil

import (
	"io"
)

// SizeReader counts the bytes read through it.
type SizeReader struct {
	io.Reader
	Size int64
}

func NewSizeReader(reader io.Reader) *SizeReader {
	return &SizeReader{Reader: reader}
}

func (s *SizeReader) Read(p []byte) (n int, err error) {
	n, err = s.Reader.Read(p)
	s.Size += int64(n)
	return n, err
}

// SizeWriter counts the bytes written through it.
type SizeWriter struct {
	io.Writer
	Size int64
}

func NewSizeWriter(writer io.Writer) *SizeWriter {
	return &SizeWriter{Writer: writer}
}

func (s *SizeWriter) Write(p []byte) (n int, err error) {
	n, err = s.Writer.Write(p)
	s.Size += int64(n)
	return n, err
}

// Touched reports whether anything has been written yet.
func (s *SizeWriter) Touched() bool {
	return s.Size > 0
}
