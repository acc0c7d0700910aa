package fileiter

import (
	"bufio"
	"io"

	"github.com/taoky/weblog/pkg/util"
)

// Iterator yields lines one by one. Next returns io.EOF once the
// input is exhausted; the returned slice is only valid until the next call.
type Iterator interface {
	Next() ([]byte, error)
	// Line is the 1-based number of the line last returned by Next.
	Line() int
	Close() error
}

type scannerIterator struct {
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

func NewWithScanner(r io.Reader) Iterator {
	// Prepare a large buffer
	const bufSz = 1024 * 1024
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, bufSz), bufSz)
	it := &scannerIterator{scanner: scanner}
	if closer, ok := r.(io.Closer); ok {
		it.closer = closer
	}
	return it
}

// Open opens filename with util.OpenFile and iterates over its lines.
func Open(filename string) (Iterator, error) {
	f, err := util.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	return NewWithScanner(f), nil
}

func (s *scannerIterator) Next() ([]byte, error) {
	if s.scanner.Scan() {
		s.line++
		return s.scanner.Bytes(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (s *scannerIterator) Line() int {
	return s.line
}

func (s *scannerIterator) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}
