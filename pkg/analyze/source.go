package analyze

import (
	"errors"
	"io"
)

var ErrSourceUnavailable = errors.New("log source unavailable")

// Source hands out passes over a log. Every call to Open starts again
// from the first entry.
type Source interface {
	Open() (Pass, error)
}

// Pass is one traversal of a Source. Next returns io.EOF once the log
// is exhausted. Close must be called even if Next failed.
type Pass interface {
	Next() (Entry, error)
	Close() error
}

// SliceSource replays entries held in memory.
type SliceSource []Entry

func (s SliceSource) Open() (Pass, error) {
	return &slicePass{entries: s}, nil
}

type slicePass struct {
	entries []Entry
	pos     int
}

func (p *slicePass) Next() (Entry, error) {
	if p.pos >= len(p.entries) {
		return Entry{}, io.EOF
	}
	e := p.entries[p.pos]
	p.pos++
	return e, nil
}

func (p *slicePass) Close() error {
	return nil
}

// drain runs fn over one full pass of src.
func drain(src Source, fn func(Entry) error) (err error) {
	pass, err := src.Open()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, pass.Close())
	}()
	for {
		entry, err := pass.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
}

// Materialize reads src once into memory, for inputs that cannot be
// read twice such as stdin.
func Materialize(src Source) (SliceSource, error) {
	var entries SliceSource
	err := drain(src, func(e Entry) error {
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
