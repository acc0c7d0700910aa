package parser

import (
	"errors"
	"fmt"
	"time"
)

// LogItem holds the calendar fields of one access, as written in the log.
type LogItem struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int

	// Discard marks lines that are valid but do not record an access.
	Discard bool
}

func ItemFromTime(t time.Time) LogItem {
	return LogItem{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}
}

type Parser interface {
	Parse(line []byte) (LogItem, error)
}

type ParserFunc func(line []byte) (LogItem, error)

func (f ParserFunc) Parse(line []byte) (LogItem, error) {
	return f(line)
}

// Preparer is implemented by parsers that need setup before the first line.
type Preparer interface {
	Prepare() error
}

// Prepare runs p's setup if it has any.
func Prepare(p Parser) error {
	if pr, ok := p.(Preparer); ok {
		return pr.Prepare()
	}
	return nil
}

type NewFunc func() Parser

type ParserMeta struct {
	Name        string
	Description string
	Hidden      bool
	F           NewFunc
}

var (
	ErrExpectedIgnoredLog = errors.New("ignored")
	ErrUnknownParser      = errors.New("unknown parser")

	registry = make(map[string]ParserMeta)
)

func RegisterParser(meta ParserMeta) {
	registry[meta.Name] = meta
}

func GetParser(name string) (Parser, error) {
	meta, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParser, name)
	}
	return meta.F(), nil
}

func All() []ParserMeta {
	ret := make([]ParserMeta, 0, len(registry))
	for _, meta := range registry {
		ret = append(ret, meta)
	}
	return ret
}
