package analyze

import (
	"errors"
	"fmt"

	"github.com/taoky/weblog/pkg/parser"
)

var (
	// ErrOutOfRange is returned when an entry field does not fit its
	// frequency table.
	ErrOutOfRange = errors.New("out of range")
)

// Entry is one access reduced to the fields the analyzer counts.
type Entry struct {
	Hour  int // 0-23
	Day   int // 1-31
	Month int // 1-12
}

func NewEntry(hour, day, month int) (Entry, error) {
	if hour < 0 || hour > 23 {
		return Entry{}, fmt.Errorf("hour %d: %w", hour, ErrOutOfRange)
	}
	if day < 1 || day > 31 {
		return Entry{}, fmt.Errorf("day %d: %w", day, ErrOutOfRange)
	}
	if month < 1 || month > 12 {
		return Entry{}, fmt.Errorf("month %d: %w", month, ErrOutOfRange)
	}
	return Entry{Hour: hour, Day: day, Month: month}, nil
}

func EntryFromItem(item parser.LogItem) (Entry, error) {
	return NewEntry(item.Hour, item.Day, item.Month)
}
