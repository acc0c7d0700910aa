// Package generate writes synthetic logs in the weblog format.
package generate

import (
	"bufio"
	"errors"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/taoky/weblog/pkg/parser"
)

type Config struct {
	// Count is the number of records to write.
	Count int
	// Year all records fall in.
	Year int
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Count: 1000,
		Year:  2015,
		Seed:  1,
	}
}

func (c Config) Validate() error {
	if c.Count < 0 {
		return errors.New("count must not be negative")
	}
	if c.Year < 1 || c.Year > 9999 {
		return errors.New("year must be between 1 and 9999")
	}
	return nil
}

// Items returns c.Count records spread uniformly over c.Year in
// chronological order. The same seed always yields the same records.
func Items(c Config) []parser.LogItem {
	start := time.Date(c.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	minutes := int64(start.AddDate(1, 0, 0).Sub(start) / time.Minute)

	rng := rand.New(rand.NewPCG(c.Seed, uint64(c.Year)))
	offsets := make([]int64, c.Count)
	for i := range offsets {
		offsets[i] = rng.Int64N(minutes)
	}
	slices.Sort(offsets)

	items := make([]parser.LogItem, len(offsets))
	for i, off := range offsets {
		items[i] = parser.ItemFromTime(start.Add(time.Duration(off) * time.Minute))
	}
	return items
}

func Write(w io.Writer, c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, item := range Items(c) {
		if _, err := bw.WriteString(parser.FormatWeblog(item) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
