package parser

import (
	"bytes"
	"fmt"
	"strconv"
)

// The weblog format: one access per line as
// "year month day hour minute", for example "2015 06 01 00 15".

func init() {
	RegisterParser(ParserMeta{
		Name:        "weblog",
		Description: "Plain `year month day hour minute` records",
		F: func() Parser {
			return ParserFunc(ParseWeblog)
		},
	})
}

var weblogFieldNames = [...]string{"year", "month", "day", "hour", "minute"}

func ParseWeblog(line []byte) (LogItem, error) {
	fields := bytes.Fields(line)
	if len(fields) < len(weblogFieldNames) {
		return LogItem{}, fmt.Errorf("invalid format: expected %d fields, got %d", len(weblogFieldNames), len(fields))
	}
	var values [len(weblogFieldNames)]int
	for i, name := range weblogFieldNames {
		v, err := strconv.Atoi(string(fields[i]))
		if err != nil {
			return LogItem{}, fmt.Errorf("invalid %s %q: %w", name, fields[i], err)
		}
		values[i] = v
	}
	// Range checks are left to the consumer, so that a bad hour is
	// reported as such instead of being folded into a parse error.
	return LogItem{
		Year:   values[0],
		Month:  values[1],
		Day:    values[2],
		Hour:   values[3],
		Minute: values[4],
	}, nil
}

func FormatWeblog(item LogItem) string {
	return fmt.Sprintf("%d %02d %02d %02d %02d", item.Year, item.Month, item.Day, item.Hour, item.Minute)
}
