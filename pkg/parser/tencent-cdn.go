package parser

import (
	"fmt"
	"time"
)

func init() {
	newFunc := func() Parser { return ParserFunc(ParseTencentCDN) }
	RegisterParser(ParserMeta{
		Name:        "tencent-cdn",
		Description: "Tencent CDN log format",
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "tcdn",
		Description: "An alias for `tencent-cdn`",
		Hidden:      true,
		F:           newFunc,
	})
}

const compactDateTime = "20060102150405"

func ParseTencentCDN(line []byte) (LogItem, error) {
	fields, err := splitFields(line)
	if err != nil {
		return LogItem{}, err
	}
	if len(fields) != 16 {
		return LogItem{}, fmt.Errorf("invalid format: expected 16 fields, got %d", len(fields))
	}
	t, err := time.ParseInLocation(compactDateTime, string(fields[0]), time.Local)
	if err != nil {
		return LogItem{}, fmt.Errorf("invalid time %s: %w", fields[0], err)
	}
	return ItemFromTime(t), nil
}
