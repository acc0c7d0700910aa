package parser

import (
	"fmt"
	"strings"
	"time"
)

const goLogTime = "2006/01/02 15:04:05"

func init() {
	newFunc := func() Parser { return ParserFunc(ParseRsyncProxy) }
	RegisterParser(ParserMeta{
		Name:        "rsync-proxy",
		Description: "rsync-proxy's access.log",
		F:           newFunc,
	})
}

// ParseRsyncProxy counts each transfer once: "starts" lines are
// discarded and the matching "finishes" line is kept.
func ParseRsyncProxy(line []byte) (LogItem, error) {
	fields := strings.Fields(string(line))
	if len(fields) != 9 && len(fields) != 12 {
		return LogItem{}, fmt.Errorf("invalid format: expected 9 or 12 fields, got %d", len(fields))
	}
	if fields[5] == "starts" {
		return LogItem{Discard: true}, nil
	}

	logTime, err := time.ParseInLocation(goLogTime, fields[0]+" "+fields[1], time.Local)
	if err != nil {
		return LogItem{}, fmt.Errorf("invalid log time: %w", err)
	}
	return ItemFromTime(logTime), nil
}
