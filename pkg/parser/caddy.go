package parser

import (
	"github.com/goccy/go-json"
)

func init() {
	newFunc := func() Parser {
		return ParserFunc(ParseCaddyJSON)
	}

	RegisterParser(ParserMeta{
		Name:        "caddy-json",
		Description: "Caddy's default JSON format",
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "caddy",
		Description: "An alias for `caddy-json`",
		Hidden:      true,
		F:           newFunc,
	})
}

type CaddyJsonLog struct {
	Msg       string  `json:"msg"`
	Timestamp float64 `json:"ts"` // (unix_seconds_float)
}

func ParseCaddyJSON(line []byte) (LogItem, error) {
	var logItem CaddyJsonLog
	err := json.Unmarshal(line, &logItem)
	if err != nil {
		return LogItem{}, err
	}
	if logItem.Msg != "handled request" {
		return LogItem{}, ErrExpectedIgnoredLog
	}
	return ItemFromTime(unixFloat(logItem.Timestamp)), nil
}
