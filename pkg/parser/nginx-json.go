package parser

import (
	"math"
	"time"

	"github.com/goccy/go-json"
)

func init() {
	newFunc := func() Parser {
		return ParserFunc(ParseNginxJSON)
	}
	RegisterParser(ParserMeta{
		Name:        "nginx-json",
		Description: "`nginx-json` format with a unix `timestamp` field",
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "ngx_json",
		Description: "An alias for `nginx-json`",
		Hidden:      true,
		F:           newFunc,
	})
}

type NginxJSONLog struct {
	Timestamp float64 `json:"timestamp"`
}

func unixFloat(ts float64) time.Time {
	sec, dec := math.Modf(ts)
	return time.Unix(int64(sec), int64(dec*1e9))
}

func ParseNginxJSON(line []byte) (LogItem, error) {
	var logItem NginxJSONLog
	err := json.Unmarshal(line, &logItem)
	if err != nil {
		return LogItem{}, err
	}
	return ItemFromTime(unixFloat(logItem.Timestamp)), nil
}
