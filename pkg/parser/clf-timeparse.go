package parser

import (
	"errors"
	"strconv"
)

// Fast, hand-written reader for the common log format (CLF) date
// %d/%b/%Y:%H:%M:%S %z, for example "10/Oct/2000:13:55:36 -0700".
// Fields are taken as written, so the server's wall clock is kept.

const CommonLogFormat = "02/Jan/2006:15:04:05 -0700"

var clfMonthMap = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4,
	"May": 5, "Jun": 6, "Jul": 7, "Aug": 8,
	"Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

var errBadCLFDate = errors.New("unexpected format: bad CLF date")

func clfDateParse(s []byte) (LogItem, error) {
	if len(s) < len("02/Jan/2006:15:04") || s[2] != '/' || s[6] != '/' || s[11] != ':' {
		return LogItem{}, errBadCLFDate
	}
	month, ok := clfMonthMap[string(s[3:6])]
	if !ok {
		return LogItem{}, errBadCLFDate
	}
	var fields [4]int
	for i, span := range [4][2]int{{0, 2}, {7, 11}, {12, 14}, {15, 17}} {
		v, err := strconv.Atoi(string(s[span[0]:span[1]]))
		if err != nil {
			return LogItem{}, errBadCLFDate
		}
		fields[i] = v
	}
	return LogItem{
		Day:    fields[0],
		Month:  month,
		Year:   fields[1],
		Hour:   fields[2],
		Minute: fields[3],
	}, nil
}
