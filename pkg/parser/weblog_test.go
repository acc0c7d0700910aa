package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeblogParser(t *testing.T) {
	type testCase struct {
		line     string
		expected LogItem
	}
	testCases := []testCase{
		{"2015 06 01 00 15", LogItem{Year: 2015, Month: 6, Day: 1, Hour: 0, Minute: 15}},
		{"2015 12 31 23 59", LogItem{Year: 2015, Month: 12, Day: 31, Hour: 23, Minute: 59}},
		{"  2016 1 2 3 4  extra", LogItem{Year: 2016, Month: 1, Day: 2, Hour: 3, Minute: 4}},
		// out of range values are passed through untouched
		{"2015 13 32 24 60", LogItem{Year: 2015, Month: 13, Day: 32, Hour: 24, Minute: 60}},
	}
	p := ParserFunc(ParseWeblog)
	for _, c := range testCases {
		item, err := p.Parse([]byte(c.line))
		if assert.NoError(t, err, c.line) {
			assert.Equal(t, c.expected, item)
		}
	}
}

func TestWeblogParserInvalid(t *testing.T) {
	for _, line := range []string{"", "2015 06 01 00", "2015 Jun 01 00 15", "a b c d e"} {
		_, err := ParseWeblog([]byte(line))
		assert.Error(t, err, line)
	}
}

func TestFormatWeblog(t *testing.T) {
	item := LogItem{Year: 2015, Month: 6, Day: 1, Hour: 0, Minute: 5}
	line := FormatWeblog(item)
	assert.Equal(t, "2015 06 01 00 05", line)
	parsed, err := ParseWeblog([]byte(line))
	assert.NoError(t, err)
	assert.Equal(t, item, parsed)
}
