package parser

import (
	"bytes"
	"errors"
)

func init() {
	newFunc := func() Parser {
		return ParserFunc(ParseNginxCombined)
	}
	RegisterParser(ParserMeta{
		Name:        "nginx-combined",
		Description: "Nginx's default access log format",
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "combined",
		Description: "Apache's Combined Log Format",
		F:           newFunc,
	})
}

// ParseNginxCombined only needs $time_local, so it stops after the
// first bracketed field and never looks at the (possibly garbage) request.
func ParseNginxCombined(line []byte) (LogItem, error) {
	// get the first -
	delimIndex := bytes.IndexByte(line, '-')
	if delimIndex == -1 {
		return LogItem{}, errors.New("unexpected format: no -")
	}
	baseIdx := delimIndex + 1

	// get time within [$time_local]
	leftBracketIndex := bytes.IndexByte(line[baseIdx:], '[')
	if leftBracketIndex == -1 {
		return LogItem{}, errors.New("unexpected format: no [")
	}
	baseIdx += leftBracketIndex + 1
	rightBracketIndex := bytes.IndexByte(line[baseIdx:], ']')
	if rightBracketIndex == -1 {
		return LogItem{}, errors.New("unexpected format: no ]")
	}
	return clfDateParse(line[baseIdx : baseIdx+rightBracketIndex])
}
