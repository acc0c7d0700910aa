package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRsyncProxyParser(t *testing.T) {
	as := assert.New(t)
	p := ParserFunc(ParseRsyncProxy)

	line := `2024/08/16 18:31:45 server.go:383: client 192.0.2.1:60000 starts requesting module ubuntu`
	log, err := p.Parse([]byte(line))
	as.NoError(err)
	as.True(log.Discard)

	line = `2024/08/16 18:32:50 server.go:422: client 192.0.2.1:60000 finishes module ubuntu (sent: 1145, received: 14)`
	log, err = p.Parse([]byte(line))
	as.NoError(err)
	as.False(log.Discard)
	as.Equal(LogItem{Year: 2024, Month: 8, Day: 16, Hour: 18, Minute: 32}, log)

	_, err = p.Parse([]byte(`2024/08/16 18:32:50 too short`))
	as.Error(err)
}
