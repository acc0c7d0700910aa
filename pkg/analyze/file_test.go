package analyze

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taoky/weblog/pkg/parser"
)

const sampleWeblog = `2015 06 01 00 15
2015 06 01 13 05
2015 06 15 13 40
not a record
2015 07 31 23 59
2015 12 02 07 00
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "weblog.txt")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func newTestFileAnalyzer(t *testing.T, c AnalyzerConfig, filename string) (*Analyzer, *bytes.Buffer) {
	t.Helper()
	a, err := NewFileAnalyzer(c, filename)
	if err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	a.logger.SetOutput(&logs)
	return a, &logs
}

func TestFileAnalyzer(t *testing.T) {
	as := assert.New(t)
	a, logs := newTestFileAnalyzer(t, testConfig(false), writeLog(t, sampleWeblog))

	for range 2 {
		h, err := a.BusiestHour()
		as.NoError(err)
		as.Equal(13, h)
		as.EqualValues(5, a.NumberOfAccesses())
	}
	as.Contains(logs.String(), "weblog.txt:4: parse error")
	as.Contains(logs.String(), `got line: "not a record"`)

	d, err := a.BusiestDay()
	as.NoError(err)
	as.Equal(1, d)
	m, err := a.BusiestMonth()
	as.NoError(err)
	as.Equal(6, m)

	r, err := a.Report()
	as.NoError(err)
	as.EqualValues(5, r.Accesses)
	as.Equal(12, r.BusiestTwoHourPeriod)
}

func TestFileAnalyzerStrict(t *testing.T) {
	c := testConfig(false)
	c.Strict = true
	a, _ := newTestFileAnalyzer(t, c, writeLog(t, sampleWeblog))
	err := a.AnalyzeHourly()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "weblog.txt:4: parse error")
	}
	assert.EqualValues(t, 0, a.NumberOfAccesses())
}

func TestFileAnalyzerOutOfRange(t *testing.T) {
	as := assert.New(t)
	a, _ := newTestFileAnalyzer(t, testConfig(false), writeLog(t, "2015 06 01 00 15\n2015 06 01 24 00\n"))
	err := a.AnalyzeHourly()
	as.ErrorIs(err, ErrOutOfRange)
	if as.Error(err) {
		as.Contains(err.Error(), "weblog.txt:2: hour 24")
	}

	legacy, _ := newTestFileAnalyzer(t, testConfig(true), writeLog(t, "2015 12 01 00 15\n"))
	as.ErrorIs(legacy.AnalyzeMonthly(), ErrOutOfRange)
	as.NoError(legacy.AnalyzeHourly())
}

func TestFileAnalyzerUnavailable(t *testing.T) {
	as := assert.New(t)
	_, err := NewFileAnalyzer(testConfig(false), filepath.Join(t.TempDir(), "missing.txt"))
	as.ErrorIs(err, ErrSourceUnavailable)
	as.ErrorIs(err, os.ErrNotExist)

	filename := writeLog(t, sampleWeblog)
	a, _ := newTestFileAnalyzer(t, testConfig(false), filename)
	as.NoError(os.Remove(filename))
	_, err = a.BusiestHour()
	as.ErrorIs(err, ErrSourceUnavailable)
}

func TestFileAnalyzerInvalidParser(t *testing.T) {
	c := testConfig(false)
	c.Parser = "no-such-parser"
	_, err := NewFileAnalyzer(c, writeLog(t, sampleWeblog))
	assert.ErrorIs(t, err, parser.ErrUnknownParser)
}

func TestFileAnalyzerOtherParser(t *testing.T) {
	as := assert.New(t)
	c := testConfig(false)
	c.Parser = "nginx-combined"
	content := strings.Join([]string{
		`123.45.67.8 - - [12/Mar/2023:00:15:32 +0800] "GET /a HTTP/1.1" 200 3009 "-" ""`,
		`123.45.67.8 - - [12/Mar/2023:21:15:32 +0800] "GET /b HTTP/1.1" 200 3009 "-" ""`,
		`123.45.67.8 - - [13/Mar/2023:21:16:32 +0800] "GET /c HTTP/1.1" 200 3009 "-" ""`,
	}, "\n")
	a, _ := newTestFileAnalyzer(t, c, writeLog(t, content))
	r, err := a.Report()
	as.NoError(err)
	as.EqualValues(3, r.Accesses)
	as.Equal(21, r.BusiestHour)
	as.Equal(12, r.BusiestDay)
	as.Equal(3, r.BusiestMonth)
}

func TestFileSourceDiscard(t *testing.T) {
	as := assert.New(t)
	content := strings.Join([]string{
		`2024/08/16 18:31:45 server.go:383: client 192.0.2.1:60000 starts requesting module ubuntu`,
		`2024/08/16 18:32:50 server.go:422: client 192.0.2.1:60000 finishes module ubuntu (sent: 1145, received: 14)`,
	}, "\n")
	src := &FileSource{Filename: writeLog(t, content), Parser: parser.ParserFunc(parser.ParseRsyncProxy)}
	entries, err := Materialize(src)
	as.NoError(err)
	as.Equal(SliceSource{{Hour: 18, Day: 16, Month: 8}}, entries)
}

func TestFileSourcePrintData(t *testing.T) {
	as := assert.New(t)
	src := &FileSource{Filename: writeLog(t, "2015 6 1 0 15\n\n2015 06 02 3 4\n"), Parser: parser.ParserFunc(parser.ParseWeblog)}
	src.Logger = newDiscardLogger()
	var buf bytes.Buffer
	as.NoError(src.PrintData(&buf))
	as.Equal("2015 06 01 00 15\n2015 06 02 03 04\n", buf.String())

	src.Strict = true
	as.Error(src.PrintData(&buf))

	missing := &FileSource{Filename: filepath.Join(t.TempDir(), "missing"), Parser: parser.ParserFunc(parser.ParseWeblog)}
	as.ErrorIs(missing.PrintData(&buf), ErrSourceUnavailable)
}

func TestLogOutput(t *testing.T) {
	as := assert.New(t)
	c := testConfig(false)
	c.LogOutput = filepath.Join(t.TempDir(), "weblog.log")
	a, err := NewFileAnalyzer(c, writeLog(t, sampleWeblog))
	if !as.NoError(err) {
		return
	}
	as.NoError(a.AnalyzeHourly())
	as.NoError(a.Close())
	data, err := os.ReadFile(c.LogOutput)
	as.NoError(err)
	as.Contains(string(data), "parse error")
}

func TestFileAnalyzerStdin(t *testing.T) {
	as := assert.New(t)
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	go func() {
		w.WriteString(sampleWeblog)
		w.Close()
	}()
	stdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = stdin
		r.Close()
	})

	a, err := NewFileAnalyzer(testConfig(false), "-")
	if !as.NoError(err) {
		return
	}
	a.logger.SetOutput(io.Discard)
	for range 2 {
		h, err := a.BusiestHour()
		as.NoError(err)
		as.Equal(13, h)
		as.EqualValues(5, a.NumberOfAccesses())
	}
	m, err := a.BusiestMonth()
	as.NoError(err)
	as.Equal(6, m)
}

func TestPrintFileData(t *testing.T) {
	as := assert.New(t)
	c := testConfig(false)
	c.LogOutput = filepath.Join(t.TempDir(), "weblog.log")
	var buf bytes.Buffer
	as.NoError(PrintFileData(c, writeLog(t, sampleWeblog), &buf))
	as.Equal(5, strings.Count(buf.String(), "\n"))
	data, err := os.ReadFile(c.LogOutput)
	as.NoError(err)
	as.Contains(string(data), `got line: "not a record"`)
}
