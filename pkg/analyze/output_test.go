package analyze

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func testReport(t *testing.T, legacy bool) Report {
	t.Helper()
	a := newTestAnalyzer(t, legacy, sampleEntries())
	r, err := a.Report()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestFormatFlag(t *testing.T) {
	as := assert.New(t)
	var f FormatFlag
	as.NoError(f.Set("plain"))
	as.Equal(FormatText, f)
	as.NoError(f.Set("json"))
	as.Equal(FormatJSON, f)
	as.Error(f.Set("xml"))

	for _, format := range []FormatFlag{FormatText, FormatTable, FormatJSON} {
		_, err := GetOutputter(format)
		as.NoError(err)
	}
	_, err := GetOutputter("xml")
	as.Error(err)
}

func TestConfigValidate(t *testing.T) {
	as := assert.New(t)
	c := DefaultConfig()
	c.Format = "plain"
	as.NoError(c.Validate())
	as.Equal(FormatText, c.Format)

	c.Format = "xml"
	as.Error(c.Validate())

	c = DefaultConfig()
	c.Parser = "nope"
	as.Error(c.Validate())
}

func TestPrintText(t *testing.T) {
	color.NoColor = true
	as := assert.New(t)
	r := testReport(t, false)
	var buf bytes.Buffer
	as.NoError(PrintText(&buf, &r))
	out := buf.String()
	as.Contains(out, "Accesses: 5\n")
	as.Contains(out, "Busiest hour: 13\n")
	as.Contains(out, "Busiest two-hour period: 12\n")
	as.Contains(out, "Hr: Count\n0: 1\n1: 0\n")
	as.Contains(out, "Day: Count\n1: 1\n")
	as.Contains(out, "Month: 6 Total Accesses: 2\n")

	legacy := testReport(t, true)
	buf.Reset()
	as.NoError(PrintText(&buf, &legacy))
	as.Contains(buf.String(), "Month: 2Total Accesses: 5\n")
	as.NotContains(buf.String(), "\n31: ")
}

func TestPrintTable(t *testing.T) {
	as := assert.New(t)
	r := testReport(t, false)
	var buf bytes.Buffer
	as.NoError(PrintTable(&buf, &r))
	out := buf.String()
	as.Contains(out, "Accesses")
	as.Contains(out, "13:00")
	as.Contains(out, "15th")
	as.Contains(out, "June")
	as.Contains(out, "February")
}

func TestPrintJSON(t *testing.T) {
	as := assert.New(t)
	r := testReport(t, false)
	var buf bytes.Buffer
	as.NoError(PrintJSON(&buf, &r))
	as.True(strings.HasSuffix(buf.String(), "}\n"))

	var decoded Report
	as.NoError(json.Unmarshal(buf.Bytes(), &decoded))
	as.Equal(r, decoded)
	as.Contains(buf.String(), `"busiest_two_hour_period": 12`)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestPrintTextWriteError(t *testing.T) {
	r := testReport(t, false)
	errWrite := errors.New("disk full")
	assert.ErrorIs(t, PrintText(failingWriter{errWrite}, &r), errWrite)
}
