package analyze

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Bucket is the count of one category value.
type Bucket struct {
	Key   int    `json:"key"`
	Count uint64 `json:"count"`
}

type Report struct {
	Accesses             uint64 `json:"accesses"`
	BusiestHour          int    `json:"busiest_hour"`
	QuietestHour         int    `json:"quietest_hour"`
	BusiestTwoHourPeriod int    `json:"busiest_two_hour_period"`
	BusiestDay           int    `json:"busiest_day"`
	QuietestDay          int    `json:"quietest_day"`
	BusiestMonth         int    `json:"busiest_month"`
	QuietestMonth        int    `json:"quietest_month"`

	Hourly      []Bucket     `json:"hourly"`
	Daily       []Bucket     `json:"daily"`
	Monthly     []Bucket     `json:"monthly"`
	MonthTotals []MonthTotal `json:"month_totals"`

	Legacy bool `json:"legacy"`
}

type Outputter interface {
	Print(w io.Writer, r *Report) error
}

type OutputterFunc func(w io.Writer, r *Report) error

func (f OutputterFunc) Print(w io.Writer, r *Report) error {
	return f(w, r)
}

var outputters = map[FormatFlag]Outputter{
	FormatText:  OutputterFunc(PrintText),
	FormatTable: OutputterFunc(PrintTable),
	FormatJSON:  OutputterFunc(PrintJSON),
}

func GetOutputter(format FormatFlag) (Outputter, error) {
	o, ok := outputters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return o, nil
}

// WriteCounts writes a "<header>: Count" line followed by one
// "key: count" line per bucket.
func WriteCounts(w io.Writer, header string, buckets []Bucket) error {
	if _, err := fmt.Fprintf(w, "%s: Count\n", header); err != nil {
		return err
	}
	for _, b := range buckets {
		if _, err := fmt.Fprintf(w, "%d: %d\n", b.Key, b.Count); err != nil {
			return err
		}
	}
	return nil
}

func WriteMonthTotals(w io.Writer, totals []MonthTotal, legacy bool) error {
	// The legacy line has no space before "Total"; kept for diffing
	// against old output.
	format := "Month: %d Total Accesses: %d\n"
	if legacy {
		format = "Month: %dTotal Accesses: %d\n"
	}
	for _, t := range totals {
		if _, err := fmt.Fprintf(w, format, t.Month, t.Accesses); err != nil {
			return err
		}
	}
	return nil
}

// PrintText renders the report into memory and writes it with a
// single call, so only that write can fail.
func PrintText(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	heading := color.New(color.Bold)
	heading.Fprintln(&buf, "Summary")
	fmt.Fprintf(&buf, "Accesses: %d\n", r.Accesses)
	fmt.Fprintf(&buf, "Busiest hour: %d\n", r.BusiestHour)
	fmt.Fprintf(&buf, "Quietest hour: %d\n", r.QuietestHour)
	fmt.Fprintf(&buf, "Busiest two-hour period: %d\n", r.BusiestTwoHourPeriod)
	fmt.Fprintf(&buf, "Busiest day: %d\n", r.BusiestDay)
	fmt.Fprintf(&buf, "Quietest day: %d\n", r.QuietestDay)
	fmt.Fprintf(&buf, "Busiest month: %d\n", r.BusiestMonth)
	fmt.Fprintf(&buf, "Quietest month: %d\n", r.QuietestMonth)

	sections := []struct {
		title   string
		header  string
		buckets []Bucket
	}{
		{"Hourly", "Hr", r.Hourly},
		{"Daily", "Day", r.Daily},
		{"Monthly", "Month", r.Monthly},
	}
	for _, s := range sections {
		buf.WriteByte('\n')
		heading.Fprintln(&buf, s.title)
		WriteCounts(&buf, s.header, s.buckets)
	}
	buf.WriteByte('\n')
	heading.Fprintln(&buf, "Totals per month")
	WriteMonthTotals(&buf, r.MonthTotals, r.Legacy)

	_, err := w.Write(buf.Bytes())
	return err
}

// NewTextTable returns a borderless, left-aligned table with two-space
// column padding.
func NewTextTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithHeaderAutoWrap(tw.WrapNone),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithPadding(tw.Padding{
			Right:     "  ",
			Overwrite: true,
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
	)
}

func monthName(m int) string {
	if m < 1 || m > 12 {
		return strconv.Itoa(m)
	}
	return time.Month(m).String()
}

func PrintTable(w io.Writer, r *Report) error {
	summary := NewTextTable(w)
	summary.Header("Statistic", "Value")
	rows := [][]string{
		{"Accesses", humanize.Comma(int64(r.Accesses))},
		{"Busiest hour", fmt.Sprintf("%02d:00", r.BusiestHour)},
		{"Quietest hour", fmt.Sprintf("%02d:00", r.QuietestHour)},
		{"Busiest two hours", fmt.Sprintf("%02d:00-%02d:00", r.BusiestTwoHourPeriod, r.BusiestTwoHourPeriod+2)},
		{"Busiest day", humanize.Ordinal(r.BusiestDay)},
		{"Quietest day", humanize.Ordinal(r.QuietestDay)},
		{"Busiest month", monthName(r.BusiestMonth)},
		{"Quietest month", monthName(r.QuietestMonth)},
	}
	for _, row := range rows {
		if err := summary.Append(row); err != nil {
			return err
		}
	}
	if err := summary.Render(); err != nil {
		return err
	}

	sections := []struct {
		header  string
		buckets []Bucket
		label   func(int) string
	}{
		{"Hour", r.Hourly, func(k int) string { return fmt.Sprintf("%02d", k) }},
		{"Day", r.Daily, humanize.Ordinal},
		{"Month", r.Monthly, monthName},
	}
	for _, s := range sections {
		fmt.Fprintln(w)
		table := NewTextTable(w)
		table.Header(s.header, "Count")
		for _, b := range s.buckets {
			if err := table.Append([]string{s.label(b.Key), humanize.Comma(int64(b.Count))}); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	return nil
}

func PrintJSON(w io.Writer, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
