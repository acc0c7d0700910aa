package analyze

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/taoky/weblog/pkg/parser"
	"github.com/taoky/weblog/pkg/util"
)

type Analyzer struct {
	Config AnalyzerConfig

	source Source

	hours  FrequencyTable
	days   FrequencyTable
	months FrequencyTable

	logger  *log.Logger
	logFile *os.File
}

// NewAnalyzer creates an analyzer over source with all counts at zero.
func NewAnalyzer(c AnalyzerConfig, source Source) (*Analyzer, error) {
	a := &Analyzer{
		Config: c,
		source: source,
		hours:  newHourTable(),
		days:   newDayTable(c.Legacy),
		months: newMonthTable(c.Legacy),
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
	if err := a.openLogFile(); err != nil {
		return nil, fmt.Errorf("open log file error: %w", err)
	}
	return a, nil
}

// newFileSource creates an analyzer without a source and the file
// source that logs through it.
func newFileSource(c AnalyzerConfig, filename string) (*Analyzer, *FileSource, error) {
	logParser, err := parser.GetParser(c.Parser)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid parser: %w", err)
	}
	if err := parser.Prepare(logParser); err != nil {
		return nil, nil, err
	}

	a, err := NewAnalyzer(c, nil)
	if err != nil {
		return nil, nil, err
	}
	src := &FileSource{
		Filename: filename,
		Parser:   logParser,
		Logger:   a.logger,
		Strict:   c.Strict,
	}
	if c.Progress && util.IsTerminal(os.Stderr.Fd()) {
		src.Progress = os.Stderr
	}
	return a, src, nil
}

// NewFileAnalyzer creates an analyzer reading filename with the parser
// named in c. Stdin ("-") is read once up front and replayed from memory.
func NewFileAnalyzer(c AnalyzerConfig, filename string) (*Analyzer, error) {
	a, src, err := newFileSource(c, filename)
	if err != nil {
		return nil, err
	}

	if filename == util.Stdin {
		entries, err := Materialize(src)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.source = entries
		return a, nil
	}
	if _, err := os.Stat(filename); err != nil {
		a.Close()
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	a.source = src
	return a, nil
}

// PrintFileData writes the records of filename to w in weblog format.
// Parser, logging and progress follow c as in NewFileAnalyzer.
func PrintFileData(c AnalyzerConfig, filename string, w io.Writer) (err error) {
	a, src, err := newFileSource(c, filename)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()
	return src.PrintData(w)
}

func (a *Analyzer) runPass(fn func(Entry) error) error {
	if a.source == nil {
		return fmt.Errorf("%w: no source", ErrSourceUnavailable)
	}
	return drain(a.source, fn)
}

// AnalyzeHourly recounts accesses per hour over a fresh pass. On error
// the previous counts are kept.
func (a *Analyzer) AnalyzeHourly() error {
	hours := newHourTable()
	err := a.runPass(func(e Entry) error {
		return hours.Add(e.Hour)
	})
	if err != nil {
		return err
	}
	a.hours = hours
	return nil
}

func (a *Analyzer) AnalyzeDaily() error {
	days := newDayTable(a.Config.Legacy)
	err := a.runPass(func(e Entry) error {
		return days.Add(e.Day)
	})
	if err != nil {
		return err
	}
	a.days = days
	return nil
}

func (a *Analyzer) AnalyzeMonthly() error {
	months := newMonthTable(a.Config.Legacy)
	err := a.runPass(func(e Entry) error {
		return months.Add(e.Month)
	})
	if err != nil {
		return err
	}
	a.months = months
	return nil
}

// Analyze fills all three tables in a single pass.
func (a *Analyzer) Analyze() error {
	hours, days, months := newHourTable(), newDayTable(a.Config.Legacy), newMonthTable(a.Config.Legacy)
	err := a.runPass(func(e Entry) error {
		if err := hours.Add(e.Hour); err != nil {
			return err
		}
		if err := days.Add(e.Day); err != nil {
			return err
		}
		return months.Add(e.Month)
	})
	if err != nil {
		return err
	}
	a.hours, a.days, a.months = hours, days, months
	a.logger.Printf("analyzed %d accesses", hours.Total())
	return nil
}

// NumberOfAccesses is the total of the last hourly count, 0 if no
// hourly pass has run yet.
func (a *Analyzer) NumberOfAccesses() uint64 {
	return a.hours.Total()
}

// Snapshot copies the current counts.
func (a *Analyzer) Snapshot() Snapshot {
	return Snapshot{
		Hours:  a.hours.clone(),
		Days:   a.days.clone(),
		Months: a.months.clone(),
		Legacy: a.Config.Legacy,
	}
}

func (a *Analyzer) hourly(query func(Snapshot) int) (int, error) {
	if err := a.AnalyzeHourly(); err != nil {
		return 0, err
	}
	return query(a.Snapshot()), nil
}

func (a *Analyzer) daily(query func(Snapshot) int) (int, error) {
	if err := a.AnalyzeDaily(); err != nil {
		return 0, err
	}
	return query(a.Snapshot()), nil
}

func (a *Analyzer) monthly(query func(Snapshot) int) (int, error) {
	if err := a.AnalyzeMonthly(); err != nil {
		return 0, err
	}
	return query(a.Snapshot()), nil
}

func (a *Analyzer) BusiestHour() (int, error) {
	return a.hourly(Snapshot.BusiestHour)
}

func (a *Analyzer) QuietestHour() (int, error) {
	return a.hourly(Snapshot.QuietestHour)
}

// BusiestTwoHourPeriod returns the first hour of the busiest pair of
// consecutive hours.
func (a *Analyzer) BusiestTwoHourPeriod() (int, error) {
	return a.hourly(Snapshot.BusiestTwoHourPeriod)
}

func (a *Analyzer) BusiestDay() (int, error) {
	return a.daily(Snapshot.BusiestDay)
}

func (a *Analyzer) QuietestDay() (int, error) {
	return a.daily(Snapshot.QuietestDay)
}

func (a *Analyzer) BusiestMonth() (int, error) {
	return a.monthly(Snapshot.BusiestMonth)
}

func (a *Analyzer) QuietestMonth() (int, error) {
	return a.monthly(Snapshot.QuietestMonth)
}

func (a *Analyzer) TotalAccessesPerMonth() ([]MonthTotal, error) {
	if err := a.AnalyzeMonthly(); err != nil {
		return nil, err
	}
	return a.Snapshot().MonthTotals(), nil
}

// Report runs a full pass and summarizes it.
func (a *Analyzer) Report() (Report, error) {
	if err := a.Analyze(); err != nil {
		return Report{}, err
	}
	return a.Snapshot().Report(), nil
}

func (a *Analyzer) PrintHourlyCounts(w io.Writer) error {
	if err := a.AnalyzeHourly(); err != nil {
		return err
	}
	return WriteCounts(w, "Hr", a.hours.Buckets())
}

func (a *Analyzer) PrintDailyCounts(w io.Writer) error {
	if err := a.AnalyzeDaily(); err != nil {
		return err
	}
	return WriteCounts(w, "Day", a.days.Buckets())
}

func (a *Analyzer) PrintMonthlyCounts(w io.Writer) error {
	if err := a.AnalyzeMonthly(); err != nil {
		return err
	}
	return WriteCounts(w, "Month", a.months.Buckets())
}

func (a *Analyzer) PrintMonthTotals(w io.Writer) error {
	totals, err := a.TotalAccessesPerMonth()
	if err != nil {
		return err
	}
	return WriteMonthTotals(w, totals, a.Config.Legacy)
}
