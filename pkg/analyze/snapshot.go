package analyze

// Snapshot is a frozen copy of the analyzer's counts. All of its
// methods are pure.
type Snapshot struct {
	Hours  FrequencyTable
	Days   FrequencyTable
	Months FrequencyTable

	// Legacy keeps the historical seeding, where day and month scans
	// start from the empty slot 0.
	Legacy bool
}

// MonthTotal is one line of the per-month totals.
type MonthTotal struct {
	Month    int    `json:"month"`
	Accesses uint64 `json:"accesses"`
}

func (s Snapshot) seed(t FrequencyTable) int {
	if s.Legacy {
		return 0
	}
	return t.Lo()
}

func (s Snapshot) Accesses() uint64 {
	return s.Hours.Total()
}

func (s Snapshot) BusiestHour() int {
	return s.Hours.Busiest(s.seed(s.Hours))
}

func (s Snapshot) QuietestHour() int {
	return s.Hours.Quietest(s.seed(s.Hours))
}

func (s Snapshot) BusiestTwoHourPeriod() int {
	return s.Hours.BusiestWindow(2)
}

func (s Snapshot) BusiestDay() int {
	return s.Days.Busiest(s.seed(s.Days))
}

func (s Snapshot) QuietestDay() int {
	return s.Days.Quietest(s.seed(s.Days))
}

func (s Snapshot) BusiestMonth() int {
	return s.Months.Busiest(s.seed(s.Months))
}

func (s Snapshot) QuietestMonth() int {
	return s.Months.Quietest(s.seed(s.Months))
}

// MonthTotals lists accesses per month. In legacy mode it reproduces
// the old report: one line per month slot, labelled with the slot's
// count, each showing the grand total of the hourly counts.
func (s Snapshot) MonthTotals() []MonthTotal {
	if s.Legacy {
		total := s.Hours.Total()
		totals := make([]MonthTotal, 0, s.Months.Len())
		for i := range s.Months.Len() {
			totals = append(totals, MonthTotal{Month: int(s.Months.Count(i)), Accesses: total})
		}
		return totals
	}
	buckets := s.Months.Buckets()
	totals := make([]MonthTotal, 0, len(buckets))
	for _, b := range buckets {
		totals = append(totals, MonthTotal{Month: b.Key, Accesses: b.Count})
	}
	return totals
}

func (s Snapshot) Report() Report {
	return Report{
		Accesses:             s.Accesses(),
		BusiestHour:          s.BusiestHour(),
		QuietestHour:         s.QuietestHour(),
		BusiestTwoHourPeriod: s.BusiestTwoHourPeriod(),
		BusiestDay:           s.BusiestDay(),
		QuietestDay:          s.QuietestDay(),
		BusiestMonth:         s.BusiestMonth(),
		QuietestMonth:        s.QuietestMonth(),
		Hourly:               s.Hours.Buckets(),
		Daily:                s.Days.Buckets(),
		Monthly:              s.Months.Buckets(),
		MonthTotals:          s.MonthTotals(),
		Legacy:               s.Legacy,
	}
}
