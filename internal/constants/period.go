package constants

// Period is the trailing window the statistics aggregator reports on.
// Lengths are fixed day counts, not calendar months or years.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

var periodDays = map[Period]int{
	PeriodDay:   1,
	PeriodWeek:  7,
	PeriodMonth: 30,
	PeriodYear:  365,
}

func ParsePeriod(s string) (Period, bool) {
	p := Period(s)
	_, ok := periodDays[p]
	return p, ok
}

func (p Period) Days() int {
	return periodDays[p]
}
