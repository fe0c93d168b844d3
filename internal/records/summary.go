package records

import (
	"sort"
	"time"
)

// DailySummary aggregates the records of one calendar day.
type DailySummary struct {
	Date         string // 2006-01-02
	Completed    int
	Incomplete   int
	FocusSeconds int64 // sum of completed countdowns
}

// Summarize buckets records by their stored date, keeping days within
// [from, to). Days without records are omitted. The result is ordered by date.
func Summarize(recs []Record, from, to time.Time) []DailySummary {
	loc := from.Location()
	byDay := make(map[string]*DailySummary)

	for _, r := range recs {
		day, err := time.ParseInLocation(dateLayout, r.Date, loc)
		if err != nil {
			continue
		}
		if day.Before(startOfDay(from)) || !day.Before(to) {
			continue
		}
		key := day.Format("2006-01-02")
		s, ok := byDay[key]
		if !ok {
			s = &DailySummary{Date: key}
			byDay[key] = s
		}
		if r.Complete {
			s.Completed++
			s.FocusSeconds += int64(r.Duration() / time.Second)
		} else {
			s.Incomplete++
		}
	}

	out := make([]DailySummary, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Today returns the summary for the calendar day containing now.
func Today(recs []Record, now time.Time) DailySummary {
	start := startOfDay(now)
	sums := Summarize(recs, start, start.AddDate(0, 0, 1))
	if len(sums) == 0 {
		return DailySummary{Date: start.Format("2006-01-02")}
	}
	return sums[0]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
