package streaks

import "sort"

// Lifetime holds whole-history maxima, independent of today's continuity.
// A live streak can momentarily regress (late write, app restart); badge
// eligibility is anchored on these so it is never lost.
type Lifetime struct {
	MaxDailyStreak int  `json:"maxDailyStreak"`
	HasPerfectDay  bool `json:"hasPerfectDay"`
}

// ScanLifetime walks the history in ascending day order and tracks the
// longest run of consecutive days with points > 0, plus whether any day ever
// scored the full deed count.
func ScanLifetime(logs []DayLog) Lifetime {
	var lt Lifetime
	if len(logs) == 0 {
		return lt
	}

	scan := dedupe(logs)
	sort.Slice(scan, func(i, j int) bool { return scan[i].Date < scan[j].Date })

	run := 0
	prevActive := ""
	for _, log := range scan {
		if log.Points == TotalDeeds {
			lt.HasPerfectDay = true
		}

		if log.Points <= 0 {
			run = 0
			prevActive = ""
			continue
		}

		if prevActive != "" && DaysBetween(prevActive, log.Date) == 1 {
			run++
		} else {
			run = 1
		}
		prevActive = log.Date

		if run > lt.MaxDailyStreak {
			lt.MaxDailyStreak = run
		}
	}

	return lt
}
