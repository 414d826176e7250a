package streaks

import "sort"

// DayLog is one day of activity as the streak engine sees it. Points is
// always the count of true flags in Deeds at the time the row was written.
type DayLog struct {
	Date   string
	Points int
	Deeds  DeedSet
}

// Counters holds every simultaneous streak the dashboard shows. All counters
// share one backward walk from today; each breaks independently except
// Daily, whose break (a zero-point day) ends the walk for everyone.
type Counters struct {
	Daily       int                  `json:"dailyStreak"`
	Perfect     int                  `json:"perfectStreak"`
	Category    map[DeedCategory]int `json:"categoryStreaks"`
	TotalPoints int                  `json:"totalPoints"`
}

func zeroCounters() Counters {
	c := Counters{Category: make(map[DeedCategory]int, len(Categories))}
	for _, cat := range Categories {
		c.Category[cat] = 0
	}
	return c
}

// Calculate walks the history backwards from today and computes all streak
// counters.
//
// The walk anchors on today when a non-empty record for today exists, or on
// yesterday when the most recent record is exactly one day old (a user who
// has not acted yet today keeps yesterday's streak visible). A zero-point
// record for today is a placeholder from the dashboard auto-create and is
// excluded before anchoring. Anything older than yesterday means every
// counter is zero.
func Calculate(logs []DayLog, today string) Counters {
	counters := zeroCounters()
	if len(logs) == 0 {
		return counters
	}

	walk := dedupe(logs)
	sort.Slice(walk, func(i, j int) bool { return walk[i].Date > walk[j].Date })

	// Drop today's empty placeholder so yesterday's run still shows before
	// the user's first toggle of the day.
	if walk[0].Date == today && walk[0].Points == 0 {
		walk = walk[1:]
	}
	if len(walk) == 0 {
		return counters
	}

	expected := today
	if walk[0].Date != today {
		if walk[0].Date != PreviousDay(today) {
			return counters
		}
		expected = walk[0].Date
	}

	perfectActive := true
	categoryActive := make(map[DeedCategory]bool, len(Categories))
	for _, cat := range Categories {
		categoryActive[cat] = true
	}

	for _, log := range walk {
		if log.Date != expected {
			// Gap before the expected day: the run is over. Future-dated
			// strays were already ahead of the anchor and sorted out.
			if log.Date < expected {
				break
			}
			continue
		}

		// Order matters: the breaking day's points are still accumulated.
		counters.TotalPoints += log.Points

		if log.Points == 0 {
			break
		}
		counters.Daily++

		if perfectActive {
			if log.Points == TotalDeeds {
				counters.Perfect++
			} else {
				perfectActive = false
			}
		}

		for _, cat := range Categories {
			if !categoryActive[cat] {
				continue
			}
			if IsCategoryComplete(log.Deeds, cat) {
				counters.Category[cat]++
			} else {
				categoryActive[cat] = false
			}
		}

		expected = PreviousDay(expected)
	}

	return counters
}

// dedupe keeps the first-seen record per logical day.
func dedupe(logs []DayLog) []DayLog {
	seen := make(map[string]bool, len(logs))
	out := make([]DayLog, 0, len(logs))
	for _, log := range logs {
		if seen[log.Date] {
			continue
		}
		seen[log.Date] = true
		out = append(out, log)
	}
	return out
}
