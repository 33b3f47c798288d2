package auspice

import (
	"math"
	"strconv"
	"strings"

	"github.com/starbook-app/starbook/internal/domain/astro"
)

var scoreLabels = []string{"Avoid", "Poor", "Neutral", "Good", "Great"}

// computeScore reduces the non-score fields of a day to the weighted
// 1-5 score and its label. Weights: moon phase .20, void-of-course
// .20, aspects .25, retrogrades .10, Day Officer .15, activities .10.
func computeScore(day Day) (int, string) {
	raw := moonPhaseScore(day.MoonPhase.Name)*0.20 +
		vocScore(day.VoidOfCourseMoon)*0.20 +
		aspectScore(day.PlanetaryAspects)*0.25 +
		retroScore(len(day.Retrograde))*0.10 +
		officerScore(day.Chinese.DayOfficer)*0.15 +
		activityScore(len(day.Chinese.AuspiciousActivities), len(day.Chinese.InauspiciousActivities))*0.10

	score := int(math.Round(raw))
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return score, scoreLabels[score-1]
}

func moonPhaseScore(name string) float64 {
	switch {
	case name == "Full Moon":
		return 5
	case name == "New Moon":
		return 4
	case name == "First Quarter" || name == "Third Quarter":
		return 3
	case strings.Contains(name, "Waxing"):
		return 4
	default: // waning
		return 2
	}
}

func vocScore(voc astro.VoidOfCourse) float64 {
	if !voc.IsVoid {
		return 5
	}
	start, okStart := parseClockMinutes(voc.StartTime)
	end, okEnd := parseClockMinutes(voc.EndTime)
	if !okStart || !okEnd {
		return 3
	}
	// A window that crosses midnight parses negative and lands in the
	// lenient bucket, same as the short-window case.
	duration := end - start
	switch {
	case duration > 240:
		return 1
	case duration > 120:
		return 3
	default:
		return 4
	}
}

func parseClockMinutes(clock *string) (int, bool) {
	if clock == nil {
		return 0, false
	}
	parts := strings.Split(*clock, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

func aspectScore(aspects []astro.Aspect) float64 {
	net := harmoniousCount(aspects) - challengingCount(aspects)
	switch {
	case net >= 3:
		return 5
	case net >= 1:
		return 4
	case net == 0:
		return 3
	case net >= -2:
		return 2
	default:
		return 1
	}
}

func harmoniousCount(aspects []astro.Aspect) int {
	n := 0
	for _, a := range aspects {
		if a.IsHarmonious {
			n++
		}
	}
	return n
}

func challengingCount(aspects []astro.Aspect) int {
	n := 0
	for _, a := range aspects {
		if !a.IsHarmonious {
			n++
		}
	}
	return n
}

func retroScore(count int) float64 {
	switch {
	case count == 0:
		return 5
	case count == 1:
		return 3
	default:
		return 2
	}
}

func officerScore(officer string) float64 {
	switch officer {
	case "Success", "Open", "Establish":
		return 5
	case "Remove", "Full":
		return 4
	case "Balance", "Stable":
		return 3
	case "Danger", "Receive":
		return 2
	default: // Break, Close, Initiate
		return 1
	}
}

func activityScore(good, bad int) float64 {
	switch {
	case good >= 4 && bad <= 1:
		return 5
	case good >= 3:
		return 4
	case good >= 2:
		return 3
	case bad >= 3:
		return 2
	default:
		return 1
	}
}
