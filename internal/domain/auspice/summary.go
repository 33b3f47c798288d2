package auspice

import "strings"

// buildSummary renders the one-line natural-language summary from a
// fully scored day. Fragments are appended in a fixed order and joined
// with ". "; the score-based fallback only fires when nothing else
// applied.
func buildSummary(day Day) string {
	var parts []string

	if day.MoonPhase.IsExactQuarter {
		parts = append(parts, day.MoonPhase.Name+" in "+day.MoonSign)
	}

	harmonious := harmoniousCount(day.PlanetaryAspects)
	challenging := challengingCount(day.PlanetaryAspects)
	if harmonious > challenging && harmonious >= 2 {
		parts = append(parts, "Favorable planetary energy")
	} else if challenging > harmonious && challenging >= 2 {
		parts = append(parts, "Challenging aspects present")
	}

	if day.VoidOfCourseMoon.IsVoid {
		parts = append(parts, "Moon void-of-course")
	}

	if len(day.Retrograde) > 0 {
		parts = append(parts, strings.Join(day.Retrograde, ", ")+" retrograde")
	}

	switch day.Chinese.DayOfficer {
	case "Success", "Open":
		parts = append(parts, day.Chinese.DayOfficer+" day")
	case "Break", "Close":
		parts = append(parts, day.Chinese.DayOfficer+" day — caution advised")
	}

	if len(parts) == 0 {
		switch {
		case day.Score >= 4:
			parts = append(parts, "Generally favorable energy")
		case day.Score <= 2:
			parts = append(parts, "Exercise caution today")
		default:
			parts = append(parts, "A balanced day")
		}
	}

	return strings.Join(parts, ". ") + "."
}
