// Package view turns proxy payloads into display models for the HTML pages and
// the terminal client.
package view

import (
	"fmt"
	"time"

	"github.com/orbitwatch/backend/internal/domain"
)

// Quality is the visibility tier of a pass
type Quality string

const (
	QualityExcellent Quality = "Excellent"
	QualityGood      Quality = "Good"
	QualityFair      Quality = "Fair"
	QualityPoor      Quality = "Poor"
)

// Classify grades a pass from its peak elevation (degrees) and visual magnitude
func Classify(maxEl, mag float64) Quality {
	switch {
	case maxEl >= 50 && mag <= 2:
		return QualityExcellent
	case maxEl >= 30 && mag <= 3:
		return QualityGood
	case maxEl >= 20:
		return QualityFair
	default:
		return QualityPoor
	}
}

// Tone returns the CSS class used to colour the quality label
func (q Quality) Tone() string {
	switch q {
	case QualityExcellent:
		return "tone-excellent"
	case QualityGood:
		return "tone-good"
	case QualityFair:
		return "tone-fair"
	default:
		return "tone-poor"
	}
}

var compassGlyphs = map[string]string{
	"N":  "↑",
	"NE": "↗",
	"E":  "→",
	"SE": "↘",
	"S":  "↓",
	"SW": "↙",
	"W":  "←",
	"NW": "↖",
}

// DirectionGlyph maps a compass label to an arrow. Unknown labels are echoed.
func DirectionGlyph(compass string) string {
	if g, ok := compassGlyphs[compass]; ok {
		return g
	}
	return compass
}

// FormatDuration renders seconds as "{m}m {s}s"
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// PassTime is a pass timestamp split for display
type PassTime struct {
	Date string // e.g. "Mon, Jan 2"
	Time string // e.g. "03:04 PM"
}

// FormatPassTime renders a Unix timestamp in loc, defaulting to UTC
func FormatPassTime(ts int64, loc *time.Location) PassTime {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Unix(ts, 0).In(loc)
	return PassTime{
		Date: t.Format("Mon, Jan 2"),
		Time: t.Format("03:04 PM"),
	}
}

// FormatElevation renders degrees with one decimal
func FormatElevation(deg float64) string {
	return fmt.Sprintf("%.1f°", deg)
}

// CategoryTone returns the CSS class for a catalog category
func CategoryTone(c domain.Category) string {
	switch c {
	case domain.CategorySpaceStation:
		return "cat-station"
	case domain.CategoryObservatory:
		return "cat-observatory"
	case domain.CategoryEarthObservation:
		return "cat-earth"
	case domain.CategoryWeather:
		return "cat-weather"
	case domain.CategoryCommunications:
		return "cat-comms"
	default:
		return "cat-neutral"
	}
}
