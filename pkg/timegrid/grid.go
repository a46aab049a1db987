// Package timegrid converts between wall-clock slots on the weekly planner
// grid and pixel offsets inside a day column. All functions are pure.
package timegrid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultStartHour and DefaultEndHour span the full day grid.
	DefaultStartHour = 0
	DefaultEndHour   = 24

	// DefaultPixelsPerHour is the rendered height of one hour slot.
	DefaultPixelsPerHour = 60.0

	// DefaultSnapMinutes is the granularity placements and resizes snap to.
	DefaultSnapMinutes = 15

	// MinDurationMins is the floor every event duration is clamped to.
	MinDurationMins = 15
)

// Grid describes one day column of the planner.
type Grid struct {
	StartHour     int
	EndHour       int
	PixelsPerHour float64
	SnapMinutes   int
}

// Default returns the grid used by the planner UI.
func Default() Grid {
	return Grid{
		StartHour:     DefaultStartHour,
		EndHour:       DefaultEndHour,
		PixelsPerHour: DefaultPixelsPerHour,
		SnapMinutes:   DefaultSnapMinutes,
	}
}

func (g Grid) pixelsPerMinute() float64 {
	return g.PixelsPerHour / 60.0
}

// MinutesFromStart converts a "HH:MM" slot to minutes from the grid start.
func (g Grid) MinutesFromStart(timeSlot string) (int, error) {
	h, m, err := parseSlot(timeSlot)
	if err != nil {
		return 0, err
	}
	return (h-g.StartHour)*60 + m, nil
}

// TimeFromMinutes converts minutes from the grid start back to "HH:MM".
// Negative offsets clamp to the grid start.
func (g Grid) TimeFromMinutes(minsFromStart int) string {
	if minsFromStart < 0 {
		minsFromStart = 0
	}
	total := g.StartHour*60 + minsFromStart
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// PixelToMinutes converts a vertical pixel offset to raw grid minutes.
func (g Grid) PixelToMinutes(pixelY float64) float64 {
	return pixelY / g.pixelsPerMinute()
}

// TimeFromPixel converts a pixel offset to a slot, rounded to the nearest
// snap unit. Used for drops.
func (g Grid) TimeFromPixel(pixelY float64) string {
	raw := g.PixelToMinutes(pixelY)
	snapped := int(math.Round(raw/float64(g.SnapMinutes))) * g.SnapMinutes
	return g.TimeFromMinutes(snapped)
}

// ClickTimeFromPixel converts a pixel offset to a slot, floored to the snap
// unit. Used for click-to-create, which targets the slot the pointer is in
// rather than the nearest boundary. Offsets above the grid report !ok.
func (g Grid) ClickTimeFromPixel(pixelY float64) (string, bool) {
	if pixelY < 0 {
		return "", false
	}
	mins := int(math.Floor(g.PixelToMinutes(pixelY)))
	snapped := (mins / g.SnapMinutes) * g.SnapMinutes
	return g.TimeFromMinutes(snapped), true
}

// DurationToPixels converts an event duration to its rendered height.
func (g Grid) DurationToPixels(durationMins int) float64 {
	return float64(durationMins) * g.pixelsPerMinute()
}

// PixelsToDuration converts a pixel height to raw minutes.
func (g Grid) PixelsToDuration(pixels float64) float64 {
	return pixels / g.pixelsPerMinute()
}

// SnapDuration rounds a live duration to the snap unit and clamps it to the
// minimum event duration.
func (g Grid) SnapDuration(durationMins int) int {
	snapped := int(math.Round(float64(durationMins)/float64(g.SnapMinutes))) * g.SnapMinutes
	if snapped < MinDurationMins {
		return MinDurationMins
	}
	return snapped
}

// ValidSlot reports whether timeSlot is a well-formed "HH:MM" grid slot.
func ValidSlot(timeSlot string) bool {
	_, _, err := parseSlot(timeSlot)
	return err == nil
}

func parseSlot(timeSlot string) (int, int, error) {
	parts := strings.Split(timeSlot, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q, expected HH:MM", timeSlot)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in time slot %q", timeSlot)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in time slot %q", timeSlot)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m > 0) {
		return 0, 0, fmt.Errorf("time slot %q out of range", timeSlot)
	}
	return h, m, nil
}
