package assistant

import (
	"one48-planner/internal/model"
	"one48-planner/pkg/timegrid"
)

// Defaults applied to add actions when the interpreter omits a field.
const (
	defaultTitle        = "Untitled"
	defaultTimeSlot     = "09:00"
	defaultDurationMins = 60
)

// Reduce folds an action batch over the scheduled events, in order: later
// actions see the effects of earlier ones. The input slice is not modified.
// Returns the new week plus the number of actions that actually matched or
// mutated state. Updates and deletes whose id is absent are no-ops and do
// not count as applied.
func Reduce(events []model.ScheduledEvent, actions []Action, defaultCategoryID string, newID func() string) ([]model.ScheduledEvent, int) {
	out := append([]model.ScheduledEvent(nil), events...)
	applied := 0

	for _, a := range actions {
		switch a.Op {
		case OpAdd:
			ev := model.ScheduledEvent{
				Task: model.Task{
					ID:           newID(),
					Title:        defaultTitle,
					CategoryID:   defaultCategoryID,
					DurationMins: defaultDurationMins,
				},
				DayIndex: 0,
				TimeSlot: defaultTimeSlot,
			}
			mergeAction(&ev, a)
			out = append(out, ev)
			applied++

		case OpUpdate:
			for i := range out {
				if out[i].ID == a.ID {
					mergeAction(&out[i], a)
					applied++
					break
				}
			}

		case OpDelete:
			for i := range out {
				if out[i].ID == a.ID {
					out = append(out[:i], out[i+1:]...)
					applied++
					break
				}
			}
		}
	}
	return out, applied
}

// mergeAction overlays the supplied fields of a over ev.
func mergeAction(ev *model.ScheduledEvent, a Action) {
	if a.Title != nil && *a.Title != "" {
		ev.Title = *a.Title
	}
	if a.TimeSlot != nil {
		ev.TimeSlot = *a.TimeSlot
	}
	if a.DurationMins != nil {
		d := *a.DurationMins
		if d < timegrid.MinDurationMins {
			d = timegrid.MinDurationMins
		}
		ev.DurationMins = d
	}
	if a.CategoryID != nil {
		ev.CategoryID = *a.CategoryID
	}
	if a.DayIndex != nil {
		ev.DayIndex = *a.DayIndex
	}
	if a.AllDay != nil {
		ev.IsAllDay = *a.AllDay
	}
}
