package usecase

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"one48-planner/internal/model"
	"one48-planner/internal/planner"
	"one48-planner/pkg/timegrid"
)

// ExportWeek serializes the current week to iCalendar bytes so the plan can
// be imported anywhere else.
func (uc *implUseCase) ExportWeek(ctx context.Context, sc model.Scope) (planner.ExportOutput, error) {
	weekStart := uc.weekStart()
	now := uc.now()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//one48-planner//week export//EN")

	for _, ev := range uc.board.Events() {
		ve := cal.AddEvent(fmt.Sprintf("%s@one48-planner", ev.ID))
		ve.SetDtStampTime(now)
		ve.SetSummary(ev.Title)
		if ev.Notes != "" {
			ve.SetDescription(ev.Notes)
		}

		if ev.IsAllDay {
			day := weekStart.AddDate(0, 0, ev.DayIndex)
			ve.SetAllDayStartAt(day)
			ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
			continue
		}

		start, err := timegrid.SlotTime(weekStart, ev.DayIndex, ev.TimeSlot)
		if err != nil {
			uc.l.Warnf(ctx, "planner: skipping export of event %s with bad slot %q", ev.ID, ev.TimeSlot)
			continue
		}
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(time.Duration(ev.DurationMins) * time.Minute))
	}

	return planner.ExportOutput{
		Filename: fmt.Sprintf("week-%s.ics", weekStart.Format("2006-01-02")),
		MIMEType: "text/calendar",
		Data:     []byte(cal.Serialize()),
	}, nil
}
