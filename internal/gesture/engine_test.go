package gesture_test

import (
	"testing"
	"time"

	"one48-planner/internal/gesture"
	"one48-planner/internal/model"
	"one48-planner/internal/schedule"
	"one48-planner/pkg/timegrid"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newEngine(t *testing.T) (*gesture.Engine, *schedule.Board, *fakeClock) {
	t.Helper()
	board := schedule.New(nil)
	board.SetTasks([]model.Task{
		{ID: "t1", Title: "Write report", CategoryID: "work", DurationMins: 60},
	})
	board.Upsert(model.ScheduledEvent{
		Task:     model.Task{ID: "e1", Title: "Standup", CategoryID: "work", DurationMins: 30},
		DayIndex: 0, TimeSlot: "09:00",
	})
	board.ClearDirty()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	eng := gesture.New(board, timegrid.Default(), gesture.WithClock(clock.now))
	return eng, board, clock
}

func TestDragTaskOntoDaySnapsToGrid(t *testing.T) {
	eng, board, _ := newEngine(t)
	grid := timegrid.Default()

	if !eng.DragStart("t1", gesture.KindTask) {
		t.Fatal("drag start failed")
	}

	// Pointer at 13 minutes past 13:00; 15-minute snap rounds up to :15.
	pixelY := grid.DurationToPixels(13*60 + 13)

	preview, ok := eng.DragOver(2, pixelY)
	if !ok || preview.TimeSlot != "13:15" || preview.DayIndex != 2 {
		t.Errorf("preview = %+v/%v, want day 2 at 13:15", preview, ok)
	}

	res, ok := eng.DropOnDay(2, pixelY)
	if !ok {
		t.Fatal("drop failed")
	}
	if res.Event.TimeSlot != "13:15" || res.Event.DayIndex != 2 || res.Event.DurationMins != 60 {
		t.Errorf("dropped event = %+v", res.Event)
	}
	if len(board.Tasks()) != 0 {
		t.Error("task should be consumed by the drop")
	}
	if eng.Phase() != gesture.PhaseIdle {
		t.Error("engine should return to idle")
	}
}

func TestDragEventRelocates(t *testing.T) {
	eng, board, _ := newEngine(t)
	grid := timegrid.Default()

	if !eng.DragStart("e1", gesture.KindEvent) {
		t.Fatal("drag start failed")
	}
	res, ok := eng.DropOnDay(4, grid.DurationToPixels(16*60))
	if !ok {
		t.Fatal("drop failed")
	}
	if res.Event.DayIndex != 4 || res.Event.TimeSlot != "16:00" {
		t.Errorf("relocated event = %+v", res.Event)
	}
	if len(board.Events()) != 1 {
		t.Error("relocate must not duplicate the event")
	}
}

func TestDropWithoutTargetIsCancel(t *testing.T) {
	eng, board, _ := newEngine(t)

	eng.DragStart("e1", gesture.KindEvent)
	if _, ok := eng.DropOnDay(9, 100); ok {
		t.Error("drop on invalid day must cancel")
	}
	if board.Dirty() {
		t.Error("cancelled drop must not mutate the board")
	}
	if eng.Phase() != gesture.PhaseIdle {
		t.Error("engine should be idle after cancel")
	}

	// Dropping a task back on the unassigned lane is also a cancel.
	eng.DragStart("t1", gesture.KindTask)
	if _, ok := eng.DropOnUnassigned(); ok {
		t.Error("task drop on unassigned lane must be a no-op")
	}
	if len(board.Tasks()) != 1 {
		t.Error("task must stay unassigned")
	}
}

func TestDropOnUnassignedDetachesEvent(t *testing.T) {
	eng, board, _ := newEngine(t)

	eng.DragStart("e1", gesture.KindEvent)
	task, ok := eng.DropOnUnassigned()
	if !ok {
		t.Fatal("drop on unassigned failed")
	}
	if task.Title != "Standup" || task.DurationMins != 30 {
		t.Errorf("detached task = %+v", task)
	}
	if len(board.Events()) != 0 {
		t.Error("event should leave the schedule")
	}
}

func TestResizeLiveThenSnapOnRelease(t *testing.T) {
	eng, board, _ := newEngine(t)
	grid := timegrid.Default()

	if !eng.ResizeStart("e1") {
		t.Fatal("resize start failed")
	}

	// Drag the handle down by 23 minutes worth of pixels: live value is
	// unsnapped.
	eng.ResizeBy(grid.DurationToPixels(23))
	ev, _ := board.Event("e1")
	if ev.DurationMins != 53 {
		t.Errorf("live duration = %d, want 53", ev.DurationMins)
	}

	final, ok := eng.ResizeEnd()
	if !ok {
		t.Fatal("resize end failed")
	}
	if final.DurationMins != 60 {
		t.Errorf("final duration = %d, want snapped 60", final.DurationMins)
	}
}

func TestResizeNeverBelowFloor(t *testing.T) {
	eng, board, _ := newEngine(t)
	grid := timegrid.Default()

	eng.ResizeStart("e1")
	eng.ResizeBy(-grid.DurationToPixels(500))
	ev, _ := board.Event("e1")
	if ev.DurationMins != 15 {
		t.Errorf("live duration = %d, want clamped 15", ev.DurationMins)
	}

	final, _ := eng.ResizeEnd()
	if final.DurationMins != 15 {
		t.Errorf("final duration = %d, want 15", final.DurationMins)
	}
}

func TestGuardWindowSuppressesClickAndDrag(t *testing.T) {
	eng, _, clock := newEngine(t)

	eng.ResizeStart("e1")
	eng.ResizeBy(10)

	// While resizing, clicks and drags are ignored outright.
	if _, ok := eng.ClickSlot(0, 300); ok {
		t.Error("click during resize must be suppressed")
	}
	if eng.DragStart("e1", gesture.KindEvent) {
		t.Error("drag during resize must be suppressed")
	}

	eng.ResizeEnd()

	// Inside the guard window the resized event stays inert.
	if _, ok := eng.ClickSlot(0, 300); ok {
		t.Error("click inside guard window must be suppressed")
	}
	if eng.DragStart("e1", gesture.KindEvent) {
		t.Error("drag of resized event inside guard window must be suppressed")
	}

	clock.advance(gesture.DefaultGuardWindow + time.Millisecond)

	if slot, ok := eng.ClickSlot(0, 300); !ok || slot != "05:00" {
		t.Errorf("click after guard = %q/%v, want 05:00/true", slot, ok)
	}
	if !eng.DragStart("e1", gesture.KindEvent) {
		t.Error("drag should work again after the guard elapses")
	}
}

func TestClickSlotFloors(t *testing.T) {
	eng, _, _ := newEngine(t)
	grid := timegrid.Default()

	slot, ok := eng.ClickSlot(3, grid.DurationToPixels(11*60+14))
	if !ok || slot != "11:00" {
		t.Errorf("ClickSlot = %q/%v, want 11:00/true", slot, ok)
	}
	if _, ok := eng.ClickSlot(7, 100); ok {
		t.Error("invalid day must be rejected")
	}
}
