package schedule_test

import (
	"testing"

	"one48-planner/internal/model"
	"one48-planner/internal/schedule"
)

func newBoardWithTask(t *testing.T) (*schedule.Board, model.Task) {
	t.Helper()
	b := schedule.New(nil)
	task := model.Task{ID: "t1", Title: "Deep work", CategoryID: "work", DurationMins: 90, Notes: "<b>focus</b>"}
	b.SetTasks([]model.Task{task})
	return b, task
}

func TestMoveToSchedule(t *testing.T) {
	t.Run("moves task onto the grid and sets dirty", func(t *testing.T) {
		b, task := newBoardWithTask(t)

		ev, ok := b.MoveToSchedule("t1", 2, "09:15")
		if !ok {
			t.Fatal("expected move to succeed")
		}
		if ev.Title != task.Title || ev.DayIndex != 2 || ev.TimeSlot != "09:15" {
			t.Errorf("unexpected event: %+v", ev)
		}
		if len(b.Tasks()) != 0 {
			t.Error("task should leave the unassigned set")
		}
		if !b.Dirty() {
			t.Error("board should be dirty after a move")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		b, _ := newBoardWithTask(t)
		if _, ok := b.MoveToSchedule("nope", 0, "09:00"); ok {
			t.Error("expected not found")
		}
		if b.Dirty() {
			t.Error("no-op must not dirty the board")
		}
	})

	t.Run("out-of-range day is rejected", func(t *testing.T) {
		b, _ := newBoardWithTask(t)
		for _, day := range []int{-1, 7, 100} {
			if _, ok := b.MoveToSchedule("t1", day, "09:00"); ok {
				t.Errorf("day %d should be rejected", day)
			}
		}
		if len(b.Tasks()) != 1 {
			t.Error("rejected move must not consume the task")
		}
	})

	t.Run("malformed slot is rejected", func(t *testing.T) {
		b, _ := newBoardWithTask(t)
		if _, ok := b.MoveToSchedule("t1", 0, "25:99"); ok {
			t.Error("expected rejection")
		}
	})
}

func TestMoveRoundTripKeepsTaskData(t *testing.T) {
	b, task := newBoardWithTask(t)

	ev, ok := b.MoveToSchedule("t1", 4, "14:00")
	if !ok {
		t.Fatal("move to schedule failed")
	}

	back, ok := b.MoveToUnassigned(ev.ID)
	if !ok {
		t.Fatal("move to unassigned failed")
	}
	// The store reassigns the id; everything else must survive.
	if back.Title != task.Title || back.CategoryID != task.CategoryID ||
		back.DurationMins != task.DurationMins || back.Notes != task.Notes {
		t.Errorf("task data lost across transition: %+v", back)
	}
	if len(b.Events()) != 0 {
		t.Error("event should leave the schedule")
	}
}

func TestResizeClampsToFloor(t *testing.T) {
	b := schedule.New(nil)
	b.Upsert(model.ScheduledEvent{
		Task:     model.Task{ID: "e1", Title: "Standup", CategoryID: "work", DurationMins: 30},
		DayIndex: 0, TimeSlot: "09:00",
	})

	for _, mins := range []int{-120, -1, 0, 5, 14} {
		if !b.Resize("e1", mins) {
			t.Fatalf("resize(%d) not applied", mins)
		}
		ev, _ := b.Event("e1")
		if ev.DurationMins != 15 {
			t.Errorf("resize(%d): duration %d, want floor 15", mins, ev.DurationMins)
		}
	}

	// Live unsnapped values above the floor pass through untouched.
	b.Resize("e1", 37)
	ev, _ := b.Event("e1")
	if ev.DurationMins != 37 {
		t.Errorf("live resize: got %d, want 37", ev.DurationMins)
	}

	if b.Resize("missing", 60) {
		t.Error("resize of unknown id must be a no-op")
	}
}

func TestReplaceWeekIsFullOverwrite(t *testing.T) {
	b := schedule.New(nil)
	b.Upsert(model.ScheduledEvent{Task: model.Task{ID: "old", Title: "Old", DurationMins: 60}, DayIndex: 1, TimeSlot: "08:00"})
	if !b.Dirty() {
		t.Fatal("precondition: board dirty")
	}

	b.ReplaceWeek(nil)
	want := []model.ScheduledEvent{
		{Task: model.Task{ID: "a", Title: "A", DurationMins: 60}, DayIndex: 0, TimeSlot: "09:00"},
		{Task: model.Task{ID: "b", Title: "B", DurationMins: 30}, DayIndex: 3, TimeSlot: "10:30"},
	}
	b.ReplaceWeek(want)

	got := b.Events()
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("event %d: got %q, want %q", i, got[i].ID, want[i].ID)
		}
	}
	if b.Dirty() {
		t.Error("download overwrite must clear dirty")
	}
}

func TestCategoryFallback(t *testing.T) {
	b := schedule.New(nil)

	if c := b.Category("daily"); c.ID != "daily" {
		t.Errorf("known id: got %q", c.ID)
	}
	if c := b.Category("unknown"); c.ID != model.DefaultCategoryID {
		t.Errorf("unknown id: got %q, want default", c.ID)
	}
	if c := b.CategoryForColor("10"); c.ID != "daily" {
		t.Errorf("color 10: got %q, want daily", c.ID)
	}
	if c := b.CategoryForColor("3"); c.ID != model.DefaultCategoryID {
		t.Errorf("unmapped color: got %q, want default", c.ID)
	}
}

func TestUpsertAndDelete(t *testing.T) {
	b := schedule.New(nil)
	ev := model.ScheduledEvent{Task: model.Task{ID: "e1", Title: "Gym", CategoryID: "workout", DurationMins: 60}, DayIndex: 5, TimeSlot: "07:00"}

	if !b.Upsert(ev) {
		t.Fatal("insert failed")
	}
	ev.Title = "Gym (legs)"
	if !b.Upsert(ev) {
		t.Fatal("update failed")
	}
	if got, _ := b.Event("e1"); got.Title != "Gym (legs)" {
		t.Errorf("upsert did not replace: %q", got.Title)
	}
	if len(b.Events()) != 1 {
		t.Error("upsert by id must not duplicate")
	}

	if b.Upsert(model.ScheduledEvent{Task: model.Task{ID: "bad"}, DayIndex: 9, TimeSlot: "09:00"}) {
		t.Error("invalid day must be rejected")
	}

	if !b.Delete("e1") {
		t.Error("delete failed")
	}
	if b.Delete("e1") {
		t.Error("second delete must be a no-op")
	}
}
