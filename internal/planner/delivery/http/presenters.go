package http

import (
	"one48-planner/internal/model"
	"one48-planner/internal/planner"
)

// --- Request DTOs ---

type saveEventReq struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"         binding:"required,max=255"`
	Subtitle     string  `json:"subtitle"      binding:"max=255"`
	Notes        string  `json:"notes"`
	CategoryID   string  `json:"category_id"`
	DurationMins int     `json:"duration_mins"`
	DayIndex     *int    `json:"day_index"`
	TimeSlot     *string `json:"time_slot"`
	IsAllDay     bool    `json:"is_all_day"`
}

func (r saveEventReq) toInput() planner.SaveEventInput {
	return planner.SaveEventInput{
		ID:           r.ID,
		Title:        r.Title,
		Subtitle:     r.Subtitle,
		Notes:        r.Notes,
		CategoryID:   r.CategoryID,
		DurationMins: r.DurationMins,
		DayIndex:     r.DayIndex,
		TimeSlot:     r.TimeSlot,
		IsAllDay:     r.IsAllDay,
	}
}

type dragReq struct {
	ID   string `json:"id"   binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=task event"`
}

func (r dragReq) toInput() planner.DragInput {
	return planner.DragInput{ID: r.ID, Kind: r.Kind}
}

type dropReq struct {
	DayIndex int     `json:"day_index" binding:"min=0,max=6"`
	PixelY   float64 `json:"pixel_y"`
}

func (r dropReq) toInput() planner.DropInput {
	return planner.DropInput{DayIndex: r.DayIndex, PixelY: r.PixelY}
}

type resizeStartReq struct {
	ID string `json:"id" binding:"required"`
}

type resizeStepReq struct {
	DeltaPixels float64 `json:"delta_pixels"`
}

type assistReq struct {
	Text        string `json:"text"`
	AudioBase64 string `json:"audio_base64"`
	AudioMime   string `json:"audio_mime"`
	SelectedDay *int   `json:"selected_day"`
}

func (r assistReq) toInput() planner.AssistInput {
	return planner.AssistInput{
		Text:        r.Text,
		AudioBase64: r.AudioBase64,
		AudioMime:   r.AudioMime,
		SelectedDay: r.SelectedDay,
	}
}

type addRuleReq struct {
	Text string `json:"text" binding:"required"`
}

type addRoutineReq struct {
	Title        string `json:"title" binding:"required,max=255"`
	CategoryID   string `json:"category_id"`
	DurationMins int    `json:"duration_mins"`
}

func (r addRoutineReq) toInput() planner.AddRoutineInput {
	return planner.AddRoutineInput{
		Title:        r.Title,
		CategoryID:   r.CategoryID,
		DurationMins: r.DurationMins,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	Notes        string `json:"notes,omitempty"`
	CategoryID   string `json:"category_id"`
	DurationMins int    `json:"duration_mins"`
	IsAllDay     bool   `json:"is_all_day"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:           t.ID,
		Title:        t.Title,
		Subtitle:     t.Subtitle,
		Notes:        t.Notes,
		CategoryID:   t.CategoryID,
		DurationMins: t.DurationMins,
		IsAllDay:     t.IsAllDay,
	}
}

type eventResp struct {
	taskResp
	DayIndex int    `json:"day_index"`
	TimeSlot string `json:"time_slot"`
}

func newEventResp(ev model.ScheduledEvent) eventResp {
	return eventResp{
		taskResp: newTaskResp(ev.Task),
		DayIndex: ev.DayIndex,
		TimeSlot: ev.TimeSlot,
	}
}

type categoryResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type routineResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	CategoryID   string `json:"category_id"`
	DurationMins int    `json:"duration_mins"`
}

func newRoutineResp(r model.WeeklyRoutine) routineResp {
	return routineResp{
		ID:           r.ID,
		Title:        r.Title,
		CategoryID:   r.CategoryID,
		DurationMins: r.DurationMins,
	}
}

type ruleResp struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type weekResp struct {
	WeekStart  string         `json:"week_start"`
	Events     []eventResp    `json:"events"`
	Tasks      []taskResp     `json:"tasks"`
	Categories []categoryResp `json:"categories"`
	Routines   []routineResp  `json:"routines"`
	Rules      []ruleResp     `json:"rules"`
	Dirty      bool           `json:"dirty"`
	Syncing    bool           `json:"syncing"`
	Connected  bool           `json:"connected"`
}

func newWeekResp(out planner.WeekOutput) weekResp {
	resp := weekResp{
		WeekStart:  out.WeekStart.Format("2006-01-02"),
		Events:     make([]eventResp, 0, len(out.Events)),
		Tasks:      make([]taskResp, 0, len(out.Tasks)),
		Categories: make([]categoryResp, 0, len(out.Categories)),
		Routines:   make([]routineResp, 0, len(out.Routines)),
		Rules:      make([]ruleResp, 0, len(out.Rules)),
		Dirty:      out.Dirty,
		Syncing:    out.Syncing,
		Connected:  out.Connected,
	}
	for _, ev := range out.Events {
		resp.Events = append(resp.Events, newEventResp(ev))
	}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	for _, cat := range out.Categories {
		resp.Categories = append(resp.Categories, categoryResp{ID: cat.ID, Name: cat.Name, Color: cat.Color})
	}
	for _, r := range out.Routines {
		resp.Routines = append(resp.Routines, newRoutineResp(r))
	}
	for _, r := range out.Rules {
		resp.Rules = append(resp.Rules, ruleResp{ID: r.ID, Text: r.Text})
	}
	return resp
}

type saveEventResp struct {
	ID        string `json:"id"`
	Scheduled bool   `json:"scheduled"`
}

type previewResp struct {
	TimeSlot string `json:"time_slot"`
}

type dropResp struct {
	Event     eventResp `json:"event"`
	Scheduled bool      `json:"scheduled"`
}

type assistResp struct {
	Reply   string `json:"reply"`
	Applied int    `json:"applied"`
}

type importResp struct {
	Imported int `json:"imported"`
}
