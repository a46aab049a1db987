// Package assistant validates and applies action batches produced by the
// language-model interpreter against the weekly schedule.
package assistant

import (
	"encoding/json"
	"strings"

	"one48-planner/internal/model"
	"one48-planner/pkg/timegrid"
)

// Op is the action discriminator.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Action is the closed, validated form of one interpreter instruction.
// Optional fields are pointers: nil means "not supplied", so updates merge
// only what the model actually set.
type Action struct {
	Op Op
	ID string // required for update/delete

	Title        *string
	TimeSlot     *string
	DurationMins *int
	CategoryID   *string
	DayIndex     *int
	AllDay       *bool
}

// rawAction mirrors the interpreter wire protocol. The field names are the
// protocol's legacy German keys and must not change.
type rawAction struct {
	Action     string   `json:"action"`
	ID         string   `json:"id"`
	Name       *string  `json:"name"`
	Zeit       *string  `json:"zeit"`
	Dauer      *float64 `json:"dauer"`
	Kategorie  *string  `json:"kategorie"`
	Tag        *float64 `json:"tag"`
	Ganztaegig *bool    `json:"ganztaegig"`
}

// ParseActions decodes a JSON action array into validated Actions. Anything
// that does not match the protocol is dropped at this boundary: unknown
// action tags, update/delete without an id, mistyped elements, and
// out-of-range fields. A non-array payload is an error.
func ParseActions(data []byte) ([]Action, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, ErrUnparsable
	}

	actions := make([]Action, 0, len(items))
	for _, item := range items {
		var raw rawAction
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}

		op := Op(strings.ToLower(strings.TrimSpace(raw.Action)))
		switch op {
		case OpAdd:
		case OpUpdate, OpDelete:
			if raw.ID == "" {
				continue
			}
		default:
			continue
		}

		a := Action{Op: op, ID: raw.ID, Title: raw.Name, AllDay: raw.Ganztaegig}
		if raw.Zeit != nil && timegrid.ValidSlot(*raw.Zeit) {
			a.TimeSlot = raw.Zeit
		}
		if raw.Dauer != nil && *raw.Dauer > 0 {
			d := int(*raw.Dauer)
			a.DurationMins = &d
		}
		if raw.Kategorie != nil && *raw.Kategorie != "" {
			cat := strings.ToLower(*raw.Kategorie)
			a.CategoryID = &cat
		}
		if raw.Tag != nil {
			day := int(*raw.Tag)
			if model.ValidDayIndex(day) {
				a.DayIndex = &day
			}
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// wireEvent is a scheduled event in the interpreter's protocol shape, used
// when serializing the current schedule into the prompt.
type wireEvent struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Zeit       string `json:"zeit"`
	Dauer      int    `json:"dauer"`
	Kategorie  string `json:"kategorie"`
	Tag        int    `json:"tag"`
	Ganztaegig bool   `json:"ganztaegig,omitempty"`
}

func marshalSchedule(events []model.ScheduledEvent) string {
	wire := make([]wireEvent, 0, len(events))
	for _, ev := range events {
		wire = append(wire, wireEvent{
			ID:         ev.ID,
			Name:       ev.Title,
			Zeit:       ev.TimeSlot,
			Dauer:      ev.DurationMins,
			Kategorie:  ev.CategoryID,
			Tag:        ev.DayIndex,
			Ganztaegig: ev.IsAllDay,
		})
	}
	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
