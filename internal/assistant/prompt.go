package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"one48-planner/internal/model"
)

// plannerSystemPrompt constrains the model to the action protocol. The JSON
// keys (zeit, dauer, kategorie, tag, ganztaegig) are the planner's original
// wire protocol and are kept verbatim for compatibility.
const plannerSystemPrompt = `You are the scheduling assistant of a weekly planner.
Your job is to translate the user's request into edits of their weekly schedule.

CONTEXT PROVIDED:
1. The current schedule: a JSON list of already planned events.
2. A week context: the dates of the displayed week.
3. User rules: free-text constraints you must respect.
4. The user's request: free text (or audio) describing what to add, change or delete.

CONSTRAINTS:
- Available categories: "workout", "work", "todo", "daily", "meals".
- Day index: 0 = Monday, 1 = Tuesday, 2 = Wednesday, 3 = Thursday, 4 = Friday, 5 = Saturday, 6 = Sunday.
- Time format: "HH:MM" (e.g. "09:00", "14:30").
- Duration: whole minutes (e.g. 30, 60, 90), never below 15.

RESPONSE FORMAT:
Respond EXCLUSIVELY with a JSON array of action objects. Each object:
{
  "action": "add" | "update" | "delete",
  "id": "string" (required for update/delete),
  "name": "string" (event title),
  "zeit": "HH:MM" (start time),
  "dauer": number (duration in minutes),
  "kategorie": "string" (one of the categories above),
  "tag": number (0-6),
  "ganztaegig": boolean (all-day event)
}

RULES:
- Adding a new event: action is "add". No id required.
- Changing an existing event: action is "update". The "id" is REQUIRED; find the matching event in the current schedule by name or time.
- Deleting an event: action is "delete". The "id" is REQUIRED.
- You may return multiple actions if the user asks for multiple things.
- RETURN ONLY THE JSON ARRAY. NO EXTRA TEXT, NO EXPLANATIONS.

Example response:
[
  { "action": "add", "name": "Fitness", "zeit": "08:00", "dauer": 60, "kategorie": "workout", "tag": 1 },
  { "action": "delete", "id": "gcal-123" }
]`

// WeekContext anchors relative phrases like "tomorrow" for the interpreter.
type WeekContext struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Today       string `json:"today"`
	SelectedDay string `json:"selectedDay,omitempty"`
}

// buildPrompt assembles the full user prompt around the current schedule.
func buildPrompt(userText string, events []model.ScheduledEvent, week WeekContext, rules []string) string {
	var sb strings.Builder

	sb.WriteString("CURRENT SCHEDULE:\n")
	sb.WriteString(marshalSchedule(events))
	sb.WriteString("\n\nWEEK CONTEXT:\n")
	if weekJSON, err := json.MarshalIndent(week, "", "  "); err == nil {
		sb.Write(weekJSON)
	} else {
		sb.WriteString("not available")
	}

	if len(rules) > 0 {
		sb.WriteString("\n\nUSER RULES:\n")
		for _, r := range rules {
			fmt.Fprintf(&sb, "- %s\n", r)
		}
	}

	sb.WriteString("\nUSER REQUEST:\n")
	sb.WriteString(userText)
	sb.WriteString("\n\nRESPONSE (JSON ONLY):\n")
	return sb.String()
}

// stripFences removes markdown code fences the model sometimes wraps its
// JSON in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
