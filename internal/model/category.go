package model

// Category is a presentation bucket for tasks and events. The set is fixed
// for the lifetime of a session.
type Category struct {
	ID            string // lowercase identifier, e.g. "work"
	Name          string // display name, e.g. "Work"
	Color         string // presentation color token
	GoogleColorID string // Calendar colorId (1-11), empty if unmapped
}

// DefaultCategoryID is the fallback for unknown category references and for
// calendar events whose color has no mapping.
const DefaultCategoryID = "work"

// DefaultCategories is the fixed category set of the planner, with the
// Google Calendar color mapping used for round-tripping.
// 5: Banana, 6: Tangerine, 8: Graphite, 9: Blueberry, 10: Basil.
func DefaultCategories() []Category {
	return []Category{
		{ID: "workout", Name: "Workout", Color: "blue", GoogleColorID: "9"},
		{ID: "work", Name: "Work", Color: "gray", GoogleColorID: "8"},
		{ID: "todo", Name: "To Do", Color: "orange", GoogleColorID: "6"},
		{ID: "daily", Name: "Daily", Color: "emerald", GoogleColorID: "10"},
		{ID: "meals", Name: "Meals", Color: "amber", GoogleColorID: "5"},
	}
}
