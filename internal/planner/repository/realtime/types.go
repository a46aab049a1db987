package realtime

import (
	"sort"
	"strings"

	"one48-planner/internal/model"
)

// storeTask is a task record as stored in the database. Category names are
// stored capitalized ("Work"); older records may still say "Private" for
// what is now the daily category.
type storeTask struct {
	Name         string `json:"name"`
	Subtitle     string `json:"subtitle,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Category     string `json:"category"`
	DurationMins int    `json:"duration"`
	IsAllDay     bool   `json:"isAllDay"`
}

// storeRoutine records keep the category id as-is, unlike tasks.
type storeRoutine struct {
	Title        string `json:"title"`
	CategoryID   string `json:"categoryId"`
	DurationMins int    `json:"durationMins"`
}

type storeRule struct {
	Text string `json:"text"`
}

// categoryToStore capitalizes a category id for storage.
func categoryToStore(id string) string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// categoryFromStore lowercases a stored category and maps the legacy
// "private" name onto daily.
func categoryFromStore(s string) string {
	id := strings.ToLower(strings.TrimSpace(s))
	if id == "private" {
		return "daily"
	}
	if id == "" {
		return model.DefaultCategoryID
	}
	return id
}

func taskFromStore(id string, rec storeTask) model.Task {
	return model.Task{
		ID:           id,
		Title:        rec.Name,
		Subtitle:     rec.Subtitle,
		Notes:        rec.Notes,
		CategoryID:   categoryFromStore(rec.Category),
		DurationMins: rec.DurationMins,
		IsAllDay:     rec.IsAllDay,
	}
}

func routineFromStore(id string, rec storeRoutine) model.WeeklyRoutine {
	return model.WeeklyRoutine{
		ID:           id,
		Title:        rec.Title,
		CategoryID:   categoryFromStore(rec.CategoryID),
		DurationMins: rec.DurationMins,
	}
}

// sortByID gives listings a stable order; the store returns unordered maps.
func sortByID[T any](items []T, id func(T) string) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
