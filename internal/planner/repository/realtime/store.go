package realtime

import (
	"context"

	"one48-planner/internal/model"
	"one48-planner/internal/planner/repository"
)

// ListTasks returns the user's unassigned tasks.
func (c *Client) ListTasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	var records map[string]storeTask
	if err := c.getJSON(ctx, c.collectionURL(repository.CollectionTasks, sc, ""), &records); err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(records))
	for id, rec := range records {
		tasks = append(tasks, taskFromStore(id, rec))
	}
	sortByID(tasks, func(t model.Task) string { return t.ID })
	return tasks, nil
}

// CreateTask stores a new unassigned task; the store assigns the id.
func (c *Client) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	rec := storeTask{
		Name:         opt.Title,
		Subtitle:     opt.Subtitle,
		Notes:        opt.Notes,
		Category:     categoryToStore(opt.CategoryID),
		DurationMins: opt.DurationMins,
		IsAllDay:     opt.IsAllDay,
	}
	id, err := c.postJSON(ctx, c.collectionURL(repository.CollectionTasks, sc, ""), rec)
	if err != nil {
		return model.Task{}, err
	}
	return taskFromStore(id, rec), nil
}

// UpdateTask overwrites a stored task.
func (c *Client) UpdateTask(ctx context.Context, sc model.Scope, task model.Task) error {
	rec := storeTask{
		Name:         task.Title,
		Subtitle:     task.Subtitle,
		Notes:        task.Notes,
		Category:     categoryToStore(task.CategoryID),
		DurationMins: task.DurationMins,
		IsAllDay:     task.IsAllDay,
	}
	return c.putJSON(ctx, c.collectionURL(repository.CollectionTasks, sc, task.ID), rec)
}

// DeleteTask removes a stored task.
func (c *Client) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	return c.delete(ctx, c.collectionURL(repository.CollectionTasks, sc, id))
}

// ListRoutines returns the user's weekly routine templates.
func (c *Client) ListRoutines(ctx context.Context, sc model.Scope) ([]model.WeeklyRoutine, error) {
	var records map[string]storeRoutine
	if err := c.getJSON(ctx, c.collectionURL(repository.CollectionRoutines, sc, ""), &records); err != nil {
		return nil, err
	}

	routines := make([]model.WeeklyRoutine, 0, len(records))
	for id, rec := range records {
		routines = append(routines, routineFromStore(id, rec))
	}
	sortByID(routines, func(r model.WeeklyRoutine) string { return r.ID })
	return routines, nil
}

// CreateRoutine stores a new routine template.
func (c *Client) CreateRoutine(ctx context.Context, sc model.Scope, opt repository.CreateRoutineOptions) (model.WeeklyRoutine, error) {
	rec := storeRoutine{
		Title:        opt.Title,
		CategoryID:   opt.CategoryID,
		DurationMins: opt.DurationMins,
	}
	id, err := c.postJSON(ctx, c.collectionURL(repository.CollectionRoutines, sc, ""), rec)
	if err != nil {
		return model.WeeklyRoutine{}, err
	}
	return routineFromStore(id, rec), nil
}

// DeleteRoutine removes a routine template.
func (c *Client) DeleteRoutine(ctx context.Context, sc model.Scope, id string) error {
	return c.delete(ctx, c.collectionURL(repository.CollectionRoutines, sc, id))
}

// ListRules returns the user's assistant rules.
func (c *Client) ListRules(ctx context.Context, sc model.Scope) ([]model.Rule, error) {
	var records map[string]storeRule
	if err := c.getJSON(ctx, c.collectionURL(repository.CollectionRules, sc, ""), &records); err != nil {
		return nil, err
	}

	rules := make([]model.Rule, 0, len(records))
	for id, rec := range records {
		rules = append(rules, model.Rule{ID: id, Text: rec.Text})
	}
	sortByID(rules, func(r model.Rule) string { return r.ID })
	return rules, nil
}

// CreateRule stores a new assistant rule.
func (c *Client) CreateRule(ctx context.Context, sc model.Scope, text string) (model.Rule, error) {
	id, err := c.postJSON(ctx, c.collectionURL(repository.CollectionRules, sc, ""), storeRule{Text: text})
	if err != nil {
		return model.Rule{}, err
	}
	return model.Rule{ID: id, Text: text}, nil
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, sc model.Scope, id string) error {
	return c.delete(ctx, c.collectionURL(repository.CollectionRules, sc, id))
}
