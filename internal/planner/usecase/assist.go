package usecase

import (
	"context"
	"errors"
	"fmt"

	"one48-planner/internal/assistant"
	"one48-planner/internal/model"
	"one48-planner/internal/planner"
	"one48-planner/pkg/gemini"
)

const (
	replyApology  = "Sorry, I couldn't turn that into schedule changes. Try rephrasing it."
	replyNoChange = "Nothing to change, your week already matches."
)

// Assist interprets a text or audio instruction and applies the resulting
// schedule changes in one commit. Unusable model output yields an apology
// reply, not an error.
func (uc *implUseCase) Assist(ctx context.Context, sc model.Scope, input planner.AssistInput) (planner.AssistOutput, error) {
	events := uc.board.Events()

	rules := uc.board.Rules()
	ruleTexts := make([]string, 0, len(rules))
	for _, r := range rules {
		ruleTexts = append(ruleTexts, r.Text)
	}

	interpretInput := assistant.InterpretInput{
		Text:     input.Text,
		Schedule: events,
		Week:     uc.weekContext(input.SelectedDay),
		Rules:    ruleTexts,
	}
	if input.AudioBase64 != "" {
		mime := input.AudioMime
		if mime == "" {
			mime = "audio/webm"
		}
		interpretInput.Audio = &gemini.InlineData{MimeType: mime, Data: input.AudioBase64}
	}

	actions, err := uc.interp.Interpret(ctx, interpretInput)
	if err != nil {
		if errors.Is(err, assistant.ErrUnparsable) {
			uc.l.Infof(ctx, "planner: assistant reply was unusable")
			return planner.AssistOutput{Reply: replyApology}, nil
		}
		return planner.AssistOutput{}, err
	}

	next, applied := assistant.Reduce(events, actions, model.DefaultCategoryID, uc.newID)
	if applied == 0 {
		return planner.AssistOutput{Reply: replyNoChange}, nil
	}

	uc.board.CommitWeek(next)
	reply := fmt.Sprintf("Done, I applied %d change to your week.", applied)
	if applied != 1 {
		reply = fmt.Sprintf("Done, I applied %d changes to your week.", applied)
	}
	return planner.AssistOutput{Reply: reply, Applied: applied}, nil
}

// weekContext describes the displayed week for the interpreter prompt.
func (uc *implUseCase) weekContext(selectedDay *int) assistant.WeekContext {
	const layout = "Monday 2006-01-02"
	start := uc.weekStart()
	wc := assistant.WeekContext{
		Start: start.Format("2006-01-02"),
		End:   start.AddDate(0, 0, 6).Format("2006-01-02"),
		Today: uc.now().In(uc.loc).Format(layout),
	}
	if selectedDay != nil && model.ValidDayIndex(*selectedDay) {
		wc.SelectedDay = start.AddDate(0, 0, *selectedDay).Format(layout)
	}
	return wc
}
