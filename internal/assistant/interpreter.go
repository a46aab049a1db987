package assistant

import (
	"context"
	"fmt"

	"one48-planner/internal/model"
	"one48-planner/pkg/gemini"
	pkgLog "one48-planner/pkg/log"
)

// InterpretInput is one assistant request. Either Text or Audio must be set;
// when Audio is present the model transcribes it itself.
type InterpretInput struct {
	Text     string
	Audio    *gemini.InlineData
	Schedule []model.ScheduledEvent
	Week     WeekContext
	Rules    []string
}

// Interpreter turns free text or audio into a validated action batch via
// the LLM. Malformed model output yields ErrUnparsable, never a crash.
type Interpreter struct {
	llm gemini.IGemini
	l   pkgLog.Logger
}

// NewInterpreter creates an interpreter over a Gemini client.
func NewInterpreter(llm gemini.IGemini, l pkgLog.Logger) *Interpreter {
	return &Interpreter{llm: llm, l: l}
}

// Interpret sends the constrained prompt and parses the reply into actions.
func (in *Interpreter) Interpret(ctx context.Context, input InterpretInput) ([]Action, error) {
	if input.Text == "" && input.Audio == nil {
		return nil, ErrEmptyInput
	}

	parts := []gemini.Part{{Text: buildPrompt(input.Text, input.Schedule, input.Week, input.Rules)}}
	if input.Audio != nil {
		parts = append(parts, gemini.Part{InlineData: input.Audio})
	}

	resp, err := in.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: plannerSystemPrompt}}},
		Contents:          []gemini.Content{{Role: "user", Parts: parts}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInterpreter, err)
	}

	raw := stripFences(resp.Text())
	if raw == "" {
		return nil, ErrUnparsable
	}

	actions, err := ParseActions([]byte(raw))
	if err != nil {
		in.l.Warnf(ctx, "assistant: unparsable model output (%d bytes)", len(raw))
		return nil, err
	}
	return actions, nil
}
