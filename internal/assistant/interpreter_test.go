package assistant_test

import (
	"context"
	"errors"
	"testing"

	"one48-planner/internal/assistant"
	"one48-planner/pkg/gemini"
)

type mockGemini struct {
	generateFunc func(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return m.generateFunc(ctx, req)
}

func (m *mockGemini) Model() string { return "mock" }

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

func textResponse(s string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{{Content: gemini.Content{Parts: []gemini.Part{{Text: s}}}}},
	}
}

func TestInterpret(t *testing.T) {
	ctx := context.Background()

	t.Run("fenced JSON reply is parsed", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(_ context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				if req.SystemInstruction == nil {
					t.Error("system instruction missing")
				}
				return textResponse("```json\n[{\"action\":\"add\",\"name\":\"Gym\",\"zeit\":\"18:00\"}]\n```"), nil
			},
		}
		in := assistant.NewInterpreter(llm, mockLogger{})

		actions, err := in.Interpret(ctx, assistant.InterpretInput{Text: "add gym at 6pm"})
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}
		if len(actions) != 1 || actions[0].Op != assistant.OpAdd {
			t.Fatalf("actions = %+v", actions)
		}
		if actions[0].Title == nil || *actions[0].Title != "Gym" {
			t.Errorf("title = %v", actions[0].Title)
		}
		if actions[0].TimeSlot == nil || *actions[0].TimeSlot != "18:00" {
			t.Errorf("time = %v", actions[0].TimeSlot)
		}
	})

	t.Run("empty input is rejected before calling the model", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				t.Error("model should not be called")
				return nil, nil
			},
		}
		in := assistant.NewInterpreter(llm, mockLogger{})

		if _, err := in.Interpret(ctx, assistant.InterpretInput{}); !errors.Is(err, assistant.ErrEmptyInput) {
			t.Errorf("err = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("audio input adds an inline data part", func(t *testing.T) {
		var got gemini.GenerateRequest
		llm := &mockGemini{
			generateFunc: func(_ context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				got = req
				return textResponse("[]"), nil
			},
		}
		in := assistant.NewInterpreter(llm, mockLogger{})

		_, err := in.Interpret(ctx, assistant.InterpretInput{
			Audio: &gemini.InlineData{MimeType: "audio/webm", Data: "aGVsbG8="},
		})
		if err != nil {
			t.Fatalf("Interpret: %v", err)
		}
		parts := got.Contents[0].Parts
		if len(parts) != 2 || parts[1].InlineData == nil || parts[1].InlineData.MimeType != "audio/webm" {
			t.Errorf("parts = %+v", parts)
		}
	})

	t.Run("prose reply is unparsable", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return textResponse("Sorry, I could not understand that."), nil
			},
		}
		in := assistant.NewInterpreter(llm, mockLogger{})

		if _, err := in.Interpret(ctx, assistant.InterpretInput{Text: "gibberish"}); !errors.Is(err, assistant.ErrUnparsable) {
			t.Errorf("err = %v, want ErrUnparsable", err)
		}
	})

	t.Run("model failure is wrapped", func(t *testing.T) {
		llm := &mockGemini{
			generateFunc: func(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
				return nil, errors.New("quota exceeded")
			},
		}
		in := assistant.NewInterpreter(llm, mockLogger{})

		if _, err := in.Interpret(ctx, assistant.InterpretInput{Text: "hi"}); !errors.Is(err, assistant.ErrInterpreter) {
			t.Errorf("err = %v, want ErrInterpreter", err)
		}
	})
}
