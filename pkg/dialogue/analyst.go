package dialogue

import (
	"context"

	"fin-advisor-be/pkg/llm"
)

// Analyst is the responder role: an LLM-backed financial analyst with a fixed
// system instruction that tells it to close complete answers with the
// termination token.
type Analyst struct {
	llmProvider       llm.LLMProvider
	systemInstruction string
}

var _ Responder = &Analyst{}

func NewAnalyst(llmProvider llm.LLMProvider, systemInstruction string) *Analyst {
	return &Analyst{
		llmProvider:       llmProvider,
		systemInstruction: systemInstruction,
	}
}

func (a *Analyst) Reply(ctx context.Context, transcript Transcript) (string, error) {
	history := make([]llm.Message, 0, len(transcript)+1)
	history = append(history, llm.Message{Role: "system", Content: a.systemInstruction})

	for _, msg := range transcript {
		// Pass-turn messages are empty; most providers reject blank user turns.
		if msg.Content == "" {
			continue
		}
		role := "user"
		if msg.Role == RoleResponder {
			role = "assistant"
		}
		history = append(history, llm.Message{Role: role, Content: msg.Content})
	}

	return a.llmProvider.Chat(ctx, history)
}
