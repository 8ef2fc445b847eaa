package prompt

import (
	"errors"
	"testing"

	"fin-advisor-be/internal/constant"
	"fin-advisor-be/pkg/retrieval"

	"github.com/stretchr/testify/assert"
)

func TestAssembleWithKnowledge(t *testing.T) {
	a := NewAssembler()

	task := a.Assemble("Should I buy bonds?", retrieval.Ok("1. Bonds pay interest.\n\n"))

	assert.Equal(t,
		"User Query: Should I buy bonds?\n\n"+
			"Relevant Financial Knowledge:\n"+
			"1. Bonds pay interest.\n\n\n\n"+
			"Please provide comprehensive financial advice using the above knowledge and your expertise.",
		task)
}

func TestAssembleWithoutKnowledge(t *testing.T) {
	a := NewAssembler()

	tests := []struct {
		name   string
		result retrieval.Result
	}{
		{"empty store", retrieval.Empty()},
		{"retrieval error", retrieval.Err(errors.New("store offline"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := a.Assemble("Should I buy bonds?", tt.result)

			assert.Contains(t, task, constant.NoKnowledgeMarker)
			assert.Contains(t, task, "User Query: Should I buy bonds?")
			assert.NotContains(t, task, "store offline", "internal errors must never reach the prompt")
		})
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	a := NewAssembler()
	knowledge := retrieval.Ok("1. Compounding grows wealth.\n\n")

	first := a.Assemble("What is compounding?", knowledge)
	second := a.Assemble("What is compounding?", knowledge)

	assert.Equal(t, first, second)
}
