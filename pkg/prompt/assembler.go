package prompt

import (
	"strings"

	"fin-advisor-be/internal/constant"
	"fin-advisor-be/pkg/retrieval"
)

// Assembler combines the raw user message and the retrieval result into the
// augmented task handed to the dialogue. Pure concatenation: no truncation or
// token budgeting happens here.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

func (a *Assembler) Assemble(message string, knowledge retrieval.Result) string {
	block, ok := knowledge.Block()
	if !ok {
		block = constant.NoKnowledgeMarker
	}

	var task strings.Builder
	task.WriteString("User Query: ")
	task.WriteString(message)
	task.WriteString("\n\n")
	task.WriteString("Relevant Financial Knowledge:\n")
	task.WriteString(block)
	task.WriteString("\n\n")
	task.WriteString("Please provide comprehensive financial advice using the above knowledge and your expertise.")
	return task.String()
}
