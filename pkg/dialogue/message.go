package dialogue

import (
	"strings"

	"github.com/google/uuid"
)

// Role identifies one of the two fixed participants.
type Role string

const (
	// RoleInitiator contributes the augmented task as the opening message and
	// afterwards only passes turn.
	RoleInitiator Role = "initiator"
	// RoleResponder is the knowledge-augmented analyst.
	RoleResponder Role = "responder"
)

// Message is one entry of the transcript.
type Message struct {
	Id      uuid.UUID
	Role    Role
	Content string
}

// Transcript is the append-only, strictly ordered record of one dialogue turn.
type Transcript []Message

func (t Transcript) Last() (Message, bool) {
	if len(t) == 0 {
		return Message{}, false
	}
	return t[len(t)-1], true
}

// FinalAnswer scans backward for the first responder message with non-blank
// content, strips the termination token and trims. When no such message exists
// (only the initiator spoke, or every responder message was blank) it falls
// back to the very last message, stripped and trimmed, even if that is empty.
func (t Transcript) FinalAnswer(terminationToken string) string {
	for i := len(t) - 1; i >= 0; i-- {
		msg := t[i]
		if msg.Role == RoleInitiator {
			continue
		}
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		return stripToken(msg.Content, terminationToken)
	}
	if last, ok := t.Last(); ok {
		return stripToken(last.Content, terminationToken)
	}
	return ""
}

func stripToken(content, token string) string {
	return strings.TrimSpace(strings.ReplaceAll(content, token, ""))
}
