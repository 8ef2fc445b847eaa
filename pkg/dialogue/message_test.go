package dialogue

import (
	"testing"

	"github.com/google/uuid"
)

func msg(role Role, content string) Message {
	return Message{Id: uuid.New(), Role: role, Content: content}
}

func TestFinalAnswer(t *testing.T) {
	tests := []struct {
		name       string
		transcript Transcript
		want       string
	}{
		{
			name: "last responder message wins",
			transcript: Transcript{
				msg(RoleInitiator, "task"),
				msg(RoleResponder, "first thoughts"),
				msg(RoleInitiator, ""),
				msg(RoleResponder, "final advice TERMINATE"),
			},
			want: "final advice",
		},
		{
			name: "token stripped wherever it appears",
			transcript: Transcript{
				msg(RoleInitiator, "task"),
				msg(RoleResponder, "TERMINATE final advice"),
			},
			want: "final advice",
		},
		{
			name: "blank responder messages skipped",
			transcript: Transcript{
				msg(RoleInitiator, "task"),
				msg(RoleResponder, "real answer TERMINATE"),
				msg(RoleInitiator, ""),
				msg(RoleResponder, "   "),
			},
			want: "real answer",
		},
		{
			name: "initiator-only transcript falls back to last message",
			transcript: Transcript{
				msg(RoleInitiator, "task with TERMINATE inside"),
			},
			want: "task with  inside",
		},
		{
			name:       "empty transcript",
			transcript: Transcript{},
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.transcript.FinalAnswer("TERMINATE")
			if got != tt.want {
				t.Errorf("FinalAnswer = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLast(t *testing.T) {
	var empty Transcript
	if _, ok := empty.Last(); ok {
		t.Error("Last on empty transcript reported ok")
	}

	tr := Transcript{msg(RoleInitiator, "a"), msg(RoleResponder, "b")}
	last, ok := tr.Last()
	if !ok || last.Content != "b" {
		t.Errorf("Last = %q, ok = %v", last.Content, ok)
	}
}
