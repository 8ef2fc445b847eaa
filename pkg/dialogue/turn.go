package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// State of a dialogue turn. A turn is single-use: Idle until Run is called,
// Running while messages are exchanged, Terminated once the token appeared or
// the turn failed.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateTerminated
)

// ErrRoundLimitExceeded reports that the termination token never appeared
// within the configured round cap. The cap guards against the liveness hole of
// a responder that never emits the token.
var ErrRoundLimitExceeded = errors.New("dialogue round limit exceeded before termination token")

// Responder produces the next analyst message from the transcript so far.
type Responder interface {
	Reply(ctx context.Context, transcript Transcript) (string, error)
}

// Turn runs a fixed two-participant round-robin conversation: the initiator
// contributes the task, the responder answers, the initiator passes, and so on
// until a message contains the termination token. Termination is checked after
// every append, before the next turn is scheduled.
type Turn struct {
	responder        Responder
	terminationToken string
	maxRounds        int
	state            State
	transcript       Transcript
}

func NewTurn(responder Responder, terminationToken string, maxRounds int) *Turn {
	if maxRounds <= 0 {
		maxRounds = 8
	}
	return &Turn{
		responder:        responder,
		terminationToken: terminationToken,
		maxRounds:        maxRounds,
		state:            StateIdle,
	}
}

func (t *Turn) State() State {
	return t.state
}

// Transcript returns the messages exchanged so far, in order.
func (t *Turn) Transcript() Transcript {
	return t.transcript
}

// Run drives the conversation for the given task and returns the full
// transcript. A responder failure ends the whole turn: it is not retried and
// not degraded, unlike retrieval failures which are swallowed upstream.
func (t *Turn) Run(ctx context.Context, task string) (Transcript, error) {
	if t.state != StateIdle {
		return nil, fmt.Errorf("dialogue turn already ran (state %d)", t.state)
	}
	t.state = StateRunning

	if t.append(RoleInitiator, task) {
		return t.transcript, nil
	}

	for round := 0; round < t.maxRounds; round++ {
		reply, err := t.responder.Reply(ctx, t.transcript)
		if err != nil {
			t.state = StateTerminated
			return nil, fmt.Errorf("responder failed: %w", err)
		}
		if t.append(RoleResponder, reply) {
			return t.transcript, nil
		}

		// Initiator has nothing to add; it passes to keep the round-robin order.
		if t.append(RoleInitiator, "") {
			return t.transcript, nil
		}
	}

	t.state = StateTerminated
	return nil, ErrRoundLimitExceeded
}

// append records a message and reports whether it terminated the dialogue.
func (t *Turn) append(role Role, content string) bool {
	t.transcript = append(t.transcript, Message{
		Id:      uuid.New(),
		Role:    role,
		Content: content,
	})
	if strings.Contains(content, t.terminationToken) {
		t.state = StateTerminated
		return true
	}
	return false
}
