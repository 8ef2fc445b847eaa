package dialogue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedResponder replays canned replies in order.
type scriptedResponder struct {
	replies []string
	err     error
	calls   int
}

func (s *scriptedResponder) Reply(ctx context.Context, transcript Transcript) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}

func TestRunTerminatesOnToken(t *testing.T) {
	responder := &scriptedResponder{replies: []string{"Buy index funds. TERMINATE"}}
	turn := NewTurn(responder, "TERMINATE", 8)

	transcript, err := turn.Run(context.Background(), "User Query: what should I buy?")

	assert.NoError(t, err)
	assert.Equal(t, StateTerminated, turn.State())
	assert.Equal(t, 1, responder.calls)
	// initiator task + terminating responder message, no trailing pass
	assert.Len(t, transcript, 2)
	assert.Equal(t, RoleInitiator, transcript[0].Role)
	assert.Equal(t, RoleResponder, transcript[1].Role)
}

func TestRunMultipleRoundsBeforeToken(t *testing.T) {
	responder := &scriptedResponder{replies: []string{
		"Could you share your risk tolerance?",
		"Then a balanced portfolio fits. TERMINATE",
	}}
	turn := NewTurn(responder, "TERMINATE", 8)

	transcript, err := turn.Run(context.Background(), "task")

	assert.NoError(t, err)
	assert.Equal(t, 2, responder.calls)
	// task, reply, pass, reply
	assert.Len(t, transcript, 4)
	assert.Equal(t, "", transcript[2].Content, "initiator passes between responder turns")
}

func TestRunTokenInTaskStopsImmediately(t *testing.T) {
	responder := &scriptedResponder{replies: []string{"never called"}}
	turn := NewTurn(responder, "TERMINATE", 8)

	transcript, err := turn.Run(context.Background(), "echo TERMINATE back")

	assert.NoError(t, err)
	assert.Zero(t, responder.calls)
	assert.Len(t, transcript, 1)
}

func TestRunRoundLimit(t *testing.T) {
	replies := make([]string, 3)
	for i := range replies {
		replies[i] = "still thinking"
	}
	responder := &scriptedResponder{replies: replies}
	turn := NewTurn(responder, "TERMINATE", 3)

	_, err := turn.Run(context.Background(), "task")

	assert.ErrorIs(t, err, ErrRoundLimitExceeded)
	assert.Equal(t, StateTerminated, turn.State())
	assert.Equal(t, 3, responder.calls)
}

func TestRunResponderFailureEndsTurn(t *testing.T) {
	responder := &scriptedResponder{err: errors.New("model unreachable")}
	turn := NewTurn(responder, "TERMINATE", 8)

	_, err := turn.Run(context.Background(), "task")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRoundLimitExceeded)
	assert.Equal(t, StateTerminated, turn.State())
}

func TestRunIsSingleUse(t *testing.T) {
	responder := &scriptedResponder{replies: []string{"done TERMINATE", "again TERMINATE"}}
	turn := NewTurn(responder, "TERMINATE", 8)

	_, err := turn.Run(context.Background(), "task")
	assert.NoError(t, err)

	_, err = turn.Run(context.Background(), "task")
	assert.Error(t, err)
}

func TestTranscriptOrderIsStable(t *testing.T) {
	responder := &scriptedResponder{replies: []string{
		"first reply",
		"second reply TERMINATE",
	}}
	turn := NewTurn(responder, "TERMINATE", 8)

	transcript, err := turn.Run(context.Background(), "task")
	assert.NoError(t, err)

	roles := make([]Role, len(transcript))
	for i, m := range transcript {
		roles[i] = m.Role
	}
	assert.Equal(t, []Role{RoleInitiator, RoleResponder, RoleInitiator, RoleResponder}, roles)
}
