// Package session implements the client-side session controller as a pure
// state machine. Device I/O (microphone, audio output) sits behind narrow
// adapter interfaces so the machine can be exercised without real hardware.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autovoice/voice-showroom/internal/model"
	"github.com/autovoice/voice-showroom/pkg/logger"
)

// State is the session lifecycle state.
type State int

const (
	Idle State = iota
	Recording
	Transcribing
	AwaitingReply
	Speaking
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Transcribing:
		return "transcribing"
	case AwaitingReply:
		return "awaiting_reply"
	case Speaking:
		return "speaking"
	default:
		return "unknown"
	}
}

// ErrBusy is returned when a capture is initiated while a transcription or
// reply is outstanding, or while not idle.
var ErrBusy = errors.New("session busy")

// Transcriber converts captured audio to text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Responder produces the assistant reply and optional synthesized audio for
// the new utterance given the prior turns.
type Responder interface {
	Respond(ctx context.Context, turns []model.Message, utterance string) (reply string, audio []byte, err error)
}

// Player plays synthesized audio. Play blocks until playback finishes or
// Stop is called; Stop must be safe to call at any time.
type Player interface {
	Play(ctx context.Context, audio []byte) error
	Stop()
}

// Controller owns the conversation log and the session state machine.
// The log is append-only: past turns are never mutated or reordered.
type Controller struct {
	mu      sync.Mutex
	state   State
	turns   []model.Message
	lastTS  int64
	playGen int

	transcriber Transcriber
	responder   Responder
	player      Player
	logger      *logger.Logger
}

// New creates an idle controller with an empty conversation log.
func New(t Transcriber, r Responder, p Player, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.NewNop()
	}
	return &Controller{
		transcriber: t,
		responder:   r,
		player:      p,
		logger:      log,
	}
}

// State returns the current session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Turns returns a copy of the conversation log in append order.
func (c *Controller) Turns() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.turns))
	copy(out, c.turns)
	return out
}

// StartCapture begins a recording. Rejected unless the session is idle;
// in particular a new recording cannot start while a transcription or reply
// is outstanding.
func (c *Controller) StartCapture() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle {
		return ErrBusy
	}
	c.state = Recording
	return nil
}

// StopCapture ends the recording and drives the exchange: transcription,
// reply generation, then playback of the synthesized answer. Empty captures
// are discarded. The call returns once playback has started (or the session
// is back to idle); it does not wait for playback to finish.
func (c *Controller) StopCapture(ctx context.Context, audio []byte) error {
	c.mu.Lock()
	if c.state != Recording {
		c.mu.Unlock()
		return ErrBusy
	}
	if len(audio) == 0 {
		// Nothing captured; no turn is appended.
		c.state = Idle
		c.mu.Unlock()
		return nil
	}
	c.state = Transcribing
	c.mu.Unlock()

	text, err := c.transcriber.Transcribe(ctx, audio)
	if err != nil {
		c.toIdle()
		return err
	}
	if text == "" {
		// Successful call, nothing said; discard like an empty capture.
		c.toIdle()
		return nil
	}

	c.mu.Lock()
	prior := make([]model.Message, len(c.turns))
	copy(prior, c.turns)
	c.appendLocked(model.RoleUser, text)
	c.state = AwaitingReply
	c.mu.Unlock()

	reply, replyAudio, err := c.responder.Respond(ctx, prior, text)
	if err != nil {
		// The user turn stays; only the failed reply is dropped.
		c.toIdle()
		return err
	}

	c.mu.Lock()
	// Assistant turn is appended before playback begins, so an interrupt
	// can never lose it.
	c.appendLocked(model.RoleAssistant, reply)
	if len(replyAudio) == 0 || c.player == nil {
		c.state = Idle
		c.mu.Unlock()
		return nil
	}
	c.state = Speaking
	c.playGen++
	gen := c.playGen
	c.mu.Unlock()

	go c.play(ctx, gen, replyAudio)
	return nil
}

// Interrupt cancels in-flight playback and returns the session to idle.
// The already-appended assistant turn is not rolled back. No-op outside
// Speaking.
func (c *Controller) Interrupt() {
	c.mu.Lock()
	speaking := c.state == Speaking
	if speaking {
		c.state = Idle
	}
	c.mu.Unlock()

	if speaking {
		c.player.Stop()
	}
}

// Clear empties the conversation log and forces the session to idle,
// stopping playback if active. Permitted from any state.
func (c *Controller) Clear() {
	c.mu.Lock()
	speaking := c.state == Speaking
	c.turns = nil
	c.state = Idle
	c.mu.Unlock()

	if speaking {
		c.player.Stop()
	}
}

func (c *Controller) play(ctx context.Context, gen int, audio []byte) {
	if err := c.player.Play(ctx, audio); err != nil {
		c.logger.Warn("playback failed", zap.Error(err))
	}

	c.mu.Lock()
	// Only the playback that is still current may complete the transition;
	// an interrupted or cleared session has already moved on.
	if c.state == Speaking && gen == c.playGen {
		c.state = Idle
	}
	c.mu.Unlock()
}

func (c *Controller) toIdle() {
	c.mu.Lock()
	c.state = Idle
	c.mu.Unlock()
}

// appendLocked appends a turn with a unique id and a non-decreasing
// millisecond timestamp. Caller holds c.mu.
func (c *Controller) appendLocked(role model.Role, content string) {
	ts := time.Now().UnixMilli()
	if ts < c.lastTS {
		ts = c.lastTS
	}
	c.lastTS = ts
	c.turns = append(c.turns, model.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: ts,
	})
}
