package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/autovoice/voice-showroom/internal/model"
	"github.com/autovoice/voice-showroom/pkg/logger"
)

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return f.text, f.err
}

type fakeResponder struct {
	reply string
	audio []byte
	err   error

	gotTurns     []model.Message
	gotUtterance string
}

func (f *fakeResponder) Respond(ctx context.Context, turns []model.Message, utterance string) (string, []byte, error) {
	f.gotTurns = turns
	f.gotUtterance = utterance
	return f.reply, f.audio, f.err
}

// blockingPlayer blocks in Play until Stop is called, signalling both the
// start and the end of playback.
type blockingPlayer struct {
	started  chan struct{}
	stopped  chan struct{}
	finished chan struct{}
	stopOnce sync.Once
}

func newBlockingPlayer() *blockingPlayer {
	return &blockingPlayer{
		started:  make(chan struct{}),
		stopped:  make(chan struct{}),
		finished: make(chan struct{}),
	}
}

func (p *blockingPlayer) Play(ctx context.Context, audio []byte) error {
	close(p.started)
	select {
	case <-p.stopped:
	case <-ctx.Done():
	}
	close(p.finished)
	return nil
}

func (p *blockingPlayer) Stop() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

// instantPlayer completes playback immediately.
type instantPlayer struct{}

func (instantPlayer) Play(ctx context.Context, audio []byte) error { return nil }
func (instantPlayer) Stop()                                        {}

func waitForState(t *testing.T, c *Controller, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if c.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("state never reached %v, stuck at %v", want, c.State())
}

func TestExchangeWithoutAudioReturnsToIdle(t *testing.T) {
	responder := &fakeResponder{reply: "we have hybrids"}
	c := New(&fakeTranscriber{text: "any hybrids?"}, responder, instantPlayer{}, logger.NewNop())

	if err := c.StartCapture(); err != nil {
		t.Fatalf("StartCapture failed: %v", err)
	}
	if c.State() != Recording {
		t.Fatalf("expected recording, got %v", c.State())
	}

	if err := c.StopCapture(context.Background(), []byte("pcm")); err != nil {
		t.Fatalf("StopCapture failed: %v", err)
	}
	if c.State() != Idle {
		t.Errorf("expected idle after reply without audio, got %v", c.State())
	}

	turns := c.Turns()
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != model.RoleUser || turns[0].Content != "any hybrids?" {
		t.Errorf("unexpected user turn %+v", turns[0])
	}
	if turns[1].Role != model.RoleAssistant || turns[1].Content != "we have hybrids" {
		t.Errorf("unexpected assistant turn %+v", turns[1])
	}
	if responder.gotUtterance != "any hybrids?" {
		t.Errorf("responder got utterance %q", responder.gotUtterance)
	}
	if len(responder.gotTurns) != 0 {
		t.Errorf("prior turns should be empty on the first exchange, got %d", len(responder.gotTurns))
	}
}

func TestEmptyCaptureIsDiscarded(t *testing.T) {
	c := New(&fakeTranscriber{text: "ignored"}, &fakeResponder{}, instantPlayer{}, logger.NewNop())

	if err := c.StartCapture(); err != nil {
		t.Fatalf("StartCapture failed: %v", err)
	}
	if err := c.StopCapture(context.Background(), nil); err != nil {
		t.Fatalf("StopCapture failed: %v", err)
	}
	if c.State() != Idle {
		t.Errorf("expected idle, got %v", c.State())
	}
	if len(c.Turns()) != 0 {
		t.Errorf("no turn should be appended for an empty capture")
	}
}

func TestTranscriptionFailureAppendsNothing(t *testing.T) {
	c := New(&fakeTranscriber{err: errors.New("whisper down")}, &fakeResponder{}, instantPlayer{}, logger.NewNop())

	c.StartCapture()
	err := c.StopCapture(context.Background(), []byte("pcm"))
	if err == nil {
		t.Fatal("expected transcription error to surface")
	}
	if c.State() != Idle {
		t.Errorf("expected idle, got %v", c.State())
	}
	if len(c.Turns()) != 0 {
		t.Errorf("no turn should be appended on transcription failure")
	}
}

func TestEmptyTranscriptIsDiscarded(t *testing.T) {
	c := New(&fakeTranscriber{text: ""}, &fakeResponder{}, instantPlayer{}, logger.NewNop())

	c.StartCapture()
	if err := c.StopCapture(context.Background(), []byte("pcm")); err != nil {
		t.Fatalf("StopCapture failed: %v", err)
	}
	if len(c.Turns()) != 0 {
		t.Errorf("no turn should be appended for an empty transcript")
	}
}

func TestReplyFailureKeepsUserTurn(t *testing.T) {
	c := New(
		&fakeTranscriber{text: "hello"},
		&fakeResponder{err: errors.New("llm down")},
		instantPlayer{},
		logger.NewNop(),
	)

	c.StartCapture()
	err := c.StopCapture(context.Background(), []byte("pcm"))
	if err == nil {
		t.Fatal("expected reply error to surface")
	}
	if c.State() != Idle {
		t.Errorf("expected idle, got %v", c.State())
	}

	turns := c.Turns()
	if len(turns) != 1 || turns[0].Role != model.RoleUser {
		t.Errorf("the user turn must survive a reply failure, got %+v", turns)
	}
}

func TestCaptureRejectedWhileBusy(t *testing.T) {
	c := New(&fakeTranscriber{text: "hi"}, &fakeResponder{reply: "yo"}, instantPlayer{}, logger.NewNop())

	if err := c.StartCapture(); err != nil {
		t.Fatalf("StartCapture failed: %v", err)
	}
	if err := c.StartCapture(); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy while recording, got %v", err)
	}
	if err := c.StopCapture(context.Background(), []byte("pcm")); err != nil {
		t.Fatalf("StopCapture failed: %v", err)
	}

	// StopCapture outside Recording is also rejected.
	if err := c.StopCapture(context.Background(), []byte("pcm")); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy outside recording, got %v", err)
	}
}

func TestInterruptKeepsAssistantTurn(t *testing.T) {
	player := newBlockingPlayer()
	c := New(
		&fakeTranscriber{text: "tell me about the camry"},
		&fakeResponder{reply: "the camry is great", audio: []byte("mp3")},
		player,
		logger.NewNop(),
	)

	c.StartCapture()
	if err := c.StopCapture(context.Background(), []byte("pcm")); err != nil {
		t.Fatalf("StopCapture failed: %v", err)
	}

	<-player.started
	if c.State() != Speaking {
		t.Fatalf("expected speaking, got %v", c.State())
	}
	// A new recording cannot start during playback.
	if err := c.StartCapture(); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy while speaking, got %v", err)
	}

	c.Interrupt()
	<-player.finished

	if c.State() != Idle {
		t.Errorf("expected idle after interrupt, got %v", c.State())
	}
	turns := c.Turns()
	if len(turns) != 2 {
		t.Fatalf("interrupt must not roll back turns, got %d", len(turns))
	}
	if turns[1].Role != model.RoleAssistant {
		t.Errorf("assistant turn missing after interrupt")
	}
}

func TestPlaybackCompletionReturnsToIdle(t *testing.T) {
	c := New(
		&fakeTranscriber{text: "hi"},
		&fakeResponder{reply: "hello", audio: []byte("mp3")},
		instantPlayer{},
		logger.NewNop(),
	)

	c.StartCapture()
	if err := c.StopCapture(context.Background(), []byte("pcm")); err != nil {
		t.Fatalf("StopCapture failed: %v", err)
	}
	waitForState(t, c, Idle)

	if len(c.Turns()) != 2 {
		t.Errorf("expected 2 turns, got %d", len(c.Turns()))
	}
}

func TestClearEmptiesLogAndStopsPlayback(t *testing.T) {
	player := newBlockingPlayer()
	c := New(
		&fakeTranscriber{text: "hi"},
		&fakeResponder{reply: "hello", audio: []byte("mp3")},
		player,
		logger.NewNop(),
	)

	c.StartCapture()
	if err := c.StopCapture(context.Background(), []byte("pcm")); err != nil {
		t.Fatalf("StopCapture failed: %v", err)
	}
	<-player.started

	c.Clear()
	<-player.finished

	if c.State() != Idle {
		t.Errorf("expected idle after clear, got %v", c.State())
	}
	if len(c.Turns()) != 0 {
		t.Errorf("clear must empty the conversation log")
	}
}

func TestLogOrderAndTimestampsAcrossExchanges(t *testing.T) {
	transcriber := &fakeTranscriber{text: "question"}
	responder := &fakeResponder{reply: "answer"}
	c := New(transcriber, responder, instantPlayer{}, logger.NewNop())

	for i := 0; i < 3; i++ {
		if err := c.StartCapture(); err != nil {
			t.Fatalf("exchange %d: StartCapture failed: %v", i, err)
		}
		if err := c.StopCapture(context.Background(), []byte("pcm")); err != nil {
			t.Fatalf("exchange %d: StopCapture failed: %v", i, err)
		}
	}

	turns := c.Turns()
	if len(turns) != 6 {
		t.Fatalf("expected 6 turns, got %d", len(turns))
	}

	seen := make(map[string]bool)
	for i, turn := range turns {
		wantRole := model.RoleUser
		if i%2 == 1 {
			wantRole = model.RoleAssistant
		}
		if turn.Role != wantRole {
			t.Errorf("turn %d: role %q, want %q", i, turn.Role, wantRole)
		}
		if seen[turn.ID] {
			t.Errorf("turn %d: duplicate id %q", i, turn.ID)
		}
		seen[turn.ID] = true
		if i > 0 && turn.Timestamp < turns[i-1].Timestamp {
			t.Errorf("turn %d: timestamp %d precedes predecessor %d", i, turn.Timestamp, turns[i-1].Timestamp)
		}
	}

	// The responder sees the prior log, not the just-appended user turn.
	if len(responder.gotTurns) != 4 {
		t.Errorf("last exchange should have seen 4 prior turns, got %d", len(responder.gotTurns))
	}
}
