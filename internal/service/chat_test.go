package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/autovoice/voice-showroom/internal/apperr"
	"github.com/autovoice/voice-showroom/internal/inventory"
	"github.com/autovoice/voice-showroom/internal/model"
	"github.com/autovoice/voice-showroom/pkg/logger"
)

// fakeStore counts reads so tests can assert fail-fast behavior.
type fakeStore struct {
	cars        []model.Car
	getAllCalls int
}

func (s *fakeStore) GetAll(ctx context.Context) ([]model.Car, error) {
	s.getAllCalls++
	return s.cars, nil
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (model.Car, error) {
	for _, car := range s.cars {
		if car.ID == id {
			return car, nil
		}
	}
	return model.Car{}, apperr.E(apperr.KindNotFound, "car not found", nil)
}

func (s *fakeStore) ByMake(ctx context.Context, make string) ([]model.Car, error) {
	return nil, nil
}

func (s *fakeStore) Search(ctx context.Context, q inventory.Query) ([]model.Car, error) {
	return s.cars, nil
}

type fakeAssistant struct {
	transcript    string
	transcribeErr error

	reply      string
	replyErr   error
	replyBlock bool
	gotSystem  string
	gotTurns   []model.Message

	audio    []byte
	synthErr error
}

func (a *fakeAssistant) Name() string { return "fake" }

func (a *fakeAssistant) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return a.transcript, a.transcribeErr
}

func (a *fakeAssistant) Reply(ctx context.Context, system string, turns []model.Message, utterance string) (string, error) {
	a.gotSystem = system
	a.gotTurns = turns
	if a.replyBlock {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return a.reply, a.replyErr
}

func (a *fakeAssistant) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	return a.audio, a.synthErr
}

func testCars() []model.Car {
	return []model.Car{
		{
			ID: "car-001", Make: "Toyota", Model: "Camry", Year: 2024,
			Price: 28999, Mileage: 5200, Color: "Pearl White",
			FuelType: "Hybrid", Transmission: "Automatic", Drivetrain: "FWD",
			Features: []string{"Heated Seats"}, Description: "Reliable hybrid sedan.",
			IsAvailable: true,
		},
	}
}

func newService(store inventory.Store, assistant *fakeAssistant) *ChatService {
	if assistant == nil {
		return NewChatService(store, nil, logger.NewNop(), time.Second, "alloy")
	}
	return NewChatService(store, assistant, logger.NewNop(), time.Second, "alloy")
}

func TestChatUnconfiguredSkipsInventoryRead(t *testing.T) {
	store := &fakeStore{cars: testCars()}
	svc := newService(store, nil)

	_, err := svc.Chat(context.Background(), nil, "hello")
	if apperr.KindOf(err) != apperr.KindUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if store.getAllCalls != 0 {
		t.Errorf("grounding context must not be built when unconfigured, GetAll called %d times", store.getAllCalls)
	}
}

func TestChatEmptyUtteranceIsBadInput(t *testing.T) {
	svc := newService(&fakeStore{cars: testCars()}, &fakeAssistant{reply: "hi"})

	_, err := svc.Chat(context.Background(), nil, "   ")
	if apperr.KindOf(err) != apperr.KindBadInput {
		t.Fatalf("expected bad input, got %v", err)
	}
}

func TestChatRejectsInvalidTurnRole(t *testing.T) {
	svc := newService(&fakeStore{cars: testCars()}, &fakeAssistant{reply: "hi"})

	turns := []model.Message{{ID: "1", Role: "system", Content: "x", Timestamp: 1}}
	_, err := svc.Chat(context.Background(), turns, "hello")
	if apperr.KindOf(err) != apperr.KindBadInput {
		t.Fatalf("expected bad input, got %v", err)
	}
}

func TestChatGroundsReplyOnInventory(t *testing.T) {
	assistant := &fakeAssistant{reply: "We have a great Camry.", audio: []byte("mp3")}
	svc := newService(&fakeStore{cars: testCars()}, assistant)

	turns := []model.Message{{ID: "1", Role: model.RoleUser, Content: "hi", Timestamp: 1}}
	result, err := svc.Chat(context.Background(), turns, "any hybrids?")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if result.Message != "We have a great Camry." {
		t.Errorf("unexpected reply %q", result.Message)
	}
	if len(result.Audio) == 0 {
		t.Error("expected synthesized audio")
	}
	if !strings.Contains(assistant.gotSystem, "2024 Toyota Camry") {
		t.Errorf("system context missing vehicle line: %q", assistant.gotSystem)
	}
	if !strings.Contains(assistant.gotSystem, "$28,999") {
		t.Errorf("system context missing formatted price: %q", assistant.gotSystem)
	}
	if !strings.Contains(assistant.gotSystem, "5,200 miles") {
		t.Errorf("system context missing formatted mileage: %q", assistant.gotSystem)
	}
	if len(assistant.gotTurns) != 1 {
		t.Errorf("prior turns not forwarded, got %d", len(assistant.gotTurns))
	}
}

func TestChatSpeechFailureIsPartialSuccess(t *testing.T) {
	assistant := &fakeAssistant{
		reply:    "Here is what we have.",
		synthErr: errors.New("tts down"),
	}
	svc := newService(&fakeStore{cars: testCars()}, assistant)

	result, err := svc.Chat(context.Background(), nil, "what do you have?")
	if err != nil {
		t.Fatalf("speech failure must not fail the chat: %v", err)
	}
	if result.Message == "" {
		t.Error("expected a non-empty reply")
	}
	if result.Audio != nil {
		t.Error("expected no audio on synthesis failure")
	}
}

func TestChatReplyTimeoutMapsToGatewayTimeout(t *testing.T) {
	assistant := &fakeAssistant{replyBlock: true}
	svc := NewChatService(&fakeStore{cars: testCars()}, assistant, logger.NewNop(), 20*time.Millisecond, "alloy")

	_, err := svc.Chat(context.Background(), nil, "hello")
	if apperr.KindOf(err) != apperr.KindGatewayTimeout {
		t.Fatalf("expected gateway timeout, got %v", err)
	}
}

func TestChatReplyFailureIsUpstream(t *testing.T) {
	assistant := &fakeAssistant{replyErr: errors.New("api exploded")}
	svc := newService(&fakeStore{cars: testCars()}, assistant)

	_, err := svc.Chat(context.Background(), nil, "hello")
	if apperr.KindOf(err) != apperr.KindUpstream {
		t.Fatalf("expected upstream failure, got %v", err)
	}
}

func TestTranscribeValidation(t *testing.T) {
	svc := newService(&fakeStore{}, nil)
	if _, err := svc.Transcribe(context.Background(), []byte("x")); apperr.KindOf(err) != apperr.KindUnavailable {
		t.Errorf("expected unavailable when unconfigured, got %v", err)
	}

	svc = newService(&fakeStore{}, &fakeAssistant{transcript: "hi"})
	if _, err := svc.Transcribe(context.Background(), nil); apperr.KindOf(err) != apperr.KindBadInput {
		t.Errorf("expected bad input for empty audio, got %v", err)
	}
}

func TestTranscribeEmptyTranscriptIsSuccess(t *testing.T) {
	svc := newService(&fakeStore{}, &fakeAssistant{transcript: ""})

	text, err := svc.Transcribe(context.Background(), []byte("silence"))
	if err != nil {
		t.Fatalf("empty transcript must not be an error: %v", err)
	}
	if text != "" {
		t.Errorf("expected empty transcript, got %q", text)
	}
}

func TestSynthesizeValidation(t *testing.T) {
	svc := newService(&fakeStore{}, &fakeAssistant{audio: []byte("mp3")})

	if _, err := svc.Synthesize(context.Background(), "", ""); apperr.KindOf(err) != apperr.KindBadInput {
		t.Errorf("expected bad input for empty text, got %v", err)
	}

	audio, err := svc.Synthesize(context.Background(), "hello there", "nova")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(audio) != "mp3" {
		t.Errorf("unexpected audio %q", audio)
	}
}

func TestRespondAdapter(t *testing.T) {
	assistant := &fakeAssistant{reply: "sure", audio: []byte("mp3")}
	svc := newService(&fakeStore{cars: testCars()}, assistant)

	reply, audio, err := svc.Respond(context.Background(), nil, "hello")
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if reply != "sure" || string(audio) != "mp3" {
		t.Errorf("unexpected result %q %q", reply, audio)
	}
}
