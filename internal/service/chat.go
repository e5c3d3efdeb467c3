// Package service provides the request orchestration between the inventory
// store and the assistant gateway.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/autovoice/voice-showroom/internal/apperr"
	"github.com/autovoice/voice-showroom/internal/gateway"
	"github.com/autovoice/voice-showroom/internal/inventory"
	"github.com/autovoice/voice-showroom/internal/model"
	"github.com/autovoice/voice-showroom/pkg/logger"
	"github.com/autovoice/voice-showroom/pkg/metrics"
)

// en-US formatting for prices and mileage in the grounding context, matching
// what customers hear quoted.
var usd = message.NewPrinter(language.AmericanEnglish)

const systemPromptHeader = `You are AutoVoice AI, a friendly and knowledgeable car sales assistant. You help customers find their perfect vehicle from our current inventory.

Current Inventory:
`

const systemPromptGuidelines = `
Guidelines:
1. Be helpful, friendly, and professional
2. Answer questions about vehicles in our inventory
3. Make personalized recommendations based on customer needs
4. Highlight key features and benefits of vehicles
5. Be honest about vehicle specifications and pricing
6. If asked about vehicles not in inventory, politely explain what we do have
7. Encourage customers to schedule test drives
8. Keep responses concise but informative (2-3 sentences for simple questions, more detail when appropriate)
9. Use natural, conversational language suitable for voice responses
10. When comparing vehicles, focus on the most relevant differences for the customer's needs`

// ChatResult is the outcome of one chat exchange. Audio is nil when speech
// synthesis failed or was skipped; the reply text is still valid.
type ChatResult struct {
	Message string
	Audio   []byte
}

// ChatService validates input and sequences calls to the inventory store and
// the assistant gateway.
type ChatService struct {
	store     inventory.Store
	assistant gateway.Assistant // nil when no credential is configured
	logger    *logger.Logger
	timeout   time.Duration
	voice     string
}

// NewChatService creates the orchestrator. assistant may be nil, in which
// case every AI-backed operation reports Unavailable.
func NewChatService(store inventory.Store, assistant gateway.Assistant, log *logger.Logger, timeout time.Duration, voice string) *ChatService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatService{
		store:     store,
		assistant: assistant,
		logger:    log,
		timeout:   timeout,
		voice:     voice,
	}
}

// Configured reports whether the assistant gateway is available.
func (s *ChatService) Configured() bool {
	return s.assistant != nil
}

// Transcribe converts captured audio to text. The transcript is returned
// verbatim; an empty string is a valid result.
func (s *ChatService) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if s.assistant == nil {
		return "", apperr.E(apperr.KindUnavailable, "OpenAI API key not configured", nil)
	}
	if len(audio) == 0 {
		return "", apperr.E(apperr.KindBadInput, "no audio file provided", nil)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.assistant.Transcribe(ctx, audio)
	if err != nil {
		metrics.RecordGatewayCall("transcribe", "error", time.Since(start).Seconds())
		metrics.TranscriptionsTotal.WithLabelValues("error").Inc()
		return "", s.gatewayError("failed to transcribe audio", err)
	}

	metrics.RecordGatewayCall("transcribe", "success", time.Since(start).Seconds())
	metrics.TranscriptionsTotal.WithLabelValues("success").Inc()
	return text, nil
}

// Chat runs one exchange: grounds the assistant on the current catalog,
// generates the reply, then synthesizes speech for it. Speech failure is a
// partial success; the reply text is returned without audio.
func (s *ChatService) Chat(ctx context.Context, turns []model.Message, utterance string) (*ChatResult, error) {
	if s.assistant == nil {
		return nil, apperr.E(apperr.KindUnavailable, "OpenAI API key not configured. Please add your OPENAI_API_KEY to use the AI assistant.", nil)
	}
	if strings.TrimSpace(utterance) == "" {
		return nil, apperr.E(apperr.KindBadInput, "userMessage is required", nil)
	}
	for _, turn := range turns {
		if !turn.Role.Valid() || turn.Content == "" {
			return nil, apperr.E(apperr.KindBadInput, "invalid conversation turn", nil)
		}
	}

	cars, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, apperr.E(apperr.KindInternal, "failed to read inventory", err)
	}

	system := systemPromptHeader + groundingContext(cars) + systemPromptGuidelines

	start := time.Now()
	replyCtx, cancel := context.WithTimeout(ctx, s.timeout)
	reply, err := s.assistant.Reply(replyCtx, system, turns, utterance)
	cancel()
	if err != nil {
		metrics.RecordGatewayCall("reply", "error", time.Since(start).Seconds())
		return nil, s.gatewayError("failed to generate response", err)
	}
	metrics.RecordGatewayCall("reply", "success", time.Since(start).Seconds())
	metrics.ChatTurnsTotal.WithLabelValues(string(model.RoleUser)).Inc()
	metrics.ChatTurnsTotal.WithLabelValues(string(model.RoleAssistant)).Inc()

	audio, err := s.synthesize(ctx, reply, s.voice)
	if err != nil {
		// Partial success: the customer still gets the text reply.
		s.logger.Warn("speech synthesis failed, returning text only", zap.Error(err))
		audio = nil
	}

	return &ChatResult{Message: reply, Audio: audio}, nil
}

// Respond adapts Chat to the narrow reply-plus-audio shape the client
// session controller consumes.
func (s *ChatService) Respond(ctx context.Context, turns []model.Message, utterance string) (string, []byte, error) {
	res, err := s.Chat(ctx, turns, utterance)
	if err != nil {
		return "", nil, err
	}
	return res.Message, res.Audio, nil
}

// Synthesize converts text to mp3 audio bytes.
func (s *ChatService) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if s.assistant == nil {
		return nil, apperr.E(apperr.KindUnavailable, "OpenAI API key not configured", nil)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperr.E(apperr.KindBadInput, "text is required", nil)
	}
	if voice == "" {
		voice = s.voice
	}
	return s.synthesize(ctx, text, voice)
}

func (s *ChatService) synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	audio, err := s.assistant.Synthesize(ctx, text, voice)
	if err != nil {
		metrics.RecordGatewayCall("synthesize", "error", time.Since(start).Seconds())
		return nil, s.gatewayError("failed to generate speech", err)
	}

	metrics.RecordGatewayCall("synthesize", "success", time.Since(start).Seconds())
	metrics.SpeechBytesTotal.Add(float64(len(audio)))
	return audio, nil
}

func (s *ChatService) gatewayError(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.E(apperr.KindGatewayTimeout, msg, err)
	}
	return apperr.E(apperr.KindUpstream, msg, err)
}

// groundingContext renders one line per vehicle so replies reference real stock.
func groundingContext(cars []model.Car) string {
	var b strings.Builder
	for _, car := range cars {
		// The year must not pick up grouping separators, so only price and
		// mileage go through the locale-aware printer.
		fmt.Fprintf(&b, "- %d %s %s: ", car.Year, car.Make, car.Model)
		b.WriteString(usd.Sprintf("$%d, ", car.Price))
		fmt.Fprintf(&b, "%s, ", car.Color)
		b.WriteString(usd.Sprintf("%d miles, ", car.Mileage))
		fmt.Fprintf(&b, "%s, %s, %s.", car.FuelType, car.Transmission, car.Drivetrain)
		if len(car.Features) > 0 {
			b.WriteString(" Features: ")
			b.WriteString(strings.Join(car.Features, ", "))
			b.WriteString(".")
		}
		if car.Description != "" {
			b.WriteString(" ")
			b.WriteString(car.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
