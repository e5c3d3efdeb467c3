// Package gateway provides the assistant gateway interface and implementations.
// The gateway is an external collaborator: fallible, network-bound, and not
// idempotent. Callers own timeouts; no retries happen here.
package gateway

import (
	"context"

	"github.com/autovoice/voice-showroom/internal/model"
)

// Assistant is the capability set the orchestrator depends on.
type Assistant interface {
	// Transcribe converts captured audio to text. An empty transcript is a
	// valid result, not an error.
	Transcribe(ctx context.Context, audio []byte) (string, error)

	// Reply generates the assistant's answer given the system context, the
	// prior turns and the new utterance.
	Reply(ctx context.Context, system string, turns []model.Message, utterance string) (string, error)

	// Synthesize converts text to spoken audio (mp3 bytes). voice may be
	// empty to use the provider default.
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)

	// Name returns the provider name.
	Name() string
}
