package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/sashabaranov/go-openai"

	"github.com/autovoice/voice-showroom/internal/model"
)

const (
	// replyMaxTokens caps completion length; replies are read aloud, so they
	// should stay short.
	replyMaxTokens = 500

	transcriptionFileName = "recording.webm"
)

// fallbackReply is returned when the completion API yields no choices.
const fallbackReply = "I apologize, but I couldn't generate a response. Could you please try again?"

// OpenAIAssistant implements Assistant on the OpenAI API: whisper-1 for
// transcription, chat completions for replies and tts-1 for speech.
type OpenAIAssistant struct {
	client    *openai.Client
	chatModel string
}

// NewOpenAIAssistant creates a new OpenAI-backed assistant.
func NewOpenAIAssistant(apiKey, chatModel string) (*OpenAIAssistant, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}
	if chatModel == "" {
		chatModel = "gpt-4o"
	}

	return &OpenAIAssistant{
		client:    openai.NewClient(apiKey),
		chatModel: chatModel,
	}, nil
}

// Name returns the provider name.
func (a *OpenAIAssistant) Name() string {
	return "openai"
}

// Transcribe sends audio to the whisper-1 model.
func (a *OpenAIAssistant) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := a.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: transcriptionFileName,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Reply sends the grounded conversation to the chat completion API.
func (a *OpenAIAssistant) Reply(ctx context.Context, system string, turns []model.Message, utterance string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: utterance,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     a.chatModel,
		Messages:  messages,
		MaxTokens: replyMaxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return fallbackReply, nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Synthesize converts text to mp3 audio with the tts-1 model.
func (a *OpenAIAssistant) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := a.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Voice: speechVoice(voice),
		Input: text,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	return io.ReadAll(resp)
}

func speechVoice(name string) openai.SpeechVoice {
	switch name {
	case "echo":
		return openai.VoiceEcho
	case "fable":
		return openai.VoiceFable
	case "onyx":
		return openai.VoiceOnyx
	case "nova":
		return openai.VoiceNova
	case "shimmer":
		return openai.VoiceShimmer
	default:
		return openai.VoiceAlloy
	}
}
