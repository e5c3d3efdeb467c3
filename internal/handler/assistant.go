package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/autovoice/voice-showroom/internal/apperr"
	"github.com/autovoice/voice-showroom/internal/model"
	"github.com/autovoice/voice-showroom/internal/service"
	"github.com/autovoice/voice-showroom/pkg/logger"
)

// maxAudioUpload bounds the multipart body of a transcription request (16 MiB).
const maxAudioUpload = 16 << 20

// AssistantHandler handles the AI-backed endpoints.
type AssistantHandler struct {
	chat   *service.ChatService
	logger *logger.Logger
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(chat *service.ChatService, log *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		chat:   chat,
		logger: log,
	}
}

// Config handles GET /api/config
func (h *AssistantHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.ConfigResponse{
		OpenAIConfigured: h.chat.Configured(),
	})
}

// Transcribe handles POST /api/transcribe
// Expects a multipart form with a single "audio" field.
func (h *AssistantHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAudioUpload)

	file, _, err := r.FormFile("audio")
	if err != nil {
		writeAppError(w, h.logger, "transcribe", apperr.E(apperr.KindBadInput, "no audio file provided", err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		writeAppError(w, h.logger, "transcribe", apperr.E(apperr.KindBadInput, "failed to read audio file", err))
		return
	}

	text, err := h.chat.Transcribe(r.Context(), audio)
	if err != nil {
		writeAppError(w, h.logger, "transcribe", err)
		return
	}

	writeJSON(w, http.StatusOK, model.TranscriptionResponse{Text: text})
}

// Chat handles POST /api/chat
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, h.logger, "chat", apperr.E(apperr.KindBadInput, "invalid request body", err))
		return
	}

	result, err := h.chat.Chat(r.Context(), req.Messages, req.UserMessage)
	if err != nil {
		writeAppError(w, h.logger, "chat", err)
		return
	}

	resp := model.ChatResponse{Message: result.Message}
	if len(result.Audio) > 0 {
		resp.AudioURL = "data:audio/mp3;base64," + base64.StdEncoding.EncodeToString(result.Audio)
	}
	writeJSON(w, http.StatusOK, resp)
}

// TTS handles POST /api/tts
// Responds with raw mp3 bytes.
func (h *AssistantHandler) TTS(w http.ResponseWriter, r *http.Request) {
	var req model.TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAppError(w, h.logger, "tts", apperr.E(apperr.KindBadInput, "text is required", err))
		return
	}

	audio, err := h.chat.Synthesize(r.Context(), req.Text, req.Voice)
	if err != nil {
		writeAppError(w, h.logger, "tts", err)
		return
	}

	w.Header().Set("Content-Type", "audio/mp3")
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
