package ingest

import (
	"net/http"
	"os"
)

const (
	// AudioInputPath is the only route served by the Handler.
	AudioInputPath = "/audio_input"
	// Acknowledgment is the fixed body sent back for every accepted payload.
	Acknowledgment = "Audio received successfully"
)

// Handler accepts raw PCM payloads on POST /audio_input and replies with a fixed acknowledgment.
// It keeps no state between requests.
type Handler struct {
	// logger receives a summary of every accepted payload and every failed read.
	logger RequestLogger
}

// to make sure Handler implements http.Handler.
var _ http.Handler = (*Handler)(nil)

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost || requestTarget(req) != AudioInputPath {
		w.WriteHeader(http.StatusNotFound)

		return
	}

	audioReq, err := ReadAudioRequest(req)
	if err != nil {
		h.logger.LogError(audioReq, err)

		w.WriteHeader(http.StatusBadRequest)

		return
	}

	h.logger.LogAudio(audioReq)

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Acknowledgment))
}

// NewHandler is the constructor of Handler. A nil logger falls back to a ConsoleLogger on stdout.
func NewHandler(logger RequestLogger) *Handler {
	if logger == nil {
		logger = NewConsoleLogger(os.Stdout)
	}

	return &Handler{
		logger: logger,
	}
}
