package voice

import (
	"net/http"

	"SonicSavor/pkg/response"
)

var (
	ErrNoAudio             = response.NewError(http.StatusBadRequest, "audio file is required")
	ErrAudioTooLarge       = response.NewError(http.StatusBadRequest, "audio file exceeds 10MB")
	ErrSpeechUnavailable   = response.NewError(http.StatusServiceUnavailable, "speech service is not configured")
	ErrTranscriptionFailed = response.NewError(http.StatusBadGateway, "failed to transcribe audio")
	ErrSynthesisFailed     = response.NewError(http.StatusBadGateway, "failed to synthesize speech")
)
