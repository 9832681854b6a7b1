package audio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const elevenLabsURL = "https://api.elevenlabs.io/v1/text-to-speech/"

type ISynthesizer interface {
	GenerateAudio(ctx context.Context, text string) ([]byte, error)
}

type TTSService struct {
	apiKey  string
	voiceID string
	baseURL string
	client  *http.Client
}

func NewTTSService(apiKey, voiceID string) *TTSService {
	return &TTSService{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: elevenLabsURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

func (tts *TTSService) GenerateAudio(ctx context.Context, text string) ([]byte, error) {
	jsonData, err := jsoniter.Marshal(ttsRequest{
		Text:    text,
		ModelID: "eleven_multilingual_v2",
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.8,
			UseSpeakerBoost: true,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tts.baseURL+tts.voiceID, bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", tts.apiKey)

	resp, err := tts.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ElevenLabs API error: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
