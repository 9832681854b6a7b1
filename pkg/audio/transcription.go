package audio

import (
	"context"
	"io"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

type ITranscriber interface {
	Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error)
}

type TranscriptionService struct {
	client   *openai.Client
	language string
}

func NewTranscriptionService(apiKey string) *TranscriptionService {
	language := os.Getenv("STT_LANGUAGE")
	if language == "" {
		language = "en"
	}

	return &TranscriptionService{
		client:   openai.NewClient(apiKey),
		language: language,
	}
}

// Transcribe sends the audio stream to Whisper. fileName only has to carry
// an extension Whisper recognises.
func (t *TranscriptionService) Transcribe(ctx context.Context, fileName string, audio io.Reader) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: fileName,
		Reader:   audio,
		Language: t.language,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
