package voiceService

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"

	"SonicSavor/internal/api/voice"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/s3"
	"github.com/sirupsen/logrus"
)

func (s *speechDomainImpl) Transcribe(c context.Context, file *multipart.FileHeader) (voice.TranscribeResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if s.transcriber == nil {
		return voice.TranscribeResponse{}, voice.ErrSpeechUnavailable
	}
	if file == nil {
		return voice.TranscribeResponse{}, voice.ErrNoAudio
	}
	if file.Size > s.maxAudio {
		return voice.TranscribeResponse{}, voice.ErrAudioTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return voice.TranscribeResponse{}, err
	}
	defer src.Close()

	text, err := s.transcriber.Transcribe(c, file.Filename, src)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"file":       file.Filename,
			"error":      err.Error(),
		}).Error("Transcription failed")
		return voice.TranscribeResponse{}, voice.ErrTranscriptionFailed
	}

	return voice.TranscribeResponse{Text: strings.TrimSpace(text)}, nil
}

func (s *speechDomainImpl) Synthesize(c context.Context, req voice.SynthesizeRequest) (voice.SynthesizeResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if s.synthesizer == nil || s.storage == nil {
		return voice.SynthesizeResponse{}, voice.ErrSpeechUnavailable
	}

	audio, err := s.synthesizer.GenerateAudio(c, req.Text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Speech synthesis failed")
		return voice.SynthesizeResponse{}, voice.ErrSynthesisFailed
	}

	id, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		return voice.SynthesizeResponse{}, err
	}

	location, err := s.storage.Upload(c, s3.ObjectKey("tts", id, "speech.mp3"), bytes.NewReader(audio), "audio/mpeg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store synthesized audio")
		return voice.SynthesizeResponse{}, err
	}

	url, err := s.storage.PresignUrl(location)
	if err != nil {
		return voice.SynthesizeResponse{}, err
	}

	return voice.SynthesizeResponse{AudioURL: url}, nil
}
