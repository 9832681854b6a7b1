package voiceService

import (
	"context"
	"mime/multipart"
	"time"

	"SonicSavor/internal/api/voice"
	"SonicSavor/internal/dialogue"
	"SonicSavor/pkg/audio"
	"SonicSavor/pkg/nlp"
	"SonicSavor/pkg/s3"
	"SonicSavor/pkg/utils"
	"github.com/sirupsen/logrus"
)

type VoiceService interface {
	Speech() SpeechDomain
	Dialogue() DialogueDomain
}

// SpeechDomain converts between audio and text for browser clients that
// cannot run recognition or synthesis locally.
type SpeechDomain interface {
	Transcribe(c context.Context, file *multipart.FileHeader) (voice.TranscribeResponse, error)
	Synthesize(c context.Context, req voice.SynthesizeRequest) (voice.SynthesizeResponse, error)
}

// DialogueDomain builds dialogue machines served over the websocket.
type DialogueDomain interface {
	NewMachine(speech dialogue.Speech) *dialogue.Machine
}

type voiceService struct {
	speechDomain   SpeechDomain
	dialogueDomain DialogueDomain
}

func (s *voiceService) Speech() SpeechDomain {
	return s.speechDomain
}

func (s *voiceService) Dialogue() DialogueDomain {
	return s.dialogueDomain
}

type Option func(*speechDomainImpl)

func WithTranscriber(t audio.ITranscriber) Option {
	return func(s *speechDomainImpl) {
		s.transcriber = t
	}
}

// WithSynthesizer enables /voice/tts. Audio is stored in storage and served
// through a presigned link.
func WithSynthesizer(synth audio.ISynthesizer, storage s3.ItfS3) Option {
	return func(s *speechDomainImpl) {
		s.synthesizer = synth
		s.storage = storage
	}
}

type speechDomainImpl struct {
	log         *logrus.Logger
	utils       utils.IUtils
	transcriber audio.ITranscriber
	synthesizer audio.ISynthesizer
	storage     s3.ItfS3
	maxAudio    int64
	now         func() time.Time
}

type dialogueDomainImpl struct {
	log     *logrus.Logger
	backend dialogue.Backend
	cfg     dialogue.Config
}

func New(
	log *logrus.Logger,
	backend dialogue.Backend,
	cfg dialogue.Config,
	utils utils.IUtils,
	opts ...Option,
) VoiceService {
	speech := &speechDomainImpl{
		log:      log,
		utils:    utils,
		maxAudio: 10 * 1024 * 1024,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(speech)
	}

	return &voiceService{
		speechDomain: speech,
		dialogueDomain: &dialogueDomainImpl{
			log:     log,
			backend: backend,
			cfg:     cfg,
		},
	}
}

func (d *dialogueDomainImpl) NewMachine(speech dialogue.Speech) *dialogue.Machine {
	return dialogue.New(d.log, speech, d.backend, nlp.NewProcessor(), d.cfg)
}
