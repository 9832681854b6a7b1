package assistantService

import (
	"context"
	"mime/multipart"
	"os"
	"time"

	"SonicSavor/internal/api/assistant"
	assistantRepository "SonicSavor/internal/api/assistant/repository"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/gemini"
	"SonicSavor/pkg/openai"
	"SonicSavor/pkg/redis"
	"SonicSavor/pkg/s3"
	"SonicSavor/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	defaultCacheTTL = 10 * time.Minute
	retrievalLimit  = 2
)

type AssistantService interface {
	MenuInquiry(c context.Context, question string) (string, error)
	ResolveIssue(c context.Context, text string) (string, error)
	UploadDocument(c context.Context, kind entity.DocumentKind, file *multipart.FileHeader) (assistant.UploadResult, error)
	Location() assistant.LocationResponse
}

type assistantService struct {
	log      *logrus.Logger
	repo     assistantRepository.Repository
	gemini   gemini.IGemini
	chatGPT  openai.IChatGPT
	cache    redis.IRedis
	storage  s3.ItfS3
	utils    utils.IUtils
	cacheTTL time.Duration
}

type Option func(*assistantService)

func WithGemini(client gemini.IGemini) Option {
	return func(s *assistantService) {
		s.gemini = client
	}
}

// WithChatGPT is used when Gemini is missing or fails.
func WithChatGPT(client openai.IChatGPT) Option {
	return func(s *assistantService) {
		s.chatGPT = client
	}
}

func WithCache(cache redis.IRedis, ttl time.Duration) Option {
	return func(s *assistantService) {
		s.cache = cache
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

func WithStorage(storage s3.ItfS3) Option {
	return func(s *assistantService) {
		s.storage = storage
	}
}

func New(log *logrus.Logger, repo assistantRepository.Repository, utils utils.IUtils, opts ...Option) AssistantService {
	s := &assistantService{
		log:      log,
		repo:     repo,
		utils:    utils,
		cacheTTL: defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *assistantService) Location() assistant.LocationResponse {
	address := os.Getenv("RESTAURANT_ADDRESS")
	if address == "" {
		address = "Main Boulevard, Multan City"
	}

	mapLink := os.Getenv("RESTAURANT_MAP_LINK")
	if mapLink == "" {
		mapLink = "https://maps.google.com/?q=Main+Boulevard+Multan"
	}

	return assistant.LocationResponse{
		Message: "Our restaurant is located at " + address + ".",
		MapLink: mapLink,
	}
}
