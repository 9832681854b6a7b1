package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"SonicSavor/database/postgres"
	assistantHandler "SonicSavor/internal/api/assistant/handler"
	assistantRepository "SonicSavor/internal/api/assistant/repository"
	assistantService "SonicSavor/internal/api/assistant/service"
	authHandler "SonicSavor/internal/api/auth/handler"
	authRepository "SonicSavor/internal/api/auth/repository"
	authService "SonicSavor/internal/api/auth/service"
	orderHandler "SonicSavor/internal/api/order/handler"
	orderRepository "SonicSavor/internal/api/order/repository"
	orderService "SonicSavor/internal/api/order/service"
	reservationHandler "SonicSavor/internal/api/reservation/handler"
	reservationRepository "SonicSavor/internal/api/reservation/repository"
	reservationService "SonicSavor/internal/api/reservation/service"
	voiceHandler "SonicSavor/internal/api/voice/handler"
	voiceService "SonicSavor/internal/api/voice/service"
	"SonicSavor/internal/dialogue"
	"SonicSavor/internal/middleware"
	"SonicSavor/pkg/audio"
	"SonicSavor/pkg/bcrypt"
	"SonicSavor/pkg/gemini"
	"SonicSavor/pkg/openai"
	"SonicSavor/pkg/rabbitmq"
	"SonicSavor/pkg/redis"
	"SonicSavor/pkg/s3"
	"SonicSavor/pkg/smtp"
	"SonicSavor/pkg/utils"
	"SonicSavor/pkg/whatsapp"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	env            ServerEnv
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	chatGPT        openai.IChatGPT
	transcriber    audio.ITranscriber
	synthesizer    audio.ISynthesizer
	s3Client       s3.ItfS3
	publisher      rabbitmq.IPublisher
	authServices   authService.AuthService
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithEnv(env ServerEnv) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to postgres and applies the schema.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.redisServer)
		return nil
	}
}

// The options below wire optional integrations. A missing credential or an
// unreachable service disables the feature instead of failing start-up.

func WithS3Client() ServerOption {
	return func(s *Server) error {
		if os.Getenv("AWS_BUCKET_NAME") == "" {
			s.log.Warn("AWS_BUCKET_NAME not set, object storage disabled")
			return nil
		}

		client, err := s3.New()
		if err != nil {
			s.log.Errorf("Failed to initialize S3 client: %v", err)
			return nil
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		if os.Getenv("WHATSAPP_ENABLED") != "true" {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client, err := whatsapp.New(ctx)
		if err != nil {
			s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			return nil
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			s.log.Warnf("Gemini disabled: %v", err)
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

// WithOpenAI enables the chat fallback and Whisper transcription.
func WithOpenAI() ServerOption {
	return func(s *Server) error {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			s.log.Warn("OPENAI_API_KEY not set, chat fallback and transcription disabled")
			return nil
		}
		s.chatGPT = openai.NewChatGPT()
		s.transcriber = audio.NewTranscriptionService(apiKey)
		return nil
	}
}

func WithSynthesizer() ServerOption {
	return func(s *Server) error {
		apiKey := os.Getenv("ELEVENLABS_API_KEY")
		if apiKey == "" {
			s.log.Warn("ELEVENLABS_API_KEY not set, speech synthesis disabled")
			return nil
		}
		s.synthesizer = audio.NewTTSService(apiKey, os.Getenv("ELEVENLABS_VOICE_ID"))
		return nil
	}
}

func WithPublisher() ServerOption {
	return func(s *Server) error {
		if s.env.RabbitURL == "" {
			s.log.Warn("RABBITMQ_URL not set, kitchen tickets disabled")
			return nil
		}

		client, err := rabbitmq.Dial(s.env.RabbitURL)
		if err != nil {
			s.log.Errorf("Failed to connect to RabbitMQ: %v", err)
			return nil
		}
		s.publisher = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Order Domain
	var orderOpts []orderService.Option
	if s.publisher != nil {
		orderOpts = append(orderOpts, orderService.WithPublisher(s.publisher))
	}
	if s.whatsappClient != nil {
		orderOpts = append(orderOpts, orderService.WithWhatsapp(s.whatsappClient))
	}
	orderRepo := orderRepository.New(s.db, s.log)
	orderServices := orderService.New(s.log, orderRepo, s.env.CancelWindow, orderOpts...)
	orderHandlers := orderHandler.New(s.log, orderServices, s.validator, s.middleware)

	// Reservation Domain
	reservationRepo := reservationRepository.New(s.db, s.log)
	reservationServices := reservationService.New(s.log, reservationRepo, s.smtpMailer, s.utils, s.env.RestaurantMail)
	reservationHandlers := reservationHandler.New(s.log, reservationServices, s.validator, s.middleware)

	// Assistant Domain
	var assistantOpts []assistantService.Option
	if s.geminiClient != nil {
		assistantOpts = append(assistantOpts, assistantService.WithGemini(s.geminiClient))
	}
	if s.chatGPT != nil {
		assistantOpts = append(assistantOpts, assistantService.WithChatGPT(s.chatGPT))
	}
	if s.redisServer != nil {
		assistantOpts = append(assistantOpts, assistantService.WithCache(s.redisServer, s.env.MenuCacheTTL))
	}
	if s.s3Client != nil {
		assistantOpts = append(assistantOpts, assistantService.WithStorage(s.s3Client))
	}
	assistantRepo := assistantRepository.New(s.db, s.log)
	assistantServices := assistantService.New(s.log, assistantRepo, s.utils, assistantOpts...)
	assistantHandlers := assistantHandler.New(s.log, assistantServices, s.validator, s.middleware)

	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	s.authServices = authService.New(s.log, authRepo, s.bcryptUtils, s.redisServer, s.utils, s.env.TokenTTL)
	authHandlers := authHandler.New(s.log, s.authServices, s.validator, s.middleware)

	// Voice Domain
	var voiceOpts []voiceService.Option
	if s.transcriber != nil {
		voiceOpts = append(voiceOpts, voiceService.WithTranscriber(s.transcriber))
	}
	if s.synthesizer != nil && s.s3Client != nil {
		voiceOpts = append(voiceOpts, voiceService.WithSynthesizer(s.synthesizer, s.s3Client))
	}
	backend := voiceService.NewLocalBackend(orderServices, reservationServices, assistantServices)
	voiceServices := voiceService.New(s.log, backend, s.env.Dialogue.MachineConfig(), s.utils, voiceOpts...)
	voiceHandlers := voiceHandler.New(s.log, s.validator, s.middleware, voiceServices)

	s.setupHealthCheck()
	s.setupMetrics()
	s.handlers = append(s.handlers, orderHandlers, reservationHandlers, assistantHandlers, authHandlers, voiceHandlers)
}

// SeedAdmin creates or rotates the configured admin account.
func (s *Server) SeedAdmin(ctx context.Context) error {
	if s.authServices == nil {
		return fmt.Errorf("handlers must be registered before seeding")
	}
	return s.authServices.Admin().SeedAdmin(ctx, s.env.AdminUsername, s.env.AdminPassword)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := s.env.Port
	if port == "" {
		port = "8000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops the listener and releases every connected integration.
func (s *Server) Shutdown() {
	if err := s.engine.ShutdownWithTimeout(10 * time.Second); err != nil {
		s.log.Errorf("Error shutting down fiber: %v", err)
	}
	if s.whatsappClient != nil {
		if err := s.whatsappClient.Disconnect(); err != nil {
			s.log.Warnf("Error disconnecting WhatsApp: %v", err)
		}
	}
	if s.publisher != nil {
		s.publisher.Close()
	}
	if s.geminiClient != nil {
		s.geminiClient.Close()
	}
	if s.redisServer != nil {
		_ = s.redisServer.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func (s *Server) setupMetrics() {
	dialogue.RegisterMetrics()
	s.engine.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
