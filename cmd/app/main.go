package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SonicSavor/internal/config"
	"SonicSavor/pkg/log"
	"SonicSavor/pkg/redis"
	"SonicSavor/pkg/smtp"
	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	env, err := config.LoadServerEnv()
	if err != nil {
		logger.Fatal(err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	smtpMailer := smtp.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithEnv(env),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithWhatsappClient(),
		config.WithGeminiClient(),
		config.WithOpenAI(),
		config.WithSynthesizer(),
		config.WithPublisher(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := server.SeedAdmin(seedCtx); err != nil {
		logger.Errorf("Failed to seed admin account: %v", err)
	}
	cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	server.Shutdown()
}
