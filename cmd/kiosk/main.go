package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"SonicSavor/internal/client"
	"SonicSavor/internal/config"
	"SonicSavor/internal/dialogue"
	"SonicSavor/pkg/log"
	"SonicSavor/pkg/nlp"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	mode := flag.String("mode", "local", "local runs the dialogue here, remote bridges to the server hosted dialogue")
	verbose := flag.Bool("v", false, "log to stderr and show status changes")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.NewDiscardLogger()
	if *verbose {
		logger = log.NewNamedLogger("kiosk")
	}

	env, err := config.LoadDialogueEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := newConsole(os.Stdin, os.Stdout)
	showStatus := func(s dialogue.Status) {
		if *verbose {
			fmt.Fprintf(os.Stdout, "[%s]\n", s)
		}
	}

	var session func(ctx context.Context) error
	switch *mode {
	case "local":
		backend := client.New(env.BackendURL, logger, client.WithTimeout(env.RemoteTimeout))
		processor := nlp.NewProcessor()
		session = func(ctx context.Context) error {
			machine := dialogue.New(logger, term, backend, processor, env.MachineConfig())
			machine.Session().OnStatus(showStatus)
			return machine.Run(ctx)
		}
	case "remote":
		remote, err := client.NewRemoteDialogue(env.BackendURL, logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		remote.OnStatus(showStatus)
		session = func(ctx context.Context) error {
			return remote.Run(ctx, term)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	for {
		if err := term.waitStart(ctx); err != nil {
			return
		}
		if err := session(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.WithFields(logrus.Fields{"mode": *mode, "error": err.Error()}).Error("Session failed")
			fmt.Fprintf(os.Stdout, "Session failed: %v\n", err)
		}
	}
}
