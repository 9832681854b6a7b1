package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	errNoSpeech = errors.New("no speech detected")
	errInputEOF = errors.New("input closed")
)

// console stands in for the microphone and speaker: prompts are printed and
// each typed line is one recognition result.
type console struct {
	out   io.Writer
	lines chan string
	done  chan struct{}
}

func newConsole(in io.Reader, out io.Writer) *console {
	c := &console{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go c.read(in)
	return c
}

func (c *console) read(in io.Reader) {
	defer close(c.done)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		c.lines <- scanner.Text()
	}
}

func (c *console) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", errInputEOF
	case line := <-c.lines:
		return line, nil
	}
}

func (c *console) Speak(_ context.Context, text string) error {
	_, err := fmt.Fprintf(c.out, "assistant> %s\n", text)
	return err
}

func (c *console) Listen(ctx context.Context) (string, error) {
	fmt.Fprint(c.out, "you> ")
	line, err := c.next(ctx)
	if err != nil {
		fmt.Fprintln(c.out)
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errNoSpeech
	}
	return line, nil
}

// waitStart blocks until the user presses enter, the kiosk's start button.
func (c *console) waitStart(ctx context.Context) error {
	fmt.Fprint(c.out, "\nPress Enter to start (Ctrl+D to quit) ")
	_, err := c.next(ctx)
	return err
}
