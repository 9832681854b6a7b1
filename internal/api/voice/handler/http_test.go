package voiceHandler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	voiceService "SonicSavor/internal/api/voice/service"
	"SonicSavor/internal/dialogue"
	"SonicSavor/internal/entity"
	"SonicSavor/internal/middleware"
	"SonicSavor/pkg/log"
	"SonicSavor/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gorilla "github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct{}

func (fakeBackend) PlaceOrder(context.Context, string, string, []string) (string, error) {
	return "1", nil
}
func (fakeBackend) MenuInquiry(context.Context, string) (string, error) {
	return "Yes, the lentil soup is vegan.", nil
}
func (fakeBackend) CreateReservation(context.Context, string, string, int) (string, error) {
	return "RES-1", nil
}
func (fakeBackend) ResolveIssue(context.Context, string) (string, error) { return "ok", nil }
func (fakeBackend) CancelOrder(context.Context, string, string) (string, error) {
	return "cancelled", nil
}

type fakeTranscriber struct{}

func (fakeTranscriber) Transcribe(_ context.Context, _ string, audio io.Reader) (string, error) {
	b, _ := io.ReadAll(audio)
	return "heard " + string(b), nil
}

func newTestApp(svc voiceService.VoiceService) *fiber.App {
	logger := log.NewDiscardLogger()
	mw := middleware.New(logger, nil)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(), mw, svc).Start(app.Group("/api/v1"))
	return app
}

func newService(opts ...voiceService.Option) voiceService.VoiceService {
	cfg := dialogue.Config{SpeakTimeout: 2 * time.Second, CaptureTimeout: 2 * time.Second, RemoteTimeout: 2 * time.Second}
	return voiceService.New(log.NewDiscardLogger(), fakeBackend{}, cfg, utils.New(), opts...)
}

func TestTranscribe(t *testing.T) {
	app := newTestApp(newService(voiceService.WithTranscriber(fakeTranscriber{})))

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "clip.webm")
	require.NoError(t, err)
	_, _ = part.Write([]byte("two"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/voice/stt", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "heard two", body["text"])
}

func TestTranscribe_MissingFile(t *testing.T) {
	app := newTestApp(newService(voiceService.WithTranscriber(fakeTranscriber{})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/voice/stt", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSynthesize_Unconfigured(t *testing.T) {
	app := newTestApp(newService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/voice/tts", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestDialogueSocket_RequiresUpgrade(t *testing.T) {
	app := newTestApp(newService())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/voice/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}

func TestDialogueSocket_MenuConversation(t *testing.T) {
	app := newTestApp(newService())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	defer func() { _ = app.Shutdown() }()

	conn, _, err := gorilla.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/api/v1/voice/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(entity.VoiceFrame{Type: entity.VoiceFrameStart}))

	answers := []string{"2", "is the soup vegan", "no"}
	var said []string
	var statuses []string
	var end entity.VoiceFrame

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for end.Type == "" {
		var frame entity.VoiceFrame
		require.NoError(t, conn.ReadJSON(&frame))

		switch frame.Type {
		case entity.VoiceFrameSay:
			said = append(said, frame.Text)
			require.NoError(t, conn.WriteJSON(entity.VoiceFrame{Type: entity.VoiceFrameSpoken}))
		case entity.VoiceFrameListen:
			require.NotEmpty(t, answers, "dialogue asked for more input than scripted")
			require.NoError(t, conn.WriteJSON(entity.VoiceFrame{Type: entity.VoiceFrameHeard, Text: answers[0]}))
			answers = answers[1:]
		case entity.VoiceFrameStatus:
			statuses = append(statuses, frame.Status)
		case entity.VoiceFrameEnd:
			end = frame
		}
	}

	assert.Contains(t, said, "Yes, the lentil soup is vegan.")
	assert.Equal(t, "Great! Let me know if you need anything else.", said[len(said)-1])
	assert.Contains(t, statuses, string(dialogue.StatusListening))
	assert.Contains(t, statuses, string(dialogue.StatusProcessing))
	assert.NotEmpty(t, end.Session)
	assert.Greater(t, end.Utterance, 0)
}
