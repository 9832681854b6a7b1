package voiceHandler

import (
	"context"
	"errors"

	"SonicSavor/internal/dialogue"
	"SonicSavor/internal/entity"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

// handleDialogue hosts one dialogue session per connection. The client
// opens with a start frame; the session ends when the dialogue goes idle
// or the client disconnects.
func (h *VoiceHandler) handleDialogue(c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var start entity.VoiceFrame
	if err := c.ReadJSON(&start); err != nil || start.Type != entity.VoiceFrameStart {
		h.log.WithFields(logrus.Fields{
			"client_ip": c.RemoteAddr().String(),
		}).Warn("Voice connection closed before start frame")
		return
	}

	speech := newSocketSpeech(c, "")
	machine := h.voiceService.Dialogue().NewMachine(speech)
	speech.session = machine.Session().ID
	speech.utterances = machine.Conversation().Len

	machine.Session().OnStatus(func(status dialogue.Status) {
		if err := speech.send(entity.VoiceFrame{Type: entity.VoiceFrameStatus, Status: string(status)}); err != nil {
			h.log.WithFields(logrus.Fields{
				"session_id": speech.session,
				"error":      err.Error(),
			}).Debug("Failed to send status frame")
		}
	})

	go speech.pump()
	go func() {
		<-speech.done
		cancel()
	}()

	h.log.WithFields(logrus.Fields{
		"session_id": speech.session,
		"client_ip":  c.RemoteAddr().String(),
	}).Info("Voice client connected")

	err := machine.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		h.log.WithFields(logrus.Fields{
			"session_id": speech.session,
			"error":      err.Error(),
		}).Warn("Dialogue ended with error")
	}

	if err := speech.send(entity.VoiceFrame{
		Type:      entity.VoiceFrameEnd,
		Utterance: machine.Conversation().Len(),
	}); err != nil {
		h.log.WithField("session_id", speech.session).Debug("Client gone before end frame")
	}

	_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"))
}
