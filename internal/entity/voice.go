package entity

// VoiceFrameType names the messages exchanged over the dialogue websocket.
type VoiceFrameType string

const (
	// server to client
	VoiceFrameSay    VoiceFrameType = "say"
	VoiceFrameListen VoiceFrameType = "listen"
	VoiceFrameStatus VoiceFrameType = "status"
	VoiceFrameEnd    VoiceFrameType = "end"

	// client to server
	VoiceFrameStart  VoiceFrameType = "start"
	VoiceFrameSpoken VoiceFrameType = "spoken"
	VoiceFrameHeard  VoiceFrameType = "heard"
	VoiceFrameError  VoiceFrameType = "error"
)

type VoiceFrame struct {
	Type      VoiceFrameType `json:"type"`
	Text      string         `json:"text,omitempty"`
	Reason    string         `json:"reason,omitempty"`
	Status    string         `json:"status,omitempty"`
	Utterance int            `json:"utterance,omitempty"`
	Session   string         `json:"session,omitempty"`
}
