package voice

type TranscribeResponse struct {
	Text string `json:"text"`
}

type SynthesizeRequest struct {
	Text string `json:"text" validate:"required,max=2500"`
}

type SynthesizeResponse struct {
	AudioURL string `json:"audio_url"`
}
