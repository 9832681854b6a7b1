package assistant

type MenuInquiryRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

type ResolveIssueRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type AnswerResponse struct {
	Response string `json:"response"`
}

type UploadResult struct {
	DocumentID string `json:"document_id"`
	Chunks     int    `json:"chunks"`
	Location   string `json:"location"`
}

type UploadDocumentResponse struct {
	Message string       `json:"message"`
	Result  UploadResult `json:"result"`
}

type LocationResponse struct {
	Message string `json:"message"`
	MapLink string `json:"map_link"`
}
