package assistant

import (
	"net/http"

	"SonicSavor/pkg/response"
)

var (
	ErrInvalidDocumentKind = response.NewError(http.StatusBadRequest, "kind must be menu or guidelines")
	ErrEmptyDocument       = response.NewError(http.StatusBadRequest, "document has no text")
	ErrEmptyQuestion       = response.NewError(http.StatusBadRequest, "question must not be empty")
	ErrNoAnswerEngine      = response.NewError(http.StatusServiceUnavailable, "assistant is not configured")
	ErrAnswerFailed        = response.NewError(http.StatusBadGateway, "assistant could not produce an answer")
)
