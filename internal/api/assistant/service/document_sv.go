package assistantService

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"time"

	"SonicSavor/internal/api/assistant"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/s3"
	"github.com/sirupsen/logrus"
)

func (s *assistantService) UploadDocument(c context.Context, kind entity.DocumentKind, file *multipart.FileHeader) (res assistant.UploadResult, err error) {
	requestID := contextPkg.GetRequestID(c)

	if kind == "" {
		kind = entity.DocumentKindGuidelines
	}
	if !kind.Valid() {
		return assistant.UploadResult{}, assistant.ErrInvalidDocumentKind
	}

	if err := s.utils.ValidateDocumentFile(file); err != nil {
		return assistant.UploadResult{}, err
	}

	content, err := readFile(file)
	if err != nil {
		return assistant.UploadResult{}, err
	}

	texts := splitText(string(content), chunkSize, chunkOverlap)
	if len(texts) == 0 {
		return assistant.UploadResult{}, assistant.ErrEmptyDocument
	}

	now := time.Now()
	docID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return assistant.UploadResult{}, err
	}

	location := ""
	if s.storage != nil {
		location, err = s.storage.Upload(c, s3.ObjectKey("documents", docID, file.Filename), bytes.NewReader(content), "text/plain")
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to store raw document, continuing without it")
			location = ""
		}
	}

	repo, err := s.repo.NewClient(true)
	if err != nil {
		return assistant.UploadResult{}, err
	}
	defer func() {
		if err != nil {
			_ = repo.Rollback()
		}
	}()

	if err = repo.Documents.CreateDocument(c, entity.Document{
		ID:        docID,
		Kind:      kind,
		Filename:  file.Filename,
		Location:  location,
		CreatedAt: now,
	}); err != nil {
		return assistant.UploadResult{}, err
	}

	chunks := make([]entity.DocumentChunk, len(texts))
	for i, text := range texts {
		chunks[i] = entity.DocumentChunk{
			DocumentID: docID,
			Kind:       kind,
			Position:   i,
			Content:    text,
		}
	}

	if err = repo.Documents.CreateChunks(c, chunks); err != nil {
		return assistant.UploadResult{}, err
	}

	if err = repo.Commit(); err != nil {
		return assistant.UploadResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"document_id": docID,
		"kind":        kind,
		"chunks":      len(chunks),
	}).Info("Document indexed")

	return assistant.UploadResult{
		DocumentID: docID,
		Chunks:     len(chunks),
		Location:   location,
	}, nil
}

func readFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
