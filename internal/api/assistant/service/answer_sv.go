package assistantService

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"SonicSavor/internal/api/assistant"
	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"SonicSavor/pkg/redis"
	"github.com/sirupsen/logrus"
)

const systemPrompt = `You are a helpful restaurant assistant.
Use the following context to answer the question.
If the answer is not in the context, just say "I don't know".
Do not repeat the context. Only output the final answer.`

func buildPrompt(contextText, question string) string {
	return fmt.Sprintf("%s\n\nContext:\n%s\n\nQuestion: %s\nAnswer:", systemPrompt, contextText, question)
}

func (s *assistantService) MenuInquiry(c context.Context, question string) (string, error) {
	requestID := contextPkg.GetRequestID(c)
	key := menuCacheKey(question)

	if s.cache != nil {
		cached, err := s.cache.Get(c, key)
		if err == nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("Menu answer served from cache")
			return cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Menu cache lookup failed")
		}
	}

	answer, err := s.answer(c, entity.DocumentKindMenu, question)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(c, key, answer, s.cacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache menu answer")
		}
	}

	return answer, nil
}

func (s *assistantService) ResolveIssue(c context.Context, text string) (string, error) {
	return s.answer(c, entity.DocumentKindGuidelines, text)
}

func (s *assistantService) answer(c context.Context, kind entity.DocumentKind, question string) (string, error) {
	requestID := contextPkg.GetRequestID(c)

	if s.gemini == nil && s.chatGPT == nil {
		return "", assistant.ErrNoAnswerEngine
	}

	contextText, err := s.retrieve(c, kind, question)
	if err != nil {
		return "", err
	}

	if s.gemini != nil {
		answer, err := s.gemini.GenerateAnswer(c, buildPrompt(contextText, question))
		if err == nil {
			return answer, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"kind":       kind,
			"error":      err.Error(),
		}).Warn("Gemini answer failed")
	}

	if s.chatGPT != nil {
		answer, err := s.chatGPT.Complete(c, systemPrompt, fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextText, question))
		if err == nil {
			return answer, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"kind":       kind,
			"error":      err.Error(),
		}).Warn("ChatGPT answer failed")
	}

	return "", assistant.ErrAnswerFailed
}

// retrieve returns the best matching chunks of kind joined by newlines.
func (s *assistantService) retrieve(c context.Context, kind entity.DocumentKind, question string) (string, error) {
	repo, err := s.repo.NewClient(false)
	if err != nil {
		return "", err
	}

	var chunks []entity.DocumentChunk
	if expr := searchExpression(question); expr != "" {
		chunks, err = repo.Documents.Search(c, kind, expr, retrievalLimit)
		if err != nil {
			return "", err
		}
	}

	if len(chunks) == 0 {
		chunks, err = repo.Documents.Latest(c, kind, retrievalLimit)
		if err != nil {
			return "", err
		}
	}

	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		parts = append(parts, chunk.Content)
	}

	return strings.Join(parts, "\n"), nil
}

func menuCacheKey(question string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(strings.Fields(strings.ToLower(question)), " ")))
	return fmt.Sprintf("menu_answer:%x", h.Sum64())
}
