package assistantRepository

import (
	"context"

	"SonicSavor/internal/entity"
	contextPkg "SonicSavor/pkg/context"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *documentRepository) CreateDocument(c context.Context, doc entity.Document) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryCreateDocument, doc)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateDocument")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating document")
		return err
	}

	return nil
}

func (r *documentRepository) CreateChunks(c context.Context, chunks []entity.DocumentChunk) error {
	requestID := contextPkg.GetRequestID(c)

	for _, chunk := range chunks {
		query, args, err := sqlx.Named(queryCreateChunk, chunk)
		if err != nil {
			return err
		}
		query = r.q.Rebind(query)

		if _, err := r.q.ExecContext(c, query, args...); err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"document_id": chunk.DocumentID,
				"position":    chunk.Position,
				"error":       err.Error(),
			}).Error("Database error when creating document chunk")
			return err
		}
	}

	return nil
}

// Search ranks chunks of kind against a to_tsquery expression.
func (r *documentRepository) Search(c context.Context, kind entity.DocumentKind, tsQuery string, limit int) ([]entity.DocumentChunk, error) {
	return r.selectChunks(c, querySearchChunks, map[string]interface{}{
		"kind":  kind,
		"query": tsQuery,
		"limit": limit,
	})
}

// Latest returns the first chunks of the newest documents of kind. It backs
// questions that share no searchable words with the documents.
func (r *documentRepository) Latest(c context.Context, kind entity.DocumentKind, limit int) ([]entity.DocumentChunk, error) {
	return r.selectChunks(c, queryLatestChunks, map[string]interface{}{
		"kind":  kind,
		"limit": limit,
	})
}

func (r *documentRepository) selectChunks(c context.Context, namedQuery string, argsKV map[string]interface{}) ([]entity.DocumentChunk, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Chunk query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	chunks := make([]entity.DocumentChunk, 0)
	if err := sqlx.SelectContext(c, r.q, &chunks, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Chunk query execution err")
		return nil, err
	}

	return chunks, nil
}
