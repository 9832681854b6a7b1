package assistantRepository

const (
	queryCreateDocument = `
INSERT INTO documents (id, kind, filename, location, created_at)
VALUES (:id, :kind, :filename, :location, :created_at)`

	queryCreateChunk = `
INSERT INTO document_chunks (document_id, kind, position, content)
VALUES (:document_id, :kind, :position, :content)`

	querySearchChunks = `
SELECT id, document_id, kind, position, content
FROM document_chunks
WHERE kind = :kind
  AND tsv @@ to_tsquery('english', :query)
ORDER BY ts_rank(tsv, to_tsquery('english', :query)) DESC, id
LIMIT :limit`

	queryLatestChunks = `
SELECT c.id, c.document_id, c.kind, c.position, c.content
FROM document_chunks c
JOIN documents d ON d.id = c.document_id
WHERE c.kind = :kind
ORDER BY d.created_at DESC, c.position
LIMIT :limit`
)
