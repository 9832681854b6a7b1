package assistantRepository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"SonicSavor/internal/entity"
	"SonicSavor/pkg/log"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chunkCols = []string{"id", "document_id", "kind", "position", "content"}

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })

	return New(sqlx.NewDb(raw, "postgres"), log.NewDiscardLogger()), mock
}

func TestCreateDocumentWithChunks(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents")).
		WithArgs("doc-1", entity.DocumentKindMenu, "menu.txt", "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO document_chunks")).
		WithArgs("doc-1", entity.DocumentKindMenu, 0, "Burgers").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO document_chunks")).
		WithArgs("doc-1", entity.DocumentKindMenu, 1, "Fries").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	client, err := repo.NewClient(true)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Documents.CreateDocument(ctx, entity.Document{
		ID: "doc-1", Kind: entity.DocumentKindMenu, Filename: "menu.txt", CreatedAt: now,
	}))
	require.NoError(t, client.Documents.CreateChunks(ctx, []entity.DocumentChunk{
		{DocumentID: "doc-1", Kind: entity.DocumentKindMenu, Position: 0, Content: "Burgers"},
		{DocumentID: "doc-1", Kind: entity.DocumentKindMenu, Position: 1, Content: "Fries"},
	}))
	require.NoError(t, client.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ts_rank(tsv")).
		WithArgs(entity.DocumentKindGuidelines, "cold | food", "cold | food", 2).
		WillReturnRows(sqlmock.NewRows(chunkCols).
			AddRow(3, "doc-2", "guidelines", 0, "Cold food is replaced free of charge."))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	chunks, err := client.Documents.Search(context.Background(), entity.DocumentKindGuidelines, "cold | food", 2)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "doc-2", chunks[0].DocumentID)
	assert.Equal(t, entity.DocumentKindGuidelines, chunks[0].Kind)
}

func TestLatest(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN documents d")).
		WithArgs(entity.DocumentKindMenu, 2).
		WillReturnRows(sqlmock.NewRows(chunkCols))

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	chunks, err := client.Documents.Latest(context.Background(), entity.DocumentKindMenu, 2)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}
