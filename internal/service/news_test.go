package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxzi/contentd/internal/repository"
)

var newsCols = []string{"id", "title", "content", "link", "published_date", "is_published", "created_at", "updated_at"}

func newNewsService(t *testing.T) (*NewsService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewNewsService(repository.NewNewsRepository(db), slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func TestNewsList(t *testing.T) {
	svc, mock := newNewsService(t)

	published := time.Date(2025, 3, 9, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM news`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM news`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(newsCols).
			AddRow(1, "Maintenance notice", "Scheduled work this weekend.", "https://example.com/news/1", published, true, published, published))

	items, total, err := svc.List(1, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
	// Date is the display rendering of the published timestamp.
	assert.Equal(t, "2025-03-09", items[0].Date)
	assert.Equal(t, published, items[0].PublishedDate)
	assert.True(t, items[0].IsPublished)
}

func TestNewsGetByIDAbsent(t *testing.T) {
	svc, mock := newNewsService(t)

	mock.ExpectQuery(`SELECT .+ FROM news WHERE id = \? AND is_published = 1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(newsCols))

	n, err := svc.GetByID(404)
	require.NoError(t, err)
	assert.Nil(t, n)
}
