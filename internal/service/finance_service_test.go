package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/councilweb/internal/backend"
)

func TestFinanceListFallsBackWhenUnreachable(t *testing.T) {
	c := unreachableBackend(t)
	svc := NewFinanceService(backend.NewFinanceClient(c), discardLogger())

	listing := svc.List(context.Background(), backend.FinanceQuery{Page: 3, Keyword: "예산"})

	require.Len(t, listing.Rows, 1)
	assert.Equal(t, "2025년 미리보기 회계 보고서", listing.Rows[0].Title)
	assert.True(t, listing.Fallback)
	assert.Equal(t, 1, listing.Pager.TotalPages)
	assert.Equal(t, 0, listing.Pager.Page)
	assert.Equal(t, 1, listing.TotalElements)
	assert.Equal(t, c.BaseURL()+"/finance/2025_1학기_회계보고서.pdf", listing.Rows[0].PreviewURL)
}

func TestFinanceListFallsBackOnStatusAndUnrecognisedBody(t *testing.T) {
	for name, h := range map[string]http.HandlerFunc{
		"status": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		},
		"null body": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`null`))
		},
		"object without content": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		},
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewFinanceService(backend.NewFinanceClient(newTestBackend(t, h)), discardLogger())

			listing := svc.List(context.Background(), backend.FinanceQuery{})

			require.Len(t, listing.Rows, 1)
			assert.True(t, listing.Fallback)
		})
	}
}

func TestFinanceListPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/finance/reports", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		assert.Equal(t, "asc", r.URL.Query().Get("sortOrder"))
		_, _ = w.Write([]byte(`{"content":[
			{"id":7,"title":"2학기","fileUrl":"https://cdn.example/7.pdf","fileSize":1024,"createdAt":"2024-12-01T09:00:00"},
			{"id":8,"title":"1학기","fileUrl":"/files/8.pdf","fileSize":2048,"createdAt":"2024-06-01T09:00:00"}
		],"totalPages":3,"totalElements":23}`))
	})
	c := newTestBackend(t, mux)
	svc := NewFinanceService(backend.NewFinanceClient(c), discardLogger())

	listing := svc.List(context.Background(), backend.FinanceQuery{Page: 1, Year: 2024, SortOrder: "asc"})

	assert.False(t, listing.Fallback)
	require.Len(t, listing.Rows, 2)
	assert.Equal(t, "https://cdn.example/7.pdf", listing.Rows[0].PreviewURL)
	assert.Equal(t, c.BaseURL()+"/files/8.pdf", listing.Rows[1].PreviewURL)
	assert.Equal(t, c.BaseURL()+"/api/finance/reports/8/download", listing.Rows[1].DownloadURL)
	assert.Equal(t, "2024.12.01", listing.Rows[0].CreatedAt.Dotted())
	assert.Equal(t, 3, listing.Pager.TotalPages)
	assert.Equal(t, 1, listing.Pager.Page)
	assert.Equal(t, 23, listing.TotalElements)
}

func TestFinanceListEmptyPageIsNotFallback(t *testing.T) {
	c := newTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[],"totalPages":0,"totalElements":0}`))
	}))
	svc := NewFinanceService(backend.NewFinanceClient(c), discardLogger())

	listing := svc.List(context.Background(), backend.FinanceQuery{})

	assert.False(t, listing.Fallback)
	assert.Empty(t, listing.Rows)
	assert.Equal(t, 1, listing.Pager.TotalPages)
}

func TestFinanceYearsOptions(t *testing.T) {
	svc := NewFinanceService(backend.NewFinanceClient(unreachableBackend(t)), discardLogger())
	svc.now = func() time.Time { return time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) }

	listing := svc.List(context.Background(), backend.FinanceQuery{})

	assert.Equal(t, []int{0, 2025, 2024, 2023, 2022, 2021, 2020}, listing.Years)
}

func TestFinancePreview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/finance/reports/5", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":5,"title":"회계","fileUrl":"/files/5.pdf"}`))
	})
	c := newTestBackend(t, mux)
	svc := NewFinanceService(backend.NewFinanceClient(c), discardLogger())

	row, err := svc.Preview(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, c.BaseURL()+"/files/5.pdf", row.PreviewURL)

	row, err = svc.Preview(context.Background(), 6)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestFinancePreviewFallback(t *testing.T) {
	svc := NewFinanceService(backend.NewFinanceClient(unreachableBackend(t)), discardLogger())

	row, err := svc.Preview(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "2025_1학기_회계보고서.pdf", row.FileName)

	row, err = svc.Preview(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, row)
}
