package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/councilweb/internal/domain"
)

type row struct {
	ID int `json:"id"`
}

func TestDecodePage(t *testing.T) {
	tests := []struct {
		name             string
		body             string
		wantIDs          []int
		wantPages        int
		wantElements     int
		wantUnrecognised bool
	}{
		{
			name:         "page object",
			body:         `{"content":[{"id":1},{"id":2}],"totalPages":4,"totalElements":38,"number":1,"size":10}`,
			wantIDs:      []int{1, 2},
			wantPages:    4,
			wantElements: 38,
		},
		{
			name:         "missing totalPages is a single page",
			body:         `{"content":[{"id":7}]}`,
			wantIDs:      []int{7},
			wantPages:    1,
			wantElements: 1,
		},
		{
			name:         "zero totalPages is a single page",
			body:         `{"content":[],"totalPages":0,"totalElements":0}`,
			wantIDs:      []int{},
			wantPages:    1,
			wantElements: 0,
		},
		{
			name:         "bare array",
			body:         ` [{"id":3},{"id":4},{"id":5}] `,
			wantIDs:      []int{3, 4, 5},
			wantPages:    1,
			wantElements: 3,
		},
		{name: "null", body: `null`, wantUnrecognised: true},
		{name: "object without content", body: `{"message":"ok"}`, wantUnrecognised: true},
		{name: "empty body", body: ``, wantUnrecognised: true},
		{name: "scalar", body: `42`, wantUnrecognised: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePage[row]([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantUnrecognised, p.Unrecognised)
			if tt.wantUnrecognised {
				return
			}
			ids := make([]int, 0, len(p.Content))
			for _, r := range p.Content {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantElements, p.TotalElements)
		})
	}
}

func TestDecodePageMalformed(t *testing.T) {
	_, err := DecodePage[row]([]byte(`{"content":[{"id":"x"}]}`))
	assert.Error(t, err)

	_, err = DecodePage[row]([]byte(`[{"id":1}`))
	assert.Error(t, err)
}

func TestDecodePageKeepsRowsWithOddDates(t *testing.T) {
	body := `{"content":[
		{"id":1,"title":"1월 결산","createdAt":"2025-03-02T09:30:00"},
		{"id":2,"title":"2월 결산","createdAt":"March 2nd"}
	],"totalPages":1,"totalElements":2}`

	p, err := DecodePage[domain.FinanceReport]([]byte(body))
	require.NoError(t, err)
	require.Len(t, p.Content, 2)
	assert.Equal(t, "2025.03.02", p.Content[0].CreatedAt.Dotted())
	assert.Equal(t, "2월 결산", p.Content[1].Title)
	assert.True(t, p.Content[1].CreatedAt.IsZero())
	assert.Empty(t, p.Content[1].CreatedAt.Dotted())
}
