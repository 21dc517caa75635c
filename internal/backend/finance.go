package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vbonduro/councilweb/internal/domain"
)

const DefaultFinancePageSize = 10

type FinanceQuery struct {
	Page      int
	Size      int
	Keyword   string
	SortBy    string
	SortOrder string
	// Year is omitted from the request when zero.
	Year int
}

func (q FinanceQuery) values() url.Values {
	size := q.Size
	if size <= 0 {
		size = DefaultFinancePageSize
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortOrder := q.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(size))
	v.Set("sortBy", sortBy)
	v.Set("sortOrder", sortOrder)
	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		v.Set("keyword", kw)
	}
	if q.Year != 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	return v
}

// UploadedFile is the response of a PDF upload.
type UploadedFile struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

type FinanceClient struct {
	c *Client
}

func NewFinanceClient(c *Client) *FinanceClient {
	return &FinanceClient{c: c}
}

func (f *FinanceClient) List(ctx context.Context, q FinanceQuery) (Page[domain.FinanceReport], error) {
	return getPage[domain.FinanceReport](ctx, f.c, "/api/finance/reports", q.values())
}

func (f *FinanceClient) Detail(ctx context.Context, id int64) (*domain.FinanceReport, error) {
	var r domain.FinanceReport
	if err := f.c.Get(ctx, fmt.Sprintf("/api/finance/reports/%d", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (f *FinanceClient) Create(ctx context.Context, r domain.FinanceReport) (*domain.FinanceReport, error) {
	var out domain.FinanceReport
	if err := f.c.Post(ctx, "/api/finance/reports", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *FinanceClient) Update(ctx context.Context, id int64, r domain.FinanceReport) (*domain.FinanceReport, error) {
	var out domain.FinanceReport
	if err := f.c.Put(ctx, fmt.Sprintf("/api/finance/reports/%d", id), r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *FinanceClient) Delete(ctx context.Context, id int64) error {
	return f.c.Delete(ctx, fmt.Sprintf("/api/finance/reports/%d", id))
}

func (f *FinanceClient) UploadPDF(ctx context.Context, file File) (*UploadedFile, error) {
	var out UploadedFile
	if err := f.c.Upload(ctx, "/api/finance/reports/upload", "file", []File{file}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadURL is the absolute download link for a report's PDF.
func (f *FinanceClient) DownloadURL(id int64) string {
	return fmt.Sprintf("%s/api/finance/reports/%d/download", f.c.BaseURL(), id)
}

// FileURL resolves a report's fileUrl against the API base.
func (f *FinanceClient) FileURL(r domain.FinanceReport) string {
	return f.c.ResolveURL(r.FileURL)
}
