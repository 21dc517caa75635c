package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/vbonduro/councilweb/internal/domain"
)

const DefaultGalleryPageSize = 15

// Search types accepted by the gallery search endpoint.
const (
	SearchAll     = "all"
	SearchTitle   = "title"
	SearchContent = "content"
)

type GalleryQuery struct {
	Page       int
	Size       int
	Category   string
	Keyword    string
	SearchType string
}

func (q GalleryQuery) values() url.Values {
	size := q.Size
	if size <= 0 {
		size = DefaultGalleryPageSize
	}
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(size))
	if q.Category != "" && q.Category != "all" {
		v.Set("category", q.Category)
	}
	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		searchType := q.SearchType
		if searchType == "" {
			searchType = SearchAll
		}
		v.Set("keyword", kw)
		v.Set("searchType", searchType)
	}
	return v
}

// UploadedImages is the response of an image upload.
type UploadedImages struct {
	URLs      []string `json:"urls"`
	FileNames []string `json:"fileNames"`
}

type GalleryClient struct {
	c *Client
}

func NewGalleryClient(c *Client) *GalleryClient {
	return &GalleryClient{c: c}
}

func (g *GalleryClient) List(ctx context.Context, q GalleryQuery) (Page[domain.GalleryItem], error) {
	return getPage[domain.GalleryItem](ctx, g.c, "/api/gallery", q.values())
}

// Search queries the dedicated search endpoint; keyword and searchType are
// always sent.
func (g *GalleryClient) Search(ctx context.Context, q GalleryQuery) (Page[domain.GalleryItem], error) {
	v := q.values()
	if v.Get("keyword") == "" {
		v.Set("keyword", q.Keyword)
		v.Set("searchType", SearchAll)
	}
	return getPage[domain.GalleryItem](ctx, g.c, "/api/gallery/search", v)
}

func (g *GalleryClient) Detail(ctx context.Context, id int64) (*domain.GalleryDetail, error) {
	var d domain.GalleryDetail
	if err := g.c.Get(ctx, fmt.Sprintf("/api/gallery/%d", id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *GalleryClient) Create(ctx context.Context, in domain.GalleryInput) (*domain.GalleryDetail, error) {
	var d domain.GalleryDetail
	if err := g.c.Post(ctx, "/api/gallery", in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *GalleryClient) Update(ctx context.Context, id int64, in domain.GalleryInput) (*domain.GalleryDetail, error) {
	var d domain.GalleryDetail
	if err := g.c.Put(ctx, fmt.Sprintf("/api/gallery/%d", id), in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *GalleryClient) Delete(ctx context.Context, id int64) error {
	return g.c.Delete(ctx, fmt.Sprintf("/api/gallery/%d", id))
}

func (g *GalleryClient) UploadImages(ctx context.Context, files []File) (*UploadedImages, error) {
	var out UploadedImages
	if err := g.c.Upload(ctx, "/api/gallery/upload", "images", files, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *GalleryClient) IncrementViewCount(ctx context.Context, id int64) error {
	return g.c.Post(ctx, fmt.Sprintf("/api/gallery/%d/view", id), nil, nil)
}
