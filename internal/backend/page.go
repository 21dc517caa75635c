package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Page is a normalised list response. The backend answers either with a
// Spring-Data page object or with a bare array; both decode to a Page.
type Page[T any] struct {
	Content       []T
	TotalPages    int
	TotalElements int
	Number        int
	Size          int
	// Unrecognised is set when the body was neither a page object nor an
	// array (null, a scalar, or an object without content).
	Unrecognised bool
}

type pageEnvelope[T any] struct {
	Content       *[]T `json:"content"`
	TotalPages    *int `json:"totalPages"`
	TotalElements *int `json:"totalElements"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
}

// DecodePage decodes raw into a Page. A bare array is a single page; a page
// object missing totalPages is treated as a single page and one missing
// totalElements counts its content.
func DecodePage[T any](raw []byte) (Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Page[T]{Unrecognised: true}, nil
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Content: items, TotalPages: 1, TotalElements: len(items), Size: len(items)}, nil
	case '{':
		var env pageEnvelope[T]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return Page[T]{}, err
		}
		if env.Content == nil {
			return Page[T]{Unrecognised: true}, nil
		}
		p := Page[T]{
			Content:       *env.Content,
			TotalPages:    1,
			TotalElements: len(*env.Content),
			Number:        env.Number,
			Size:          env.Size,
		}
		if env.TotalPages != nil && *env.TotalPages > 0 {
			p.TotalPages = *env.TotalPages
		}
		if env.TotalElements != nil && *env.TotalElements > 0 {
			p.TotalElements = *env.TotalElements
		}
		return p, nil
	default:
		// null, numbers, strings, booleans
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Unrecognised: true}, nil
	}
}

// getPage fetches path and decodes the body with DecodePage.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values) (Page[T], error) {
	var raw []byte
	if err := c.Get(ctx, path, query, &raw); err != nil {
		return Page[T]{}, err
	}
	p, err := DecodePage[T](raw)
	if err != nil {
		return Page[T]{}, &Error{Kind: ErrDecode, Method: http.MethodGet, Path: path, Status: http.StatusOK, Err: err}
	}
	return p, nil
}
