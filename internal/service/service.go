// Package service holds the page services. Each one turns a request's
// query state into the data a page renders, applying that page's failure
// policy: some pages surface backend errors with a retry, others silently
// substitute a built-in dataset.
package service

import (
	"net/http"

	"github.com/vbonduro/councilweb/internal/backend"
)

// urlResolver turns backend-relative file references into absolute URLs.
type urlResolver interface {
	ResolveURL(ref string) string
}

func isNotFound(err error) bool {
	return backend.StatusCode(err) == http.StatusNotFound
}
