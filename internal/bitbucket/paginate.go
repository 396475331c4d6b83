package bitbucket

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/ryo246912/bb-qa-reviews/internal/models"
)

type requester interface {
	DoWithContext(ctx context.Context, method string, path string, body io.Reader, response interface{}) error
}

// paginate follows the "next" cursor of a Bitbucket collection starting at startURL.
// params are only sent with the first request; the server's next URL already encodes them.
// It returns the number of pages fetched successfully.
func paginate[T any](ctx context.Context, rest requester, startURL string, params url.Values, visit func(T) bool) (int, error) {
	next := startURL
	if len(params) > 0 {
		next += "?" + params.Encode()
	}

	pages := 0
	for next != "" {
		var page models.Page[T]
		if err := rest.DoWithContext(ctx, http.MethodGet, next, nil, &page); err != nil {
			return pages, err
		}
		pages++

		for _, v := range page.Values {
			if !visit(v) {
				return pages, nil
			}
		}
		next = page.Next
	}
	return pages, nil
}
