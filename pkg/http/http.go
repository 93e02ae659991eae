package http

import "net/http"

// HTTPClient is the subset of *http.Client the rest of the code depends on.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
