package scraper

import "errors"

// Sentinel errors returned by the fetchers. Callers match them with
// errors.Is to decide between fallback and failure.
var (
	ErrInvalidURL       = errors.New("invalid URL")
	ErrPrivateIP        = errors.New("URL resolves to private IP")
	ErrTimeout          = errors.New("request timed out")
	ErrBodyTooLarge     = errors.New("response body too large")
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrExtractionFailed = errors.New("content extraction failed")
)
