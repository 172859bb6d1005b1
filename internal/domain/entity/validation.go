package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength caps accepted URLs. Feed and article URLs beyond this are
// rejected before they reach storage or the fetcher.
const maxURLLength = 2048

// ValidateURL checks that a feed or article URL is usable: non-empty,
// within the length cap, parseable, http or https, with a host and without
// embedded credentials. Private-network filtering happens at fetch time in
// the scraper, where it is configurable; subscription data stays
// network-agnostic.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	// 認証情報付きURLは購読として保存しない
	if parsed.User != nil {
		return &ValidationError{Field: "url", Message: "URL must not contain credentials"}
	}

	return nil
}
