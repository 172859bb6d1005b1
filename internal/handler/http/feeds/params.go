package feeds

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// parseLimit reads the optional ?limit= query parameter.
// Absent means the default; anything outside 1-50 is rejected.
func parseLimit(u *url.URL) (int, error) {
	raw := u.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer: invalid value %q", raw)
	}
	if limit < 1 || limit > maxLimit {
		return 0, fmt.Errorf("limit must be between 1 and %d", maxLimit)
	}
	return limit, nil
}
