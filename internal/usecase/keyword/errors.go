// Package keyword provides use cases for managing interest keywords.
// Keywords drive the personalized item matching exposed by the API.
package keyword

import "errors"

// Sentinel errors for keyword use case operations.
var (
	// ErrKeywordNotFound indicates that the requested keyword was not found.
	// Typically returned when removing a keyword that is not registered.
	ErrKeywordNotFound = errors.New("keyword not found")

	// ErrDuplicateKeyword indicates that the keyword is already registered.
	// Keywords are unique; adding the same text twice is rejected.
	ErrDuplicateKeyword = errors.New("keyword already exists")
)
