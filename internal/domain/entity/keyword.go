package entity

// Keyword represents a stored interest keyword used for item matching.
type Keyword struct {
	ID        string
	Keyword   string
	CreatedAt int64 // Unix seconds
}
