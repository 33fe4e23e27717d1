package http

// APIPrefix is the versioned prefix of the books API.
const APIPrefix = "/api/v1"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	BookStore BookStore

	// Reject write methods on the books API
	ReadOnly bool

	// Application info
	Version string
}
