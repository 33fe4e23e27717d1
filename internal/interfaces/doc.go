// Package interfaces documents the abstractions the HTTP layer depends on.
//
//   - BookStore: persistence behind the books API (internal/http/books.go),
//     implemented by books.Repository (internal/database/books).
//
// Implementations are pinned with compile-time checks in checks.go:
//
//	var _ http.BookStore = (*books.Repository)(nil)
package interfaces
