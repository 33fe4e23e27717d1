// Package books provides database operations for the books catalog.
//
// Every operation runs a single statement on a connection checked out of the
// pool for the duration of the call and returned on every exit path. Values
// are always passed as bound parameters.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(ctx, 123)
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")

	// ErrEmpty is returned by GetRandomBook when the catalog has no books.
	ErrEmpty = errors.New("no books available")

	// ErrNoFields is returned when an update carries no mutable column.
	ErrNoFields = errors.New("no updatable fields")
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// conn runs fn on a dedicated connection bound to ctx.
func (r *Repository) conn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Connection(fn)
}

// GetAllBooks returns every book in store order.
func (r *Repository) GetAllBooks(ctx context.Context) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.conn(ctx, func(tx *gorm.DB) error {
		return tx.Find(&books).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBookByID retrieves a single book.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.conn(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Take(&book).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

// GetBooksByAuthor returns books whose author equals author exactly
// (case-sensitive). An empty slice means no match.
func (r *Repository) GetBooksByAuthor(ctx context.Context, author string) ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.conn(ctx, func(tx *gorm.DB) error {
		return tx.Where("author = ?", author).Find(&books).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list books by author: %w", err)
	}
	return books, nil
}

// GetRandomBook picks one book uniformly at random using sqlite's RANDOM()
// ordering. This sorts the whole table and is only meant for small catalogs.
func (r *Repository) GetRandomBook(ctx context.Context) (*entities.Book, error) {
	var book entities.Book
	err := r.conn(ctx, func(tx *gorm.DB) error {
		return tx.Order("RANDOM()").Take(&book).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("get random book: %w", err)
	}
	return &book, nil
}

// CreateBook inserts book and sets book.ID to the generated key.
func (r *Repository) CreateBook(ctx context.Context, book *entities.Book) error {
	book.ID = 0
	err := r.conn(ctx, func(tx *gorm.DB) error {
		return tx.Create(book).Error
	})
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// ReplaceBook overwrites every mutable column of book id with the values
// from book.
func (r *Repository) ReplaceBook(ctx context.Context, id uint, book *entities.Book) error {
	var cover any
	if book.CoverImageURL != nil {
		cover = *book.CoverImageURL
	}
	return r.UpdateBookFields(ctx, id, map[string]any{
		entities.BookColumnTitle:         book.Title,
		entities.BookColumnAuthor:        book.Author,
		entities.BookColumnCodeID:        book.CodeID,
		entities.BookColumnAmount:        book.Amount,
		entities.BookColumnPrice:         book.Price,
		entities.BookColumnCoverImageURL: cover,
	})
}

// UpdateBookFields sets the given columns of book id in one statement.
// Keys outside entities.BookMutableColumns are rejected, so column names
// never come from anywhere but that list. Zero affected rows means the id
// does not exist.
func (r *Repository) UpdateBookFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return ErrNoFields
	}
	for column := range fields {
		if !entities.IsMutableBookColumn(column) {
			return fmt.Errorf("update book %d: column %q is not updatable", id, column)
		}
	}

	var affected int64
	err := r.conn(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&entities.Book{}).Where("id = ?", id).Updates(fields)
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("update book %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBook removes book id permanently.
func (r *Repository) DeleteBook(ctx context.Context, id uint) error {
	var affected int64
	err := r.conn(ctx, func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&entities.Book{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
