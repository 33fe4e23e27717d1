package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/catalog"
	"github.com/mrlokans/bookcatalog/internal/database/books"
	"github.com/mrlokans/bookcatalog/internal/entities"
)

// BookStore defines the database operations behind the books API.
type BookStore interface {
	GetAllBooks(ctx context.Context) ([]entities.Book, error)
	GetBookByID(ctx context.Context, id uint) (*entities.Book, error)
	GetBooksByAuthor(ctx context.Context, author string) ([]entities.Book, error)
	GetRandomBook(ctx context.Context) (*entities.Book, error)
	CreateBook(ctx context.Context, book *entities.Book) error
	ReplaceBook(ctx context.Context, id uint, book *entities.Book) error
	UpdateBookFields(ctx context.Context, id uint, fields map[string]any) error
	DeleteBook(ctx context.Context, id uint) error
}

type BooksController struct {
	store     BookStore
	apiPrefix string
}

func NewBooksController(store BookStore, apiPrefix string) *BooksController {
	return &BooksController{
		store:     store,
		apiPrefix: apiPrefix,
	}
}

// bookLocation is the path a client uses to address book id.
func (controller *BooksController) bookLocation(id uint) string {
	return fmt.Sprintf("%s/books/%d", controller.apiPrefix, id)
}

// GetAllBooks lists every book.
// GET /api/v1/books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	result, err := controller.store.GetAllBooks(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBook returns a single book.
// GET /api/v1/books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(c.Request.Context(), id)
	if err != nil {
		controller.respondStoreError(c, err, id, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// GetBooksByAuthor lists books whose author matches the query exactly.
// GET /api/v1/books-by-author?author=
func (controller *BooksController) GetBooksByAuthor(c *gin.Context) {
	author, ok := c.GetQuery("author")
	if !ok || author == "" {
		respondBadRequest(c, "author query parameter is required")
		return
	}

	result, err := controller.store.GetBooksByAuthor(c.Request.Context(), author)
	if err != nil {
		respondInternalError(c, err, "list books by author")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRandomBook returns one book chosen at random.
// GET /api/v1/random-book
func (controller *BooksController) GetRandomBook(c *gin.Context) {
	book, err := controller.store.GetRandomBook(c.Request.Context())
	if errors.Is(err, books.ErrEmpty) {
		respondError(c, http.StatusNotFound, CodeNoBooks, "no books available")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get random book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// CreateBook stores a new book and points the client at it.
// POST /api/v1/books
func (controller *BooksController) CreateBook(c *gin.Context) {
	var payload catalog.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid book: "+err.Error())
		return
	}

	book := payload.ToEntity()
	if err := controller.store.CreateBook(c.Request.Context(), book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	c.Header("Location", controller.bookLocation(book.ID))
	c.JSON(http.StatusCreated, book)
}

// ReplaceBook overwrites all mutable fields of a book.
// PUT /api/v1/books/:id
func (controller *BooksController) ReplaceBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload catalog.BookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, "invalid book: "+err.Error())
		return
	}

	if err := controller.store.ReplaceBook(c.Request.Context(), id, payload.ToEntity()); err != nil {
		controller.respondStoreError(c, err, id, "replace book")
		return
	}
	c.Status(http.StatusNoContent)
}

// PatchBook updates the whitelisted fields present in the body.
// PATCH /api/v1/books/:id
func (controller *BooksController) PatchBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		respondBadRequest(c, "request body must be a JSON object")
		return
	}

	fields, err := catalog.FilterPatch(raw)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := controller.store.UpdateBookFields(c.Request.Context(), id, fields); err != nil {
		controller.respondStoreError(c, err, id, "patch book")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBook removes a book.
// DELETE /api/v1/books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteBook(c.Request.Context(), id); err != nil {
		controller.respondStoreError(c, err, id, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

func (controller *BooksController) respondStoreError(c *gin.Context, err error, id uint, action string) {
	if errors.Is(err, books.ErrNotFound) {
		respondNotFound(c, fmt.Sprintf("book %d not found", id))
		return
	}
	respondInternalError(c, err, action)
}
