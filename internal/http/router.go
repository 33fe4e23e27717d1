package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(RequestIDMiddleware())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.NoRoute(func(c *gin.Context) {
		respondNotFound(c, "route not found")
	})
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})

	if cfg.ReadOnly {
		router.Use(ReadOnlyMiddleware(APIPrefix))
	}

	health := NewHealthController(cfg.Version)
	booksController := NewBooksController(cfg.BookStore, APIPrefix)

	// Static endpoints, independent of the store
	router.GET("/", health.Home)
	router.GET("/health", health.Status)

	// Books API endpoints
	api := router.Group(APIPrefix)
	{
		api.GET("/books", booksController.GetAllBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/:id", booksController.GetBook)
		api.PUT("/books/:id", booksController.ReplaceBook)
		api.PATCH("/books/:id", booksController.PatchBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
		api.GET("/books-by-author", booksController.GetBooksByAuthor)
		api.GET("/random-book", booksController.GetRandomBook)
	}

	return router
}
