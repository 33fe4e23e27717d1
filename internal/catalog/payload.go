// Package catalog holds request payloads for the books API and the
// partial-update whitelist.
package catalog

import "github.com/mrlokans/bookcatalog/internal/entities"

// BookPayload is the body accepted by create and replace.
type BookPayload struct {
	Title         string  `json:"title" binding:"required"`
	Author        string  `json:"author" binding:"required"`
	CodeID        string  `json:"code_id" binding:"max=64"`
	Amount        int     `json:"amount" binding:"gte=0,lte=2147483647"`
	Price         float64 `json:"price" binding:"gte=0"`
	CoverImageURL *string `json:"cover_image_url" binding:"omitempty,url"`
}

// ToEntity converts the payload into a book without an id. An empty cover
// URL is stored as no cover.
func (p BookPayload) ToEntity() *entities.Book {
	cover := p.CoverImageURL
	if cover != nil && *cover == "" {
		cover = nil
	}
	return &entities.Book{
		Title:         p.Title,
		Author:        p.Author,
		CodeID:        p.CodeID,
		Amount:        p.Amount,
		Price:         p.Price,
		CoverImageURL: cover,
	}
}
