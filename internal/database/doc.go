// Package database opens the sqlite store backing the books catalog.
//
// Two store modes exist, chosen once at startup from configuration:
//
//   - file: a persistent database file at config.Database.Path
//   - memory: one shared in-memory database for the whole process
//
// Book queries live in the books sub-package:
//
//	db, err := database.NewDatabase(cfg.Database)
//	repo := books.NewRepository(db.DB)
//	book, err := repo.GetBookByID(ctx, 123)
package database
