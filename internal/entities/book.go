package entities

// Book is the single catalog record. ID is assigned by the store on insert.
type Book struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Title         string  `gorm:"not null;size:512" json:"title"`
	Author        string  `gorm:"not null;index;size:256" json:"author"`
	CodeID        string  `gorm:"size:64" json:"code_id"`
	Amount        int     `json:"amount"`
	Price         float64 `json:"price"`
	CoverImageURL *string `gorm:"size:2048" json:"cover_image_url"`
}

func (Book) TableName() string {
	return "books"
}

// Column names of the books table, shared by the repository and the
// partial-update whitelist.
const (
	BookColumnTitle         = "title"
	BookColumnAuthor        = "author"
	BookColumnCodeID        = "code_id"
	BookColumnAmount        = "amount"
	BookColumnPrice         = "price"
	BookColumnCoverImageURL = "cover_image_url"
)

// BookMutableColumns lists every column a client may change after creation.
var BookMutableColumns = []string{
	BookColumnTitle,
	BookColumnAuthor,
	BookColumnCodeID,
	BookColumnAmount,
	BookColumnPrice,
	BookColumnCoverImageURL,
}

// IsMutableBookColumn reports whether name is one of BookMutableColumns.
func IsMutableBookColumn(name string) bool {
	for _, column := range BookMutableColumns {
		if column == name {
			return true
		}
	}
	return false
}
