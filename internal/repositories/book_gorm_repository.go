package repositories

import (
	"errors"
	"fmt"
	"strings"

	"bookstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

// Search retrieves books matching the filter. Filters combine
// conjunctively; the free-text search matches title, author or ISBN.
func (r *GORMBookRepository) Search(filter BookFilter) ([]models.Book, error) {
	query := r.db.Model(&models.Book{})

	if filter.InStockOnly {
		query = query.Where("stock_quantity > 0")
	}
	if filter.Search != "" {
		// LOWER + LIKE keeps the match case-insensitive on both
		// Postgres and SQLite.
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(isbn) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	switch filter.Sort {
	case SortPriceLow:
		query = query.Order("price ASC")
	case SortPriceHigh:
		query = query.Order("price DESC")
	case SortNewest:
		query = query.Order("created_at DESC")
	default:
		query = query.Order("title ASC")
	}

	var books []models.Book
	if err := query.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book by its ID from the database.
func (r *GORMBookRepository) GetByID(id string) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get book by ID %s: %w", id, err)
	}
	return &book, nil
}

// GetByISBN retrieves a single book by its ISBN from the database.
func (r *GORMBookRepository) GetByISBN(isbn string) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, "isbn = ?", isbn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book with ISBN %s: %w", isbn, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get book by ISBN %s: %w", isbn, err)
	}
	return &book, nil
}

// Create creates a new book in the database.
func (r *GORMBookRepository) Create(book *models.Book) error {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// Update updates an existing book in the database. Save upserts on an
// unknown primary key, so existence is checked first.
func (r *GORMBookRepository) Update(book *models.Book) error {
	if err := r.db.First(&models.Book{}, "id = ?", book.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("book with ID %s: %w", book.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update book: %w", err)
	}
	if err := r.db.Save(book).Error; err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	return nil
}

// Delete removes a book together with its order items and reviews in
// one transaction.
func (r *GORMBookRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items for book %s: %w", id, err)
		}
		if err := tx.Where("book_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("failed to delete reviews for book %s: %w", id, err)
		}
		res := tx.Delete(&models.Book{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete book: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("book with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}
