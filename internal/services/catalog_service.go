package services

import (
	"fmt"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// CatalogService handles business logic for books and categories.
type CatalogService struct {
	bookRepo     repositories.BookRepository
	categoryRepo repositories.CategoryRepository
	reviewRepo   repositories.ReviewRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	bookRepo repositories.BookRepository,
	categoryRepo repositories.CategoryRepository,
	reviewRepo repositories.ReviewRepository,
) *CatalogService {
	return &CatalogService{
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
	}
}

// BookDetail bundles everything the book page needs.
type BookDetail struct {
	Book          models.Book     `json:"book"`
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	RelatedBooks  []models.Book   `json:"related_books"`
}

// CategorySummary is a category with its book count.
type CategorySummary struct {
	models.Category
	BookCount int64 `json:"book_count"`
}

// SearchBooks lists in-stock books matching the filter. Out-of-stock
// books never appear in the public catalog.
func (s *CatalogService) SearchBooks(filter repositories.BookFilter) ([]models.Book, error) {
	filter.InStockOnly = true
	return s.bookRepo.Search(filter)
}

// GetBook retrieves a single book by its ID.
func (s *CatalogService) GetBook(id string) (*models.Book, error) {
	return s.bookRepo.GetByID(id)
}

// GetBookDetail retrieves a book together with its reviews, average
// rating and up to four related books from the same category.
func (s *CatalogService) GetBookDetail(id string) (*BookDetail, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByBookID(id)
	if err != nil {
		return nil, err
	}
	avg, err := s.reviewRepo.AverageRating(id)
	if err != nil {
		return nil, err
	}

	var related []models.Book
	if book.CategoryID != nil {
		sameCategory, err := s.bookRepo.Search(repositories.BookFilter{
			CategoryID:  *book.CategoryID,
			InStockOnly: true,
		})
		if err != nil {
			return nil, err
		}
		for _, b := range sameCategory {
			if b.ID == book.ID {
				continue
			}
			related = append(related, b)
			if len(related) == 4 {
				break
			}
		}
	}

	return &BookDetail{
		Book:          *book,
		Reviews:       reviews,
		AverageRating: avg,
		RelatedBooks:  related,
	}, nil
}

// CreateBook adds a book to the catalog.
func (s *CatalogService) CreateBook(book *models.Book) error {
	if book.CategoryID != nil && *book.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(*book.CategoryID); err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}
	}
	return s.bookRepo.Create(book)
}

// UpdateBook updates an existing book. Price edits never touch the
// unit prices already snapshotted on order items.
func (s *CatalogService) UpdateBook(book *models.Book) error {
	if book.CategoryID != nil && *book.CategoryID != "" {
		if _, err := s.categoryRepo.GetByID(*book.CategoryID); err != nil {
			return fmt.Errorf("invalid category: %w", err)
		}
	}
	return s.bookRepo.Update(book)
}

// DeleteBook removes a book and, through the repository, its order
// items and reviews.
func (s *CatalogService) DeleteBook(id string) error {
	return s.bookRepo.Delete(id)
}

// ListCategories returns all categories with their book counts.
func (s *CatalogService) ListCategories() ([]CategorySummary, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]CategorySummary, 0, len(categories))
	for _, c := range categories {
		count, err := s.categoryRepo.CountBooks(c.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, CategorySummary{Category: c, BookCount: count})
	}
	return summaries, nil
}

// BooksInCategory lists a category's in-stock books.
func (s *CatalogService) BooksInCategory(categoryID string) ([]models.Book, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, err
	}
	return s.bookRepo.Search(repositories.BookFilter{
		CategoryID:  categoryID,
		InStockOnly: true,
	})
}

// CreateCategory adds a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	if existing, err := s.categoryRepo.GetByName(category.Name); err == nil && existing != nil {
		return fmt.Errorf("category '%s' already exists", category.Name)
	}
	return s.categoryRepo.Create(category)
}

// UpdateCategory updates an existing category.
func (s *CatalogService) UpdateCategory(category *models.Category) error {
	return s.categoryRepo.Update(category)
}

// DeleteCategory removes a category; its books and their order items
// and reviews go with it.
func (s *CatalogService) DeleteCategory(id string) error {
	return s.categoryRepo.Delete(id)
}
