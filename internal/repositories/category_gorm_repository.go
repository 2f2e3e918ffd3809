package repositories

import (
	"errors"
	"fmt"

	"bookstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories from the database.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID from the database.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// GetByName retrieves a single category by its unique name.
func (r *GORMCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by name %s: %w", name, err)
	}
	return &category, nil
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update updates an existing category in the database. Save upserts
// on an unknown primary key, so existence is checked first.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	if err := r.db.First(&models.Category{}, "id = ?", category.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("category with ID %s: %w", category.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if err := r.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

// Delete removes a category and cascades to its books, which in turn
// drags their order items and reviews along, all in one transaction.
func (r *GORMCategoryRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var bookIDs []string
		if err := tx.Model(&models.Book{}).Where("category_id = ?", id).Pluck("id", &bookIDs).Error; err != nil {
			return fmt.Errorf("failed to list books for category %s: %w", id, err)
		}
		if len(bookIDs) > 0 {
			if err := tx.Where("book_id IN ?", bookIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return fmt.Errorf("failed to delete order items for category %s: %w", id, err)
			}
			if err := tx.Where("book_id IN ?", bookIDs).Delete(&models.Review{}).Error; err != nil {
				return fmt.Errorf("failed to delete reviews for category %s: %w", id, err)
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Book{}).Error; err != nil {
				return fmt.Errorf("failed to delete books for category %s: %w", id, err)
			}
		}
		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete category: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("category with ID %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// CountBooks returns how many books belong to a category.
func (r *GORMCategoryRepository) CountBooks(id string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Book{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count books for category %s: %w", id, err)
	}
	return count, nil
}
