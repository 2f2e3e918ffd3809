package repositories_test

import (
	"testing"
	"time"

	"bookstore/internal/models"
	"bookstore/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestGORMCategoryRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	bookRepo := repositories.NewGORMBookRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	category := &models.Category{Name: "Fiction"}
	assert.NoError(t, categoryRepo.Create(category))

	book := &models.Book{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", Price: 11.99, StockQuantity: 10, CategoryID: &category.ID}
	assert.NoError(t, bookRepo.Create(book))
	keeper := &models.Book{Title: "Unrelated", Author: "Someone", ISBN: "isbn-keep", Price: 5, StockQuantity: 3}
	assert.NoError(t, bookRepo.Create(keeper))

	order := &models.Order{
		UserID:    "user-1",
		OrderDate: time.Now(),
		Status:    models.OrderStatusPending,
		Items:     []models.OrderItem{{BookID: book.ID, Quantity: 1, UnitPrice: 11.99}},
	}
	assert.NoError(t, orderRepo.PlaceOrder(order))
	assert.NoError(t, reviewRepo.Create(&models.Review{UserID: "user-1", BookID: book.ID, Rating: 5}))

	assert.NoError(t, categoryRepo.Delete(category.ID))

	// The category's book and its dependents are gone.
	_, err := bookRepo.GetByID(book.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var itemCount, reviewCount int64
	assert.NoError(t, db.Model(&models.OrderItem{}).Where("book_id = ?", book.ID).Count(&itemCount).Error)
	assert.NoError(t, db.Model(&models.Review{}).Where("book_id = ?", book.ID).Count(&reviewCount).Error)
	assert.Zero(t, itemCount)
	assert.Zero(t, reviewCount)

	// Books outside the category are untouched.
	_, err = bookRepo.GetByID(keeper.ID)
	assert.NoError(t, err)
}

func TestGORMCategoryRepository_DeleteUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)

	err := categoryRepo.Delete("no-such-category")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMCategoryRepository_UpdateUnknownCategoryNotInserted(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)

	err := categoryRepo.Update(&models.Category{ID: "no-such-id", Name: "Phantom"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var count int64
	assert.NoError(t, db.Model(&models.Category{}).Where("id = ?", "no-such-id").Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMCategoryRepository_CountBooks(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	bookRepo := repositories.NewGORMBookRepository(db)

	category := &models.Category{Name: "Science"}
	assert.NoError(t, categoryRepo.Create(category))
	assert.NoError(t, bookRepo.Create(&models.Book{Title: "A", Author: "X", ISBN: "isbn-1", Price: 1, StockQuantity: 1, CategoryID: &category.ID}))
	assert.NoError(t, bookRepo.Create(&models.Book{Title: "B", Author: "Y", ISBN: "isbn-2", Price: 1, StockQuantity: 1, CategoryID: &category.ID}))

	count, err := categoryRepo.CountBooks(category.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, count)
}
