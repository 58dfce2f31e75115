package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a fixed classification tag for transactions and budgets.
// Categories are seeded reference data and read-only afterwards.
type Category struct {
	DefaultModel
	Name  string `json:"name" gorm:"uniqueIndex" example:"Food & Dining"`
	Icon  string `json:"icon" example:"fas fa-utensils"`
	Color string `json:"color" example:"#F57C00"`
}

var ErrCategoryNameNotUnique = errors.New("the category name must be unique")

// OtherCategory is the placeholder that read-side computations use when a
// transaction references a category that does not exist.
var OtherCategory = Category{
	Name:  "Other",
	Icon:  "fas fa-question",
	Color: "#9E9E9E",
}

var defaultCategories = []Category{
	{Name: "Food & Dining", Icon: "fas fa-utensils", Color: "#F57C00"},
	{Name: "Textbooks", Icon: "fas fa-book", Color: "#D32F2F"},
	{Name: "Transportation", Icon: "fas fa-bus", Color: "#1976D2"},
	{Name: "Entertainment", Icon: "fas fa-gamepad", Color: "#388E3C"},
	{Name: "Personal Care", Icon: "fas fa-heart", Color: "#E91E63"},
	{Name: "Income", Icon: "fas fa-briefcase", Color: "#388E3C"},
	{Name: "Other", Icon: "fas fa-question", Color: "#9E9E9E"},
}

// SeedCategories ensures that the default categories exist.
func SeedCategories(db *gorm.DB) error {
	for _, category := range defaultCategories {
		err := db.Where(&Category{Name: category.Name}).FirstOrCreate(&category).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// CategoriesByID returns a lookup map for all categories.
func CategoriesByID(db *gorm.DB) (map[uuid.UUID]Category, error) {
	var categories []Category
	err := db.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	return byID, nil
}
