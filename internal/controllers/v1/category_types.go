package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pockettrack/backend/internal/models"
)

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/f81566d9-af4d-4f13-9830-c62c4b5e4c7e"` // The category itself
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	Name  string        `json:"name" example:"Food & Dining"`    // Name of the category
	Icon  string        `json:"icon" example:"fas fa-utensils"`  // Icon of the category
	Color string        `json:"color" example:"#FF6B6B"`         // Color of the category
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API v1 representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Icon:         model.Icon,
		Color:        model.Color,
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Category `json:"data"`                                                          // The category data, if the request was successful
}
