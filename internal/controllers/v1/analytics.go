package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pockettrack/backend/internal/analytics"
	"github.com/pockettrack/backend/internal/httputil"
	"github.com/pockettrack/backend/internal/models"
	pt_uuid "github.com/pockettrack/backend/internal/uuid"
)

func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/spending", OptionsAnalyticsSpending)
		r.GET("/spending", GetSpendingBreakdown)
	}
	{
		r.OPTIONS("/trends", OptionsAnalyticsTrends)
		r.GET("/trends", GetSpendingTrends)
	}
}

type SpendingBreakdownResponse struct {
	Data  []analytics.CategorySpend `json:"data"`                                                          // Per-category spending, largest first
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SpendingTrendsResponse struct {
	Data  *analytics.Report `json:"data"`                                                          // The trend report
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/spending [options]
func OptionsAnalyticsSpending(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/trends [options]
func OptionsAnalyticsTrends(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Spending breakdown
// @Description	Returns the user's expenses grouped by category with each category's share of the total, sorted by amount, largest first
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	SpendingBreakdownResponse
// @Failure		400	{object}	SpendingBreakdownResponse
// @Failure		404	{object}	SpendingBreakdownResponse
// @Failure		500	{object}	SpendingBreakdownResponse
// @Param			user	query	string	true	"ID of the user"
// @Router			/v1/analytics/spending [get]
func GetSpendingBreakdown(c *gin.Context) {
	transactions, categories, e := analyticsInput(c)
	if e != nil {
		s := e.Error()
		c.JSON(status(e), SpendingBreakdownResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SpendingBreakdownResponse{
		Data: analytics.Breakdown(transactions, categories),
	})
}

// @Summary		Spending trends
// @Description	Compares the user's expenses in the last 30 days with the 30 days before that, overall and per category
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	SpendingTrendsResponse
// @Failure		400	{object}	SpendingTrendsResponse
// @Failure		404	{object}	SpendingTrendsResponse
// @Failure		500	{object}	SpendingTrendsResponse
// @Param			user	query	string	true	"ID of the user"
// @Router			/v1/analytics/trends [get]
func GetSpendingTrends(c *gin.Context) {
	transactions, categories, e := analyticsInput(c)
	if e != nil {
		s := e.Error()
		c.JSON(status(e), SpendingTrendsResponse{
			Error: &s,
		})
		return
	}

	report := analytics.Trends(transactions, categories, time.Now().In(time.UTC))
	c.JSON(http.StatusOK, SpendingTrendsResponse{Data: &report})
}

// analyticsInput verifies the user from the query string and loads the data
// both analytics endpoints operate on.
func analyticsInput(c *gin.Context) ([]models.Transaction, map[uuid.UUID]models.Category, error) {
	var filter userQuery
	if err := c.Bind(&filter); err != nil {
		return nil, nil, err
	}

	if filter.User == pt_uuid.Nil {
		return nil, nil, errUserIDParameter
	}

	err := models.DB.First(&models.User{}, filter.User.UUID).Error
	if err != nil {
		return nil, nil, err
	}

	var transactions []models.Transaction
	err = models.DB.
		Where(&models.Transaction{UserID: filter.User.UUID}).
		Find(&transactions).Error
	if err != nil {
		return nil, nil, err
	}

	categories, err := models.CategoriesByID(models.DB)
	if err != nil {
		return nil, nil, err
	}

	return transactions, categories, nil
}
