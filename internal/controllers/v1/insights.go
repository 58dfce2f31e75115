package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pockettrack/backend/internal/httputil"
	"github.com/pockettrack/backend/internal/insights"
	"github.com/pockettrack/backend/internal/models"
	pt_uuid "github.com/pockettrack/backend/internal/uuid"
)

func RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsInsights)
	r.GET("", GetInsights)
}

type InsightListResponse struct {
	Data  []insights.Notification `json:"data"`                                                          // Notifications for the user's current state
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights [options]
func OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get insights
// @Description	Evaluates all notification rules against the user's current budgets, goals and monthly totals. Notification IDs are deterministic, the same condition always yields the same ID.
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	InsightListResponse
// @Failure		400	{object}	InsightListResponse
// @Failure		404	{object}	InsightListResponse
// @Failure		500	{object}	InsightListResponse
// @Param			user	query	string	true	"ID of the user"
// @Router			/v1/insights [get]
func GetInsights(c *gin.Context) {
	var filter userQuery
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InsightListResponse{
			Error: &s,
		})
		return
	}

	if filter.User == pt_uuid.Nil {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, InsightListResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err := models.DB.First(&user, filter.User.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InsightListResponse{
			Error: &s,
		})
		return
	}

	var budgets []models.Budget
	err = models.DB.Where(&models.Budget{UserID: user.ID}).Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InsightListResponse{
			Error: &s,
		})
		return
	}

	var goals []models.Goal
	err = models.DB.Where(&models.Goal{UserID: user.ID}).Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InsightListResponse{
			Error: &s,
		})
		return
	}

	categories, err := models.CategoriesByID(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InsightListResponse{
			Error: &s,
		})
		return
	}

	notifications := insights.Generate(insights.Snapshot{
		User:       user,
		Budgets:    budgets,
		Goals:      goals,
		Categories: categories,
	}, time.Now().In(time.UTC))

	c.JSON(http.StatusOK, InsightListResponse{Data: notifications})
}
