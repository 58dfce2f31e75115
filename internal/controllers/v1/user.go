package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pockettrack/backend/internal/httputil"
	"github.com/pockettrack/backend/internal/models"
)

type URIUsername struct {
	Username string `uri:"username" binding:"required"` // Username of the user
}

func RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUsers)
		r.GET("", GetUsers)
		r.POST("", CreateUsers)
	}
	{
		r.OPTIONS("/:username", OptionsUserDetail)
		r.GET("/:username", GetUser)
		r.OPTIONS("/:username/recompute", OptionsUserRecompute)
		r.POST("/:username/recompute", RecomputeUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUsers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		404	{object}	httpError
// @Param			username	path	string	true	"Username of the user"
// @Router			/v1/users/{username} [options]
func OptionsUserDetail(c *gin.Context) {
	var uri URIUsername
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where(&models.User{Username: uri.Username}).First(&models.User{}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Param			username	path	string	true	"Username of the user"
// @Router			/v1/users/{username}/recompute [options]
func OptionsUserRecompute(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create users
// @Description	Provisions new users with all aggregates initialized to zero
// @Tags			Users
// @Produce		json
// @Success		201		{object}	UserCreateResponse
// @Failure		400		{object}	UserCreateResponse
// @Failure		500		{object}	UserCreateResponse
// @Param			users	body		[]UserEditable	true	"Users"
// @Router			/v1/users [post]
func CreateUsers(c *gin.Context) {
	var editables []UserEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := UserCreateResponse{}

	for _, editable := range editables {
		user := editable.model()
		err = models.DB.Create(&user).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		apiResource := newUser(c, user)
		r.Data = append(r.Data, UserResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		List users
// @Description	Returns a list of all users
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		500	{object}	UserListResponse
// @Router			/v1/users [get]
func GetUsers(c *gin.Context) {
	var users []models.User
	err := models.DB.Order("username ASC").Find(&users).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserListResponse{
			Error: &e,
		})
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(c, user))
	}

	c.JSON(http.StatusOK, UserListResponse{Data: data})
}

// @Summary		Get user
// @Description	Returns the user for the lookup key
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			username	path	string	true	"Username of the user"
// @Router			/v1/users/{username} [get]
func GetUser(c *gin.Context) {
	var uri URIUsername
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{Username: uri.Username}).First(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}

// @Summary		Recompute aggregates
// @Description	Rebuilds the user's balance, monthly totals and budget totals from the transaction log. Repairs aggregates that drifted from the log.
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			username	path	string	true	"Username of the user"
// @Router			/v1/users/{username}/recompute [post]
func RecomputeUser(c *gin.Context) {
	var uri URIUsername
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{Username: uri.Username}).First(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	err = user.RecomputeAggregates(models.DB, time.Now().In(time.UTC))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}
