package v1

import (
	pt_uuid "github.com/pockettrack/backend/internal/uuid"
)

type URIID struct {
	ID pt_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// userQuery is the query filter for all user-scoped list endpoints. The
// user parameter is required, there is no implicit current user.
type userQuery struct {
	User pt_uuid.UUID `form:"user"` // ID of the user the resources belong to
}
