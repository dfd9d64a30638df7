package handler

import (
	"canino/internal/delivery/http/middleware"
	"canino/internal/delivery/http/response"
	"canino/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerID extracts the authenticated user's ID set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// callerRole extracts the first role of the authenticated user. Role
// middleware has already verified membership, so the first entry is the one
// that admitted the request.
func callerRole(c echo.Context) (entity.Role, error) {
	roles, ok := c.Get(middleware.ContextKeyRoles).([]string)
	if !ok || len(roles) == 0 {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Invalid roles in token")
	}

	return entity.Role(roles[0]), nil
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid "+name+" parameter")
	}

	return id, nil
}
