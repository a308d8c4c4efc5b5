package auth

import (
	"github.com/labstack/echo/v4"

	"taskboard/internal/model"
)

// ContextUserKey is the echo context key under which the resolved identity is
// stored. The identity is resolved once per request by the routing layer.
const ContextUserKey = "currentUser"

// CurrentUser returns the identity bound to the request, or nil when the
// request is anonymous.
func CurrentUser(c echo.Context) *model.User {
	u, _ := c.Get(ContextUserKey).(*model.User)
	return u
}

// IsAdmin reports whether the identity exists and carries the superuser flag.
func IsAdmin(u *model.User) bool {
	return u != nil && u.IsSuperuser
}
