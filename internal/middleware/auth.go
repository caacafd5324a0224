package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/constants"
	apierrors "github.com/masindi/relief-coordination-api/internal/errors"
	"github.com/masindi/relief-coordination-api/internal/models"
)

// Principal is the authenticated user as seen by workflow operations. It is
// built once from the session at the authentication boundary and passed
// through the request context, never read from ambient storage.
type Principal struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  models.UserRole
}

// RequireAuth resolves the session into a Principal. Unauthenticated requests
// are redirected to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := principalFromSession(c)
		if !ok {
			c.Redirect(http.StatusFound, constants.LoginPath)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipal, principal)
		c.Next()
	}
}

// RequireRole guards a route behind a specific role. Must run after RequireAuth.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.Redirect(http.StatusFound, constants.LoginPath)
			c.Abort()
			return
		}
		if principal.Role != role {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentPrincipal retrieves the authenticated principal from the request context.
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(constants.ContextKeyPrincipal)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// EstablishSession binds the user's identity into the session. Called at the
// authentication boundary only (register and login).
func EstablishSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, user.ID.String())
	session.Set(constants.SessionKeyUserEmail, user.Email)
	session.Set(constants.SessionKeyUserName, user.DisplayName())
	session.Set(constants.SessionKeyUserRole, string(user.Role))
	return session.Save()
}

// ClearSession removes all session state. Safe to call with no active session.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

func principalFromSession(c *gin.Context) (Principal, bool) {
	session := sessions.Default(c)

	rawID, ok := session.Get(constants.SessionKeyUserID).(string)
	if !ok || rawID == "" {
		return Principal{}, false
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Principal{}, false
	}

	email, _ := session.Get(constants.SessionKeyUserEmail).(string)
	name, _ := session.Get(constants.SessionKeyUserName).(string)
	role, _ := session.Get(constants.SessionKeyUserRole).(string)

	return Principal{
		ID:    id,
		Email: email,
		Name:  name,
		Role:  models.UserRole(role),
	}, true
}
