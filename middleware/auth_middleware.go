package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reminder-app/reminder/database"
	"reminder-app/reminder/models"
	"reminder-app/reminder/services"
	"reminder-app/reminder/session"
)

const (
	userContextKey = "user"

	SelectUserPath   = "/users/select"
	FlashSelectFirst = "Bitte zuerst Benutzer wählen oder anlegen."
)

// RequireUser lets the request through only when the session names an
// existing user, which is then available through CurrentUser.
func RequireUser(db *database.Database, userService services.UserServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Default(c)

		if s.UserID != 0 {
			user, err := userService.GetUserById(db, s.UserID)
			if err == nil {
				c.Set(userContextKey, user)
				c.Next()
				return
			}
			if !errors.Is(err, services.ErrUserNotFound) {
				c.Error(err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			s.Clear()
		}

		s.AddFlash(FlashSelectFirst)
		if err := s.Save(c); err != nil {
			c.Error(err)
		}
		c.Redirect(http.StatusFound, SelectUserPath)
		c.Abort()
	}
}

// CurrentUser returns the user stored by RequireUser.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
