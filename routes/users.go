package routes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"reminder-app/reminder/database"
	"reminder-app/reminder/middleware"
	"reminder-app/reminder/services"
	"reminder-app/reminder/session"
)

const (
	flashUserPicked  = "Benutzer gesetzt."
	flashUserCreated = "Benutzer angelegt und angemeldet."
	flashInvalidPick = "Ungültige Auswahl."
	flashNameEmpty   = "Name darf nicht leer sein."
	flashNameInvalid = "Name ist zu lang (max. 50 Zeichen)."
	flashNameExists  = "Name existiert bereits."
	flashLoggedOut   = "Abgemeldet."
)

func RegisterUserRoutes(router *gin.Engine, db *database.Database, userService services.UserServiceInterface) {
	router.GET(middleware.SelectUserPath, func(c *gin.Context) { SelectUserPage(c, db, userService) })
	router.POST(middleware.SelectUserPath, func(c *gin.Context) { SelectUser(c, db, userService) })
	router.GET("/logout", Logout)
}

func SelectUserPage(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	users, err := userService.GetUsers(db)
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "select_user.html", gin.H{"Users": users})
}

// SelectUser handles both forms of the selection page: picking an existing
// user and creating a new one. Either signs the user in.
func SelectUser(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	s := session.Default(c)

	switch c.PostForm("action") {
	case "pick":
		id, err := strconv.ParseUint(c.PostForm("user_id"), 10, 64)
		if err == nil {
			user, err := userService.GetUserById(db, uint(id))
			if err == nil {
				s.UserID = user.ID
				redirectWithFlash(c, "/tasks", flashUserPicked)
				return
			}
			if !errors.Is(err, services.ErrUserNotFound) {
				renderError(c, err)
				return
			}
		}
		s.AddFlash(flashInvalidPick)

	case "create":
		name := strings.TrimSpace(c.PostForm("name"))
		if name == "" {
			s.AddFlash(flashNameEmpty)
			break
		}
		user, err := userService.CreateUser(db, name)
		switch {
		case err == nil:
			s.UserID = user.ID
			redirectWithFlash(c, "/tasks", flashUserCreated)
			return
		case errors.Is(err, services.ErrUserExists):
			s.AddFlash(flashNameExists)
		case errors.Is(err, services.ErrInvalidName):
			s.AddFlash(flashNameInvalid)
		default:
			renderError(c, err)
			return
		}
	}

	SelectUserPage(c, db, userService)
}

func Logout(c *gin.Context) {
	session.Default(c).Clear()
	redirectWithFlash(c, middleware.SelectUserPath, flashLoggedOut)
}
