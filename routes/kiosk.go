package routes

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"reminder-app/reminder/database"
	"reminder-app/reminder/kiosk"
	"reminder-app/reminder/models"
	"reminder-app/reminder/services"
	"reminder-app/reminder/session"
)

// KioskOptions configures the kiosk front end.
type KioskOptions struct {
	DefaultUser string
	Refresh     time.Duration
	Now         func() time.Time
}

func (o KioskOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func RegisterKioskRoutes(router *gin.Engine, db *database.Database, userService services.UserServiceInterface, taskService services.TaskServiceInterface, opts KioskOptions) {
	router.GET("/", func(c *gin.Context) { KioskIndex(c, opts) })
	router.GET("/kiosk/:name", func(c *gin.Context) { KioskView(c, db, userService, taskService, opts) })
	router.POST("/kiosk/:name/action", func(c *gin.Context) { KioskAction(c, db, taskService) })
}

func KioskIndex(c *gin.Context, opts KioskOptions) {
	if opts.DefaultUser != "" {
		c.Redirect(http.StatusFound, kioskPath(opts.DefaultUser))
		return
	}
	c.String(http.StatusOK, "Kiosk: /kiosk/<name> aufrufen oder KIOSK_DEFAULT_USER setzen.")
}

func KioskView(c *gin.Context, db *database.Database, userService services.UserServiceInterface, taskService services.TaskServiceInterface, opts KioskOptions) {
	name := c.Param("name")
	user, err := userService.GetUserByName(db, name)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.String(http.StatusNotFound, "Unbekannter Benutzer: %s", name)
			return
		}
		renderError(c, err)
		return
	}

	open, err := taskService.GetOpenTasksForAssignee(db, user.ID)
	if err != nil {
		renderError(c, err)
		return
	}

	mode := kiosk.LoadMode(session.Default(c), user.Name)
	view := kiosk.BuildView(user, mode, open, opts.now(), opts.Refresh)

	c.HTML(http.StatusOK, "kiosk.html", gin.H{
		"View":      view,
		"ActionURL": kioskPath(name) + "/action",
	})
}

// KioskAction handles the three kiosk buttons. Anything it cannot apply is
// ignored; the response is always a redirect back to the view.
func KioskAction(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	name := c.Param("name")
	back := kioskPath(name)

	var status models.Status
	switch c.PostForm("action") {
	case "cycle":
		s := session.Default(c)
		kiosk.AdvanceMode(s, name)
		if err := s.Save(c); err != nil {
			c.Error(err)
		}
		c.Redirect(http.StatusFound, back)
		return
	case "done":
		status = models.StatusDone
	case "discard":
		status = models.StatusDiscarded
	default:
		c.Redirect(http.StatusFound, back)
		return
	}

	id, err := strconv.ParseUint(c.PostForm("task_id"), 10, 64)
	if err == nil && id > 0 {
		_, err = taskService.SetStatus(db, uint(id), status, 0)
		if err != nil && !errors.Is(err, services.ErrTaskNotFound) {
			renderError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, back)
}

func kioskPath(name string) string {
	return "/kiosk/" + url.PathEscape(name)
}
