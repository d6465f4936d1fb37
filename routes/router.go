package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"reminder-app/reminder/config"
	"reminder-app/reminder/database"
	"reminder-app/reminder/logging"
	"reminder-app/reminder/middleware"
	"reminder-app/reminder/services"
	"reminder-app/reminder/session"
)

const (
	webSessionCookie   = "reminder_session"
	kioskSessionCookie = "reminder_kiosk"
)

// Services bundles what both front ends need.
type Services struct {
	Users services.UserServiceInterface
	Tasks services.TaskServiceInterface
}

// NewWebRouter builds the CRUD front end.
func NewWebRouter(cfg config.Config, db *database.Database, svc Services, logger zerolog.Logger) (*gin.Engine, error) {
	router, err := newEngine(cfg, logger)
	if err != nil {
		return nil, err
	}
	router.Use(middleware.SessionMiddleware(sessionOptions(cfg, webSessionCookie)))

	RegisterHealthRoutes(router, db)
	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/tasks") })
	RegisterUserRoutes(router, db, svc.Users)

	authed := router.Group("/", middleware.RequireUser(db, svc.Users))
	RegisterTaskRoutes(authed, db, svc.Tasks, svc.Users)

	return router, nil
}

// NewKioskRouter builds the kiosk front end.
func NewKioskRouter(cfg config.Config, db *database.Database, svc Services, logger zerolog.Logger, opts KioskOptions) (*gin.Engine, error) {
	router, err := newEngine(cfg, logger)
	if err != nil {
		return nil, err
	}
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.SessionMiddleware(sessionOptions(cfg, kioskSessionCookie)))

	RegisterHealthRoutes(router, db)
	RegisterKioskRoutes(router, db, svc.Users, svc.Tasks, opts)

	return router, nil
}

func newEngine(cfg config.Config, logger zerolog.Logger) (*gin.Engine, error) {
	switch cfg.AppEnv {
	case config.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	}

	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(logging.RequestLogger(logger), gin.Recovery())
	router.SetHTMLTemplate(tmpl)
	return router, nil
}

func sessionOptions(cfg config.Config, cookie string) session.Options {
	return session.Options{
		CookieName: cookie,
		Secret:     []byte(cfg.SessionSecret),
		TTL:        cfg.SessionTTL(),
		Secure:     cfg.IsProduction(),
	}
}
