package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reminder-app/reminder/models"
	"reminder-app/reminder/services"
	"reminder-app/reminder/session"
	"reminder-app/reminder/testutils"
)

var testSession = session.Options{CookieName: "test_session", Secret: []byte("secret"), TTL: time.Hour}

func newGuardedRouter(userService services.UserServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware(testSession))
	router.POST("/login/:id", func(c *gin.Context) {
		s := session.Default(c)
		if c.Param("id") == "1" {
			s.UserID = 1
		} else {
			s.UserID = 99
		}
		_ = s.Save(c)
		c.Status(http.StatusNoContent)
	})
	router.GET("/flashes", func(c *gin.Context) {
		c.JSON(http.StatusOK, session.Default(c).Flashes())
	})
	guarded := router.Group("/", RequireUser(nil, userService))
	guarded.GET("/private", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.String(http.StatusOK, user.Name)
	})
	return router
}

func TestRequireUser_NoSessionRedirects(t *testing.T) {
	userService := new(testutils.MockUserService)
	client := testutils.NewClient(newGuardedRouter(userService))

	w := client.Get("/private")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, SelectUserPath, w.Header().Get("Location"))
	assert.Contains(t, client.Get("/flashes").Body.String(), FlashSelectFirst)
	userService.AssertNotCalled(t, "GetUserById", mock.Anything, mock.Anything)
}

func TestRequireUser_KnownUser(t *testing.T) {
	userService := new(testutils.MockUserService)
	userService.On("GetUserById", mock.Anything, uint(1)).Return(models.User{ID: 1, Name: "Alice"}, nil)
	client := testutils.NewClient(newGuardedRouter(userService))

	client.PostForm("/login/1", nil)
	w := client.Get("/private")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Alice", w.Body.String())
	userService.AssertExpectations(t)
}

func TestRequireUser_StaleUserCountsAsSignedOut(t *testing.T) {
	userService := new(testutils.MockUserService)
	userService.On("GetUserById", mock.Anything, uint(99)).Return(models.User{}, services.ErrUserNotFound).Once()
	client := testutils.NewClient(newGuardedRouter(userService))

	client.PostForm("/login/99", nil)
	w := client.Get("/private")
	assert.Equal(t, http.StatusFound, w.Code)

	// the stale id was cleared, so the next request does not look it up again
	w = client.Get("/private")
	assert.Equal(t, http.StatusFound, w.Code)
	userService.AssertExpectations(t)
}

func TestRequireUser_DatabaseError(t *testing.T) {
	userService := new(testutils.MockUserService)
	userService.On("GetUserById", mock.Anything, uint(1)).Return(models.User{}, errors.New("db down"))
	client := testutils.NewClient(newGuardedRouter(userService))

	client.PostForm("/login/1", nil)
	w := client.Get("/private")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware("http://kiosk.local,http://wall.local"))
	router.GET("/kiosk/alice", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/kiosk/alice", nil)
	req.Header.Set("Origin", "http://kiosk.local")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://kiosk.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/kiosk/alice", nil)
	req.Header.Set("Origin", "http://evil.local")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
