// Package session keeps per-browser state in a signed cookie: the selected
// user, the kiosk rotation modes and pending flash messages.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reminder-app/reminder/utils/token"
)

const contextKey = "session"

// Options configures the session cookie.
type Options struct {
	CookieName string
	Secret     []byte
	TTL        time.Duration
	Secure     bool
}

type Session struct {
	UserID  uint
	values  map[string]int
	flashes []string
	opts    Options
}

// Load reads the session from the request cookie. A missing or invalid
// cookie yields an empty session.
func Load(c *gin.Context, opts Options) *Session {
	s := &Session{values: map[string]int{}, opts: opts}

	claims, err := token.ExtractAndValidateToken(c, opts.CookieName, opts.Secret)
	if err != nil {
		return s
	}
	s.UserID = claims.UserID
	for k, v := range claims.Modes {
		s.values[k] = v
	}
	s.flashes = append(s.flashes, claims.Flashes...)
	return s
}

// Default returns the session attached by the session middleware, or an
// empty one that cannot be saved.
func Default(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return &Session{values: map[string]int{}}
}

// Attach stores s in the request context.
func Attach(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

func (s *Session) GetInt(key string) (int, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Session) SetInt(key string, value int) {
	s.values[key] = value
}

func (s *Session) AddFlash(message string) {
	s.flashes = append(s.flashes, message)
}

// Flashes returns the pending messages and removes them from the session.
func (s *Session) Flashes() []string {
	flashes := s.flashes
	s.flashes = nil
	return flashes
}

// Clear drops all session state, including pending flashes.
func (s *Session) Clear() {
	s.UserID = 0
	s.values = map[string]int{}
	s.flashes = nil
}

// Save writes the session cookie. It must run before the response body.
func (s *Session) Save(c *gin.Context) error {
	if s.opts.CookieName == "" {
		return nil
	}
	signed, err := token.GenerateToken(s.UserID, s.values, s.flashes, s.opts.Secret, s.opts.TTL)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.opts.CookieName, signed, int(s.opts.TTL.Seconds()), "/", "", s.opts.Secure, true)
	return nil
}
