package testutils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// Client replays cookies between requests against a gin engine, the way a
// browser would.
type Client struct {
	Router  http.Handler
	cookies map[string]*http.Cookie
}

func NewClient(router http.Handler) *Client {
	return &Client{Router: router, cookies: map[string]*http.Cookie{}}
}

func (c *Client) Get(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	return c.Do(req)
}

// PostForm sends an urlencoded form body.
func (c *Client) PostForm(path string, form map[string]string) *httptest.ResponseRecorder {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.Do(req)
}

func (c *Client) Do(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	c.Router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(c.cookies, cookie.Name)
			continue
		}
		c.cookies[cookie.Name] = cookie
	}
	return w
}

// Follow issues a GET for the Location of a redirect response.
func (c *Client) Follow(w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	return c.Get(w.Header().Get("Location"))
}
