package routes

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reminder-app/reminder/testutils"
)

func TestTasksRequireUser(t *testing.T) {
	client := newApp(t).webClient(t)

	w := client.Get("/tasks")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users/select", w.Header().Get("Location"))

	page := client.Follow(w)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Bitte zuerst Benutzer wählen oder anlegen.")
}

func TestRootRedirectsToTasks(t *testing.T) {
	client := newApp(t).webClient(t)

	w := client.Get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/tasks", w.Header().Get("Location"))
}

func TestSelectUser_CreateSignsIn(t *testing.T) {
	a := newApp(t)
	client := a.webClient(t)

	page := signUp(t, client, "  Alice ")

	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Benutzer angelegt und angemeldet.")
	assert.Contains(t, page.Body.String(), "Angemeldet als: <strong>Alice</strong>")
	assert.Equal(t, []string{"user.created"}, a.producer.Types())
}

func TestSelectUser_CreateRejectsDuplicateAndEmpty(t *testing.T) {
	a := newApp(t)
	testutils.CreateUser(t, a.db, "Alice")
	client := a.webClient(t)

	w := client.PostForm("/users/select", map[string]string{"action": "create", "name": "ALICE"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Name existiert bereits.")

	w = client.PostForm("/users/select", map[string]string{"action": "create", "name": "   "})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Name darf nicht leer sein.")

	// still signed out
	assert.Equal(t, http.StatusFound, client.Get("/tasks").Code)
}

func TestSelectUser_Pick(t *testing.T) {
	a := newApp(t)
	bob := testutils.CreateUser(t, a.db, "Bob")
	testutils.CreateUser(t, a.db, "Alice")
	client := a.webClient(t)

	list := client.Get("/users/select")
	require.Equal(t, http.StatusOK, list.Code)
	body := list.Body.String()
	assert.Less(t, strings.Index(body, ">Alice<"), strings.Index(body, ">Bob<"), "users are ordered by name")

	w := client.PostForm("/users/select", map[string]string{"action": "pick", "user_id": "999"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ungültige Auswahl.")

	w = client.PostForm("/users/select", map[string]string{"action": "pick", "user_id": "abc"})
	assert.Contains(t, w.Body.String(), "Ungültige Auswahl.")

	w = client.PostForm("/users/select", map[string]string{"action": "pick", "user_id": strconv.FormatUint(uint64(bob.ID), 10)})
	assert.Equal(t, http.StatusFound, w.Code)
	page := client.Follow(w)
	assert.Contains(t, page.Body.String(), "Benutzer gesetzt.")
	assert.Contains(t, page.Body.String(), "Angemeldet als: <strong>Bob</strong>")
}

func TestLogout(t *testing.T) {
	client := newApp(t).webClient(t)
	signUp(t, client, "Alice")

	w := client.Get("/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users/select", w.Header().Get("Location"))
	assert.Contains(t, client.Follow(w).Body.String(), "Abgemeldet.")

	assert.Equal(t, http.StatusFound, client.Get("/tasks").Code)
}

func TestHealthAndFavicon(t *testing.T) {
	client := newApp(t).webClient(t)

	w := client.Get("/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	assert.Equal(t, http.StatusNoContent, client.Get("/favicon.ico").Code)
}
