package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"reminder-app/reminder/config"
	"reminder-app/reminder/database"
	"reminder-app/reminder/services"
	"reminder-app/reminder/testutils"
)

var testNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvTest,
		SessionSecret:       "test-secret",
		SessionTTLHours:     1,
		AllowedOrigins:      "*",
		KioskRefreshSeconds: 30,
	}
}

type app struct {
	db       *database.Database
	producer *testutils.RecordingProducer
	svc      Services
}

func newApp(t *testing.T) app {
	db := testutils.SetupTestDB(t)
	producer := &testutils.RecordingProducer{}
	return app{
		db:       db,
		producer: producer,
		svc: Services{
			Users: services.NewUserService(producer, zerolog.Nop()),
			Tasks: services.NewTaskService(producer, zerolog.Nop()),
		},
	}
}

func (a app) webClient(t *testing.T) *testutils.Client {
	router, err := NewWebRouter(testConfig(), a.db, a.svc, zerolog.Nop())
	require.NoError(t, err)
	return testutils.NewClient(router)
}

func (a app) kioskClient(t *testing.T, defaultUser string) *testutils.Client {
	cfg := testConfig()
	router, err := NewKioskRouter(cfg, a.db, a.svc, zerolog.Nop(), KioskOptions{
		DefaultUser: defaultUser,
		Refresh:     cfg.RefreshInterval(),
		Now:         func() time.Time { return testNow },
	})
	require.NoError(t, err)
	return testutils.NewClient(router)
}

// signUp creates a user through the selection form and follows the redirect.
func signUp(t *testing.T, client *testutils.Client, name string) *httptest.ResponseRecorder {
	w := client.PostForm("/users/select", map[string]string{"action": "create", "name": name})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/tasks", w.Header().Get("Location"))
	return client.Follow(w)
}
