package webapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"go-raceresult/pkg/rrtypes"
)

func newTestAPI(t *testing.T, router chi.Router) *Api {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(Config{
		Server:    strings.TrimPrefix(srv.URL, "http://"),
		PlainHTTP: true,
	}, nil)
}

func TestLogin(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/public/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "key-1", r.PostForm.Get("apikey"))
		w.Write([]byte("sess-1"))
	})
	api := newTestAPI(t, router)

	require.False(t, api.IsLoggedIn())
	require.NoError(t, api.Login(context.Background(), Credentials{APIKey: "key-1"}))
	assert.True(t, api.IsLoggedIn())
	assert.Equal(t, "sess-1", api.SessionID())
}

func TestSessionHeader(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/public/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sess-1"))
	})
	router.Get("/_ev1/api/data/count", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sess-1", r.Header.Get("Authorization"))
		w.Write([]byte("42"))
	})
	api := newTestAPI(t, router)
	require.NoError(t, api.Login(context.Background(), Credentials{APIKey: "k"}))

	count, err := api.Event("ev1").Data().Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestSessionRenewal(t *testing.T) {
	logins := 0
	router := chi.NewRouter()
	router.Post("/api/public/login", func(w http.ResponseWriter, r *http.Request) {
		logins++
		w.Write([]byte("sess-2"))
	})
	router.Get("/_ev1/api/data/count", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sess-2" || logins < 2 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("7"))
	})
	api := newTestAPI(t, router)
	require.NoError(t, api.Login(context.Background(), Credentials{APIKey: "k"}))
	require.Equal(t, 1, logins)

	count, err := api.Event("ev1").Data().Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.Equal(t, 2, logins)
}

func TestConcurrentSessionRenewal(t *testing.T) {
	var mu sync.Mutex
	logins := 0
	router := chi.NewRouter()
	router.Post("/api/public/login", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		logins++
		first := logins == 1
		mu.Unlock()
		if first {
			w.Write([]byte("sess-1"))
			return
		}
		w.Write([]byte("sess-2"))
	})
	router.Get("/_ev1/api/data/count", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sess-2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("5"))
	})
	api := newTestAPI(t, router)
	require.NoError(t, api.Login(context.Background(), Credentials{APIKey: "k"}))
	require.Equal(t, "sess-1", api.SessionID())

	// all callers hold the stale token; exactly one re-login renews it
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			count, err := api.Event("ev1").Data().Count(context.Background(), "")
			if err != nil {
				return err
			}
			if count != 5 {
				return fmt.Errorf("unexpected count %d", count)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, logins)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "wrapped error payload",
			status:   http.StatusInternalServerError,
			body:     `{"Error": "event not found"}`,
			expected: "event not found",
		},
		{
			name:     "plain text body",
			status:   http.StatusBadRequest,
			body:     "missing parameter",
			expected: "missing parameter",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Get("/_ev1/api/data/count", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			})
			api := newTestAPI(t, router)

			_, err := api.Event("ev1").Data().Count(context.Background(), "")
			require.Error(t, err)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, test.expected, apiErr.Message)
			assert.Equal(t, test.status, apiErr.StatusCode)
		})
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	api := New(DefaultConfig(), nil)
	assert.ErrorIs(t, api.Logout(context.Background()), ErrNotLoggedIn)
}

func TestEventList(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/public/eventlist", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024", r.URL.Query().Get("year"))
		assert.NotEmpty(t, r.URL.Query().Get("addsettings"))
		w.Write([]byte(`[
			{"ID": "ev1", "EventName": "City Run", "EventDate": "2024-06-15", "EventDate2": "1899-12-30 00:00:00"}
		]`))
	})
	api := newTestAPI(t, router)

	items, err := api.EventList(context.Background(), 2024, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ev1", items[0].ID)
	assert.Equal(t, "City Run", items[0].EventName)
	assert.Equal(t, rrtypes.NewDateTime(2024, 6, 15, 0, 0, 0), items[0].EventDate)
	assert.True(t, items[0].EventDate2.IsZero())
}

func TestBuildURLPlainHTTP(t *testing.T) {
	api := New(Config{Server: "host.example", PlainHTTP: true}, nil)
	assert.Equal(t, "http://host.example/api/public/eventlist", api.buildURL("", "public/eventlist", nil))
}

func TestBuildURL(t *testing.T) {
	// the zero Config (minus Server) must produce https URLs
	api := New(Config{Server: "host.example"}, nil)

	tests := []struct {
		name     string
		eventID  string
		cmd      string
		params   Params
		expected string
	}{
		{
			name:     "public command",
			cmd:      "public/eventlist",
			expected: "https://host.example/api/public/eventlist",
		},
		{
			name:     "event command",
			eventID:  "ev1",
			cmd:      "data/count",
			expected: "https://host.example/_ev1/api/data/count",
		},
		{
			name:     "with params",
			eventID:  "ev1",
			cmd:      "data/count",
			params:   Params{"filter": "[Bib]>0"},
			expected: "https://host.example/_ev1/api/data/count?filter=%5BBib%5D%3E0",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, api.buildURL(test.eventID, test.cmd, test.params))
		})
	}
}

func TestParamString(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{
			name:     "string",
			value:    "abc",
			expected: "abc",
		},
		{
			name:     "bool",
			value:    true,
			expected: "true",
		},
		{
			name:     "int",
			value:    42,
			expected: "42",
		},
		{
			name:     "string slice",
			value:    []string{"a", "b"},
			expected: "a,b",
		},
		{
			name:     "int slice",
			value:    []int{1, 2, 3},
			expected: "1,2,3",
		},
		{
			name:     "decimal",
			value:    rrtypes.DecimalFromFloat(12.5),
			expected: "12.5",
		},
		{
			name:     "date",
			value:    rrtypes.NewDate(2024, 6, 15),
			expected: "2024-06-15",
		},
		{
			name:     "zero datetime",
			value:    rrtypes.DateTime{},
			expected: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, paramString(test.value))
		})
	}
}
