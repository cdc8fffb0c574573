package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/config"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/session"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (*client.Client, *session.Session, *notify.Recorder) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess := session.New(token)
	recorder := &notify.Recorder{}
	c := client.New(config.APIConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, sess, recorder)
	return c, sess, recorder
}

func TestClient_InjectsHeaders(t *testing.T) {
	var gotAuth, gotContentType, gotRequestID string
	router := mux.NewRouter()
	router.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}).Methods(http.MethodGet)

	c, _, _ := newTestClient(t, router, "tok-123")

	var out map[string]interface{}
	require.NoError(t, c.Get(context.Background(), "/products", &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	c, _, _ := newTestClient(t, handler, "")

	var out map[string]interface{}
	require.NoError(t, c.Get(context.Background(), "/anything", &out))
	assert.Empty(t, gotAuth)
}

func TestClient_SessionExpired(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, sess, recorder := newTestClient(t, handler, "stale-token")

	var out map[string]interface{}
	err := c.Get(context.Background(), "/bookings", &out)

	require.ErrorIs(t, err, cerr.ErrSessionExpired)
	assert.False(t, sess.Authenticated(), "session must be cleared on 401")

	entries := recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, notify.LevelError, entries[0].Level)
	assert.Equal(t, "Session expired", entries[0].Title)
	assert.Equal(t, "Please log in again.", entries[0].Description)
}

func TestClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "backend message is used",
			status:      http.StatusUnprocessableEntity,
			body:        `{"message":"name already taken"}`,
			wantMessage: "name already taken",
		},
		{
			name:        "fallback on empty body",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "HTTP error! status: 500",
		},
		{
			name:        "fallback on unparseable body",
			status:      http.StatusBadGateway,
			body:        "<html>bad gateway</html>",
			wantMessage: "HTTP error! status: 502",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			c, _, recorder := newTestClient(t, handler, "tok")

			var out map[string]interface{}
			err := c.Get(context.Background(), "/products", &out)

			require.Error(t, err)
			assert.Equal(t, tc.wantMessage, err.Error())

			var apiErr *cerr.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Empty(t, recorder.Entries(), "non-401 failures do not toast at the client")
		})
	}
}

func TestClient_DecodeFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})
	c, _, _ := newTestClient(t, handler, "tok")

	var out map[string]interface{}
	err := c.Get(context.Background(), "/products", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_DeleteIgnoresEmptyBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	c, _, _ := newTestClient(t, handler, "tok")

	require.NoError(t, c.Delete(context.Background(), "/products/3"))
}

func TestClient_AbsoluteURLBypassesBase(t *testing.T) {
	hit := false
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.Write([]byte(`{}`))
	}))
	defer other.Close()

	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("base server must not be hit")
	}), "tok")

	var out map[string]interface{}
	require.NoError(t, c.Get(context.Background(), other.URL+"/hook", &out))
	assert.True(t, hit)
}

func TestPaginated(t *testing.T) {
	assert.Equal(t, "/products?limit=10&page=2", client.Paginated("/products", 2, 10))
	assert.Equal(t, "/things?a=b&limit=5&page=1", client.Paginated("/things?a=b", 1, 5))
}
