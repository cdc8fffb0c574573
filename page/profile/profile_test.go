package profile_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleanduds/admin-dashboard/client"
	"github.com/cleanduds/admin-dashboard/config"
	"github.com/cleanduds/admin-dashboard/model"
	"github.com/cleanduds/admin-dashboard/notify"
	profilepage "github.com/cleanduds/admin-dashboard/page/profile"
	"github.com/cleanduds/admin-dashboard/service/profile"
	"github.com/cleanduds/admin-dashboard/session"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, router *mux.Router) (*profilepage.Controller, *notify.Recorder) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	recorder := &notify.Recorder{}
	api := client.New(config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, session.New("tok"), recorder)
	return profilepage.NewController(profile.NewProfileService(api), recorder), recorder
}

func TestController_LoadSeedsDraft(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.User{ID: 1, Name: "Admin", Email: "admin@cleanduds.com", Role: "admin"})
	}).Methods(http.MethodGet)

	ctrl, _ := newController(t, router)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NotNil(t, ctrl.Me())
	assert.Equal(t, "admin", ctrl.Me().Role)
	assert.Equal(t, "Admin", ctrl.Draft.Name)
	assert.Equal(t, "admin@cleanduds.com", ctrl.Draft.Email)
}

func TestController_SubmitUpdates(t *testing.T) {
	var got model.UserInput
	router := mux.NewRouter()
	router.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(model.User{ID: 1, Name: "Admin", Email: "admin@cleanduds.com"})
		case http.MethodPut:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(model.User{ID: 1, Name: got.Name, Email: got.Email})
		}
	}).Methods(http.MethodGet, http.MethodPut)

	ctrl, recorder := newController(t, router)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.Draft.Name = "Night Shift"
	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, "Night Shift", got.Name)
	assert.Equal(t, "Night Shift", ctrl.Me().Name)

	entries := recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Profile updated successfully", entries[0].Description)
}

func TestController_SubmitRejectsBadEmail(t *testing.T) {
	hits := 0
	router := mux.NewRouter()
	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ })

	ctrl, recorder := newController(t, router)
	ctrl.Draft.Email = "not-an-email"

	require.ErrorIs(t, ctrl.Submit(context.Background()), cerr.ErrValidation)
	assert.Zero(t, hits)
	require.Len(t, recorder.Entries(), 1)
}
