package serviceareas_test

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
	"github.com/cleanduds/admin-dashboard/page/serviceareas"
	"github.com/cleanduds/admin-dashboard/service/servicearea"
	"github.com/cleanduds/admin-dashboard/session"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfirmer struct {
	answer bool
	asked  int
}

func (s *stubConfirmer) Confirm(context.Context, string) (bool, error) {
	s.asked++
	return s.answer, nil
}

func newFixture(t *testing.T, router *mux.Router, confirmer *stubConfirmer) (*serviceareas.Controller, *serviceareas.Form, *notify.Recorder) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	recorder := &notify.Recorder{}
	api := client.New(config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, session.New("tok"), recorder)
	svc := servicearea.NewServiceAreaService(api)
	return serviceareas.NewController(svc, recorder, confirmer), serviceareas.NewForm(svc, recorder), recorder
}

func areaList() []model.ServiceArea {
	return []model.ServiceArea{
		{ID: 7, Pincode: "560001", Areas: []string{"MG Road", "Shivajinagar"}},
		{ID: 8, Pincode: "560034", Areas: []string{"Koramangala"}},
	}
}

func TestController_DeleteRemovesLocallyWithoutReload(t *testing.T) {
	var lists, deletes int
	var deletedPath string
	router := mux.NewRouter()
	router.HandleFunc("/service-area/", func(w http.ResponseWriter, r *http.Request) {
		lists++
		json.NewEncoder(w).Encode(areaList())
	}).Methods(http.MethodGet)
	router.HandleFunc("/service-area/{id}", func(w http.ResponseWriter, r *http.Request) {
		deletes++
		deletedPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	confirmer := &stubConfirmer{answer: true}
	ctrl, _, recorder := newFixture(t, router, confirmer)

	require.NoError(t, ctrl.Load(context.Background()))
	require.Len(t, ctrl.Items(), 2)

	require.NoError(t, ctrl.Delete(context.Background(), 7))

	assert.Equal(t, "/service-area/7", deletedPath)
	assert.Equal(t, 1, deletes)
	assert.Equal(t, 1, lists, "delete must not refetch the list")

	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(8), items[0].ID)

	entries := recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Service area deleted successfully", entries[0].Description)
}

func TestController_DeleteDeclinedDoesNothing(t *testing.T) {
	var deletes int
	router := mux.NewRouter()
	router.HandleFunc("/service-area/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(areaList())
	}).Methods(http.MethodGet)
	router.HandleFunc("/service-area/{id}", func(w http.ResponseWriter, r *http.Request) {
		deletes++
	}).Methods(http.MethodDelete)

	confirmer := &stubConfirmer{answer: false}
	ctrl, _, _ := newFixture(t, router, confirmer)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.Delete(context.Background(), 7))
	assert.Zero(t, deletes)
	assert.Len(t, ctrl.Items(), 2)
}

func TestController_NullListRendersEmpty(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/service-area/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}).Methods(http.MethodGet)

	ctrl, _, recorder := newFixture(t, router, &stubConfirmer{})
	require.NoError(t, ctrl.Load(context.Background()))
	assert.NotNil(t, ctrl.Items())
	assert.Empty(t, ctrl.Items())
	assert.Empty(t, recorder.Entries())
}

func TestController_DetailByPincode(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/service-area/by-pincode", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "560001", r.URL.Query().Get("pincode"))
		json.NewEncoder(w).Encode(areaList()[0])
	}).Methods(http.MethodGet)

	ctrl, _, _ := newFixture(t, router, &stubConfirmer{})
	area, err := ctrl.Detail(context.Background(), "560001")
	require.NoError(t, err)
	assert.Equal(t, []string{"MG Road", "Shivajinagar"}, area.Areas)
}

func TestForm_RejectsBadPincode(t *testing.T) {
	hits := 0
	router := mux.NewRouter()
	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ })

	tests := []string{"", "5600", "56001", "5600011", "56OO01"}
	for _, pincode := range tests {
		t.Run("pincode="+pincode, func(t *testing.T) {
			_, form, recorder := newFixture(t, router, &stubConfirmer{})
			form.Reset()
			form.Draft.Pincode = pincode

			err := form.Submit(context.Background())
			require.ErrorIs(t, err, cerr.ErrValidation)
			assert.Zero(t, hits)

			entries := recorder.Entries()
			require.Len(t, entries, 1)
			assert.Equal(t, "Please enter a valid 6-digit pincode", entries[0].Description)
		})
	}
}

func TestForm_CreatePostsPincodeAndAreas(t *testing.T) {
	var got model.ServiceAreaInput
	router := mux.NewRouter()
	router.HandleFunc("/service-area/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(model.ServiceArea{ID: 9, Pincode: got.Pincode, Areas: got.Areas})
	}).Methods(http.MethodPost)

	_, form, recorder := newFixture(t, router, &stubConfirmer{})
	form.Reset()
	form.Draft.Pincode = " 560095 "
	form.AddArea("  HSR Layout ")
	form.AddArea("")
	form.AddArea("Bommanahalli")

	require.NoError(t, form.Submit(context.Background()))
	assert.Equal(t, "560095", got.Pincode, "pincode is trimmed before validation")
	assert.Equal(t, []string{"HSR Layout", "Bommanahalli"}, got.Areas)

	entries := recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Service area added successfully", entries[0].Description)
}
