package customers_test

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
	"github.com/cleanduds/admin-dashboard/page/customers"
	"github.com/cleanduds/admin-dashboard/service/customer"
	"github.com/cleanduds/admin-dashboard/session"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T, router *mux.Router) (*customers.Controller, *notify.Recorder) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	recorder := &notify.Recorder{}
	api := client.New(config.APIConfig{BaseURL: server.URL, Timeout: 5 * time.Second}, session.New("tok"), recorder)
	return customers.NewController(customer.NewCustomerService(api), recorder), recorder
}

func TestController_LoadDefaultsStatus(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/users", func(w http.ResponseWriter, r *http.Request) {
		// status intentionally absent for the first record
		w.Write([]byte(`{"data":[
			{"id":1,"name":"Asha","email":"asha@example.com"},
			{"id":2,"name":"Ravi","email":"ravi@example.com","status":true}
		],"total":2,"page":1,"limit":10,"totalPages":1}`))
	}).Methods(http.MethodGet)

	ctrl, _ := newController(t, router)
	require.NoError(t, ctrl.Load(context.Background(), 1))

	visible := ctrl.Visible()
	require.Len(t, visible, 2)
	assert.False(t, visible[0].Status)
	assert.True(t, visible[1].Status)
}

func TestController_SearchByNameOrEmail(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.Page[model.Customer]{
			Data: []model.Customer{
				{ID: 1, Name: "Asha", Email: "asha@cleanduds.com"},
				{ID: 2, Name: "Ravi", Email: "ravi@gmail.com"},
			},
			Total: 2, Page: 1, Limit: 10, TotalPages: 1,
		})
	}).Methods(http.MethodGet)

	ctrl, _ := newController(t, router)
	require.NoError(t, ctrl.Load(context.Background(), 1))

	ctrl.SetSearch("cleanduds")
	require.Len(t, ctrl.Visible(), 1)
	assert.Equal(t, "Asha", ctrl.Visible()[0].Name)
}

func TestController_DetailFetchesFullRecord(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", mux.Vars(r)["id"])
		json.NewEncoder(w).Encode(model.Customer{
			ID: 2, Name: "Ravi", TotalOrders: 14, TotalSpent: 920,
			LatestBookings: []model.Booking{{ID: 55, Amount: 120}},
		})
	}).Methods(http.MethodGet)

	ctrl, _ := newController(t, router)
	full, err := ctrl.Detail(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 14, full.TotalOrders)
	require.Len(t, full.LatestBookings, 1)
}

func TestController_DetailFailureToasts(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}).Methods(http.MethodGet)

	ctrl, recorder := newController(t, router)
	_, err := ctrl.Detail(context.Background(), 2)
	require.Error(t, err)

	entries := recorder.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Failed to load customer details", entries[0].Description)
}
