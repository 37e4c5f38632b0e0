package http_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	httpapi "supplychain/internal/adapters/in/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDoc(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := httpapi.LoadOpenAPI(t.Context())
	require.NoError(t, err)
	return doc
}

func requireMatchesSchema(t *testing.T, schema *openapi3.SchemaRef, raw []byte) {
	t.Helper()
	require.NotNil(t, schema)
	var value any
	require.NoError(t, json.Unmarshal(raw, &value), string(raw))
	require.NoError(t, schema.Value.VisitJSON(value), string(raw))
}

func TestOpenAPIDescribesEveryRoute(t *testing.T) {
	api := newTestAPI(t)
	doc := loadDoc(t)

	served := map[string]bool{}
	for _, r := range api.e.Routes() {
		if !strings.HasPrefix(r.Path, "/api/v1/") || strings.Contains(r.Path, "*") {
			continue
		}
		switch r.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			continue
		}
		path := strings.ReplaceAll(strings.TrimPrefix(r.Path, "/api/v1"), ":id", "{id}")
		served[r.Method+" "+path] = true
	}

	documented := map[string]bool{}
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented[method+" "+path] = true
		}
	}

	assert.Equal(t, documented, served)
}

func TestResponsesMatchOpenAPI(t *testing.T) {
	api := newTestAPI(t)
	doc := loadDoc(t)

	steps := []struct {
		method string
		route  string
		id     string
		body   any
		status int
	}{
		{http.MethodPost, "/products", "", httpapi.ProductPayload{Name: "Wïdget", Description: "blue", Price: 9.99, Quantity: 10}, http.StatusCreated},
		{http.MethodGet, "/products", "", nil, http.StatusOK},
		{http.MethodGet, "/products/{id}", "0", nil, http.StatusOK},
		{http.MethodPut, "/products/{id}", "0", httpapi.ProductPayload{Name: "Widget", Price: 1, Quantity: 2}, http.StatusOK},
		{http.MethodPost, "/products", "", httpapi.ProductPayload{Price: 1, Quantity: 1}, http.StatusBadRequest},
		{http.MethodGet, "/products/{id}", "18446744073709551615", nil, http.StatusNotFound},

		{http.MethodPost, "/orders", "", httpapi.OrderPayload{ProductID: 0, Quantity: 3}, http.StatusCreated},
		{http.MethodGet, "/orders", "", nil, http.StatusOK},
		{http.MethodGet, "/orders/{id}", "0", nil, http.StatusOK},
		{http.MethodPut, "/orders/{id}", "0", httpapi.OrderPayload{ProductID: 0, Quantity: 4, OrderDate: &now, DeliveryDate: &now}, http.StatusOK},

		{http.MethodPost, "/shipments", "", httpapi.ShipmentPayload{OrderID: 0, ShippingDetails: "box A"}, http.StatusCreated},
		{http.MethodGet, "/shipments/{id}/status", "0", nil, http.StatusOK},
		{http.MethodPut, "/shipments/{id}/status", "0", `{"status":"InTransit","proof":{"location_data":"dock 7","verifier":"scanner"}}`, http.StatusOK},
		{http.MethodGet, "/shipments/{id}/status", "0", nil, http.StatusOK},
		{http.MethodGet, "/shipments/{id}/location-proofs", "0", nil, http.StatusOK},
		{http.MethodPut, "/shipments/{id}", "0", httpapi.ShipmentPayload{OrderID: 0, ShippingDetails: "box B"}, http.StatusOK},
		{http.MethodGet, "/shipments", "", nil, http.StatusOK},
		{http.MethodGet, "/shipments/{id}", "0", nil, http.StatusOK},
		{http.MethodPut, "/shipments/{id}/status", "0", `{"status":"Lost","proof":{}}`, http.StatusBadRequest},

		{http.MethodPost, "/users", "", httpapi.UserPayload{Username: "alice", Email: "alice@example.com", Role: "Admin"}, http.StatusCreated},
		{http.MethodGet, "/users", "", nil, http.StatusOK},
		{http.MethodGet, "/users/{id}", "0", nil, http.StatusOK},
		{http.MethodPut, "/users/{id}", "0", httpapi.UserPayload{Username: "alice", Email: "a@example.com", Role: "Supplier"}, http.StatusOK},

		{http.MethodDelete, "/products/{id}", "0", nil, http.StatusOK},
		{http.MethodDelete, "/orders/{id}", "0", nil, http.StatusOK},
		{http.MethodDelete, "/shipments/{id}", "0", nil, http.StatusOK},
		{http.MethodDelete, "/users/{id}", "0", nil, http.StatusOK},
		{http.MethodDelete, "/users/{id}", "0", nil, http.StatusNotFound},
	}

	for i, step := range steps {
		name := strconv.Itoa(i) + " " + step.method + " " + step.route
		path := "/api/v1" + strings.ReplaceAll(step.route, "{id}", step.id)

		item := doc.Paths.Value(step.route)
		require.NotNil(t, item, name)
		op := item.GetOperation(step.method)
		require.NotNil(t, op, name)

		rec := api.do(t, step.method, path, step.body)
		require.Equal(t, step.status, rec.Code, "%s: %s", name, rec.Body.String())

		response := op.Responses.Status(step.status)
		require.NotNil(t, response, "%s: status %d is not documented", name, step.status)
		media := response.Value.Content.Get("application/json")
		require.NotNil(t, media, name)
		requireMatchesSchema(t, media.Schema, rec.Body.Bytes())

		if step.body != nil && step.status < http.StatusBadRequest {
			raw, ok := step.body.(string)
			if !ok {
				encoded, err := json.Marshal(step.body)
				require.NoError(t, err)
				raw = string(encoded)
			}
			requireMatchesSchema(t, op.RequestBody.Value.Content.Get("application/json").Schema, []byte(raw))
		}
	}
}
