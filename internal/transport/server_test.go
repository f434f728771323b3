package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/illmade-knight/grocery-list-skill/internal/transport"
	"github.com/illmade-knight/grocery-list-skill/pkg/analytics"
	"github.com/illmade-knight/grocery-list-skill/pkg/groceries"
	"github.com/illmade-knight/grocery-list-skill/pkg/skill"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *groceries.Service) {
	t.Helper()
	service := groceries.NewService(groceries.NewInMemoryStore())
	handler := skill.NewHandler(service, analytics.NoopRecorder{}, zerolog.Nop())
	server := transport.NewServer(":0", handler, zerolog.Nop())

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, service
}

func postTurn(t *testing.T, ts *httptest.Server, envelope map[string]any) map[string]any {
	t.Helper()
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/v1/skill", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func intentEnvelope(intent, userID string, slots map[string]any) map[string]any {
	request := map[string]any{
		"type": "IntentRequest",
		"intent": map[string]any{
			"name":  intent,
			"slots": slots,
		},
	}
	return map[string]any{
		"version": "1.0",
		"session": map[string]any{"user": map[string]any{"userId": userID}},
		"request": request,
	}
}

func TestServer_AddItemTurn(t *testing.T) {
	ts, service := newTestServer(t)

	decoded := postTurn(t, ts, intentEnvelope("NewGroceryItemIntent", "U1", map[string]any{
		"GroceryItemName": map[string]any{
			"name":               "GroceryItemName",
			"value":              "milk",
			"confirmationStatus": "CONFIRMED",
		},
	}))

	response := decoded["response"].(map[string]any)
	assert.Equal(t, true, response["shouldEndSession"])

	speech := response["outputSpeech"].(map[string]any)
	assert.Equal(t, "SSML", speech["type"])
	assert.Contains(t, speech["ssml"], "milk added")

	items, err := service.ListItems(t.Context(), "U1")
	require.NoError(t, err)
	assert.Equal(t, []groceries.Item{{Name: "milk", UserID: "U1"}}, items)
}

func TestServer_ElicitSlotTurn(t *testing.T) {
	ts, _ := newTestServer(t)

	decoded := postTurn(t, ts, intentEnvelope("NewGroceryItemIntent", "U1", map[string]any{
		"GroceryItemName": map[string]any{"name": "GroceryItemName"},
	}))

	response := decoded["response"].(map[string]any)
	assert.Equal(t, false, response["shouldEndSession"])

	directives := response["directives"].([]any)
	require.Len(t, directives, 1)
	directive := directives[0].(map[string]any)
	assert.Equal(t, "Dialog.ElicitSlot", directive["type"])
	assert.Equal(t, "GroceryItemName", directive["slotToElicit"])
	assert.NotNil(t, response["reprompt"])
}

func TestServer_ConfirmSlotTurn(t *testing.T) {
	ts, _ := newTestServer(t)

	decoded := postTurn(t, ts, intentEnvelope("RemoveGroceryItemIntent", "U1", map[string]any{
		"GroceryItemName": map[string]any{
			"name":               "GroceryItemName",
			"value":              "milk",
			"confirmationStatus": "NONE",
		},
	}))

	response := decoded["response"].(map[string]any)
	directives := response["directives"].([]any)
	require.Len(t, directives, 1)
	directive := directives[0].(map[string]any)
	assert.Equal(t, "Dialog.ConfirmSlot", directive["type"])
	assert.Equal(t, "GroceryItemName", directive["slotToConfirm"])
}

func TestServer_LaunchTurn(t *testing.T) {
	ts, _ := newTestServer(t)

	decoded := postTurn(t, ts, map[string]any{
		"version": "1.0",
		"session": map[string]any{"user": map[string]any{"userId": "U1"}},
		"request": map[string]any{"type": "LaunchRequest"},
	})

	response := decoded["response"].(map[string]any)
	assert.Equal(t, false, response["shouldEndSession"])
	speech := response["outputSpeech"].(map[string]any)
	assert.Contains(t, speech["ssml"], "Welcome to Grocery List Manager")
}

func TestServer_MalformedEnvelope(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/skill", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Healthz(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
