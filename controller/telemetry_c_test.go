package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type insertedEvent struct {
	Event     string
	Timestamp string
	Data      string
}

type fakeTelemetry struct {
	inserted []insertedEvent
	err      error
}

func (f *fakeTelemetry) Insert(event string, timestamp string, data string) error {
	f.inserted = append(f.inserted, insertedEvent{Event: event, Timestamp: timestamp, Data: data})
	return f.err
}

func telemetryApp(telemetry *fakeTelemetry) *fiber.App {
	tc := &TelemetryController{Telemetry: telemetry}
	app := fiber.New()
	app.All("/telemetry", tc.HandleIngest)
	return app
}

func postTelemetry(t *testing.T, app *fiber.App, raw []byte) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/telemetry", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.Nil(t, err)
	var respJson map[string]interface{}
	respBody, _ := io.ReadAll(resp.Body)
	json.Unmarshal(respBody, &respJson)
	return resp.StatusCode, respJson
}

func TestTelemetryMethodNotAllowed(t *testing.T) {
	app := telemetryApp(&fakeTelemetry{})

	resp, err := app.Test(httptest.NewRequest("GET", "/telemetry", nil))
	assert.Nil(t, err)
	assert.Equal(t, 405, resp.StatusCode)
}

func TestTelemetryInvalidBody(t *testing.T) {
	app := telemetryApp(&fakeTelemetry{})

	status, respJson := postTelemetry(t, app, []byte("{not json"))
	assert.Equal(t, 400, status)
	assert.Equal(t, "Invalid JSON body", respJson["error"])
}

func TestTelemetryMissingEvent(t *testing.T) {
	app := telemetryApp(&fakeTelemetry{})

	status, respJson := postTelemetry(t, app, []byte(`{"timestamp": "2024-01-01T00:00:00Z"}`))
	assert.Equal(t, 400, status)
	assert.Equal(t, "Missing 'event' field", respJson["error"])

	// A non-string event is as bad as no event
	status, _ = postTelemetry(t, app, []byte(`{"event": 42}`))
	assert.Equal(t, 400, status)
}

func TestTelemetryIngest(t *testing.T) {
	telemetry := &fakeTelemetry{}
	app := telemetryApp(telemetry)

	status, respJson := postTelemetry(t, app, []byte(`{"event": "app_open", "timestamp": "2024-01-01T00:00:00Z", "data": {"platform": "android"}}`))
	assert.Equal(t, 200, status)
	assert.Equal(t, true, respJson["success"])

	assert.Len(t, telemetry.inserted, 1)
	assert.Equal(t, "app_open", telemetry.inserted[0].Event)
	assert.Equal(t, "2024-01-01T00:00:00Z", telemetry.inserted[0].Timestamp)
	assert.Equal(t, `{"platform":"android"}`, telemetry.inserted[0].Data)
}

func TestTelemetryDefaultTimestamp(t *testing.T) {
	telemetry := &fakeTelemetry{}
	app := telemetryApp(telemetry)

	status, _ := postTelemetry(t, app, []byte(`{"event": "app_open"}`))
	assert.Equal(t, 200, status)

	stamp, err := time.Parse(time.RFC3339, telemetry.inserted[0].Timestamp)
	assert.Nil(t, err)
	assert.WithinDuration(t, time.Now(), stamp, time.Minute)
}

func TestTelemetryInsertFailure(t *testing.T) {
	app := telemetryApp(&fakeTelemetry{err: errors.New("db down")})

	status, respJson := postTelemetry(t, app, []byte(`{"event": "app_open"}`))
	assert.Equal(t, 500, status)
	assert.Equal(t, "Insert failed", respJson["error"])
}
