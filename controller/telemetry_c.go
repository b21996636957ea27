package controller

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"k8s.io/klog/v2"
)

// TelemetryInserter appends one telemetry row.
type TelemetryInserter interface {
	Insert(event string, timestamp string, data string) error
}

type TelemetryController struct {
	Telemetry TelemetryInserter
}

func (tc *TelemetryController) HandleIngest(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return ErrMethodNotAllowed(c)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}

	event, ok := body["event"].(string)
	if !ok || event == "" {
		return ErrBadRequest(c, "Missing 'event' field")
	}

	timestamp, _ := body["timestamp"].(string)
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	data := ""
	if raw, ok := body["data"]; ok && raw != nil {
		if encoded, err := json.Marshal(raw); err == nil {
			data = string(encoded)
		}
	}

	if err := tc.Telemetry.Insert(event, timestamp, data); err != nil {
		klog.Errorf("Telemetry insert error %s", err)
		return ErrInternalServerError(c, "Insert failed")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
