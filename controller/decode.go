package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hisab-app/hisab-server/utils"
)

// decodeRequest unmarshals the body into a base map first so numeric fields
// arrive as either strings or numbers, then weakly decodes into the typed request.
func decodeRequest(c *fiber.Ctx, out interface{}) error {
	var baseRequest map[string]interface{}
	if err := json.Unmarshal(c.Body(), &baseRequest); err != nil {
		return err
	}
	return utils.DecodeWeak(baseRequest, out)
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
