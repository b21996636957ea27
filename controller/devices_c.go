package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hisab-app/hisab-server/models"
	"github.com/hisab-app/hisab-server/repository"
	"k8s.io/klog/v2"
)

type DevicesController struct {
	DeviceTokenRepo *repository.DeviceTokenRepo
}

// HandleUpdateDeviceToken upserts a device push registration. The app calls
// this on login and whenever FCM rotates the token.
func (dc *DevicesController) HandleUpdateDeviceToken(c *fiber.Ctx) error {
	var request models.DeviceTokenUpdateRequest
	if err := decodeRequest(c, &request); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}
	if request.UserID == "" || request.Token == "" {
		return ErrBadRequest(c, "user_id and token are required")
	}
	if err := dc.DeviceTokenRepo.AddOrUpdateToken(request.UserID, request.Token, request.Locale); err != nil {
		klog.Errorf("Error upserting device token %s", err)
		return ErrInternalServerError(c, "Error upserting device token")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
