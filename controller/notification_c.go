package controller

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/hisab-app/hisab-server/models"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"github.com/hisab-app/hisab-server/notification"
	"k8s.io/klog/v2"
)

// Errors is capped to a handful of samples in the response
const maxErrorSamples = 5

// GroupMemberResolver returns the user ids in a group minus the acting user.
type GroupMemberResolver interface {
	MemberUserIDs(groupID string, excludeUserID string) ([]string, error)
}

// DeviceTokenStore resolves the device tokens owned by a set of users.
type DeviceTokenStore interface {
	TokensForUsers(userIDs []string) ([]dbmodels.DeviceToken, error)
}

// AccessTokenProvider produces a bearer token for the push provider API.
type AccessTokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// NotificationController is the entry point for database-trigger fan-out.
// All configuration is injected at startup; nothing reads the environment here.
type NotificationController struct {
	ServiceRoleSecret string
	FCMProjectID      string
	Members           GroupMemberResolver
	Tokens            DeviceTokenStore
	Credentials       AccessTokenProvider
	Dispatcher        *notification.Dispatcher
}

// HandleSendNotification runs the request through an ordered sequence of
// fallible steps; any step short-circuits with its status and the trigger
// (not this handler) owns re-delivery of the underlying event.
func (nc *NotificationController) HandleSendNotification(c *fiber.Ctx) error {
	// 1. Method
	if c.Method() != fiber.MethodPost {
		return ErrMethodNotAllowed(c)
	}

	// 2. Shared service-role secret, before anything touches the database
	authHeader := c.Get(fiber.HeaderAuthorization)
	if nc.ServiceRoleSecret == "" || !strings.HasPrefix(authHeader, "Bearer ") ||
		strings.TrimPrefix(authHeader, "Bearer ") != nc.ServiceRoleSecret {
		return ErrUnauthorized(c)
	}

	// 3. Server configuration; fatal misconfiguration, not retryable by the caller
	if nc.FCMProjectID == "" || nc.Credentials == nil {
		klog.Error("send-notification: FCM project id or service account key not set")
		return ErrInternalServerError(c, "Server configuration error")
	}

	// 4. Parse
	var payload models.TriggerPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return ErrBadRequest(c, "Invalid JSON body")
	}

	// 5. Validate
	if payload.GroupID == "" || payload.ActorUserID == "" || payload.Action == "" {
		return ErrBadRequest(c, "Missing group_id, actor_user_id, or action")
	}

	// 6. Normalized actor id, for comparison purposes only
	actor := strings.ToLower(strings.TrimSpace(payload.ActorUserID))
	if payload.Action == models.ActionMemberJoined && actor == "" {
		// A malformed trigger must never notify the wrong recipients
		return c.Status(fiber.StatusOK).JSON(&models.SendNotificationResponse{
			Sent:    0,
			Total:   0,
			Message: "Skipped: no actor on member_joined",
		})
	}

	// 7. Members of the group, excluding the actor
	memberIDs, err := nc.Members.MemberUserIDs(payload.GroupID, actor)
	if err != nil {
		klog.Errorf("Error resolving group members %s", err)
		return ErrInternalServerError(c, "Error resolving group members")
	}
	if len(memberIDs) == 0 {
		return c.Status(fiber.StatusOK).JSON(&models.SendNotificationResponse{
			Sent:    0,
			Total:   0,
			Message: "No other members to notify",
		})
	}

	// 8. Device tokens. The actor's own registrations are filtered out again
	// here in case the membership rows and token rows disagree on casing.
	tokens, err := nc.Tokens.TokensForUsers(memberIDs)
	if err != nil {
		klog.Errorf("Error resolving device tokens %s", err)
		return ErrInternalServerError(c, "Error resolving device tokens")
	}
	recipients := make([]dbmodels.DeviceToken, 0, len(tokens))
	for _, token := range tokens {
		if token.Token == "" || strings.ToLower(strings.TrimSpace(token.UserID)) == actor {
			continue
		}
		recipients = append(recipients, token)
	}
	if len(recipients) == 0 {
		return c.Status(fiber.StatusOK).JSON(&models.SendNotificationResponse{
			Sent:    0,
			Total:   0,
			Message: "No device tokens for members",
		})
	}

	// 9. Bearer token for the push provider
	accessToken, err := nc.Credentials.AccessToken(c.UserContext())
	if err != nil {
		klog.Errorf("Error obtaining FCM access token %s", err)
		return ErrInternalServerErrorDetail(c, "Failed to obtain FCM access token", err.Error())
	}

	// 10. Sequential fan-out with stale-token cleanup
	result := nc.Dispatcher.DeliverAll(recipients, &payload, accessToken)
	klog.V(3).Infof("Delivered %d/%d notifications for group %s", result.Sent, len(recipients), payload.GroupID)

	// 11. Summary
	errorSamples := result.Errors
	if len(errorSamples) > maxErrorSamples {
		errorSamples = errorSamples[:maxErrorSamples]
	}
	return c.Status(fiber.StatusOK).JSON(&models.SendNotificationResponse{
		Sent:   result.Sent,
		Total:  len(recipients),
		Errors: errorSamples,
	})
}
