package notification

import (
	"errors"

	"github.com/hisab-app/hisab-server/models"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"github.com/hisab-app/hisab-server/net"
	"k8s.io/klog/v2"
)

// FCMSender makes one push-provider API call per device token.
type FCMSender interface {
	SendMessage(accessToken string, token string, title string, body string, data map[string]string) error
}

// TokenDeleter removes device tokens the provider reported as unregistered.
type TokenDeleter interface {
	DeleteDeviceToken(token string) error
}

// StaleToken identifies a registration the provider rejected as permanently invalid.
type StaleToken struct {
	UserID string
	Token  string
}

type DeliveryResult struct {
	Sent   int
	Errors []string
	Stale  []StaleToken
}

// Dispatcher fans one trigger event out to a list of device tokens.
type Dispatcher struct {
	FCM    FCMSender
	Tokens TokenDeleter
}

// DeliverAll sends the notification to every recipient token, strictly
// sequentially. A failed send never blocks delivery to the remaining
// tokens, and there are no retries; every token yields exactly one of
// success or a recorded error.
func (d *Dispatcher) DeliverAll(recipients []dbmodels.DeviceToken, payload *models.TriggerPayload, accessToken string) DeliveryResult {
	result := DeliveryResult{}
	for _, recipient := range recipients {
		var amountCents *int64
		if payload.AmountCents != nil {
			value := int64(*payload.AmountCents)
			amountCents = &value
		}
		text := BuildText(payload.Action, payload.ExpenseTitle, amountCents, payload.CurrencyCode, recipient.Locale)
		err := d.FCM.SendMessage(accessToken, recipient.Token, text.Title, text.Body, map[string]string{
			"group_id": payload.GroupID,
		})
		if err == nil {
			result.Sent++
			continue
		}
		result.Errors = append(result.Errors, err.Error())
		var sendErr *net.SendError
		if errors.As(err, &sendErr) && sendErr.Unregistered() {
			result.Stale = append(result.Stale, StaleToken{UserID: recipient.UserID, Token: recipient.Token})
		}
	}

	// Best-effort cleanup; a failed delete is logged, not retried, and
	// never changes the response.
	for _, stale := range result.Stale {
		klog.V(3).Infof("Deleting stale device token for user %s", stale.UserID)
		if err := d.Tokens.DeleteDeviceToken(stale.Token); err != nil {
			klog.Errorf("Error deleting stale device token %s", err)
		}
	}
	return result
}
