package notification

import (
	"errors"
	"testing"

	"github.com/hisab-app/hisab-server/models"
	"github.com/hisab-app/hisab-server/models/dbmodels"
	"github.com/hisab-app/hisab-server/net"
	"github.com/stretchr/testify/assert"
)

type sentMessage struct {
	Token string
	Title string
	Body  string
}

// fakeSender returns a scripted error per device token.
type fakeSender struct {
	errByToken map[string]error
	sent       []sentMessage
}

func (f *fakeSender) SendMessage(accessToken string, token string, title string, body string, data map[string]string) error {
	if err, ok := f.errByToken[token]; ok {
		return err
	}
	f.sent = append(f.sent, sentMessage{Token: token, Title: title, Body: body})
	return nil
}

type fakeDeleter struct {
	deleted []string
	err     error
}

func (f *fakeDeleter) DeleteDeviceToken(token string) error {
	f.deleted = append(f.deleted, token)
	return f.err
}

func expensePayload() *models.TriggerPayload {
	title := "Lunch"
	amount := models.FlexInt64(2550)
	currency := "USD"
	return &models.TriggerPayload{
		GroupID:      "group-1",
		ActorUserID:  "user-a",
		Action:       models.ActionExpenseCreated,
		ExpenseTitle: &title,
		AmountCents:  &amount,
		CurrencyCode: &currency,
	}
}

func TestDeliverAllSuccess(t *testing.T) {
	sender := &fakeSender{}
	deleter := &fakeDeleter{}
	d := &Dispatcher{FCM: sender, Tokens: deleter}

	recipients := []dbmodels.DeviceToken{
		{UserID: "user-b", Token: "token-b1", Locale: "en"},
		{UserID: "user-b", Token: "token-b2", Locale: "es"},
	}
	result := d.DeliverAll(recipients, expensePayload(), "access-token")

	assert.Equal(t, 2, result.Sent)
	assert.Len(t, result.Errors, 0)
	assert.Len(t, deleter.deleted, 0)
	// Text follows each device's locale
	assert.Equal(t, "New expense: Lunch (25.50 USD)", sender.sent[0].Body)
	assert.Equal(t, "Nuevo gasto: Lunch (25.50 USD)", sender.sent[1].Body)
}

func TestDeliverAllStaleToken(t *testing.T) {
	sender := &fakeSender{errByToken: map[string]error{
		"token-b1": &net.SendError{StatusCode: 404, Body: `{"errorCode": "UNREGISTERED"}`},
	}}
	deleter := &fakeDeleter{}
	d := &Dispatcher{FCM: sender, Tokens: deleter}

	recipients := []dbmodels.DeviceToken{
		{UserID: "user-b", Token: "token-b1", Locale: "en"},
		{UserID: "user-c", Token: "token-c1", Locale: "en"},
	}
	result := d.DeliverAll(recipients, expensePayload(), "access-token")

	assert.Equal(t, 1, result.Sent)
	assert.Len(t, result.Errors, 1)
	// Every token yields exactly one of success or error
	assert.Equal(t, len(recipients), result.Sent+len(result.Errors))
	assert.Equal(t, []string{"token-b1"}, deleter.deleted)
}

func TestDeliverAllTransientFailureKeepsToken(t *testing.T) {
	sender := &fakeSender{errByToken: map[string]error{
		"token-b1": &net.SendError{StatusCode: 500, Body: `{"status": "INTERNAL"}`},
		"token-c1": errors.New("connection refused"),
	}}
	deleter := &fakeDeleter{}
	d := &Dispatcher{FCM: sender, Tokens: deleter}

	recipients := []dbmodels.DeviceToken{
		{UserID: "user-b", Token: "token-b1", Locale: "en"},
		{UserID: "user-c", Token: "token-c1", Locale: "en"},
		{UserID: "user-d", Token: "token-d1", Locale: "en"},
	}
	result := d.DeliverAll(recipients, expensePayload(), "access-token")

	assert.Equal(t, 1, result.Sent)
	assert.Len(t, result.Errors, 2)
	assert.Len(t, deleter.deleted, 0)
}

func TestDeliverAllDeleteFailureIgnored(t *testing.T) {
	sender := &fakeSender{errByToken: map[string]error{
		"token-b1": &net.SendError{StatusCode: 404, Body: `{"errorCode": "UNREGISTERED"}`},
	}}
	deleter := &fakeDeleter{err: errors.New("db down")}
	d := &Dispatcher{FCM: sender, Tokens: deleter}

	recipients := []dbmodels.DeviceToken{
		{UserID: "user-b", Token: "token-b1", Locale: "en"},
		{UserID: "user-c", Token: "token-c1", Locale: "en"},
	}
	result := d.DeliverAll(recipients, expensePayload(), "access-token")

	// The failed cleanup changes neither the counts nor the errors
	assert.Equal(t, 1, result.Sent)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, []string{"token-b1"}, deleter.deleted)
}
