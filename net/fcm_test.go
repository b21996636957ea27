package net

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/hisab-app/hisab-server/utils/mocks"
	"github.com/stretchr/testify/assert"
)

func init() {
	Client = &mocks.MockClient{}
}

func TestSendMessageSuccess(t *testing.T) {
	var gotReq *http.Request
	var gotBody []byte
	mocks.GetDoFunc = func(req *http.Request) (*http.Response, error) {
		gotReq = req
		gotBody, _ = io.ReadAll(req.Body)
		return &http.Response{
			StatusCode: 200,
			Body:       mocks.FcmSendSuccessResponse(),
		}, nil
	}

	client := &FCMClient{ProjectID: "hisab-test"}
	err := client.SendMessage("access-token", "device-token", "New expense: Lunch", "Lunch (25.50 USD)", map[string]string{"group_id": "group-1"})
	assert.Nil(t, err)

	assert.Equal(t, "https://fcm.googleapis.com/v1/projects/hisab-test/messages:send", gotReq.URL.String())
	assert.Equal(t, "Bearer access-token", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "application/json", gotReq.Header.Get("Content-Type"))

	var parsed map[string]interface{}
	json.Unmarshal(gotBody, &parsed)
	message := parsed["message"].(map[string]interface{})
	assert.Equal(t, "device-token", message["token"])
	notification := message["notification"].(map[string]interface{})
	assert.Equal(t, "New expense: Lunch", notification["title"])
	assert.Equal(t, "Lunch (25.50 USD)", notification["body"])
	data := message["data"].(map[string]interface{})
	assert.Equal(t, "group-1", data["group_id"])
}

func TestSendMessageUnregisteredToken(t *testing.T) {
	mocks.GetDoFunc = func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 404,
			Body:       mocks.FcmUnregisteredResponse(),
		}, nil
	}

	client := &FCMClient{ProjectID: "hisab-test"}
	err := client.SendMessage("access-token", "stale-token", "Title", "Body", nil)
	assert.NotNil(t, err)

	var sendErr *SendError
	assert.True(t, errors.As(err, &sendErr))
	assert.Equal(t, 404, sendErr.StatusCode)
	assert.True(t, sendErr.Unregistered())
}

func TestSendMessageProviderError(t *testing.T) {
	mocks.GetDoFunc = func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: 500,
			Body:       mocks.FcmInternalErrorResponse(),
		}, nil
	}

	client := &FCMClient{ProjectID: "hisab-test"}
	err := client.SendMessage("access-token", "device-token", "Title", "Body", nil)
	assert.NotNil(t, err)

	var sendErr *SendError
	assert.True(t, errors.As(err, &sendErr))
	assert.Equal(t, 500, sendErr.StatusCode)
	// A transient provider failure must not be treated as a dead token
	assert.False(t, sendErr.Unregistered())
}

func TestSendMessageTransportError(t *testing.T) {
	mocks.GetDoFunc = func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}

	client := &FCMClient{ProjectID: "hisab-test"}
	err := client.SendMessage("access-token", "device-token", "Title", "Body", nil)
	assert.NotNil(t, err)

	var sendErr *SendError
	assert.False(t, errors.As(err, &sendErr))
}
