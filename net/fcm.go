package net

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"k8s.io/klog/v2"
)

const FCMBaseUrl = "https://fcm.googleapis.com"

// Cap on how much of a provider error body is kept around
const maxErrorBodyBytes = 1024

// FCMClient posts messages to the FCM v1 HTTP API, one call per device token.
type FCMClient struct {
	ProjectID string
	// BaseUrl overrides the production endpoint, used in tests
	BaseUrl string
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmSendRequest struct {
	Message fcmMessage `json:"message"`
}

// SendError is a non-2xx response from the FCM v1 API
type SendError struct {
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
}

// Unregistered - true when the provider reports the token as permanently invalid
func (e *SendError) Unregistered() bool {
	return e.StatusCode == http.StatusNotFound && strings.Contains(e.Body, "UNREGISTERED")
}

// SendMessage delivers one notification to one device token.
func (client *FCMClient) SendMessage(accessToken string, token string, title string, body string, data map[string]string) error {
	baseUrl := client.BaseUrl
	if baseUrl == "" {
		baseUrl = FCMBaseUrl
	}
	url := fmt.Sprintf("%s/v1/projects/%s/messages:send", baseUrl, client.ProjectID)
	requestBody, _ := json.Marshal(fcmSendRequest{
		Message: fcmMessage{
			Token: token,
			Notification: fcmNotification{
				Title: title,
				Body:  body,
			},
			Data: data,
		},
	})
	httpRequest, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		klog.Errorf("Error building FCM request %s", err)
		return err
	}
	httpRequest.Header.Add("Content-Type", "application/json")
	httpRequest.Header.Add("Authorization", fmt.Sprintf("Bearer %s", accessToken))
	resp, err := Client.Do(httpRequest)
	if err != nil {
		klog.Errorf("Error making FCM request %s", err)
		return err
	}
	defer resp.Body.Close()
	responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &SendError{StatusCode: resp.StatusCode, Body: string(responseBody)}
	}
	return nil
}
