package net

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
)

// OAuth2 scope for the FCM v1 messaging API
const fcmScope = "https://www.googleapis.com/auth/firebase.messaging"

// CredentialError wraps any failure while turning a service-account key
// into a bearer token: malformed key JSON, signing, or the token-endpoint
// exchange itself.
type CredentialError struct {
	Op  string
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("fcm credentials: %s: %v", e.Op, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// FCMCredentialProvider exchanges a service-account key for a short-lived
// OAuth2 bearer token via a signed RS256 JWT assertion
// (urn:ietf:params:oauth:grant-type:jwt-bearer). Tokens are not cached
// across invocations; every pipeline run re-authenticates.
type FCMCredentialProvider struct {
	ServiceAccountKey []byte
}

func (provider *FCMCredentialProvider) AccessToken(ctx context.Context) (string, error) {
	config, err := google.JWTConfigFromJSON(provider.ServiceAccountKey, fcmScope)
	if err != nil {
		return "", &CredentialError{Op: "parse service account key", Err: err}
	}
	token, err := config.TokenSource(ctx).Token()
	if err != nil {
		return "", &CredentialError{Op: "exchange jwt assertion", Err: err}
	}
	return token.AccessToken, nil
}
