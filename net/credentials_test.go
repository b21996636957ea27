package net

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testServiceAccountKey builds a syntactically valid service-account key
// whose token_uri points at tokenURL, signed with a throwaway RSA key.
func testServiceAccountKey(t *testing.T, tokenURL string) []byte {
	t.Helper()
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.Nil(t, err)
	keyDer, err := x509.MarshalPKCS8PrivateKey(rsaKey)
	assert.Nil(t, err)
	keyPem := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDer})
	raw, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   "hisab-test",
		"client_email": "firebase-adminsdk@hisab-test.iam.gserviceaccount.com",
		"private_key":  string(keyPem),
		"token_uri":    tokenURL,
	})
	assert.Nil(t, err)
	return raw
}

func TestAccessTokenMalformedKey(t *testing.T) {
	provider := &FCMCredentialProvider{ServiceAccountKey: []byte("not json")}
	_, err := provider.AccessToken(context.Background())
	assert.NotNil(t, err)

	var credErr *CredentialError
	assert.True(t, errors.As(err, &credErr))
	assert.Equal(t, "parse service account key", credErr.Op)
}

func TestAccessTokenExchange(t *testing.T) {
	var gotGrantType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotGrantType = r.FormValue("grant_type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"ya29.mock-token","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	provider := &FCMCredentialProvider{ServiceAccountKey: testServiceAccountKey(t, server.URL)}
	token, err := provider.AccessToken(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "ya29.mock-token", token)
	assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", gotGrantType)
}

func TestAccessTokenEndpointFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	provider := &FCMCredentialProvider{ServiceAccountKey: testServiceAccountKey(t, server.URL)}
	_, err := provider.AccessToken(context.Background())
	assert.NotNil(t, err)

	var credErr *CredentialError
	assert.True(t, errors.As(err, &credErr))
	assert.Equal(t, "exchange jwt assertion", credErr.Op)
}
