package mocks

import (
	"bytes"
	"io"
)

// Canned FCM v1 API responses. Returned as fresh readers so
// a single test can make more than one request.

func FcmSendSuccessResponse() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte("{\n  \"name\": \"projects/hisab-test/messages/0:1500415314455276%31bd1c9631bd1c96\"\n}")))
}

func FcmUnregisteredResponse() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte("{\n  \"error\": {\n    \"code\": 404,\n    \"message\": \"Requested entity was not found.\",\n    \"status\": \"NOT_FOUND\",\n    \"details\": [\n      {\n        \"@type\": \"type.googleapis.com/google.firebase.fcm.v1.FcmError\",\n        \"errorCode\": \"UNREGISTERED\"\n      }\n    ]\n  }\n}")))
}

func FcmInternalErrorResponse() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte("{\n  \"error\": {\n    \"code\": 500,\n    \"message\": \"Internal error encountered.\",\n    \"status\": \"INTERNAL\"\n  }\n}")))
}
