package cms_webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSettings struct {
	calls int
	err   error
}

func (f *fakeSettings) Invalidate(ctx context.Context) error {
	f.calls++
	return f.err
}

func newRequest(secret string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/cms", nil)
	if secret != "" {
		req.Header.Set(HeaderSecret, secret)
	}
	return req
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		sent       string
		invalidErr error
		wantStatus int
		wantCalls  int
	}{
		{name: "valid secret", configured: "s3cret", sent: "s3cret", wantStatus: http.StatusNoContent, wantCalls: 1},
		{name: "wrong secret", configured: "s3cret", sent: "guess", wantStatus: http.StatusUnauthorized},
		{name: "missing secret", configured: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "not configured", configured: "", sent: "", wantStatus: http.StatusUnauthorized},
		{name: "invalidate fails", configured: "s3cret", sent: "s3cret", invalidErr: errors.New("redis down"), wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeSettings{err: tt.invalidErr}
			h := NewHandler(svc, tt.configured, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.sent))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
