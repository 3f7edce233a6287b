package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

func newSiteverify(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "s3cret", r.PostForm.Get("secret"))

		switch r.PostForm.Get("response") {
		case "good":
			assert.Equal(t, "10.0.0.1", r.PostForm.Get("remoteip"))
			_, _ = w.Write([]byte(`{"success":true,"hostname":"example.org"}`))
		case "low-score":
			_, _ = w.Write([]byte(`{"success":true,"score":0.1,"action":"redirect"}`))
		case "high-score":
			_, _ = w.Write([]byte(`{"success":true,"score":0.9,"action":"redirect"}`))
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerify(t *testing.T) {
	srv := newSiteverify(t)
	v := NewVerifier(config.Recaptcha{
		SiteKey:   "site",
		SecretKey: "s3cret",
		VerifyURL: srv.URL,
		MinScore:  0.5,
		Timeout:   time.Second,
	}, logger.NewMockLogger())

	type want struct {
		err     bool
		success bool
		passed  bool
		codes   []string
	}
	tests := []struct {
		name  string
		token string
		ip    string
		want  want
	}{
		{
			name:  "v2 success",
			token: "good",
			ip:    "10.0.0.1",
			want:  want{success: true, passed: true},
		},
		{
			name:  "v3 low score",
			token: "low-score",
			want:  want{success: true, passed: false},
		},
		{
			name:  "v3 high score",
			token: "high-score",
			want:  want{success: true, passed: true},
		},
		{
			name:  "invalid token",
			token: "nope",
			want:  want{success: false, passed: false, codes: []string{"invalid-input-response"}},
		},
		{
			name:  "upstream failure",
			token: "broken",
			want:  want{err: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := v.Verify(context.Background(), tt.token, tt.ip)
			if tt.want.err {
				assert.ErrorIs(t, err, ErrUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.success, verdict.Success)
			assert.Equal(t, tt.want.passed, v.Passed(verdict))
			assert.Equal(t, tt.want.codes, verdict.ErrorCodes)
		})
	}
}

func TestVerifyNotConfigured(t *testing.T) {
	v := NewVerifier(config.Recaptcha{}, logger.NewMockLogger())

	_, err := v.Verify(context.Background(), "token", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, v.Passed(nil))
	assert.False(t, v.Passed(&entity.CaptchaVerdict{Success: false}))
}
