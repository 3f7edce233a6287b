package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/crypto"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
)

func TestLogin(t *testing.T) {
	account := &fakeAccount{
		LoginFn: func(email, password string) (*entity.Session, *entity.User, error) {
			if password != "secret" {
				return nil, nil, usecase.ErrUnauthorized
			}
			return &entity.Session{
					ID:        "new-session",
					Role:      entity.RoleAdvertiser,
					ExpiresAt: time.Now().Add(time.Hour),
				}, &entity.User{
					ID:    "u2",
					Email: email,
					Role:  entity.RoleAdvertiser,
				}, nil
		},
	}

	type want struct {
		code   int
		cookie string
		home   string
	}
	tests := []struct {
		name string
		body string
		want want
	}{
		{
			name: "wrong password",
			body: `{"email": "ads@example.org", "password": "nope"}`,
			want: want{code: 401},
		},
		{
			name: "ok",
			body: `{"email": "ads@example.org", "password": "secret"}`,
			want: want{code: 200, cookie: "new-session", home: "/advertiser"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := prepareServer()
			NewAccountController(server, account, crypto.NewMock(), log)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			body, resp := sendRequest(t, server, req, "")
			assert.Equal(t, tt.want.code, resp.StatusCode)

			var cookie *http.Cookie
			for _, c := range resp.Cookies() {
				if c.Name == middleware.CookieAuthName {
					cookie = c
				}
			}

			if tt.want.cookie == "" {
				assert.Nil(t, cookie)
				return
			}

			require.NotNil(t, cookie)
			assert.Equal(t, tt.want.cookie, cookie.Value)
			assert.True(t, cookie.HttpOnly)

			var got authResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.want.home, got.Home)
			assert.Equal(t, "u2", got.User.ID)
		})
	}
}

func TestRegisterCreated(t *testing.T) {
	account := &fakeAccount{
		RegisterFn: func(in usecase.RegisterInput) (*entity.Session, *entity.User, error) {
			if in.Role == entity.RoleAdmin {
				return nil, nil, usecase.ErrInvalidRole
			}
			return &entity.Session{ID: "s", Role: entity.RoleUser}, &entity.User{ID: "u3", Role: entity.RoleUser}, nil
		},
	}

	server := prepareServer()
	NewAccountController(server, account, crypto.NewMock(), log)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		bytes.NewBufferString(`{"name": "Jo", "email": "jo@example.org", "password": "pw", "role": "admin"}`))
	req.Header.Set("Content-Type", "application/json")
	_, resp := sendRequest(t, server, req, "")
	assert.Equal(t, 400, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
		bytes.NewBufferString(`{"name": "Jo", "email": "jo@example.org", "password": "pw"}`))
	req.Header.Set("Content-Type", "application/json")
	_, resp = sendRequest(t, server, req, "")
	assert.Equal(t, 201, resp.StatusCode)
}

func TestLogoutAndMe(t *testing.T) {
	account := &fakeAccount{
		MeFn: func(s *entity.Session) (*entity.User, error) {
			return &entity.User{ID: s.UserID, Role: s.Role}, nil
		},
	}

	server := prepareServer()
	NewAccountController(server, account, crypto.NewMock(), log)

	_, resp := sendRequest(t, server, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "")
	assert.Equal(t, 401, resp.StatusCode)

	body, resp := sendRequest(t, server, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "user-session")
	require.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"id": "u1", "name": "", "email": "", "role": "user", "balance": "0"}`, string(body))

	_, resp = sendRequest(t, server, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), "user-session")
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []string{"user-session"}, account.loggedOut)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.CookieAuthName && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should expire the auth cookie")
}
