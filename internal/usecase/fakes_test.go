package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

var log = logger.NewMockLogger()

type backendCall struct {
	Method string
	Path   string
	Token  string
	In     any
}

// fakeBackend answers through RespondFn; a nil payload leaves out untouched.
type fakeBackend struct {
	RespondFn func(method, path string, in any) (any, error)

	mutex sync.Mutex
	calls []backendCall
}

func (f *fakeBackend) do(method, path, token string, in, out any) error {
	f.mutex.Lock()
	f.calls = append(f.calls, backendCall{Method: method, Path: path, Token: token, In: in})
	f.mutex.Unlock()

	if f.RespondFn == nil {
		return nil
	}
	payload, err := f.RespondFn(method, path, in)
	if err != nil {
		return err
	}
	if payload == nil || out == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (f *fakeBackend) Get(ctx context.Context, path, token string, out any) error {
	return f.do(http.MethodGet, path, token, nil, out)
}

func (f *fakeBackend) Post(ctx context.Context, path, token string, in, out any) error {
	return f.do(http.MethodPost, path, token, in, out)
}

func (f *fakeBackend) Put(ctx context.Context, path, token string, in, out any) error {
	return f.do(http.MethodPut, path, token, in, out)
}

func (f *fakeBackend) Patch(ctx context.Context, path, token string, in, out any) error {
	return f.do(http.MethodPatch, path, token, in, out)
}

func (f *fakeBackend) Delete(ctx context.Context, path, token string, out any) error {
	return f.do(http.MethodDelete, path, token, nil, out)
}

func (f *fakeBackend) Calls() []backendCall {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return append([]backendCall(nil), f.calls...)
}

type fakeCaptcha struct {
	siteKey   string
	VerifyFn  func(token, ip string) (*entity.CaptchaVerdict, error)
	lastToken string
}

func (f *fakeCaptcha) SiteKey() string {
	return f.siteKey
}

func (f *fakeCaptcha) Verify(ctx context.Context, token, remoteIP string) (*entity.CaptchaVerdict, error) {
	f.lastToken = token
	if f.VerifyFn != nil {
		return f.VerifyFn(token, remoteIP)
	}
	return &entity.CaptchaVerdict{Success: true}, nil
}

func (f *fakeCaptcha) Passed(verdict *entity.CaptchaVerdict) bool {
	return verdict != nil && verdict.Success
}

type fakeRecorder struct {
	attempts []*entity.RedirectAttempt
}

func (f *fakeRecorder) RecordAttempt(ctx context.Context, attempt *entity.RedirectAttempt) {
	f.attempts = append(f.attempts, attempt)
}

type fakeNotifier struct {
	err   error
	block bool
	texts []string
}

// Notify waits for ctx when block is set, like a hanging chat API.
func (f *fakeNotifier) Notify(ctx context.Context, text string) error {
	f.texts = append(f.texts, text)
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func userSession() *entity.Session {
	return &entity.Session{ID: "s1", UserID: "u1", Role: entity.RoleUser, APIToken: "user-token"}
}

func adminSession() *entity.Session {
	return &entity.Session{ID: "s2", UserID: "a1", Role: entity.RoleAdmin, APIToken: "admin-token"}
}
