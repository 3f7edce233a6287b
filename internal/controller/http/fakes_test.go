package http

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/crypto"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/httpserver"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

var log = logger.NewMockLogger()

// Session ids double as cookie values, the mock cipher is a passthrough.
var testSessions = map[string]*entity.Session{
	"user-session":  {ID: "user-session", UserID: "u1", Role: entity.RoleUser, APIToken: "user-token", ExpiresAt: time.Now().Add(time.Hour)},
	"admin-session": {ID: "admin-session", UserID: "a1", Role: entity.RoleAdmin, APIToken: "admin-token", ExpiresAt: time.Now().Add(time.Hour)},
}

type fakeSessions struct{}

func (fakeSessions) FindSession(ctx context.Context, id string) (*entity.Session, error) {
	return testSessions[id], nil
}

func prepareServer() *fiber.App {
	server := httpserver.New(httpserver.Options{})
	server.Use(middleware.SessionAuth(middleware.SessionAuthConfig{
		Cipher:   crypto.NewMock(),
		Sessions: fakeSessions{},
	}, log))
	return server
}

func sendRequest(t *testing.T, server *fiber.App, req *http.Request, sessionID string) ([]byte, *http.Response) {
	t.Helper()

	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieAuthName, Value: sessionID})
	}

	resp, err := server.Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return body, resp
}

type fakeRedirect struct {
	SiteKeyFn       func() (string, error)
	VerifyCaptchaFn func(token, ip string) (*entity.CaptchaVerdict, error)
	IssueFn         func(in usecase.IssueInput) (*usecase.IssueResult, error)
}

func (f *fakeRedirect) SiteKey(ctx context.Context) (string, error) {
	return f.SiteKeyFn()
}

func (f *fakeRedirect) VerifyCaptcha(ctx context.Context, token, ip string) (*entity.CaptchaVerdict, error) {
	return f.VerifyCaptchaFn(token, ip)
}

func (f *fakeRedirect) Issue(ctx context.Context, in usecase.IssueInput) (*usecase.IssueResult, error) {
	return f.IssueFn(in)
}

type fakeAccount struct {
	LoginFn    func(email, password string) (*entity.Session, *entity.User, error)
	RegisterFn func(in usecase.RegisterInput) (*entity.Session, *entity.User, error)
	MeFn       func(s *entity.Session) (*entity.User, error)

	loggedOut []string
}

func (f *fakeAccount) Login(ctx context.Context, email, password string) (*entity.Session, *entity.User, error) {
	return f.LoginFn(email, password)
}

func (f *fakeAccount) Register(ctx context.Context, in usecase.RegisterInput) (*entity.Session, *entity.User, error) {
	return f.RegisterFn(in)
}

func (f *fakeAccount) Logout(ctx context.Context, sessionID string) error {
	f.loggedOut = append(f.loggedOut, sessionID)
	return nil
}

func (f *fakeAccount) Me(ctx context.Context, s *entity.Session) (*entity.User, error) {
	return f.MeFn(s)
}

func (f *fakeAccount) FindSession(ctx context.Context, id string) (*entity.Session, error) {
	return testSessions[id], nil
}

type fakeLinks struct {
	ListLinksFn      func(s *entity.Session) ([]entity.Link, error)
	CreateLinkFn     func(s *entity.Session, rawURL, title string) (*entity.Link, error)
	DashboardStatsFn func(s *entity.Session) (*entity.DashboardStats, error)
}

func (f *fakeLinks) ListLinks(ctx context.Context, s *entity.Session) ([]entity.Link, error) {
	return f.ListLinksFn(s)
}

func (f *fakeLinks) CreateLink(ctx context.Context, s *entity.Session, rawURL, title string) (*entity.Link, error) {
	return f.CreateLinkFn(s, rawURL, title)
}

func (f *fakeLinks) DeleteLink(ctx context.Context, s *entity.Session, id string) error {
	return nil
}

func (f *fakeLinks) DashboardStats(ctx context.Context, s *entity.Session) (*entity.DashboardStats, error) {
	return f.DashboardStatsFn(s)
}

type fakeAudit struct {
	limits []int
}

func (f *fakeAudit) ListAttempts(ctx context.Context, limit int) ([]*entity.RedirectAttempt, error) {
	f.limits = append(f.limits, limit)
	return []*entity.RedirectAttempt{
		{ID: 1, Slug: "promo", Outcome: entity.OutcomeIssued},
	}, nil
}
