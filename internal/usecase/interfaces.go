package usecase

import (
	"context"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

// BackendAPI is the platform API every persistent entity lives behind.
type BackendAPI interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path, token string, in, out any) error
	Put(ctx context.Context, path, token string, in, out any) error
	Patch(ctx context.Context, path, token string, in, out any) error
	Delete(ctx context.Context, path, token string, out any) error
}

type CaptchaVerifier interface {
	SiteKey() string
	Verify(ctx context.Context, token, remoteIP string) (*entity.CaptchaVerdict, error)
	Passed(verdict *entity.CaptchaVerdict) bool
}

type Redirect interface {
	SiteKey(ctx context.Context) (string, error)
	VerifyCaptcha(ctx context.Context, token, remoteIP string) (*entity.CaptchaVerdict, error)
	Issue(ctx context.Context, in IssueInput) (*IssueResult, error)
}

type Account interface {
	Login(ctx context.Context, email, password string) (*entity.Session, *entity.User, error)
	Register(ctx context.Context, in RegisterInput) (*entity.Session, *entity.User, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, s *entity.Session) (*entity.User, error)
	FindSession(ctx context.Context, id string) (*entity.Session, error)
}

type Links interface {
	ListLinks(ctx context.Context, s *entity.Session) ([]entity.Link, error)
	CreateLink(ctx context.Context, s *entity.Session, rawURL, title string) (*entity.Link, error)
	DeleteLink(ctx context.Context, s *entity.Session, id string) error
	DashboardStats(ctx context.Context, s *entity.Session) (*entity.DashboardStats, error)
}

type Content interface {
	ListPosts(ctx context.Context) ([]entity.BlogPost, error)
	GetPost(ctx context.Context, slug string) (*entity.BlogPost, error)
	CreatePost(ctx context.Context, s *entity.Session, post entity.BlogPost) (*entity.BlogPost, error)
	UpdatePost(ctx context.Context, s *entity.Session, id string, post entity.BlogPost) (*entity.BlogPost, error)
	DeletePost(ctx context.Context, s *entity.Session, id string) error

	SubmitContact(ctx context.Context, msg entity.ContactMessage) error
	ListContacts(ctx context.Context, s *entity.Session) ([]entity.ContactMessage, error)
	MarkContactRead(ctx context.Context, s *entity.Session, id string) error
	DeleteContact(ctx context.Context, s *entity.Session, id string) error
}

type Payments interface {
	ListPayments(ctx context.Context, s *entity.Session) ([]entity.Payment, error)
	RequestWithdrawal(ctx context.Context, s *entity.Session, req entity.WithdrawalRequest) (*entity.Payment, error)
	ListAllPayments(ctx context.Context, s *entity.Session) ([]entity.Payment, error)
	ApprovePayment(ctx context.Context, s *entity.Session, id string) (*entity.Payment, error)
	RejectPayment(ctx context.Context, s *entity.Session, id string) (*entity.Payment, error)
}

type Ads interface {
	ListAds(ctx context.Context, s *entity.Session) ([]entity.AdminAd, error)
	CreateAd(ctx context.Context, s *entity.Session, ad entity.AdminAd) (*entity.AdminAd, error)
	UpdateAd(ctx context.Context, s *entity.Session, id string, ad entity.AdminAd) (*entity.AdminAd, error)
	DeleteAd(ctx context.Context, s *entity.Session, id string) error
	ToggleAd(ctx context.Context, s *entity.Session, id string) (*entity.AdminAd, error)
}

type Support interface {
	ListThreads(ctx context.Context, s *entity.Session) ([]entity.SupportThread, error)
	ListAllThreads(ctx context.Context, s *entity.Session) ([]entity.SupportThread, error)
	CreateThread(ctx context.Context, s *entity.Session, subject, message string) (*entity.SupportThread, error)
	Messages(ctx context.Context, s *entity.Session, threadID, since string) ([]entity.SupportMessage, error)
	PostMessage(ctx context.Context, s *entity.Session, threadID, body string) (*entity.SupportMessage, error)
}

type Audit interface {
	ListAttempts(ctx context.Context, limit int) ([]*entity.RedirectAttempt, error)
}
