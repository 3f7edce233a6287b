package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/backend"
)

func TestSubmitContact(t *testing.T) {
	tests := []struct {
		name      string
		msg       entity.ContactMessage
		notifyErr error
		wantErr   error
	}{
		{
			name:    "missing message",
			msg:     entity.ContactMessage{Name: "Ada", Email: "ada@example.org"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad email",
			msg:     entity.ContactMessage{Name: "Ada", Email: "not-an-email", Message: "hi"},
			wantErr: ErrInvalidInput,
		},
		{
			name: "ok",
			msg:  entity.ContactMessage{Name: "Ada", Email: "ada@example.org", Message: "hi"},
		},
		{
			name:      "notification failure is ignored",
			msg:       entity.ContactMessage{Name: "Ada", Email: "ada@example.org", Message: "hi"},
			notifyErr: errors.New("telegram down"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := &fakeBackend{}
			notifier := &fakeNotifier{err: tt.notifyErr}
			uc := NewContent(be, notifier, log)

			err := uc.SubmitContact(context.Background(), tt.msg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, be.Calls())
				assert.Empty(t, notifier.texts)
				return
			}
			require.NoError(t, err)
			require.Len(t, be.Calls(), 1)
			assert.Equal(t, "/api/contact/submit", be.Calls()[0].Path)
			assert.Empty(t, be.Calls()[0].Token)
			require.Len(t, notifier.texts, 1)
			assert.Contains(t, notifier.texts[0], "ada@example.org")
		})
	}
}

func TestBlog(t *testing.T) {
	ctx := context.Background()
	be := &fakeBackend{
		RespondFn: func(method, path string, in any) (any, error) {
			switch path {
			case "/api/blog":
				return []entity.BlogPost{{Slug: "hello", Title: "Hello"}}, nil
			case "/api/blog/hello":
				return entity.BlogPost{Slug: "hello", Title: "Hello"}, nil
			case "/api/blog/gone":
				return nil, &backend.Error{Status: http.StatusNotFound}
			}
			return in, nil
		},
	}
	uc := NewContent(be, &fakeNotifier{}, log)

	posts, err := uc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	post, err := uc.GetPost(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)

	_, err = uc.GetPost(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = uc.GetPost(ctx, "../etc")
	assert.ErrorIs(t, err, ErrInvalidSlug)

	_, err = uc.CreatePost(ctx, adminSession(), entity.BlogPost{Title: "T"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := uc.CreatePost(ctx, adminSession(), entity.BlogPost{Title: "T", Content: "C", Slug: "t"})
	require.NoError(t, err)
	assert.Equal(t, "T", created.Title)

	require.NoError(t, uc.DeletePost(ctx, adminSession(), "7"))
	calls := be.Calls()
	last := calls[len(calls)-1]
	assert.Equal(t, http.MethodDelete, last.Method)
	assert.Equal(t, "/api/admin/blog/7", last.Path)
	assert.Equal(t, "admin-token", last.Token)
}

func TestAdminContacts(t *testing.T) {
	ctx := context.Background()
	be := &fakeBackend{}
	uc := NewContent(be, &fakeNotifier{}, log)

	require.NoError(t, uc.MarkContactRead(ctx, adminSession(), "5"))
	require.NoError(t, uc.DeleteContact(ctx, adminSession(), "5"))
	assert.ErrorIs(t, uc.DeleteContact(ctx, adminSession(), ""), ErrInvalidInput)

	calls := be.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPatch, calls[0].Method)
	assert.Equal(t, "/api/admin/contact/5/read", calls[0].Path)
	assert.Equal(t, http.MethodDelete, calls[1].Method)
}

func TestHangingNotifierDoesNotHoldRequests(t *testing.T) {
	defer func(d time.Duration) { notifyTimeout = d }(notifyTimeout)
	notifyTimeout = 20 * time.Millisecond

	ctx := context.Background()
	notifier := &fakeNotifier{block: true}

	start := time.Now()
	err := NewContent(&fakeBackend{}, notifier, log).SubmitContact(ctx, entity.ContactMessage{
		Name: "Ada", Email: "ada@example.org", Message: "hi",
	})
	require.NoError(t, err)

	be := &fakeBackend{
		RespondFn: func(method, path string, in any) (any, error) {
			return entity.SupportMessage{ID: "m1"}, nil
		},
	}
	_, err = NewSupport(be, notifier, log).PostMessage(ctx, userSession(), "t1", "help")
	require.NoError(t, err)

	assert.Len(t, notifier.texts, 2)
	assert.Less(t, time.Since(start), 2*time.Second)
}
