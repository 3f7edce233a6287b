package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/internal/entity"
)

func TestCreateAd(t *testing.T) {
	valid := entity.AdminAd{
		Title:     "Spring sale",
		ImageURL:  "https://cdn.example.org/banner.png",
		TargetURL: "https://shop.example.org",
		Placement: "sidebar",
	}

	tests := []struct {
		name    string
		ad      func() entity.AdminAd
		wantErr error
	}{
		{
			name:    "missing placement",
			ad:      func() entity.AdminAd { ad := valid; ad.Placement = " "; return ad },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "relative image",
			ad:      func() entity.AdminAd { ad := valid; ad.ImageURL = "/banner.png"; return ad },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad target",
			ad:      func() entity.AdminAd { ad := valid; ad.TargetURL = "shop.example.org"; return ad },
			wantErr: ErrInvalidInput,
		},
		{
			name: "no target is fine",
			ad:   func() entity.AdminAd { ad := valid; ad.TargetURL = ""; return ad },
		},
		{
			name: "ok",
			ad:   func() entity.AdminAd { return valid },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := &fakeBackend{
				RespondFn: func(method, path string, in any) (any, error) {
					ad := in.(entity.AdminAd)
					ad.ID = "ad1"
					return ad, nil
				},
			}
			uc := NewAds(be, log)

			created, err := uc.CreateAd(context.Background(), adminSession(), tt.ad())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, be.Calls())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ad1", created.ID)

			calls := be.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, http.MethodPost, calls[0].Method)
			assert.Equal(t, "/api/admin/admin-ads", calls[0].Path)
			assert.Equal(t, "admin-token", calls[0].Token)
		})
	}
}

func TestToggleAd(t *testing.T) {
	be := &fakeBackend{
		RespondFn: func(method, path string, in any) (any, error) {
			return entity.AdminAd{ID: "a/1", Active: true}, nil
		},
	}
	uc := NewAds(be, log)

	_, err := uc.ToggleAd(context.Background(), nil, "a/1")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.ToggleAd(context.Background(), adminSession(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	ad, err := uc.ToggleAd(context.Background(), adminSession(), "a/1")
	require.NoError(t, err)
	assert.True(t, ad.Active)

	calls := be.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPatch, calls[0].Method)
	assert.Equal(t, "/api/admin/admin-ads/a%2F1/toggle", calls[0].Path)
}
