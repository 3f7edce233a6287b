package usecase

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eridiumdev/clickpay-web/internal/infrastructure/backend"
)

func TestFromBackend(t *testing.T) {
	plain := errors.New("decode failed")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "401", err: &backend.Error{Status: http.StatusUnauthorized}, want: ErrUnauthorized},
		{name: "403", err: &backend.Error{Status: http.StatusForbidden}, want: ErrForbidden},
		{name: "404", err: &backend.Error{Status: http.StatusNotFound}, want: ErrNotFound},
		{name: "409", err: &backend.Error{Status: http.StatusConflict, Message: "slug taken"}, want: ErrRejected},
		{name: "500", err: &backend.Error{Status: http.StatusInternalServerError}, want: ErrBackendUnavailable},
		{name: "transport", err: backend.ErrUnavailable, want: ErrBackendUnavailable},
		{name: "other", err: plain, want: plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromBackend(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	assert.Contains(t, fromBackend(&backend.Error{Status: http.StatusConflict, Message: "slug taken"}).Error(), "slug taken")
}
