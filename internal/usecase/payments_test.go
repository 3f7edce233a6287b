package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/backend"
)

func TestRequestWithdrawal(t *testing.T) {
	tests := []struct {
		name    string
		req     entity.WithdrawalRequest
		backend error
		wantErr error
	}{
		{
			name:    "missing account",
			req:     entity.WithdrawalRequest{Amount: decimal.NewFromInt(10), Method: "paypal"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "below minimum",
			req:     entity.WithdrawalRequest{Amount: decimal.RequireFromString("4.99"), Method: "paypal", Account: "a@b.c"},
			wantErr: ErrAmountTooLow,
		},
		{
			name:    "negative",
			req:     entity.WithdrawalRequest{Amount: decimal.NewFromInt(-10), Method: "paypal", Account: "a@b.c"},
			wantErr: ErrAmountTooLow,
		},
		{
			name:    "insufficient balance",
			req:     entity.WithdrawalRequest{Amount: decimal.NewFromInt(500), Method: "paypal", Account: "a@b.c"},
			backend: &backend.Error{Status: http.StatusUnprocessableEntity, Message: "insufficient balance"},
			wantErr: ErrRejected,
		},
		{
			name: "ok",
			req:  entity.WithdrawalRequest{Amount: decimal.NewFromInt(5), Method: "paypal", Account: "a@b.c"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := &fakeBackend{
				RespondFn: func(method, path string, in any) (any, error) {
					if tt.backend != nil {
						return nil, tt.backend
					}
					req := in.(entity.WithdrawalRequest)
					return entity.Payment{ID: "p1", Amount: req.Amount, Status: entity.PaymentPending}, nil
				},
			}
			uc := NewPayments(config.Payments{MinWithdrawal: decimal.NewFromInt(5)}, be, log)

			payment, err := uc.RequestWithdrawal(context.Background(), userSession(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if tt.backend != nil {
					assert.Contains(t, err.Error(), "insufficient balance")
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.PaymentPending, payment.Status)
			assert.Equal(t, "/api/payments/withdraw", be.Calls()[0].Path)
		})
	}
}

func TestDecidePayment(t *testing.T) {
	be := &fakeBackend{
		RespondFn: func(method, path string, in any) (any, error) {
			return entity.Payment{ID: "p1", Status: entity.PaymentApproved}, nil
		},
	}
	uc := NewPayments(config.Payments{}, be, log)

	payment, err := uc.ApprovePayment(context.Background(), adminSession(), "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentApproved, payment.Status)

	_, err = uc.RejectPayment(context.Background(), adminSession(), "p1")
	require.NoError(t, err)

	calls := be.Calls()
	assert.Equal(t, "/api/admin/payments/p1/approve", calls[0].Path)
	assert.Equal(t, "/api/admin/payments/p1/reject", calls[1].Path)
}
