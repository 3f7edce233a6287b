package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type PaymentsUC struct {
	backend       BackendAPI
	minWithdrawal decimal.Decimal
	log           *logger.Logger
}

func NewPayments(cfg config.Payments, backend BackendAPI, log *logger.Logger) *PaymentsUC {
	return &PaymentsUC{
		backend:       backend,
		minWithdrawal: cfg.MinWithdrawal,
		log:           log,
	}
}

func (uc *PaymentsUC) ListPayments(ctx context.Context, s *entity.Session) ([]entity.Payment, error) {
	return uc.list(ctx, s, "/api/payments")
}

func (uc *PaymentsUC) ListAllPayments(ctx context.Context, s *entity.Session) ([]entity.Payment, error) {
	return uc.list(ctx, s, "/api/admin/payments")
}

func (uc *PaymentsUC) list(ctx context.Context, s *entity.Session, path string) ([]entity.Payment, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	payments := []entity.Payment{}
	err = uc.backend.Get(ctx, path, token, &payments)
	if err != nil {
		return nil, fromBackend(err)
	}
	return payments, nil
}

// RequestWithdrawal checks the amount locally, the balance check is the backend's.
func (uc *PaymentsUC) RequestWithdrawal(ctx context.Context, s *entity.Session, req entity.WithdrawalRequest) (*entity.Payment, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	req.Method = strings.TrimSpace(req.Method)
	req.Account = strings.TrimSpace(req.Account)
	if req.Method == "" || req.Account == "" {
		return nil, invalid("method and account are required")
	}
	if !req.Amount.IsPositive() || req.Amount.LessThan(uc.minWithdrawal) {
		return nil, ErrAmountTooLow
	}

	var payment entity.Payment
	err = uc.backend.Post(ctx, "/api/payments/withdraw", token, req, &payment)
	if err != nil {
		return nil, fromBackend(err)
	}

	uc.log.Info(ctx).Str("user_id", s.UserID).Str("amount", req.Amount.String()).Msg("withdrawal requested")
	return &payment, nil
}

func (uc *PaymentsUC) ApprovePayment(ctx context.Context, s *entity.Session, id string) (*entity.Payment, error) {
	return uc.decide(ctx, s, id, "approve")
}

func (uc *PaymentsUC) RejectPayment(ctx context.Context, s *entity.Session, id string) (*entity.Payment, error) {
	return uc.decide(ctx, s, id, "reject")
}

func (uc *PaymentsUC) decide(ctx context.Context, s *entity.Session, id, action string) (*entity.Payment, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, invalid("payment id is required")
	}

	var payment entity.Payment
	err = uc.backend.Post(ctx, "/api/admin/payments/"+url.PathEscape(id)+"/"+action, token, nil, &payment)
	if err != nil {
		return nil, fromBackend(err)
	}

	uc.log.Info(ctx).Str("payment_id", id).Str("action", action).Msg("payment decided")
	return &payment, nil
}
