package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type paymentMethodService struct {
	paymentRepo repository.PaymentMethodRepository
}

func NewPaymentMethodService(paymentRepo repository.PaymentMethodRepository) PaymentMethodService {
	return &paymentMethodService{paymentRepo: paymentRepo}
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentMethodService) ListCardIDs(ctx context.Context) ([]int32, error) {
	return s.paymentRepo.ListCardIDs(ctx)
}

func (s *paymentMethodService) GetPaymentMethod(ctx context.Context, id int32) (*domain.PaymentMethod, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, p *domain.PaymentMethod) error {
	p.ExpireDate = normalizeDate(p.ExpireDate)
	return s.paymentRepo.Create(ctx, p)
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, id int32) error {
	return s.paymentRepo.Delete(ctx, id)
}
