package service

import (
	"context"

	"umbrella-fleet-backend/internal/domain"
	"umbrella-fleet-backend/internal/repository"
)

type accountService struct {
	accountRepo repository.AccountRepository
}

func NewAccountService(accountRepo repository.AccountRepository) AccountService {
	return &accountService{accountRepo: accountRepo}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.List(ctx)
}

func (s *accountService) GetAccount(ctx context.Context, id int32) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

func (s *accountService) CreateAccount(ctx context.Context, a *domain.Account) error {
	a.DateOfBirth = normalizeDate(a.DateOfBirth)
	return s.accountRepo.Create(ctx, a)
}

func (s *accountService) UpdateAccount(ctx context.Context, a *domain.Account) error {
	a.DateOfBirth = normalizeDate(a.DateOfBirth)
	return s.accountRepo.Update(ctx, a)
}

func (s *accountService) DeleteAccount(ctx context.Context, id int32) error {
	return s.accountRepo.Delete(ctx, id)
}
