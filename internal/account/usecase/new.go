package usecase

import (
	"cashback-advisor/internal/account"
	"cashback-advisor/internal/account/repository"
	"cashback-advisor/pkg/log"
)

// implUseCase is the private implementation of account.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ account.UseCase = (*implUseCase)(nil)

// New creates a new account UseCase implementation.
func New(repo repository.Repository, l log.Logger) account.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
