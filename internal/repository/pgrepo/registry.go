package pgrepo

import (
	"fmt"

	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
)

type registrar interface {
	Register(name uow.RepositoryName, factory uow.RepositoryFactory) error
}

// RegisterRepositories регистрирует все postgres репозитории в unit of work.
func RegisterRepositories(u registrar) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewUserRepository(dbtx)
		},
		repoargs.MarkupRuleRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewMarkupRuleRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewOrderRepository(dbtx)
		},
		repoargs.ProfitRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewProfitRepository(dbtx)
		},
		repoargs.FundRequestRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewFundRequestRepository(dbtx)
		},
		repoargs.WithdrawalRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewWithdrawalRepository(dbtx)
		},
		repoargs.ReferralCommissionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewReferralCommissionRepository(dbtx)
		},
		repoargs.ReconciliationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewReconciliationRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewPaymentRepository(dbtx)
		},
		repoargs.RewardTokenRepoName: func(dbtx uow.DBTX) uow.Repository {
			return NewRewardTokenRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if err := u.Register(uow.RepositoryName(name), factory); err != nil {
			return fmt.Errorf("register repository `%s`: %w", name, err)
		}
	}
	return nil
}
