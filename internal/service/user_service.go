package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/fsdevblog/smmpanel/internal/domain"
	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
	"github.com/fsdevblog/smmpanel/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	referralPrefixLen   = 4
	referralSuffixLen   = 4
	referralCodeRetries = 5
	maxUsernameLen      = 64
	base36Alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

type UserService struct {
	userRepo       UserRepository
	commissionRepo ReferralCommissionRepository
	signupCoins    int64
	log            *logrus.Entry
}

func NewUserService(u uow.UOW, settings Settings, l *logrus.Logger) (*UserService, error) {
	userRepo, err := repoFrom[UserRepository](u, repoargs.UserRepoName)
	if err != nil {
		return nil, err
	}
	commissionRepo, err := repoFrom[ReferralCommissionRepository](u, repoargs.ReferralCommissionRepoName)
	if err != nil {
		return nil, err
	}
	return &UserService{
		userRepo:       userRepo,
		commissionRepo: commissionRepo,
		signupCoins:    settings.SignupCoins,
		log:            l.WithFields(logrus.Fields{"component": "service", "module": "user"}),
	}, nil
}

type CreateAccountArgs struct {
	Identity     domain.Identity
	Username     string
	Name         string
	ReferralCode string
}

// CreateAccount создает учетную запись для проверенной личности. Валидный реферальный код
// проставляет referredBy и начисляет бонусные монеты, невалидный молча игнорируется.
// Повторная регистрация той же личности возвращает domain.ErrAlreadyProcessed.
func (s *UserService) CreateAccount(ctx context.Context, args CreateAccountArgs) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(args.Username))
	if username == "" || len(username) > maxUsernameLen {
		return nil, fmt.Errorf("creating account: %w",
			domain.NewInvalidRequestError("username", fmt.Sprintf("must be 1..%d characters", maxUsernameLen)))
	}

	if _, err := s.userRepo.FindByID(ctx, args.Identity.UserID); err == nil {
		return nil, fmt.Errorf("creating account: account exists: %w", domain.ErrAlreadyProcessed)
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	createArgs := repoargs.CreateUser{
		ID:       args.Identity.UserID,
		Email:    args.Identity.Email,
		Username: username,
		Name:     strings.TrimSpace(args.Name),
	}
	if code := strings.ToUpper(strings.TrimSpace(args.ReferralCode)); code != "" {
		referrer, err := s.userRepo.FindByReferralCode(ctx, code)
		switch {
		case err == nil:
			createArgs.ReferredBy = &referrer.ID
			createArgs.Coins = s.signupCoins
		case errors.Is(err, domain.ErrRecordNotFound):
			s.log.WithField("referralCode", code).Debug("unknown referral code ignored")
		default:
			return nil, fmt.Errorf("creating account: %w", err)
		}
	}

	var lastErr error
	for range referralCodeRetries {
		createArgs.ReferralCode = generateReferralCode(username)
		user, err := s.userRepo.CreateUser(ctx, createArgs)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("creating account: %w", err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("creating account: %w", lastErr)
}

func (s *UserService) GetAccount(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", userNotFound(err))
	}
	return user, nil
}

// EnsureReferralCode возвращает юзера с реферальным кодом, генерируя код, если его еще нет.
func (s *UserService) EnsureReferralCode(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ensuring referral code: %w", userNotFound(err))
	}
	if user.ReferralCode != "" {
		return user, nil
	}

	for range referralCodeRetries {
		user, err = s.userRepo.SetReferralCode(ctx, userID, generateReferralCode(user.Username))
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("ensuring referral code: %w", err)
		}
		if user, err = s.userRepo.FindByID(ctx, userID); err != nil {
			return nil, fmt.Errorf("ensuring referral code: %w", err)
		}
	}
	return nil, fmt.Errorf("ensuring referral code: retries exhausted: %w", domain.ErrDuplicateKey)
}

// ReferralHistory сводка реферальной программы юзера.
type ReferralHistory struct {
	ReferralCode   string
	ReferralWallet decimal.Decimal
	ReferredCount  int64
	Commissions    []domain.ReferralCommission
}

func (s *UserService) ReferralHistory(
	ctx context.Context,
	userID string,
	page repoargs.Page,
) (*ReferralHistory, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting referral history: %w", userNotFound(err))
	}
	count, err := s.userRepo.CountReferred(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting referral history: %w", err)
	}
	commissions, err := s.commissionRepo.ListByReferrer(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("getting referral history: %w", err)
	}
	return &ReferralHistory{
		ReferralCode:   user.ReferralCode,
		ReferralWallet: user.ReferralWallet,
		ReferredCount:  count,
		Commissions:    commissions,
	}, nil
}

// generateReferralCode первые буквы имени в верхнем регистре и случайный base36 суффикс.
func generateReferralCode(username string) string {
	prefix := []rune(strings.ToUpper(username))
	if len(prefix) > referralPrefixLen {
		prefix = prefix[:referralPrefixLen]
	}
	var b strings.Builder
	b.WriteString(string(prefix))
	for range referralSuffixLen {
		b.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))]) //nolint:gosec
	}
	return b.String()
}
