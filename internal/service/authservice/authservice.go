package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/GlebRadaev/loadermarket/pkg/auth"
	"go.uber.org/zap"
)

const (
	minLoginLength = 3
	maxLoginLength = 50
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Wallets interface {
	CreateWallet(ctx context.Context, userID int, currency string) error
}

type Service struct {
	userRepo        Repo
	wallets         Wallets
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
	txManager       pg.TXManager
	defaultCurrency string
	tokenTTL        time.Duration
}

func New(repo Repo, wallets Wallets, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager pg.TXManager, defaultCurrency string, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:        repo,
		wallets:         wallets,
		hashService:     hashService,
		jwtService:      jwtService,
		txManager:       txManager,
		defaultCurrency: defaultCurrency,
		tokenTTL:        tokenTTL,
	}
}

// Register creates a regular user together with an empty wallet in the
// platform currency.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	return s.register(ctx, login, password, domain.RoleUser)
}

// EnsureAdmin creates the bootstrap administrator unless the login is taken.
// An empty login disables bootstrapping.
func (s *Service) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" {
		return nil
	}
	_, err := s.register(ctx, login, password, domain.RoleAdmin)
	if errors.Is(err, domain.ErrLoginTaken) {
		zap.L().Info("admin already exists", zap.String("login", login))
		return nil
	}
	return err
}

func (s *Service) register(ctx context.Context, login, password string, role domain.Role) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if n := utf8.RuneCountInString(login); n < minLoginLength || n > maxLoginLength {
		return nil, fmt.Errorf("login must be %d to %d characters: %w", minLoginLength, maxLoginLength, domain.ErrValidation)
	}

	var user *domain.User
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existingUser, err := s.userRepo.FindByLogin(ctx, login)
		if err != nil {
			return err
		}
		if existingUser != nil {
			zap.L().Info("user already exists", zap.String("login", login))
			return domain.ErrLoginTaken
		}
		hashedPassword, err := s.hashService.HashPassword(password)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
				return fmt.Errorf("%s: %w", err, domain.ErrValidation)
			}
			zap.L().Error("can't hash password", zap.Error(err))
			return err
		}

		newUser, err := s.userRepo.Create(ctx, &domain.User{
			Login:        login,
			PasswordHash: hashedPassword,
			Role:         role,
		})
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return domain.ErrLoginTaken
			}
			return err
		}
		if err := s.wallets.CreateWallet(ctx, newUser.ID, s.defaultCurrency); err != nil {
			return err
		}
		user = newUser
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login), zap.String("role", string(role)))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
