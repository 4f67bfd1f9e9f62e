package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/loadermarket/internal/domain"
	"github.com/GlebRadaev/loadermarket/internal/pg"
	"github.com/GlebRadaev/loadermarket/pkg/auth"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo    *MockRepo
	wallets *MockWallets
	hasher  *auth.MockHashServiceInterface
	jwt     *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    NewMockRepo(ctrl),
		wallets: NewMockWallets(ctrl),
		hasher:  auth.NewMockHashServiceInterface(ctrl),
		jwt:     auth.NewMockJWTServiceInterface(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()

	service := New(m.repo, m.wallets, m.hasher, m.jwt, txManager, "USDT", time.Hour)
	defer ctrl.Finish()
	return service, m
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    " testuser ",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				m.wallets.EXPECT().CreateWallet(gomock.Any(), 1, "USDT").Return(nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "testuser",
				PasswordHash: "hashedpassword",
				Role:         domain.RoleUser,
			},
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: domain.ErrLoginTaken,
		},
		{
			name:     "Concurrent registration wins the race",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: domain.ErrLoginTaken,
		},
		{
			name:          "Login too short",
			login:         "ab",
			password:      "testpassword",
			prepareMock:   func() {},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Password too short",
			login:    "testuser",
			password: "short",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("short").Return("", auth.ErrPasswordTooShort)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:     "Wallet creation fails",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				m.hasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				m.wallets.EXPECT().CreateWallet(gomock.Any(), 1, "USDT").Return(errors.New("wallet creation failed"))
			},
			expectedError: errors.New("wallet creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError) || err.Error() == tt.expectedError.Error(), "got %v", err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestEnsureAdmin(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().FindByLogin(gomock.Any(), "root").Return(nil, nil)
	m.hasher.EXPECT().HashPassword("rootpassword").Return("hashed", nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
		assert.Equal(t, domain.RoleAdmin, user.Role)
		user.ID = 99
		return user, nil
	})
	m.wallets.EXPECT().CreateWallet(gomock.Any(), 99, "USDT").Return(nil)
	require.NoError(t, service.EnsureAdmin(context.Background(), "root", "rootpassword"))

	m.repo.EXPECT().FindByLogin(gomock.Any(), "root").Return(&domain.User{ID: 99, Login: "root", Role: domain.RoleAdmin}, nil)
	require.NoError(t, service.EnsureAdmin(context.Background(), "root", "rootpassword"))

	require.NoError(t, service.EnsureAdmin(context.Background(), "", ""))
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)
	stored := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword", Role: domain.RoleUser}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(stored, nil)
				m.hasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "User not found",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Incorrect password",
			password: "wrongpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(stored, nil)
				m.hasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "testuser", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)

	m.jwt.EXPECT().GenerateJWT(1, "admin", gomock.Any()).DoAndReturn(func(userID int, role string, exp time.Time) (string, error) {
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
		return "token", nil
	})
	token, err := service.GenerateToken(&domain.User{ID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "token", token)

	m.jwt.EXPECT().GenerateJWT(1, "user", gomock.Any()).Return("", errors.New("sign failed"))
	_, err = service.GenerateToken(&domain.User{ID: 1, Role: domain.RoleUser})
	assert.Error(t, err)
}
