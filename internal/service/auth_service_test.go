package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"floorquote/internal/auth"
	apperrors "floorquote/internal/errors"
	"floorquote/internal/model"
)

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) Upsert(ctx context.Context, email, passwordHash string) error {
	args := m.Called(ctx, email, passwordHash)
	return args.Error(0)
}

func TestAuthService_Login(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	admin := &model.Admin{
		ID:           primitive.NewObjectID(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockAdminRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "admin@example.com",
			password: "correct-horse",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)
			},
			expectedError: nil,
		},
		{
			name:     "email is lowercased and trimmed before lookup",
			email:    "  Admin@Example.COM ",
			password: "correct-horse",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "correct-horse",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "admin@example.com",
			password: "guess",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", 8*time.Hour)
			svc := NewAuthService(mockRepo, jwtService)

			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, admin.ID.Hex(), claims.Subject)
				assert.Equal(t, admin.Email, claims.Email)
				assert.Equal(t, auth.RoleAdmin, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginDoesNotRevealAccountExistence(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)

	mockRepo := new(MockAdminRepository)
	mockRepo.On("FindByEmail", mock.Anything, "admin@example.com").
		Return(&model.Admin{Email: "admin@example.com", PasswordHash: string(hash)}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret", time.Hour))

	_, errKnown := svc.Login(context.Background(), "admin@example.com", "wrong")
	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "wrong")

	assert.Equal(t, errKnown, errUnknown)
}
