package auth

import (
	"context"
	"testing"

	"carrental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func newTestService() (*Service, *mockUserRepo, *mockJWT) {
	users := new(mockUserRepo)
	j := new(mockJWT)
	return NewService(users, j), users, j
}

func hashOf(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func TestService_Register_Success(t *testing.T) {
	svc, users, _ := newTestService()

	users.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "  Jane Doe ",
		Email:    " Jane@Example.COM ",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), u.ID)
	assert.Equal(t, "Jane Doe", u.Name)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, users, _ := newTestService()

	users.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "12345",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Login_Success(t *testing.T) {
	svc, users, j := newTestService()

	stored := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: hashOf("secret1"), Role: domain.RoleCustomer}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)
	j.On("GenerateToken", int64(7), "customer").Return("tok", nil)

	u, token, err := svc.Login(context.Background(), LoginRequest{Email: "Jane@Example.com", Password: "secret1"})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "tok", token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, users, _ := newTestService()

	stored := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: hashOf("secret1")}
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, users, _ := newTestService()

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	// same error as a wrong password, so the response reveals nothing
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ResolveUser(t *testing.T) {
	svc, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)

	u, err := svc.ResolveUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
}

func TestService_ResolveUser_Invalid(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ResolveUser(context.Background(), 0)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ResolveUser_NotFound(t *testing.T) {
	svc, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResolveUser(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_RequireAdmin(t *testing.T) {
	svc, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Role: domain.RoleCustomer}, nil)

	_, err := svc.RequireAdmin(context.Background(), 1)
	assert.NoError(t, err)

	_, err = svc.RequireAdmin(context.Background(), 7)
	assert.ErrorIs(t, err, ErrForbidden)
}
