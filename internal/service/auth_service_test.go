package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/repository/contract"
	"krishi-sakhi-be/internal/repository/specification"
	"krishi-sakhi-be/internal/repository/unitofwork"
)

// racingFactory simulates the loser of a registration race: the phone
// pre-check sees no row, the insert then violates the unique index.
type racingFactory struct {
	inner unitofwork.RepositoryFactory
}

func (f racingFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return racingUow{UnitOfWork: f.inner.NewUnitOfWork(ctx)}
}

type racingUow struct {
	unitofwork.UnitOfWork
}

func (u racingUow) UserRepository() contract.UserRepository {
	return racingUserRepo{UserRepository: u.UnitOfWork.UserRepository()}
}

type racingUserRepo struct {
	contract.UserRepository
}

func (r racingUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

func (r racingUserRepo) Create(ctx context.Context, user *entity.User) error {
	return gorm.ErrDuplicatedKey
}

func registerRequest(phone string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:            "Ravi",
		Phone:           phone,
		Aadhaar:         "123412341234",
		Pincode:         "680001",
		District:        "Thrissur",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("register and login roundtrip", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAuthService(factory, "test-secret", 24*time.Hour, nil)

		registered, err := svc.Register(ctx, registerRequest("9876543210"))
		assert.NoError(t, err)
		assert.NotEmpty(t, registered.Token)
		assert.Equal(t, "9876543210", registered.User.Phone)
		assert.Equal(t, "Thrissur", registered.User.District)
		assert.Nil(t, registered.User.LastLogin)

		loggedIn, err := svc.Login(ctx, &dto.LoginRequest{Phone: "9876543210", Password: "secret123"})
		assert.NoError(t, err)
		assert.NotEmpty(t, loggedIn.Token)
		assert.Equal(t, registered.User.Id, loggedIn.User.Id)
		assert.NotNil(t, loggedIn.User.LastLogin)
	})

	t.Run("password confirmation must match", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAuthService(factory, "test-secret", 24*time.Hour, nil)

		req := registerRequest("9876543210")
		req.ConfirmPassword = "different"
		_, err := svc.Register(ctx, req)

		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
	})

	t.Run("duplicate phone is a conflict", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAuthService(factory, "test-secret", 24*time.Hour, nil)

		_, err := svc.Register(ctx, registerRequest("9876543210"))
		assert.NoError(t, err)

		_, err = svc.Register(ctx, registerRequest("9876543210"))
		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusConflict, appErr.Status)
	})

	t.Run("racing duplicate insert is a conflict, not a 500", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		// The loser of a registration race passes the pre-check but hits
		// the unique index on insert.
		svc := NewAuthService(racingFactory{inner: factory}, "test-secret", 24*time.Hour, nil)

		_, err := svc.Register(ctx, registerRequest("9876543210"))
		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusConflict, appErr.Status)
		assert.Equal(t, "Phone number already registered", appErr.Message)
	})

	t.Run("driver constraint errors are recognized as duplicates", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		seedUser(t, factory, "9876543210", "Thrissur")

		dup := &entity.User{
			Id:           uuid.New(),
			Phone:        "9876543210",
			Name:         "Racer",
			PasswordHash: "hash",
			CreatedAt:    time.Now(),
		}
		err := factory.NewUnitOfWork(ctx).UserRepository().Create(ctx, dup)
		assert.Error(t, err)
		assert.True(t, isDuplicateKey(err))

		assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
		assert.True(t, isDuplicateKey(errors.New("UNIQUE constraint failed: users.phone")))
		assert.True(t, isDuplicateKey(errors.New(`duplicate key value violates unique constraint "idx_users_phone" (SQLSTATE 23505)`)))
		assert.False(t, isDuplicateKey(errors.New("connection refused")))
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAuthService(factory, "test-secret", 24*time.Hour, nil)

		_, err := svc.Register(ctx, registerRequest("9876543210"))
		assert.NoError(t, err)

		_, err = svc.Login(ctx, &dto.LoginRequest{Phone: "9876543210", Password: "wrong"})
		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusUnauthorized, appErr.Status)
		assert.Equal(t, "Invalid phone number or password", appErr.Message)
	})

	t.Run("unknown phone gets the same message as a wrong password", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAuthService(factory, "test-secret", 24*time.Hour, nil)

		_, err := svc.Login(ctx, &dto.LoginRequest{Phone: "0000000000", Password: "whatever"})
		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusUnauthorized, appErr.Status)
		assert.Equal(t, "Invalid phone number or password", appErr.Message)
	})

	t.Run("profile returns the stored user", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAuthService(factory, "test-secret", 24*time.Hour, nil)

		registered, err := svc.Register(ctx, registerRequest("9876543210"))
		assert.NoError(t, err)

		profile, err := svc.Profile(ctx, registered.User.Id)
		assert.NoError(t, err)
		assert.Equal(t, "Ravi", profile.Name)
		assert.Equal(t, "680001", profile.Pincode)
	})

	t.Run("profile of unknown user is unauthorized", func(t *testing.T) {
		factory, _ := newTestFactory(t)
		svc := NewAuthService(factory, "test-secret", 24*time.Hour, nil)

		_, err := svc.Profile(ctx, uuid.New())
		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, fiber.StatusUnauthorized, appErr.Status)
	})
}
