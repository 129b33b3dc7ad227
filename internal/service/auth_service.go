package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/repository/specification"
	"krishi-sakhi-be/internal/repository/unitofwork"
	"krishi-sakhi-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
	tokenTTL   time.Duration
	publisher  IPublisherService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string, tokenTTL time.Duration, publisher IPublisherService) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		publisher:  publisher,
	}
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"phone":   user.Phone,
		"name":    user.Name,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers that do not translate constraint errors.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "SQLSTATE 23505")
}

func toProfile(user *entity.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		Id:        user.Id,
		Name:      user.Name,
		Phone:     user.Phone,
		Email:     user.Email,
		Pincode:   user.Pincode,
		District:  user.District,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperror.Validation("Passwords do not match")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: req.Phone})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Phone number already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &entity.User{
		Id:           uuid.New(),
		Phone:        req.Phone,
		Name:         req.Name,
		Email:        req.Email,
		Aadhaar:      req.Aadhaar,
		Pincode:      req.Pincode,
		District:     req.District,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// Two racing registrations can both pass the FindOne pre-check;
		// the unique index on phone catches the loser.
		if isDuplicateKey(err) {
			return nil, apperror.Conflict("Phone number already registered")
		}
		return nil, apperror.Internal(err)
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewUserRegistered(user.Id, user.District))
	}

	return &dto.AuthResponse{
		Token: token,
		User:  toProfile(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: req.Phone})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Auth("Invalid phone number or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Auth("Invalid phone number or password")
	}

	now := time.Now()
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, now); err != nil {
		return nil, apperror.Internal(err)
	}
	user.LastLogin = &now

	token, err := s.signToken(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, events.NewUserLogin(user.Id))
	}

	return &dto.AuthResponse{
		Token: token,
		User:  toProfile(user),
	}, nil
}

func (s *authService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.Auth("User not found")
	}

	profile := toProfile(user)
	return &profile, nil
}
