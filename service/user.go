package service

import (
	"context"
	"errors"
	"fmt"

	loggerv2 "github.com/to404hanga/pkg404/logger/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/errs"
	"github.com/KhangChau12/The-Noders-Competition-Platform-sub000/model"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService interface {
	// Signup creates a user with a bcrypt-hashed password
	Signup(ctx context.Context, param *model.SignupParam) (uint64, error)
	// Login verifies credentials and returns the user
	Login(ctx context.Context, param *model.LoginParam) (*model.User, error)
	// GetUserByID returns one user
	GetUserByID(ctx context.Context, userID uint64) (*model.User, error)
	// GetRoleByID returns the role of an active user
	GetRoleByID(ctx context.Context, userID uint64) (model.UserRole, error)
	// UpdatePassword rotates the user's password after verifying the old one
	UpdatePassword(ctx context.Context, param *model.UpdatePasswordParam) error
}

type UserServiceImpl struct {
	db  *gorm.DB
	log loggerv2.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

func NewUserService(db *gorm.DB, log loggerv2.Logger) UserService {
	return &UserServiceImpl{
		db:  db,
		log: log,
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, param *model.SignupParam) (uint64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(param.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("Signup failed at hash password: %w", err)
	}

	user := &model.User{
		Email:    param.Email,
		Username: param.Username,
		Password: string(hash),
		Role:     model.UserRoleNormal,
		Status:   model.UserStatusNormal,
	}
	err = s.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.Duplicate("email is already registered")
		}
		return 0, fmt.Errorf("Signup failed at insert into user: %w", err)
	}
	return user.ID, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, param *model.LoginParam) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("email = ?", param.Email).
		Where("status = ?", model.UserStatusNormal).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("Login failed at select from user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, userID uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		return nil, fmt.Errorf("GetUserByID failed at select from user: %w", err)
	}
	return &user, nil
}

func (s *UserServiceImpl) GetRoleByID(ctx context.Context, userID uint64) (model.UserRole, error) {
	var user model.User
	err := s.db.WithContext(ctx).
		Where("id = ?", userID).
		Where("status = ?", model.UserStatusNormal).
		Select("role").
		First(&user).Error
	if err != nil {
		return model.UserRoleNormal, fmt.Errorf("GetRoleByID failed at select from user: %w", err)
	}
	return user.Role, nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, param *model.UpdatePasswordParam) error {
	user, err := s.GetUserByID(ctx, param.Operator)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(param.OldPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(param.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("UpdatePassword failed at hash password: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", param.Operator).
		UpdateColumn("password", string(hash)).Error
	if err != nil {
		return fmt.Errorf("UpdatePassword failed at update user: %w", err)
	}
	return nil
}
