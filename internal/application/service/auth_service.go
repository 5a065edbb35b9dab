package service

import (
	"context"

	"github.com/syedahad2205/dajaj-pos/internal/domain/entity"
	"github.com/syedahad2205/dajaj-pos/internal/domain/repository"
	"github.com/syedahad2205/dajaj-pos/pkg/apperror"
	"github.com/syedahad2205/dajaj-pos/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles operator authentication
type AuthService struct {
	operatorRepo repository.OperatorRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(operatorRepo repository.OperatorRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		jwtManager:   jwtManager,
	}
}

// LoginResult holds the issued access token and the operator profile
type LoginResult struct {
	AccessToken string           `json:"access_token"`
	Operator    *entity.Operator `json:"operator"`
}

// Login verifies operator credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	operator, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(operator.ID, operator.Email, operator.Name)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken: token,
		Operator:    operator,
	}, nil
}
