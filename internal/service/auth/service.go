package auth

import (
	"context"
	"fmt"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/domain/employee"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	credentialRepo auth.CredentialRepository
	employeeRepo   employee.EmployeeRepository
	jwtService     jwt.Service
}

func NewAuthService(credentialRepo auth.CredentialRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &authServiceImpl{
		credentialRepo: credentialRepo,
		employeeRepo:   employeeRepo,
		jwtService:     jwtService,
	}
}

// Login implements auth.AuthService.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	credential, err := s.credentialRepo.GetByStaffID(ctx, req.StaffID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, credential.StaffID, credential.Role)
}

// Refresh implements auth.AuthService. The refresh token is verified against
// the same signing key; access tokens are not accepted here.
func (s *authServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	staffID, ok := claims["staff_id"].(float64)
	if !ok || staffID <= 0 {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	credential, err := s.credentialRepo.GetByStaffID(ctx, int(staffID))
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return s.issueTokens(ctx, credential.StaffID, credential.Role)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, staffID int, role auth.Role) (auth.LoginResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, staffID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("unable to resolve requester: %w", err)
	}

	identity := auth.Identity{
		StaffID:    emp.StaffID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Email:      emp.Email,
		Department: emp.Department,
		Position:   emp.Position,
		Role:       role,
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(identity)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := s.jwtService.GenerateRefreshToken(staffID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}
