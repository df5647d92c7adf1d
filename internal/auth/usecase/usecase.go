package usecase

import (
	authdomain "pitchcraft-backend/internal/auth/domain"
	authdto "pitchcraft-backend/internal/auth/dto"
)

// AuthUsecase exposes the identity-gateway operations used by delivery.
type AuthUsecase interface {
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	GoogleSignIn(idToken string) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)
}
