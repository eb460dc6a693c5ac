package usecase

import (
	"context"
	"errors"

	"temple-booking/config"
	"temple-booking/internal/delivery/dto"
	"temple-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthUsecase authenticates the admin dashboard. There is a single
// configured admin account; sessions are stateless JWTs.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authUsecase struct {
	cfg        config.AdminConfig
	jwtService *jwt.JWTService
	log        *logrus.Logger
}

func NewAuthUsecase(cfg config.AdminConfig, jwtService *jwt.JWTService, log *logrus.Logger) AuthUsecase {
	return &authUsecase{
		cfg:        cfg,
		jwtService: jwtService,
		log:        log,
	}
}

func (u *authUsecase) Login(_ context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != u.cfg.Username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.cfg.PasswordHash), []byte(req.Password)); err != nil {
		u.log.Warnf("Failed admin login attempt for %s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		u.log.Errorf("Failed to sign access token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
