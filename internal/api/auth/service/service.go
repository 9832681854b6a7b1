package authService

import (
	"context"
	"time"

	"SonicSavor/internal/api/auth"
	authRepository "SonicSavor/internal/api/auth/repository"
	"SonicSavor/internal/entity"
	"SonicSavor/pkg/bcrypt"
	"SonicSavor/pkg/redis"
	"SonicSavor/pkg/utils"
	"github.com/sirupsen/logrus"
)

const DefaultTokenTTL = time.Hour

type AuthService interface {
	Session() SessionDomain
	Admin() AdminDomain
}

// SessionDomain issues and revokes admin access tokens.
type SessionDomain interface {
	Login(c context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	Logout(c context.Context, admin entity.AdminLoginData) (auth.MessageResponse, error)
}

// AdminDomain manages the admin accounts themselves.
type AdminDomain interface {
	SeedAdmin(c context.Context, username string, password string) error
}

type authService struct {
	sessionDomain SessionDomain
	adminDomain   AdminDomain
}

func (s *authService) Session() SessionDomain {
	return s.sessionDomain
}

func (s *authService) Admin() AdminDomain {
	return s.adminDomain
}

type sessionDomainImpl struct {
	log      *logrus.Logger
	repo     authRepository.Repository
	bcrypt   bcrypt.IBcrypt
	denylist redis.IRedis
	tokenTTL time.Duration
	now      func() time.Time
}

type adminDomainImpl struct {
	log    *logrus.Logger
	repo   authRepository.Repository
	bcrypt bcrypt.IBcrypt
	utils  utils.IUtils
	now    func() time.Time
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	bcrypt bcrypt.IBcrypt,
	denylist redis.IRedis,
	utils utils.IUtils,
	tokenTTL time.Duration,
) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &authService{
		sessionDomain: &sessionDomainImpl{
			log:      log,
			repo:     repo,
			bcrypt:   bcrypt,
			denylist: denylist,
			tokenTTL: tokenTTL,
			now:      time.Now,
		},
		adminDomain: &adminDomainImpl{
			log:    log,
			repo:   repo,
			bcrypt: bcrypt,
			utils:  utils,
			now:    time.Now,
		},
	}
}
