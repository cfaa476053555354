package services

import (
	"errors"
	"strings"
	"time"

	"foodorder/repository"
	"foodorder/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService จัดการ login ออก token ให้ role admin ใช้เข้าหน้า dashboard
type AuthService struct {
	accountRepo *repository.AccountRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(repo *repository.AccountRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{accountRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

func (s *AuthService) Login(req *LoginReq) (*LoginRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := s.accountRepo.GetByEmail(email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateToken(account.ID, account.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, Role: account.Role}, nil
}
