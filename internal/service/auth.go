package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/recipe-book/backend/internal/config"
	"github.com/recipe-book/backend/internal/crypto"
	"github.com/recipe-book/backend/internal/db"
	"github.com/recipe-book/backend/internal/model"
	"go.uber.org/zap"
)

const (
	minPasswordLength = 4
	maxPasswordLength = 14
	tokenTypeAccess   = "access"
)

type UserRepo interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	repo      UserRepo
	blocklist *TokenBlocklist
	validate  *validator.Validate
	log       *zap.Logger
	jwtSecret []byte
	accessTTL time.Duration
	now       func() time.Time
}

type authClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

func NewAuthService(repo UserRepo, blocklist *TokenBlocklist, cfg config.AuthConfig, log *zap.Logger) (*AuthService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}
	if cfg.AccessTTL < 0 {
		return nil, fmt.Errorf("%w: invalid JWT_ACCESS_TTL", ErrMisconfigured)
	}
	if blocklist == nil {
		blocklist = NewTokenBlocklist()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &AuthService{
		repo:      repo,
		blocklist: blocklist,
		validate:  validator.New(),
		log:       log,
		jwtSecret: []byte(cfg.Secret),
		accessTTL: cfg.AccessTTL,
		now:       time.Now,
	}, nil
}

// Register 는 이메일 형식과 비밀번호 길이를 확인한 뒤 회원을 만들고 access token 을 발급한다.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	if err := s.validateEmail(email); err != nil {
		return "", err
	}

	// 비밀번호는 4자 이상 14자 이하 (문자 수 기준)
	if n := utf8.RuneCountInString(password); n < minPasswordLength || n > maxPasswordLength {
		return "", ErrInvalidPasswordLength
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return "", err
	}

	userID, err := s.repo.CreateUser(ctx, username, email, hash)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return "", ErrEmailTaken
		}
		s.log.Error("failed to create user", zap.Error(err))
		return "", err
	}

	return s.issueAccessToken(userID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrNotMember
		}
		s.log.Error("failed to get user", zap.Error(err))
		return "", err
	}

	if !crypto.CheckPassword(password, user.Password) {
		return "", ErrWrongPassword
	}

	return s.issueAccessToken(user.ID)
}

// Logout 은 호출자 토큰의 jti 를 블록리스트에 넣는다.
func (s *AuthService) Logout(user *model.AuthUser) error {
	if user == nil || user.TokenID == "" {
		return ErrUnauthorized
	}
	s.blocklist.Revoke(user.TokenID)
	s.log.Info("token revoked", zap.Int64("user_id", user.ID), zap.String("jti", user.TokenID))
	return nil
}

// ParseAccessToken 은 서명, 만료, 블록리스트를 모두 확인한다.
func (s *AuthService) ParseAccessToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	if claims.Type != tokenTypeAccess || claims.ID == "" {
		return nil, ErrUnauthorized
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if s.blocklist.IsRevoked(claims.ID) {
		return nil, ErrTokenRevoked
	}

	return &model.AuthUser{
		ID:      userID,
		TokenID: claims.ID,
	}, nil
}

func (s *AuthService) issueAccessToken(userID int64) (string, error) {
	now := s.now()
	claims := authClaims{
		Type: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	// TTL 0 이면 만료 없는 토큰
	if s.accessTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.accessTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) validateEmail(email string) error {
	err := s.validate.Var(email, "required,email")
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "required" {
		return &ValidationError{Field: "email", Message: "The email address is empty."}
	}
	return &ValidationError{
		Field:   "email",
		Message: fmt.Sprintf("The email address is not valid: %q", email),
	}
}
