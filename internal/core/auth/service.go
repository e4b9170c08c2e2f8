package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"babybites/internal/infrastructure/config"
	"babybites/internal/models"
	"babybites/internal/pkg/common"
)

// Claims is the verified session identity. Handlers read it from context;
// authorization decisions never use identifiers from request bodies.
type Claims struct {
	UserID  uint
	Email   string
	IsAdmin bool
}

// Service owns account creation, password checks and token issue/verify.
type Service struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewService(cfg *config.Config, db *gorm.DB) *Service {
	return &Service{
		db:     db,
		secret: []byte(cfg.Auth.JWTSecret),
		ttl:    cfg.Auth.TokenTTL,
	}
}

// SignupInput is the registration payload.
type SignupInput struct {
	Email            string
	Password         string
	TermsAccepted    bool
	MarketingConsent bool
}

// Signup creates an account and returns a session token for it.
func (s *Service) Signup(in SignupInput) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return "", nil, common.NewValidationError("a valid email is required")
	}
	if len(in.Password) < 8 {
		return "", nil, common.NewValidationError("password must be at least 8 characters")
	}
	if !in.TermsAccepted {
		return "", nil, common.NewValidationError("terms must be accepted")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, common.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := models.User{
		Email:            email,
		Password:         string(hash),
		TermsAccepted:    in.TermsAccepted,
		MarketingConsent: in.MarketingConsent,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login checks credentials and returns a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, common.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *Service) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"admin": user.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken validates a bearer token and returns the session claims.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrUnauthorized
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, common.ErrUnauthorized
	}
	sub, ok := mc["sub"].(float64)
	if !ok {
		return nil, common.ErrUnauthorized
	}

	claims := &Claims{UserID: uint(sub)}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}
	if admin, ok := mc["admin"].(bool); ok {
		claims.IsAdmin = admin
	}
	return claims, nil
}
