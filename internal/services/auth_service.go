package services

import (
	"context"
	"time"

	"harvestmarket/internal/domain"
	"harvestmarket/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	store     repository.Store
	jwtSecret []byte
}

func NewAuthService(store repository.Store, jwtSecret string) *AuthService {
	return &AuthService{store: store, jwtSecret: []byte(jwtSecret)}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string, role domain.UserRole) (*domain.User, error) {
	if email == "" {
		return nil, &domain.ValidationError{Field: "email", Message: "required"}
	}
	if len(password) < 8 {
		return nil, &domain.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	existing, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ConflictError{Message: "email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	if role == domain.RoleFarmer {
		if err := s.store.Farmers().Create(ctx, &domain.FarmerProfile{UserID: user.ID}); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.store.Users().FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, &domain.NotFoundError{Entity: "user"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, &domain.ValidationError{Field: "password", Message: "incorrect password"}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Entity: "user"}
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uint64, username string) (*domain.User, error) {
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Message: "required"}
	}
	user, err := s.store.Users().FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.NotFoundError{Entity: "user"}
	}
	user.Username = username
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ParseToken validates a bearer token and returns the user id, email and
// role it carries.
func (s *AuthService) ParseToken(tokenString string) (uint64, string, domain.UserRole, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", "", &domain.ValidationError{Field: "token", Message: "invalid or expired token"}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", "", &domain.ValidationError{Field: "token", Message: "malformed claims"}
	}
	sub, _ := claims["sub"].(float64)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return uint64(sub), email, domain.UserRole(role), nil
}
