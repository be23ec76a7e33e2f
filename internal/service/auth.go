package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/octet-systems/pebbleshotel/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type adminClaims struct {
	Email string           `json:"email"`
	Role  domain.AdminRole `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	adminRepo  ports.AdminRepo
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	logger     logger.Logger
}

func NewAuthService(adminRepo ports.AdminRepo, secret string, tokenTTL time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AdminSession, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)
	claims := adminClaims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	if err = s.adminRepo.TouchLogin(ctx, admin.ID, now); err != nil {
		s.logger.Warn("failed to record admin login",
			logger.String("admin_id", admin.ID),
			logger.String("error", err.Error()),
		)
	} else {
		admin.LastLoginAt = &now
	}

	s.logger.Info("admin logged in",
		logger.String("admin_id", admin.ID),
		logger.String("role", string(admin.Role)),
	)

	return &domain.AdminSession{Token: token, ExpiresAt: expiresAt, Admin: admin}, nil
}

func (s *AuthService) ParseToken(token string) (*domain.AdminClaims, error) {
	var claims adminClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToken, err.Error())
	}

	if !claims.Role.Valid() || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.AdminClaims{
		AdminID: claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
	}, nil
}

func (s *AuthService) CreateAdmin(ctx context.Context, input domain.CreateAdminInput) (*domain.AdminUser, error) {
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &domain.AdminUser{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Role:         input.Role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err = s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info("admin created",
		logger.String("admin_id", admin.ID),
		logger.String("role", string(admin.Role)),
	)

	return admin, nil
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]*domain.AdminUser, error) {
	return s.adminRepo.List(ctx)
}

// EnsureBootstrapAdmin создает super_admin из конфигурации, если его еще нет.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	if email == "" {
		return nil
	}

	_, err := s.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrAdminNotFound) {
		return fmt.Errorf("get bootstrap admin: %w", err)
	}

	_, err = s.CreateAdmin(ctx, domain.CreateAdminInput{
		Email:    email,
		Name:     "Administrator",
		Role:     domain.AdminRoleSuperAdmin,
		Password: password,
	})
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
