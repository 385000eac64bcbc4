package identity

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const localIssuer = "hackathon-portal-local"

// LocalClaims are the claims of tokens issued by LocalProvider.
type LocalClaims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type localAccount struct {
	Account
	passwordHash []byte
}

// LocalProvider is an in-memory identity provider for development and tests.
// Accounts are lost on restart.
type LocalProvider struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	accounts map[string]*localAccount
	byEmail  map[string]string
}

// NewLocalProvider creates a provider signing HS256 tokens with secret.
func NewLocalProvider(secret string, tokenTTL time.Duration) *LocalProvider {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &LocalProvider{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		accounts: make(map[string]*localAccount),
		byEmail:  make(map[string]string),
	}
}

// Login checks the password and issues a token carrying the current role.
func (p *LocalProvider) Login(ctx context.Context, email, password string) (string, error) {
	p.mu.RLock()
	acc := p.lookupEmail(email)
	p.mu.RUnlock()

	if acc == nil || len(acc.passwordHash) == 0 {
		return "", apperrors.NewAuthenticationError("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return "", apperrors.NewAuthenticationError("invalid email or password")
	}
	return p.IssueToken(acc.Account)
}

// IssueToken signs a token for acc.
func (p *LocalProvider) IssueToken(acc Account) (string, error) {
	now := p.now()
	claims := LocalClaims{
		Email: acc.Email,
		Role:  string(acc.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acc.UID,
			Issuer:    localIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *LocalProvider) VerifyToken(_ context.Context, token string) (*Identity, error) {
	claims := &LocalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(localIssuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil || !parsed.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewAuthenticationError("token expired")
		}
		return nil, apperrors.ErrInvalidToken
	}

	return &Identity{
		UID:   claims.Subject,
		Email: strings.ToLower(claims.Email),
		Role:  roleFromClaims(map[string]interface{}{RoleClaim: claims.Role}),
	}, nil
}

func (p *LocalProvider) GetRole(_ context.Context, uid string) (models.Role, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	acc, ok := p.accounts[uid]
	if !ok {
		return "", apperrors.ErrAccountNotFound
	}
	return acc.Role, nil
}

func (p *LocalProvider) SetRole(_ context.Context, uid string, role models.Role) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	acc, ok := p.accounts[uid]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	acc.Role = role
	return nil
}

func (p *LocalProvider) GetUserByEmail(_ context.Context, email string) (*Account, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	acc := p.lookupEmail(email)
	if acc == nil {
		return nil, apperrors.ErrAccountNotFound
	}
	out := acc.Account
	return &out, nil
}

func (p *LocalProvider) CreateUser(_ context.Context, email, password string) (*Account, error) {
	email = strings.TrimSpace(email)
	key := strings.ToLower(email)
	if key == "" {
		return nil, apperrors.NewValidationError("email", "is required")
	}

	var hash []byte
	if password != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.NewValidationError("password", err.Error())
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.byEmail[key]; exists {
		return nil, apperrors.NewConflictError("account", "email", email)
	}
	acc := &localAccount{
		Account:      Account{UID: uuid.NewString(), Email: email},
		passwordHash: hash,
	}
	p.accounts[acc.UID] = acc
	p.byEmail[key] = acc.UID
	out := acc.Account
	return &out, nil
}

func (p *LocalProvider) DeleteUser(_ context.Context, uid string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	acc, ok := p.accounts[uid]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	delete(p.byEmail, strings.ToLower(acc.Email))
	delete(p.accounts, uid)
	return nil
}

// Seed creates email with role unless it already exists.
func (p *LocalProvider) Seed(ctx context.Context, email, password string, role models.Role) (*Account, error) {
	acc, err := p.CreateUser(ctx, email, password)
	if apperrors.IsConflict(err) {
		acc, err = p.GetUserByEmail(ctx, email)
	}
	if err != nil {
		return nil, err
	}
	if err := p.SetRole(ctx, acc.UID, role); err != nil {
		return nil, err
	}
	acc.Role = role
	return acc, nil
}

func (p *LocalProvider) lookupEmail(email string) *localAccount {
	uid, ok := p.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil
	}
	return p.accounts[uid]
}
