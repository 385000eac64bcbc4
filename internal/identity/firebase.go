package identity

import (
	"context"
	"strings"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

const firebaseService = "identity provider"

// FirebaseProvider implements Provider on Firebase Authentication.
type FirebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider initializes the Admin SDK from a service-account file.
func NewFirebaseProvider(ctx context.Context, projectID, credentialsFile string) (*FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to initialize firebase: " + err.Error())
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, apperrors.NewConfigurationError("failed to initialize firebase auth: " + err.Error())
	}
	return &FirebaseProvider{client: client}, nil
}

// VerifyToken checks an ID token. The role comes from the token's custom
// claims, so a role change is visible after the client refreshes its token.
func (p *FirebaseProvider) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	t, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	email, _ := t.Claims["email"].(string)
	return &Identity{
		UID:   t.UID,
		Email: strings.ToLower(email),
		Role:  roleFromClaims(t.Claims),
	}, nil
}

func (p *FirebaseProvider) GetRole(ctx context.Context, uid string) (models.Role, error) {
	u, err := p.client.GetUser(ctx, uid)
	if err != nil {
		return "", mapFirebaseErr(err)
	}
	return roleFromClaims(u.CustomClaims), nil
}

func (p *FirebaseProvider) SetRole(ctx context.Context, uid string, role models.Role) error {
	var claims map[string]interface{}
	if role != "" {
		claims = map[string]interface{}{RoleClaim: string(role)}
	}
	if err := p.client.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return mapFirebaseErr(err)
	}
	return nil
}

func (p *FirebaseProvider) GetUserByEmail(ctx context.Context, email string) (*Account, error) {
	u, err := p.client.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, mapFirebaseErr(err)
	}
	return &Account{UID: u.UID, Email: u.Email, Role: roleFromClaims(u.CustomClaims)}, nil
}

func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password string) (*Account, error) {
	params := (&auth.UserToCreate{}).Email(strings.TrimSpace(email))
	if password != "" {
		params = params.Password(password)
	}
	u, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, apperrors.NewConflictError("account", "email", email)
		}
		return nil, mapFirebaseErr(err)
	}
	return &Account{UID: u.UID, Email: u.Email}, nil
}

func (p *FirebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return mapFirebaseErr(err)
	}
	return nil
}

func mapFirebaseErr(err error) error {
	if auth.IsUserNotFound(err) {
		return apperrors.ErrAccountNotFound
	}
	return apperrors.NewUpstreamError(firebaseService, err)
}
