package tokens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"github.com/fsdevblog/smmpanel/internal/domain"
	"google.golang.org/api/option"
)

// adminClaim custom claim, которым в Firebase помечаются администраторы.
const adminClaim = "admin"

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier проверяет Firebase ID токены. Админ определяется custom claim admin=true или
// по списку email адресов из конфигурации.
type FirebaseVerifier struct {
	client      idTokenVerifier
	adminEmails map[string]struct{}
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string, adminEmails []string) (*FirebaseVerifier, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting firebase auth client: %w", err)
	}
	return newFirebaseVerifier(client, adminEmails), nil
}

func newFirebaseVerifier(client idTokenVerifier, adminEmails []string) *FirebaseVerifier {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &FirebaseVerifier{client: client, adminEmails: admins}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Join(domain.ErrUnauthenticated, err)
	}
	email, _ := t.Claims["email"].(string)
	isAdmin, _ := t.Claims[adminClaim].(bool)
	if _, ok := v.adminEmails[strings.ToLower(email)]; ok && email != "" {
		isAdmin = true
	}
	return &domain.Identity{UserID: t.UID, Email: email, IsAdmin: isAdmin}, nil
}
