package client

import (
	"context"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
)

type Client interface {
	Register(ctx context.Context, draft models.RegistrationDraft) (models.TokenPair, error)
	Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error)
	VerifyEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) (models.MessageResponse, error)

	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, in models.ContactInput) (models.Contact, error)
	GetContact(ctx context.Context, id int64) (models.Contact, error)
	UpdateContact(ctx context.Context, id int64, in models.ContactInput) (models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

// TokenSource supplies the bearer credential for protected calls.
// session.Store satisfies it.
type TokenSource interface {
	AccessToken(ctx context.Context) (token string, ok bool, err error)
}
