// Package services contains the client's application services. This file
// defines the account service: registration, sign-in, email verification,
// password reset and the local session lifecycle.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactdesk/internal/client/client"
	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/session"
	"github.com/dmitrijs2005/contactdesk/internal/common"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

// AuthService defines account operations for the views and the CLI.
//
// Contract:
//   - Register: validate the draft locally, create the account and store
//     the returned credential pair.
//   - Login: exchange email/password for a credential pair and store it.
//   - VerifyEmail: exchange a verification token; on success the token is
//     stored as the access value.
//   - RequestPasswordReset: ask the backend to mail a reset link.
//   - Logout: forget the stored credential.
//   - Status: report whether a credential is stored and what it claims.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, draft models.RegistrationDraft) (session.Credential, error)
	Login(ctx context.Context, email string, password []byte) (session.Credential, error)
	VerifyEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (SessionStatus, error)
}

type SessionStatus struct {
	SignedIn bool
	// Info is nil when signed out or when the access value is not a JWT.
	Info *session.TokenInfo
}

type authService struct {
	client client.Client
	store  session.Store
	log    logging.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService bound to the API client and the
// credential store.
func NewAuthService(c client.Client, store session.Store, log logging.Logger) AuthService {
	return &authService{client: c, store: store, log: log.With("service", "auth"), now: time.Now}
}

// Register never contacts the backend when the confirmation does not match.
// Every other failure is reported as ErrRegistrationFailed with the cause
// wrapped for logging.
func (a *authService) Register(ctx context.Context, draft models.RegistrationDraft) (session.Credential, error) {
	if err := validateStruct(draft); err != nil {
		return session.Credential{}, ErrPasswordMismatch
	}

	pair, err := a.client.Register(ctx, draft)
	if err != nil {
		a.log.Warn(ctx, "registration rejected", "username", draft.Username, "error", err)
		return session.Credential{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	cred, err := a.storePair(ctx, pair)
	if err != nil {
		a.log.Error(ctx, "registration credential not stored", "error", err)
		return session.Credential{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	a.log.Info(ctx, "registered", "username", draft.Username)
	return cred, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (session.Credential, error) {
	req := models.LoginRequest{Email: email, Password: string(password)}
	common.WipeByteArray(password)

	if err := validateStruct(req); err != nil {
		return session.Credential{}, err
	}

	pair, err := a.client.Login(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "sign-in rejected", "error", err)
		return session.Credential{}, fmt.Errorf("%w: %w", ErrSignInFailed, err)
	}

	cred, err := a.storePair(ctx, pair)
	if err != nil {
		return session.Credential{}, fmt.Errorf("%w: %w", ErrSignInFailed, err)
	}
	a.log.Info(ctx, "signed in")
	return cred, nil
}

// storePair persists a registration or sign-in response. Both values must
// be present.
func (a *authService) storePair(ctx context.Context, pair models.TokenPair) (session.Credential, error) {
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return session.Credential{}, errors.New("response carries no credential pair")
	}
	cred := session.Credential{Access: pair.AccessToken, Refresh: pair.RefreshToken}
	if err := a.store.Set(ctx, cred); err != nil {
		return session.Credential{}, fmt.Errorf("store credential: %w", err)
	}
	return cred, nil
}

// VerifyEmail runs the exchange once per call; repeating it with the same
// token is up to the backend.
func (a *authService) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidOrExpiredToken
	}

	if err := a.client.VerifyEmail(ctx, token); err != nil {
		a.log.Warn(ctx, "verification rejected", "token", logging.Mask(token), "error", err)
		return fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}

	if err := a.store.SetAccess(ctx, token); err != nil {
		return fmt.Errorf("store verification credential: %w", err)
	}
	a.log.Info(ctx, "email verified")
	return nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	req := models.PasswordResetRequest{Email: email}
	if err := validateStruct(req); err != nil {
		return "", err
	}

	resp, err := a.client.RequestPasswordReset(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "password reset rejected", "error", err)
		return "", fmt.Errorf("%w: %w", ErrPasswordResetFailed, err)
	}
	return resp.Message, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	a.log.Info(ctx, "signed out")
	return nil
}

func (a *authService) Status(ctx context.Context) (SessionStatus, error) {
	cred, ok, err := a.store.Current(ctx)
	if err != nil {
		return SessionStatus{}, fmt.Errorf("read credential: %w", err)
	}
	if !ok {
		return SessionStatus{}, nil
	}

	st := SessionStatus{SignedIn: true}
	if info, err := session.Describe(cred.Access, a.now()); err == nil {
		st.Info = &info
	}
	return st, nil
}
