package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/client/services"
	"github.com/dmitrijs2005/contactdesk/internal/client/session"
)

type fakeNav struct {
	mu      sync.Mutex
	targets []string
}

func (f *fakeNav) Navigate(_ context.Context, target string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.targets = append(f.targets, target)
	return target, nil
}

func (f *fakeNav) Targets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.targets...)
}

// blocker lets a test hold a fake call until it is released.
type blocker struct {
	entered chan struct{}
	release chan struct{}
}

func newBlocker() *blocker {
	return &blocker{entered: make(chan struct{}, 1), release: make(chan struct{})}
}

func (b *blocker) wait(ctx context.Context) {
	if b == nil {
		return
	}
	b.entered <- struct{}{}
	select {
	case <-b.release:
	case <-ctx.Done():
	}
}

type fakeAuth struct {
	RegisterErr error
	LastDraft   models.RegistrationDraft
	registers   int
	block       *blocker

	LoginErr error
	LastUser string

	VerifyErr  error
	LastToken  string
	verifies   int
	verifyWait *blocker
}

func (f *fakeAuth) Register(ctx context.Context, d models.RegistrationDraft) (session.Credential, error) {
	f.registers++
	f.LastDraft = d
	f.block.wait(ctx)
	if f.RegisterErr != nil {
		return session.Credential{}, f.RegisterErr
	}
	return session.Credential{Access: "A", Refresh: "R"}, nil
}

func (f *fakeAuth) Login(_ context.Context, email string, _ []byte) (session.Credential, error) {
	f.LastUser = email
	if f.LoginErr != nil {
		return session.Credential{}, f.LoginErr
	}
	return session.Credential{Access: "A", Refresh: "R"}, nil
}

func (f *fakeAuth) VerifyEmail(ctx context.Context, token string) error {
	f.verifies++
	f.LastToken = token
	f.verifyWait.wait(ctx)
	return f.VerifyErr
}

func (f *fakeAuth) RequestPasswordReset(context.Context, string) (string, error) { return "", nil }
func (f *fakeAuth) Logout(context.Context) error                                 { return nil }
func (f *fakeAuth) Status(context.Context) (services.SessionStatus, error) {
	return services.SessionStatus{}, nil
}

type fakeContacts struct {
	ListRet []models.Contact
	ListErr error
	block   *blocker

	CreateRet models.Contact
	CreateErr error

	GetRet models.Contact
	GetErr error

	UpdateRet models.Contact
	UpdateErr error

	DeleteErr error
}

func (f *fakeContacts) List(ctx context.Context) ([]models.Contact, error) {
	f.block.wait(ctx)
	return f.ListRet, f.ListErr
}

func (f *fakeContacts) Create(context.Context, models.ContactInput) (models.Contact, error) {
	return f.CreateRet, f.CreateErr
}

func (f *fakeContacts) Get(context.Context, int64) (models.Contact, error) {
	return f.GetRet, f.GetErr
}

func (f *fakeContacts) Update(context.Context, int64, models.ContactInput) (models.Contact, error) {
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeContacts) Delete(context.Context, int64) error { return f.DeleteErr }
