package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/contactdesk/internal/client/models"
)

// fakeClient implements client.Client, recording calls and returning preset
// results.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	RegisterRet models.TokenPair
	RegisterErr error
	LastDraft   models.RegistrationDraft

	LoginRet  models.TokenPair
	LoginErr  error
	LastLogin models.LoginRequest

	VerifyErr   error
	LastVerify  string
	verifyBlock chan struct{}

	ResetRet  models.MessageResponse
	ResetErr  error
	LastReset models.PasswordResetRequest

	ListRet []models.Contact
	ListErr error

	CreateRet  models.Contact
	CreateErr  error
	LastCreate models.ContactInput

	GetRet models.Contact
	GetErr error

	UpdateRet  models.Contact
	UpdateErr  error
	LastUpdate models.ContactInput
	LastID     int64

	DeleteErr error
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Register(_ context.Context, d models.RegistrationDraft) (models.TokenPair, error) {
	f.record("Register")
	f.LastDraft = d
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, r models.LoginRequest) (models.TokenPair, error) {
	f.record("Login")
	f.LastLogin = r
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) VerifyEmail(ctx context.Context, token string) error {
	f.record("VerifyEmail")
	f.LastVerify = token
	if f.verifyBlock != nil {
		select {
		case <-f.verifyBlock:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.VerifyErr
}

func (f *fakeClient) RequestPasswordReset(_ context.Context, r models.PasswordResetRequest) (models.MessageResponse, error) {
	f.record("RequestPasswordReset")
	f.LastReset = r
	return f.ResetRet, f.ResetErr
}

func (f *fakeClient) ListContacts(context.Context) ([]models.Contact, error) {
	f.record("ListContacts")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateContact(_ context.Context, in models.ContactInput) (models.Contact, error) {
	f.record("CreateContact")
	f.LastCreate = in
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) GetContact(_ context.Context, id int64) (models.Contact, error) {
	f.record("GetContact")
	f.LastID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) UpdateContact(_ context.Context, id int64, in models.ContactInput) (models.Contact, error) {
	f.record("UpdateContact")
	f.LastID = id
	f.LastUpdate = in
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteContact(_ context.Context, id int64) error {
	f.record("DeleteContact")
	f.LastID = id
	return f.DeleteErr
}
