package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/contactdesk/internal/client/client"
	"github.com/dmitrijs2005/contactdesk/internal/client/models"
	"github.com/dmitrijs2005/contactdesk/internal/logging"
)

// ContactService wraps the contact endpoints with local form validation.
// Transport errors are returned wrapped, so client sentinels still match.
type ContactService interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, in models.ContactInput) (models.Contact, error)
	Get(ctx context.Context, id int64) (models.Contact, error)
	Update(ctx context.Context, id int64, in models.ContactInput) (models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	client client.Client
	log    logging.Logger
}

func NewContactService(c client.Client, log logging.Logger) ContactService {
	return &contactService{client: c, log: log.With("service", "contacts")}
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	list, err := s.client.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	s.log.Debug(ctx, "contacts fetched", "count", len(list))
	return list, nil
}

func (s *contactService) Create(ctx context.Context, in models.ContactInput) (models.Contact, error) {
	if err := validateStruct(in); err != nil {
		return models.Contact{}, err
	}
	c, err := s.client.CreateContact(ctx, in)
	if err != nil {
		return models.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (s *contactService) Get(ctx context.Context, id int64) (models.Contact, error) {
	c, err := s.client.GetContact(ctx, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact %d: %w", id, err)
	}
	return c, nil
}

func (s *contactService) Update(ctx context.Context, id int64, in models.ContactInput) (models.Contact, error) {
	if err := validateStruct(in); err != nil {
		return models.Contact{}, err
	}
	c, err := s.client.UpdateContact(ctx, id, in)
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact %d: %w", id, err)
	}
	return c, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	return nil
}
