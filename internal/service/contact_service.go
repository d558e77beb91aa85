package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"marketing_cms/internal/model"
	"marketing_cms/internal/repository"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidStatus   = errors.New("invalid status")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService handles public contact submissions and their admin lifecycle
type ContactService interface {
	Submit(ctx context.Context, req model.SubmitContactRequest) (*model.Contact, error)
	List(ctx context.Context) ([]model.Contact, error)
	Get(ctx context.Context, id int64) (*model.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// Submit validates and persists a public contact form submission with
// status "new".
func (s *contactService) Submit(ctx context.Context, req model.SubmitContactRequest) (*model.Contact, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}

	contact := &model.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Subject: req.Subject,
		Service: req.Service,
		Message: strings.TrimSpace(req.Message),
		Status:  model.ContactStatusNew,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) List(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) Get(ctx context.Context, id int64) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Contact, error) {
	if !model.ValidContactStatus(status) {
		return nil, ErrInvalidStatus
	}

	contact, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
