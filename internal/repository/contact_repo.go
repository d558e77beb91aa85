package repository

import (
	"context"
	"errors"
	"fmt"

	"marketing_cms/internal/model"

	"github.com/jackc/pgx/v5"
)

// ContactRepository defines operations for contact submissions
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindAll(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id int64) (*model.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type contactRepository struct {
	db PgxPool
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db PgxPool) ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, name, email, phone, subject, service, message, status, created_at, updated_at`

func scanContact(row pgx.Row, c *model.Contact) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Service, &c.Message, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

// Create inserts a new contact submission
func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	sql := `INSERT INTO contacts (name, email, phone, subject, service, message, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, c.Name, c.Email, c.Phone, c.Subject, c.Service, c.Message, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// FindAll retrieves all contact submissions, newest-created first
func (r *contactRepository) FindAll(ctx context.Context) ([]model.Contact, error) {
	sql := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := scanContact(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}

// FindByID retrieves a contact by its storage identifier
func (r *contactRepository) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	c := &model.Contact{}
	sql := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	err := scanContact(r.db.QueryRow(ctx, sql, id), c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}
	return c, nil
}

// UpdateStatus sets the status of a contact and returns the updated record
func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Contact, error) {
	c := &model.Contact{}
	sql := `UPDATE contacts SET status = $1, updated_at = NOW() WHERE id = $2
            RETURNING ` + contactColumns
	err := scanContact(r.db.QueryRow(ctx, sql, status, id), c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update contact status: %w", err)
	}
	return c, nil
}

// Delete removes a contact by its storage identifier
func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
