package repository

import (
	"context"
	"errors"
	"fmt"

	"marketing_cms/internal/model"

	"github.com/jackc/pgx/v5"
)

// ServiceRepository defines operations for service content data
type ServiceRepository interface {
	FindAll(ctx context.Context) ([]model.Service, error)
	FindByAppID(ctx context.Context, appID string) (*model.Service, error)
	Create(ctx context.Context, svc *model.Service) error
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, appID string) error
}

type serviceRepository struct {
	db PgxPool
}

// NewServiceRepository creates a new ServiceRepository
func NewServiceRepository(db PgxPool) ServiceRepository {
	return &serviceRepository{db: db}
}

const serviceColumns = `record_id, id, icon, title, short_description, full_description, long_description,
            color, gradient, features, benefits, use_cases, technologies, created_at, updated_at`

func scanService(row pgx.Row, s *model.Service) error {
	return row.Scan(
		&s.RecordID, &s.ID, &s.Icon, &s.Title, &s.ShortDescription, &s.FullDescription, &s.LongDescription,
		&s.Color, &s.Gradient, &s.Features, &s.Benefits, &s.UseCases, &s.Technologies, &s.CreatedAt, &s.UpdatedAt,
	)
}

// FindAll retrieves all services, newest-created first
func (r *serviceRepository) FindAll(ctx context.Context) ([]model.Service, error) {
	sql := `SELECT ` + serviceColumns + ` FROM services ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := scanService(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		services = append(services, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}
	return services, nil
}

// FindByAppID retrieves a service by its application-assigned id
func (r *serviceRepository) FindByAppID(ctx context.Context, appID string) (*model.Service, error) {
	s := &model.Service{}
	sql := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	err := scanService(r.db.QueryRow(ctx, sql, appID), s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find service by id: %w", err)
	}
	return s, nil
}

// Create inserts a new service into the database
func (r *serviceRepository) Create(ctx context.Context, s *model.Service) error {
	sql := `INSERT INTO services (id, icon, title, short_description, full_description, long_description,
            color, gradient, features, benefits, use_cases, technologies)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            RETURNING record_id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		s.ID, s.Icon, s.Title, s.ShortDescription, s.FullDescription, s.LongDescription,
		s.Color, s.Gradient, s.Features, s.Benefits, s.UseCases, s.Technologies,
	).Scan(&s.RecordID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields of an existing service
func (r *serviceRepository) Update(ctx context.Context, s *model.Service) error {
	sql := `UPDATE services
            SET icon = $1, title = $2, short_description = $3, full_description = $4, long_description = $5,
                color = $6, gradient = $7, features = $8, benefits = $9, use_cases = $10, technologies = $11,
                updated_at = NOW()
            WHERE id = $12 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql,
		s.Icon, s.Title, s.ShortDescription, s.FullDescription, s.LongDescription,
		s.Color, s.Gradient, s.Features, s.Benefits, s.UseCases, s.Technologies, s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

// Delete removes a service by its application-assigned id
func (r *serviceRepository) Delete(ctx context.Context, appID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, appID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
