package repository

import (
	"context"
	"errors"
	"fmt"

	"marketing_cms/internal/model"

	"github.com/jackc/pgx/v5"
)

// PortfolioRepository defines operations for portfolio content data
type PortfolioRepository interface {
	FindAll(ctx context.Context) ([]model.Portfolio, error)
	FindByAppID(ctx context.Context, appID string) (*model.Portfolio, error)
	Create(ctx context.Context, item *model.Portfolio) error
	Update(ctx context.Context, item *model.Portfolio) error
	Delete(ctx context.Context, appID string) error
}

type portfolioRepository struct {
	db PgxPool
}

// NewPortfolioRepository creates a new PortfolioRepository
func NewPortfolioRepository(db PgxPool) PortfolioRepository {
	return &portfolioRepository{db: db}
}

const portfolioColumns = `record_id, id, title, tagline, category, image, color, icon, live_link,
            description, full_description, technologies, features, results, client, duration, status,
            created_at, updated_at`

func scanPortfolio(row pgx.Row, p *model.Portfolio) error {
	return row.Scan(
		&p.RecordID, &p.ID, &p.Title, &p.Tagline, &p.Category, &p.Image, &p.Color, &p.Icon, &p.LiveLink,
		&p.Description, &p.FullDescription, &p.Technologies, &p.Features, &p.Results, &p.Client, &p.Duration, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// FindAll retrieves all portfolio items, newest-created first
func (r *portfolioRepository) FindAll(ctx context.Context) ([]model.Portfolio, error) {
	sql := `SELECT ` + portfolioColumns + ` FROM portfolio ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio: %w", err)
	}
	defer rows.Close()

	items := []model.Portfolio{}
	for rows.Next() {
		var p model.Portfolio
		if err := scanPortfolio(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio row: %w", err)
		}
		items = append(items, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio rows: %w", err)
	}
	return items, nil
}

// FindByAppID retrieves a portfolio item by its application-assigned id
func (r *portfolioRepository) FindByAppID(ctx context.Context, appID string) (*model.Portfolio, error) {
	p := &model.Portfolio{}
	sql := `SELECT ` + portfolioColumns + ` FROM portfolio WHERE id = $1`
	err := scanPortfolio(r.db.QueryRow(ctx, sql, appID), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find portfolio item by id: %w", err)
	}
	return p, nil
}

// Create inserts a new portfolio item into the database
func (r *portfolioRepository) Create(ctx context.Context, p *model.Portfolio) error {
	sql := `INSERT INTO portfolio (id, title, tagline, category, image, color, icon, live_link,
            description, full_description, technologies, features, results, client, duration, status)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
            RETURNING record_id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql,
		p.ID, p.Title, p.Tagline, p.Category, p.Image, p.Color, p.Icon, p.LiveLink,
		p.Description, p.FullDescription, p.Technologies, p.Features, p.Results, p.Client, p.Duration, p.Status,
	).Scan(&p.RecordID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return nil
}

// Update overwrites all mutable fields of an existing portfolio item
func (r *portfolioRepository) Update(ctx context.Context, p *model.Portfolio) error {
	sql := `UPDATE portfolio
            SET title = $1, tagline = $2, category = $3, image = $4, color = $5, icon = $6, live_link = $7,
                description = $8, full_description = $9, technologies = $10, features = $11, results = $12,
                client = $13, duration = $14, status = $15, updated_at = NOW()
            WHERE id = $16 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql,
		p.Title, p.Tagline, p.Category, p.Image, p.Color, p.Icon, p.LiveLink,
		p.Description, p.FullDescription, p.Technologies, p.Features, p.Results,
		p.Client, p.Duration, p.Status, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update portfolio item: %w", err)
	}
	return nil
}

// Delete removes a portfolio item by its application-assigned id
func (r *portfolioRepository) Delete(ctx context.Context, appID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolio WHERE id = $1`, appID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
