package repository

import (
	"context"
	"fmt"

	"pg-booking/internal/data/entity"
	"pg-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Property, error)
	FindPublic(ctx context.Context) ([]*entity.Property, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Property, error)
	FindByApproval(ctx context.Context, approved bool) ([]*entity.Property, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, property *entity.Property) error
	UpdateApproval(ctx context.Context, id uuid.UUID, approved bool, reason *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

const propertyColumns = `id, name, description, type, price, location, amenities, rules,
		       images, owner_id, status, is_approved, rejection_reason, created_at, updated_at`

func scanProperty(row pgx.Row) (*entity.Property, error) {
	var p entity.Property
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Type,
		&p.Price,
		&p.Location,
		&p.Amenities,
		&p.Rules,
		&p.Images,
		&p.OwnerID,
		&p.Status,
		&p.IsApproved,
		&p.RejectionReason,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) collectRows(rows pgx.Rows) ([]*entity.Property, error) {
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate property rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	query := `
		INSERT INTO properties (id, name, description, type, price, location, amenities,
		                       rules, images, owner_id, status, is_approved, rejection_reason,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		property.ID,
		property.Name,
		property.Description,
		property.Type,
		property.Price,
		property.Location,
		property.Amenities,
		property.Rules,
		property.Images,
		property.OwnerID,
		property.Status,
		property.IsApproved,
		property.RejectionReason,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("name", property.Name),
			zap.String("owner_id", property.OwnerID.String()),
		)
		return fmt.Errorf("create property %s: %w", property.Name, err)
	}

	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := scanProperty(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find property by ID %s: %w", id.String(), err)
	}

	return property, nil
}

// FindByIDAndOwner scopes the lookup to one owner, so another owner's
// property is indistinguishable from a missing one.
func (r *propertyRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1 AND owner_id = $2`

	property, err := scanProperty(r.db.QueryRow(ctx, query, id, ownerID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID and owner",
			zap.Error(err),
			zap.String("property_id", id.String()),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find property %s for owner %s: %w", id.String(), ownerID.String(), err)
	}

	return property, nil
}

func (r *propertyRepository) FindPublic(ctx context.Context) ([]*entity.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE is_approved = TRUE AND status = 'available'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find public properties", zap.Error(err))
		return nil, fmt.Errorf("find public properties: %w", err)
	}

	return r.collectRows(rows)
}

func (r *propertyRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find properties by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find properties by owner %s: %w", ownerID.String(), err)
	}

	return r.collectRows(rows)
}

func (r *propertyRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all properties",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all properties limit %d offset %d: %w", limit, offset, err)
	}

	return r.collectRows(rows)
}

func (r *propertyRepository) FindByApproval(ctx context.Context, approved bool) ([]*entity.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties
		WHERE is_approved = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, approved)
	if err != nil {
		r.log.Error("Failed to find properties by approval",
			zap.Error(err),
			zap.Bool("approved", approved),
		)
		return nil, fmt.Errorf("find properties by approval %t: %w", approved, err)
	}

	return r.collectRows(rows)
}

func (r *propertyRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM properties`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count properties", zap.Error(err))
		return 0, fmt.Errorf("count all properties: %w", err)
	}

	return count, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	query := `
		UPDATE properties
		SET name = $2, description = $3, type = $4, price = $5, location = $6,
		    amenities = $7, rules = $8, images = $9, status = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		property.ID,
		property.Name,
		property.Description,
		property.Type,
		property.Price,
		property.Location,
		property.Amenities,
		property.Rules,
		property.Images,
		property.Status,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", property.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", property.ID.String())
	}

	return nil
}

func (r *propertyRepository) UpdateApproval(ctx context.Context, id uuid.UUID, approved bool, reason *string) error {
	query := `
		UPDATE properties
		SET is_approved = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, approved, reason)
	if err != nil {
		r.log.Error("Failed to update property approval",
			zap.Error(err),
			zap.String("property_id", id.String()),
			zap.Bool("approved", approved),
		)
		return fmt.Errorf("update property %s approval: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete property",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return fmt.Errorf("delete property %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", id.String())
	}

	r.log.Info("Property deleted", zap.String("property_id", id.String()))
	return nil
}
