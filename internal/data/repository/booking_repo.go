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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Booking, error)
	FindByIDAndClient(ctx context.Context, id, clientID uuid.UUID) (*entity.Booking, error)
	FindByIDForParticipant(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error)
	UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, property_id, client_id, owner_id, check_in, check_out,
		       total_amount, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.PropertyID,
		&b.ClientID,
		&b.OwnerID,
		&b.CheckIn,
		&b.CheckOut,
		&b.TotalAmount,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) collectRows(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, property_id, client_id, owner_id, check_in, check_out,
		                     total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.PropertyID,
		booking.ClientID,
		booking.OwnerID,
		booking.CheckIn,
		booking.CheckOut,
		booking.TotalAmount,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("property_id", booking.PropertyID.String()),
			zap.String("client_id", booking.ClientID.String()),
		)
		return fmt.Errorf("create booking for property %s: %w", booking.PropertyID.String(), err)
	}

	return nil
}

// FindByIDAndOwner scopes the lookup to the booking's owner. A booking held
// by a different owner looks exactly like a missing one.
func (r *bookingRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND owner_id = $2`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, ownerID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID and owner",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find booking %s for owner %s: %w", id.String(), ownerID.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByIDAndClient(ctx context.Context, id, clientID uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND client_id = $2`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, clientID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID and client",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("client_id", clientID.String()),
		)
		return nil, fmt.Errorf("find booking %s for client %s: %w", id.String(), clientID.String(), err)
	}

	return booking, nil
}

// FindByIDForParticipant returns the booking only when the user is its
// client or its owner.
func (r *bookingRepository) FindByIDForParticipant(ctx context.Context, id, userID uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1 AND (client_id = $2 OR owner_id = $2)
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id, userID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking for participant",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find booking %s for user %s: %w", id.String(), userID.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find bookings by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find bookings by owner %s: %w", ownerID.String(), err)
	}

	return r.collectRows(rows)
}

func (r *bookingRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE client_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		r.log.Error("Failed to find bookings by client",
			zap.Error(err),
			zap.String("client_id", clientID.String()),
		)
		return nil, fmt.Errorf("find bookings by client %s: %w", clientID.String(), err)
	}

	return r.collectRows(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all bookings limit %d offset %d: %w", limit, offset, err)
	}

	return r.collectRows(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count all bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE status = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count bookings by status %s: %w", string(status), err)
	}

	return count, nil
}

// UpdateStatusIf transitions status only when the current value still matches
// `from`. Zero rows affected means a concurrent transition won the race.
func (r *bookingRepository) UpdateStatusIf(ctx context.Context, id uuid.UUID, from, to entity.BookingStatus) (int64, error) {
	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return 0, fmt.Errorf("update booking %s status %s -> %s: %w", id.String(), string(from), string(to), err)
	}

	return result.RowsAffected(), nil
}
