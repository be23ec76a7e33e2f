package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/lib/pq"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, room_id, confirmation_code, check_in, check_out, guests, adult_count,
		children_count, special_requests, total_price, status, payment_status, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking) error {
	guests, err := json.Marshal(b.Guests)
	if err != nil {
		return fmt.Errorf("encode guests: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем номер: брони одного номера создаются строго по очереди
	var roomID string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, b.RoomID).
		Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	overlapQuery := `SELECT COUNT(*) FROM bookings
			  WHERE room_id = $1 AND status = ANY($2)
			    AND check_in < $4 AND check_out > $3`
	var overlapping int
	if err = tx.QueryRowContext(
		ctx, overlapQuery, b.RoomID,
		pq.Array(domain.BlockingStatuses), b.CheckIn, b.CheckOut,
	).Scan(&overlapping); err != nil {
		return fmt.Errorf("count overlapping bookings: %w", err)
	}

	if overlapping > 0 {
		return domain.ErrRoomUnavailable
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.RoomID, b.ConfirmationCode, b.CheckIn, b.CheckOut, guests,
		b.AdultCount, b.ChildrenCount, b.SpecialRequests, b.TotalPrice,
		b.Status, b.PaymentStatus, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == pgExclusionViolation:
				return domain.ErrRoomUnavailable
			case pgErr.Code == pgUniqueViolation && pgErr.Constraint == bookingsCodeConstraint:
				return domain.ErrConfirmationCodeTaken
			}
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE confirmation_code = $1`, code)
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`
	return r.getMany(ctx, query)
}

func (r *BookingRepository) ListByRoom(ctx context.Context, roomID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE room_id = $1
			  ORDER BY created_at DESC, id DESC`
	return r.getMany(ctx, query, roomID)
}

func (r *BookingRepository) ListOverlapping(ctx context.Context, rng domain.DateRange) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE status = ANY($1) AND check_in < $3 AND check_out > $2
			  ORDER BY created_at DESC, id DESC`
	return r.getMany(ctx, query, pq.Array(domain.BlockingStatuses), rng.CheckIn, rng.CheckOut)
}

// Update меняет только изменяемые поля: номер, даты, цена и код не трогаются.
// Отмененную бронь можно только повторно отменить.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	guests, err := json.Marshal(b.Guests)
	if err != nil {
		return fmt.Errorf("encode guests: %w", err)
	}

	query := `UPDATE bookings
			  SET guests = $2, adult_count = $3, children_count = $4, special_requests = $5,
			      status = $6, payment_status = $7, updated_at = $8
			  WHERE id = $1 AND (status <> $9 OR $6 = $9)`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, guests, b.AdultCount, b.ChildrenCount, b.SpecialRequests,
		b.Status, b.PaymentStatus, b.UpdatedAt, domain.BookingStatusCancelled,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrRoomUnavailable
		}
		return fmt.Errorf("update booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	// строка не обновилась: брони нет или она уже отменена
	var status domain.BookingStatus
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM bookings WHERE id = $1`, b.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("get booking status: %w", err)
	}
	if err = row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("scan booking status: %w", err)
	}
	if status == domain.BookingStatusCancelled {
		return domain.ErrBookingCancelled
	}
	return domain.ErrBookingNotFound
}

func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = $3
			  WHERE status = $1 AND check_out <= $3
			  RETURNING ` + bookingColumns

	return r.getMany(ctx, query, domain.BookingStatusConfirmed, domain.BookingStatusCompleted, now)
}

func (r *BookingRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Booking, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) getMany(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(sc scanner) (*domain.Booking, error) {
	var (
		b      domain.Booking
		guests []byte
	)
	if err := sc.Scan(
		&b.ID, &b.RoomID, &b.ConfirmationCode, &b.CheckIn, &b.CheckOut, &guests,
		&b.AdultCount, &b.ChildrenCount, &b.SpecialRequests, &b.TotalPrice,
		&b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(guests, &b.Guests); err != nil {
		return nil, fmt.Errorf("decode guests: %w", err)
	}

	return &b, nil
}
