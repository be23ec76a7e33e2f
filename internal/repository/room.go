package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/octet-systems/pebbleshotel/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const roomColumns = `id, name, description, price_per_night, original_price, max_guests, size_label,
		amenities, rating, review_count, available, room_type, featured, category, beds, image_url,
		created_at, updated_at`

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (` + roomColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		room.ID, room.Name, room.Description, room.PricePerNight, nullInt64(room.OriginalPrice),
		room.MaxGuests, room.SizeLabel, pq.Array(room.Amenities), room.Rating, room.ReviewCount,
		room.Available, room.RoomType, room.Featured, room.Category, room.Beds, room.ImageURL,
		room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room: %w", err)
	}

	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var res []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, room)
	}

	return res, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms
			  SET name = $2, description = $3, price_per_night = $4, original_price = $5,
			      max_guests = $6, size_label = $7, amenities = $8, rating = $9, review_count = $10,
			      available = $11, room_type = $12, featured = $13, category = $14, beds = $15,
			      image_url = $16, updated_at = $17
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		room.ID, room.Name, room.Description, room.PricePerNight, nullInt64(room.OriginalPrice),
		room.MaxGuests, room.SizeLabel, pq.Array(room.Amenities), room.Rating, room.ReviewCount,
		room.Available, room.RoomType, room.Featured, room.Category, room.Beds, room.ImageURL,
		room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}

	return expectAffected(res, domain.ErrRoomNotFound)
}

func (r *RoomRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	query := `UPDATE rooms SET available = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, available)
	if err != nil {
		return fmt.Errorf("set room availability: %w", err)
	}

	return expectAffected(res, domain.ErrRoomNotFound)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrRoomHasBookings
		}
		return fmt.Errorf("delete room: %w", err)
	}

	return expectAffected(res, domain.ErrRoomNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(sc scanner) (*domain.Room, error) {
	var (
		room     domain.Room
		original sql.NullInt64
	)
	if err := sc.Scan(
		&room.ID, &room.Name, &room.Description, &room.PricePerNight, &original,
		&room.MaxGuests, &room.SizeLabel, pq.Array(&room.Amenities), &room.Rating, &room.ReviewCount,
		&room.Available, &room.RoomType, &room.Featured, &room.Category, &room.Beds, &room.ImageURL,
		&room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if original.Valid {
		room.OriginalPrice = &original.Int64
	}
	if room.Amenities == nil {
		room.Amenities = []string{}
	}

	return &room, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
