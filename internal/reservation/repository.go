package reservation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nvalencia/apartment-booking-backend/internal/pkg/apperror"
)

// errRoomTaken is the backstop for the exclusion constraint on
// (room_id, daterange(start_date, end_date)). The service-level overlap
// check produces the enumerated message in the normal path; this only fires
// when two writes race on the same room.
var errRoomTaken = apperror.New(http.StatusConflict, "room is no longer available for the requested dates")

// Repository defines data access methods for reservations.
type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*Reservation, error)
	// ListOverlapping returns every reservation, across all rooms, whose
	// range intersects [start, end).
	ListOverlapping(ctx context.Context, start, end time.Time) ([]*Reservation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*Reservation, error)
	UpdateRoom(ctx context.Context, id int64, roomID int64) error
	Delete(ctx context.Context, id int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reservationColumns = "id, customer_id, room_id, start_date, end_date"

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("customer_id", "room_id", "start_date", "end_date").
		Values(res.CustomerID, res.RoomID, res.StartDate, res.EndDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&res.ID); err != nil {
		if isRoomConflict(err) {
			return errRoomTaken
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	var res Reservation
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&res.ID, &res.CustomerID, &res.RoomID, &res.StartDate, &res.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) ListByRoom(ctx context.Context, roomID int64) ([]*Reservation, error) {
	return r.list(ctx, squirrel.Eq{"room_id": roomID})
}

func (r *pgxRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]*Reservation, error) {
	return r.list(ctx, squirrel.And{
		squirrel.Lt{"start_date": end},
		squirrel.Gt{"end_date": start},
	})
}

func (r *pgxRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*Reservation, error) {
	return r.list(ctx, squirrel.Eq{"customer_id": customerID})
}

func (r *pgxRepository) list(ctx context.Context, pred any) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations").
		Where(pred).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(&res.ID, &res.CustomerID, &res.RoomID, &res.StartDate, &res.EndDate); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &res)
	}
	return reservations, rows.Err()
}

func (r *pgxRepository) UpdateRoom(ctx context.Context, id int64, roomID int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("room_id", roomID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update reservation room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isRoomConflict(err) {
			return errRoomTaken
		}
		return fmt.Errorf("update reservation room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isRoomConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation
}
