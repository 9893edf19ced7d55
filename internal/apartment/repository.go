package apartment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines read access to the apartment catalog.
type Repository interface {
	List(ctx context.Context) ([]*Apartment, error)
	GetByID(ctx context.Context, id int64) (*Apartment, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const apartmentColumns = "id, capacity, orientation, view, regular_price, top_season_price"

func (r *pgxRepository) List(ctx context.Context) ([]*Apartment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(apartmentColumns).
		From("public.apartments").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list apartments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list apartments failed: %w", err)
	}
	defer rows.Close()

	var apartments []*Apartment
	for rows.Next() {
		var a Apartment
		if err := rows.Scan(&a.ID, &a.Capacity, &a.Orientation, &a.View, &a.RegularPrice, &a.TopSeasonPrice); err != nil {
			return nil, fmt.Errorf("scan apartment failed: %w", err)
		}
		apartments = append(apartments, &a)
	}
	return apartments, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Apartment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(apartmentColumns).
		From("public.apartments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get apartment query failed: %w", err)
	}

	var a Apartment
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.Capacity, &a.Orientation, &a.View, &a.RegularPrice, &a.TopSeasonPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get apartment failed: %w", err)
	}
	return &a, nil
}
