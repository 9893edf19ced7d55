package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines data access methods for customers.
type Repository interface {
	Create(ctx context.Context, cust *Customer) error
	GetByID(ctx context.Context, id int64) (*Customer, error)
	// FindExact returns customers matching first name, last name and phone
	// exactly. Used for duplicate detection.
	FindExact(ctx context.Context, firstName, lastName, phone string) ([]*Customer, error)
	SearchByFirstName(ctx context.Context, sub string) ([]*Customer, error)
	SearchByPhone(ctx context.Context, sub string) ([]*Customer, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const customerColumns = "id, first_name, last_name, phone, address"

func (r *pgxRepository) Create(ctx context.Context, cust *Customer) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.customers").
		Columns("first_name", "last_name", "phone", "address").
		Values(cust.FirstName, cust.LastName, cust.Phone, cust.Address).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create customer query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&cust.ID); err != nil {
		// Unique index on (first_name, last_name, phone) closes the race
		// between the service-level duplicate check and the insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("create customer failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Customer, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(customerColumns).
		From("public.customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer query failed: %w", err)
	}

	var cust Customer
	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&cust.ID, &cust.FirstName, &cust.LastName, &cust.Phone, &cust.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get customer failed: %w", err)
	}
	return &cust, nil
}

func (r *pgxRepository) FindExact(ctx context.Context, firstName, lastName, phone string) ([]*Customer, error) {
	return r.search(ctx, squirrel.Eq{
		"first_name": firstName,
		"last_name":  lastName,
		"phone":      phone,
	})
}

func (r *pgxRepository) SearchByFirstName(ctx context.Context, sub string) ([]*Customer, error) {
	// LIKE, not ILIKE: the search is case-sensitive.
	return r.search(ctx, squirrel.Like{"first_name": "%" + sub + "%"})
}

func (r *pgxRepository) SearchByPhone(ctx context.Context, sub string) ([]*Customer, error) {
	return r.search(ctx, squirrel.Like{"phone": "%" + sub + "%"})
}

func (r *pgxRepository) search(ctx context.Context, pred any) ([]*Customer, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(customerColumns).
		From("public.customers").
		Where(pred).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search customers query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search customers failed: %w", err)
	}
	defer rows.Close()

	var customers []*Customer
	for rows.Next() {
		var cust Customer
		if err := rows.Scan(&cust.ID, &cust.FirstName, &cust.LastName, &cust.Phone, &cust.Address); err != nil {
			return nil, fmt.Errorf("scan customer failed: %w", err)
		}
		customers = append(customers, &cust)
	}
	return customers, rows.Err()
}
