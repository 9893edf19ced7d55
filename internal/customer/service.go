package customer

import (
	"context"
	"strings"
)

type CreateRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Customer, error)
	GetByID(ctx context.Context, id int64) (*Customer, error)
	Search(ctx context.Context, firstName, phone string) ([]*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Customer, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)

	if firstName == "" || lastName == "" || phone == "" || address == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.repo.FindExact(ctx, firstName, lastName, phone)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrDuplicate
	}

	cust := &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		Address:   address,
	}
	if err := s.repo.Create(ctx, cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Search looks customers up by first-name substring, falling back to a phone
// substring search only when the first-name pass returns no rows. The two
// criteria are never combined; a non-empty first name that matches wins even
// if a phone was supplied too.
func (s *service) Search(ctx context.Context, firstName, phone string) ([]*Customer, error) {
	if firstName == "" && phone == "" {
		return nil, ErrMissingCriteria
	}

	if firstName != "" {
		matches, err := s.repo.SearchByFirstName(ctx, firstName)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return matches, nil
		}
	}

	if phone != "" {
		return s.repo.SearchByPhone(ctx, phone)
	}
	return nil, nil
}
