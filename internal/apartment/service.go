package apartment

import "context"

type Service interface {
	List(ctx context.Context) ([]*Apartment, error)
	GetByID(ctx context.Context, id int64) (*Apartment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Apartment, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Apartment, error) {
	return s.repo.GetByID(ctx, id)
}
