package reservation

import (
	"context"
	"errors"
	"sort"

	"github.com/nvalencia/apartment-booking-backend/internal/apartment"
	"github.com/nvalencia/apartment-booking-backend/internal/customer"
	"github.com/nvalencia/apartment-booking-backend/internal/dates"
)

type Service interface {
	Create(ctx context.Context, customerID, roomID int64, startRaw, endRaw string) (*Reservation, error)
	FindAvailableApartments(ctx context.Context, startRaw, endRaw string) ([]*apartment.Apartment, error)
	Cancel(ctx context.Context, id int64) error
	MoveRoom(ctx context.Context, id int64, newRoomID int64) (*Reservation, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]Info, error)
}

type service struct {
	repo        Repository
	aptService  apartment.Service
	custService customer.Service
}

func NewService(repo Repository, aptService apartment.Service, custService customer.Service) Service {
	return &service{
		repo:        repo,
		aptService:  aptService,
		custService: custService,
	}
}

// Create books a room for a customer over [start, end). The room itself is
// not looked up: a reservation on an unknown room can never clash with
// anything and simply sits outside the catalog.
func (s *service) Create(ctx context.Context, customerID, roomID int64, startRaw, endRaw string) (*Reservation, error) {
	start, end, err := dates.ValidateRange(startRaw, endRaw)
	if err != nil {
		return nil, err
	}

	if _, err := s.custService.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	existing, err := s.repo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if conflicts := findConflicts(existing, start, end, 0); len(conflicts) > 0 {
		return nil, conflictError(roomID, conflicts)
	}

	res := &Reservation{
		CustomerID: customerID,
		RoomID:     roomID,
		StartDate:  start,
		EndDate:    end,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// FindAvailableApartments returns the apartments with no reservation
// intersecting [start, end), in catalog order. One global overlap query
// covers all rooms at once.
func (s *service) FindAvailableApartments(ctx context.Context, startRaw, endRaw string) ([]*apartment.Apartment, error) {
	start, end, err := dates.ValidateRange(startRaw, endRaw)
	if err != nil {
		return nil, err
	}

	overlapping, err := s.repo.ListOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}
	occupied := make(map[int64]struct{}, len(overlapping))
	for _, res := range overlapping {
		occupied[res.RoomID] = struct{}{}
	}

	catalog, err := s.aptService.List(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]*apartment.Apartment, 0, len(catalog))
	for _, apt := range catalog {
		if _, taken := occupied[apt.ID]; !taken {
			available = append(available, apt)
		}
	}
	return available, nil
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// MoveRoom reassigns an existing reservation to another room, keeping its
// customer and date range untouched. The reservation's own id is excluded
// from the conflict scan so a move onto its current room is a no-op rather
// than a self-conflict.
func (s *service) MoveRoom(ctx context.Context, id int64, newRoomID int64) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.aptService.GetByID(ctx, newRoomID); err != nil {
		if errors.Is(err, apartment.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	existing, err := s.repo.ListByRoom(ctx, newRoomID)
	if err != nil {
		return nil, err
	}
	if conflicts := findConflicts(existing, res.StartDate, res.EndDate, res.ID); len(conflicts) > 0 {
		return nil, conflictError(newRoomID, conflicts)
	}

	if err := s.repo.UpdateRoom(ctx, res.ID, newRoomID); err != nil {
		return nil, err
	}
	res.RoomID = newRoomID
	return res, nil
}

// FindByCustomer lists a customer's reservations, most recent start date
// first. Equal start dates keep the store's id-ascending order.
func (s *service) FindByCustomer(ctx context.Context, customerID int64) ([]Info, error) {
	reservations, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].StartDate.After(reservations[j].StartDate)
	})

	infos := make([]Info, len(reservations))
	for i, res := range reservations {
		infos[i] = Info{
			ID:         res.ID,
			CustomerID: res.CustomerID,
			RoomID:     res.RoomID,
			StartDate:  dates.Format(res.StartDate),
			EndDate:    dates.Format(res.EndDate),
		}
	}
	return infos, nil
}
