package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nvalencia/apartment-booking-backend/internal/apartment"
	"github.com/nvalencia/apartment-booking-backend/internal/customer"
)

// fakeRepository keeps reservations in id order, like the store does.
type fakeRepository struct {
	reservations []*Reservation
	nextID       int64
}

func newFakeRepository(reservations ...*Reservation) *fakeRepository {
	r := &fakeRepository{nextID: 1}
	for _, res := range reservations {
		c := *res
		c.ID = r.nextID
		r.nextID++
		r.reservations = append(r.reservations, &c)
	}
	return r
}

func (r *fakeRepository) Create(_ context.Context, res *Reservation) error {
	res.ID = r.nextID
	r.nextID++
	c := *res
	r.reservations = append(r.reservations, &c)
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id int64) (*Reservation, error) {
	for _, res := range r.reservations {
		if res.ID == id {
			c := *res
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) ListByRoom(_ context.Context, roomID int64) ([]*Reservation, error) {
	var out []*Reservation
	for _, res := range r.reservations {
		if res.RoomID == roomID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepository) ListOverlapping(_ context.Context, start, end time.Time) ([]*Reservation, error) {
	var out []*Reservation
	for _, res := range r.reservations {
		if Overlaps(res.StartDate, res.EndDate, start, end) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepository) ListByCustomer(_ context.Context, customerID int64) ([]*Reservation, error) {
	var out []*Reservation
	for _, res := range r.reservations {
		if res.CustomerID == customerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepository) UpdateRoom(_ context.Context, id int64, roomID int64) error {
	for _, res := range r.reservations {
		if res.ID == id {
			res.RoomID = roomID
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeRepository) Delete(_ context.Context, id int64) error {
	for i, res := range r.reservations {
		if res.ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeApartments serves a fixed catalog in order.
type fakeApartments struct {
	catalog []*apartment.Apartment
}

func (f *fakeApartments) List(_ context.Context) ([]*apartment.Apartment, error) {
	return f.catalog, nil
}

func (f *fakeApartments) GetByID(_ context.Context, id int64) (*apartment.Apartment, error) {
	for _, a := range f.catalog {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apartment.ErrNotFound
}

// fakeCustomers recognizes a fixed set of customer ids.
type fakeCustomers struct {
	ids map[int64]bool
}

func (f *fakeCustomers) Create(_ context.Context, _ customer.CreateRequest) (*customer.Customer, error) {
	panic("not used")
}

func (f *fakeCustomers) Search(_ context.Context, _, _ string) ([]*customer.Customer, error) {
	panic("not used")
}

func (f *fakeCustomers) GetByID(_ context.Context, id int64) (*customer.Customer, error) {
	if f.ids[id] {
		return &customer.Customer{ID: id, FirstName: "Jane", LastName: "Doe", Phone: "123", Address: "Main"}, nil
	}
	return nil, customer.ErrNotFound
}

func newTestService(repo Repository, catalog ...*apartment.Apartment) Service {
	if len(catalog) == 0 {
		catalog = []*apartment.Apartment{
			{ID: 1, Capacity: 2, Orientation: "South", View: "Lake", RegularPrice: 100, TopSeasonPrice: 150},
			{ID: 2, Capacity: 3, Orientation: "East", View: "Garden", RegularPrice: 120, TopSeasonPrice: 170},
		}
	}
	return NewService(repo, &fakeApartments{catalog: catalog}, &fakeCustomers{ids: map[int64]bool{1: true}})
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("validates the raw date range", func(t *testing.T) {
		svc := newTestService(newFakeRepository())

		_, err := svc.Create(ctx, 1, 1, "", "2020-01-10")
		require.EqualError(t, err, "dates must not be empty")

		_, err = svc.Create(ctx, 1, 1, "2020/01/01", "2020-01-10")
		require.EqualError(t, err, "date must have format YYYY-MM-DD")

		_, err = svc.Create(ctx, 1, 1, "2020-02-01", "2020-01-01")
		require.EqualError(t, err, "start date must be before end date")
	})

	t.Run("requires an existing customer", func(t *testing.T) {
		svc := newTestService(newFakeRepository())

		_, err := svc.Create(ctx, 99, 1, "2020-01-01", "2020-01-10")
		require.ErrorIs(t, err, ErrCustomerNotFound)
	})

	t.Run("rejects overlap, naming the conflicting reservation", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		_, err := svc.Create(ctx, 1, 1, "2020-01-03", "2020-01-06")
		require.Error(t, err)
		require.Contains(t, err.Error(), "reservation 1")
		require.Contains(t, err.Error(), "2020-01-01")
		require.Contains(t, err.Error(), "2020-01-05")
	})

	t.Run("back-to-back stays do not conflict", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		res, err := svc.Create(ctx, 1, 1, "2020-01-05", "2020-01-08")
		require.NoError(t, err)
		require.Equal(t, int64(2), res.ID)
	})

	t.Run("same range on another room is fine", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		_, err := svc.Create(ctx, 1, 2, "2020-01-01", "2020-01-05")
		require.NoError(t, err)
	})

	t.Run("room existence is not checked", func(t *testing.T) {
		svc := newTestService(newFakeRepository())

		res, err := svc.Create(ctx, 1, 999, "2020-01-01", "2020-01-05")
		require.NoError(t, err)
		require.Equal(t, int64(999), res.RoomID)
	})
}

func TestFindAvailableApartments(t *testing.T) {
	ctx := context.Background()

	t.Run("validates the raw date range", func(t *testing.T) {
		svc := newTestService(newFakeRepository())

		_, err := svc.FindAvailableApartments(ctx, "2020-02-01", "2020-01-01")
		require.EqualError(t, err, "start date must be before end date")
	})

	t.Run("excludes rooms with an intersecting reservation", func(t *testing.T) {
		// Room 2 is taken for part of the queried range; room 1 is free.
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 2, StartDate: day(3), EndDate: day(6)},
		)
		svc := newTestService(repo)

		available, err := svc.FindAvailableApartments(ctx, "2020-01-01", "2020-01-10")
		require.NoError(t, err)
		require.Len(t, available, 1)
		require.Equal(t, int64(1), available[0].ID)
	})

	t.Run("a booking outside the range frees the room", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 2, StartDate: day(10), EndDate: day(12)},
		)
		svc := newTestService(repo)

		available, err := svc.FindAvailableApartments(ctx, "2020-01-01", "2020-01-10")
		require.NoError(t, err)
		require.Len(t, available, 2)
	})

	t.Run("create immediately hides the booked room", func(t *testing.T) {
		repo := newFakeRepository()
		svc := newTestService(repo)

		_, err := svc.Create(ctx, 1, 1, "2020-01-02", "2020-01-04")
		require.NoError(t, err)

		available, err := svc.FindAvailableApartments(ctx, "2020-01-01", "2020-01-10")
		require.NoError(t, err)
		require.Len(t, available, 1)
		require.Equal(t, int64(2), available[0].ID)
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		svc := newTestService(newFakeRepository(),
			&apartment.Apartment{ID: 3},
			&apartment.Apartment{ID: 1},
			&apartment.Apartment{ID: 2},
		)

		available, err := svc.FindAvailableApartments(ctx, "2020-01-01", "2020-01-10")
		require.NoError(t, err)
		require.Equal(t, []int64{3, 1, 2}, []int64{available[0].ID, available[1].ID, available[2].ID})
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the reservation", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		require.NoError(t, svc.Cancel(ctx, 1))

		_, err := repo.GetByID(ctx, 1)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("second cancel fails with not found", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		require.NoError(t, svc.Cancel(ctx, 1))
		require.ErrorIs(t, svc.Cancel(ctx, 1), ErrNotFound)
	})

	t.Run("cancelled room becomes available again", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		require.NoError(t, svc.Cancel(ctx, 1))

		available, err := svc.FindAvailableApartments(ctx, "2020-01-01", "2020-01-10")
		require.NoError(t, err)
		require.Len(t, available, 2)
	})
}

func TestMoveRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown reservation", func(t *testing.T) {
		svc := newTestService(newFakeRepository())

		_, err := svc.MoveRoom(ctx, 1, 2)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown target room", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		_, err := svc.MoveRoom(ctx, 1, 999)
		require.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("target room has an overlapping reservation", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
			&Reservation{CustomerID: 1, RoomID: 2, StartDate: day(3), EndDate: day(6)},
		)
		svc := newTestService(repo)

		_, err := svc.MoveRoom(ctx, 1, 2)
		require.Error(t, err)
		require.Contains(t, err.Error(), "reservation 2")
	})

	t.Run("changes only the room assignment", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		moved, err := svc.MoveRoom(ctx, 1, 2)
		require.NoError(t, err)
		require.Equal(t, int64(2), moved.RoomID)
		require.Equal(t, int64(1), moved.CustomerID)
		require.True(t, moved.StartDate.Equal(day(1)))
		require.True(t, moved.EndDate.Equal(day(5)))

		stored, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, int64(2), stored.RoomID)
	})

	t.Run("moving onto the current room does not self-conflict", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
		)
		svc := newTestService(repo)

		moved, err := svc.MoveRoom(ctx, 1, 1)
		require.NoError(t, err)
		require.Equal(t, int64(1), moved.RoomID)
	})
}

func TestFindByCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by start date descending", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(20), EndDate: day(25)},
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(10), EndDate: day(12)},
		)
		svc := newTestService(repo)

		infos, err := svc.FindByCustomer(ctx, 1)
		require.NoError(t, err)
		require.Len(t, infos, 3)
		require.Equal(t, "2020-01-20", infos[0].StartDate)
		require.Equal(t, "2020-01-10", infos[1].StartDate)
		require.Equal(t, "2020-01-01", infos[2].StartDate)
	})

	t.Run("equal start dates keep id order", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 1, StartDate: day(1), EndDate: day(5)},
			&Reservation{CustomerID: 1, RoomID: 2, StartDate: day(1), EndDate: day(3)},
		)
		svc := newTestService(repo)

		infos, err := svc.FindByCustomer(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, int64(1), infos[0].ID)
		require.Equal(t, int64(2), infos[1].ID)
	})

	t.Run("projects dates in wire format and skips other customers", func(t *testing.T) {
		repo := newFakeRepository(
			&Reservation{CustomerID: 1, RoomID: 3, StartDate: day(1), EndDate: day(5)},
			&Reservation{CustomerID: 2, RoomID: 3, StartDate: day(6), EndDate: day(8)},
		)
		svc := newTestService(repo)

		infos, err := svc.FindByCustomer(ctx, 1)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		require.Equal(t, Info{
			ID:         1,
			CustomerID: 1,
			RoomID:     3,
			StartDate:  "2020-01-01",
			EndDate:    "2020-01-05",
		}, infos[0])
	})

	t.Run("no reservations yields empty result", func(t *testing.T) {
		svc := newTestService(newFakeRepository())

		infos, err := svc.FindByCustomer(ctx, 1)
		require.NoError(t, err)
		require.Empty(t, infos)
	})
}
