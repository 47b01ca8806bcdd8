package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mesaYaApi/internal/modules/reservations/domain"
	restaurants "mesaYaApi/internal/modules/restaurants/domain"
	users "mesaYaApi/internal/modules/users/domain"
)

var fixedNow = time.Date(2025, time.May, 30, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	createFn       func(context.Context, domain.Reservation) (domain.Reservation, error)
	getByIDFn      func(context.Context, string) (domain.Reservation, error)
	updateStatusFn func(context.Context, string, domain.ReservationStatus) (domain.Reservation, error)
	rescheduleFn   func(context.Context, string, string, string) (domain.Reservation, error)
	cancelFn       func(context.Context, string, string) (domain.Reservation, error)
	countAtSlotFn  func(context.Context, domain.Slot, string) (int, error)
	countPendingFn func(context.Context, string) (int, error)
}

func (f *fakeRepo) Create(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	return f.createFn(ctx, r)
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (domain.Reservation, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeRepo) ListByUser(context.Context, string) ([]domain.Reservation, error) {
	return nil, nil
}
func (f *fakeRepo) ListByRestaurant(context.Context, string) ([]domain.Reservation, error) {
	return nil, nil
}
func (f *fakeRepo) ListAll(context.Context) ([]domain.Reservation, error) { return nil, nil }
func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error) {
	return f.updateStatusFn(ctx, id, status)
}
func (f *fakeRepo) Reschedule(ctx context.Context, id, date, timeOfDay string) (domain.Reservation, error) {
	return f.rescheduleFn(ctx, id, date, timeOfDay)
}
func (f *fakeRepo) Cancel(ctx context.Context, id, reason string) (domain.Reservation, error) {
	return f.cancelFn(ctx, id, reason)
}
func (f *fakeRepo) CountPending(ctx context.Context, restaurantID string) (int, error) {
	if f.countPendingFn != nil {
		return f.countPendingFn(ctx, restaurantID)
	}
	return 0, nil
}
func (f *fakeRepo) CountAtSlot(ctx context.Context, slot domain.Slot, excludeID string) (int, error) {
	return f.countAtSlotFn(ctx, slot, excludeID)
}

type fakeNotifier struct {
	kinds      []string
	recipients []string
	err        error
}

func (f *fakeNotifier) NotifyReservation(_ context.Context, kind, recipient string, _ domain.Reservation) error {
	f.kinds = append(f.kinds, kind)
	f.recipients = append(f.recipients, recipient)
	return f.err
}

type fakePublisher struct {
	events []domain.Event
}

func (f *fakePublisher) Publish(_ context.Context, event domain.Event) {
	f.events = append(f.events, event)
}

type fakeRestaurants struct {
	restaurant restaurants.Restaurant
	err        error
}

func (f *fakeRestaurants) GetRestaurant(context.Context, string) (restaurants.Restaurant, error) {
	return f.restaurant, f.err
}

type fakeUsers struct {
	user users.UserProfile
	err  error
}

func (f *fakeUsers) GetUser(context.Context, string) (users.UserProfile, error) {
	return f.user, f.err
}

func activeRestaurant() restaurants.Restaurant {
	return restaurants.Restaurant{ID: "rest-1", Name: "Le Bistro", Status: restaurants.RestaurantStatusActive}
}

func newWorkflow(repo *fakeRepo, notifier *fakeNotifier, publisher *fakePublisher) *ReservationWorkflow {
	w := NewReservationWorkflow(
		repo,
		&fakeRestaurants{restaurant: activeRestaurant()},
		&fakeUsers{user: users.UserProfile{ID: "user-1", Email: "client@example.com"}},
		notifier,
		publisher,
		5,
	)
	w.now = func() time.Time { return fixedNow }
	return w
}

func clientActor() Actor { return Actor{UserID: "user-1", Role: users.RoleClient} }

func ownerActor() Actor {
	return Actor{UserID: "owner-1", Role: users.RoleRestaurant, RestaurantID: "rest-1"}
}

func adminActor() Actor { return Actor{UserID: "admin-1", Role: users.RoleAdmin} }

func TestCreateReservationStartsPendingAndNotifies(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	repo := &fakeRepo{
		createFn: func(_ context.Context, r domain.Reservation) (domain.Reservation, error) {
			if r.Status != domain.ReservationStatusPending {
				t.Fatalf("expected pending at creation, got %s", r.Status)
			}
			r.ID = "res-1"
			return r, nil
		},
	}
	w := newWorkflow(repo, notifier, publisher)

	created, err := w.Create(context.Background(), clientActor(), domain.CreateReservationCommand{
		RestaurantID: "rest-1",
		Date:         "2025-06-01",
		Time:         "19:00",
		PartySize:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.ReservationStatusPending {
		t.Fatalf("unexpected status: %s", created.Status)
	}
	if len(notifier.kinds) != 1 || notifier.kinds[0] != NotificationKindCreated {
		t.Fatalf("expected one created email, got %v", notifier.kinds)
	}
	if notifier.recipients[0] != "client@example.com" {
		t.Fatalf("unexpected recipient: %s", notifier.recipients[0])
	}
	if len(publisher.events) != 1 || publisher.events[0].Topic != "reservations.created" {
		t.Fatalf("unexpected events: %v", publisher.events)
	}
}

func TestCreateReservationRejectsPartySizeBeforeStorage(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		createFn: func(context.Context, domain.Reservation) (domain.Reservation, error) {
			t.Fatal("storage must not be called for invalid party size")
			return domain.Reservation{}, nil
		},
	}
	w := newWorkflow(repo, &fakeNotifier{}, &fakePublisher{})

	_, err := w.Create(context.Background(), clientActor(), domain.CreateReservationCommand{
		RestaurantID: "rest-1",
		Date:         "2025-06-01",
		Time:         "19:00",
		PartySize:    13,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateReservationRejectsInactiveRestaurant(t *testing.T) {
	t.Parallel()

	w := newWorkflow(&fakeRepo{}, &fakeNotifier{}, &fakePublisher{})
	w.Restaurants = &fakeRestaurants{restaurant: restaurants.Restaurant{ID: "rest-1", Status: restaurants.RestaurantStatusSuspended}}
	w.now = func() time.Time { return fixedNow }

	_, err := w.Create(context.Background(), clientActor(), domain.CreateReservationCommand{
		RestaurantID: "rest-1",
		Date:         "2025-06-01",
		Time:         "19:00",
		PartySize:    2,
	})
	if !errors.Is(err, restaurants.ErrRestaurantInactive) {
		t.Fatalf("expected ErrRestaurantInactive, got %v", err)
	}
}

func TestOwnerConfirmsPendingReservation(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{}
	publisher := &fakePublisher{}
	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Status: domain.ReservationStatusPending}, nil
		},
		updateStatusFn: func(_ context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Status: status}, nil
		},
	}
	w := newWorkflow(repo, notifier, publisher)

	updated, err := w.Transition(context.Background(), ownerActor(), domain.TransitionCommand{
		ReservationID: "res-1",
		NextStatus:    domain.ReservationStatusConfirmed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.ReservationStatusConfirmed {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	if len(notifier.kinds) != 1 || notifier.kinds[0] != NotificationKindConfirmed {
		t.Fatalf("expected confirmed email, got %v", notifier.kinds)
	}
	if len(publisher.events) != 1 || publisher.events[0].Action != domain.EventActionUpdated {
		t.Fatalf("unexpected events: %v", publisher.events)
	}
}

func TestTransitionRejectsInvalidEdge(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, RestaurantID: "rest-1", Status: domain.ReservationStatusCompleted}, nil
		},
		updateStatusFn: func(context.Context, string, domain.ReservationStatus) (domain.Reservation, error) {
			t.Fatal("storage must not be touched for an invalid edge")
			return domain.Reservation{}, nil
		},
	}
	w := newWorkflow(repo, &fakeNotifier{}, &fakePublisher{})

	_, err := w.Transition(context.Background(), adminActor(), domain.TransitionCommand{
		ReservationID: "res-1",
		NextStatus:    domain.ReservationStatusPending,
	})
	if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition rejection, got %v", err)
	}
}

func TestClientCannotConfirm(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Status: domain.ReservationStatusPending}, nil
		},
	}
	w := newWorkflow(repo, &fakeNotifier{}, &fakePublisher{})

	_, err := w.Transition(context.Background(), clientActor(), domain.TransitionCommand{
		ReservationID: "res-1",
		NextStatus:    domain.ReservationStatusConfirmed,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClientCancelsOwnPendingReservation(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{}
	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Date: "2025-06-01", Time: "19:00", Status: domain.ReservationStatusPending}, nil
		},
		cancelFn: func(_ context.Context, id, reason string) (domain.Reservation, error) {
			return domain.Reservation{
				ID: id, UserID: "user-1", RestaurantID: "rest-1",
				Date: "2025-06-01", Time: "19:00",
				Status:             domain.ReservationStatusCancelled,
				CancellationReason: reason,
			}, nil
		},
	}
	w := newWorkflow(repo, notifier, &fakePublisher{})

	cancelled, err := w.Cancel(context.Background(), clientActor(), domain.CancelReservationCommand{
		ReservationID: "res-1",
		Reason:        "change of plans",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != domain.ReservationStatusCancelled {
		t.Fatalf("unexpected status: %s", cancelled.Status)
	}
	if cancelled.CancellationReason != "change of plans" {
		t.Fatalf("reason not recorded: %q", cancelled.CancellationReason)
	}
	if cancelled.Date != "2025-06-01" || cancelled.Time != "19:00" {
		t.Fatal("cancel must leave date/time untouched")
	}
	if len(notifier.kinds) != 1 || notifier.kinds[0] != NotificationKindCancelled {
		t.Fatalf("expected cancelled email, got %v", notifier.kinds)
	}
}

func TestFailedNotificationLeavesMutationCommitted(t *testing.T) {
	t.Parallel()

	notifier := &fakeNotifier{err: errors.New("mail endpoint returned 500")}
	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Status: domain.ReservationStatusPending}, nil
		},
		updateStatusFn: func(_ context.Context, id string, status domain.ReservationStatus) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Status: status}, nil
		},
	}
	w := newWorkflow(repo, notifier, &fakePublisher{})

	updated, err := w.Transition(context.Background(), ownerActor(), domain.TransitionCommand{
		ReservationID: "res-1",
		NextStatus:    domain.ReservationStatusConfirmed,
	})
	if err != nil {
		t.Fatalf("notification failure must not surface: %v", err)
	}
	if updated.Status != domain.ReservationStatusConfirmed {
		t.Fatalf("mutation must stay committed, got %s", updated.Status)
	}
	if len(notifier.kinds) != 1 {
		t.Fatalf("expected one attempted send, got %d", len(notifier.kinds))
	}
}

func TestRescheduleSkipsAvailabilityForUnchangedSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Date: "2025-06-02", Time: "20:00", Status: domain.ReservationStatusConfirmed}, nil
		},
		countAtSlotFn: func(context.Context, domain.Slot, string) (int, error) {
			t.Fatal("availability must not be checked for an unchanged slot")
			return 0, nil
		},
		rescheduleFn: func(_ context.Context, id, date, timeOfDay string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Date: date, Time: timeOfDay, Status: domain.ReservationStatusConfirmed}, nil
		},
	}
	w := newWorkflow(repo, &fakeNotifier{}, &fakePublisher{})

	result, err := w.Reschedule(context.Background(), clientActor(), domain.RescheduleReservationCommand{
		ReservationID: "res-1",
		Date:          "2025-06-02",
		Time:          "20:00:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Reservation.Status != domain.ReservationStatusConfirmed {
		t.Fatal("reschedule must leave status unchanged")
	}
}

func TestRescheduleRejectsFullSlot(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Date: "2025-06-01", Time: "19:00", Status: domain.ReservationStatusConfirmed}, nil
		},
		countAtSlotFn: func(_ context.Context, slot domain.Slot, excludeID string) (int, error) {
			if excludeID != "res-1" {
				t.Fatalf("availability must exclude the reservation itself, got %q", excludeID)
			}
			return 5, nil
		},
		rescheduleFn: func(context.Context, string, string, string) (domain.Reservation, error) {
			t.Fatal("storage must not be mutated when the slot is full")
			return domain.Reservation{}, nil
		},
	}
	w := newWorkflow(repo, &fakeNotifier{}, &fakePublisher{})

	_, err := w.Reschedule(context.Background(), clientActor(), domain.RescheduleReservationCommand{
		ReservationID: "res-1",
		Date:          "2025-06-02",
		Time:          "20:00",
	})
	if !errors.Is(err, domain.ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
}

func TestRescheduleReportsNotifiedChannels(t *testing.T) {
	t.Parallel()

	publisher := &fakePublisher{}
	repo := &fakeRepo{
		getByIDFn: func(_ context.Context, id string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Date: "2025-06-01", Time: "19:00", Status: domain.ReservationStatusConfirmed}, nil
		},
		countAtSlotFn: func(context.Context, domain.Slot, string) (int, error) { return 0, nil },
		rescheduleFn: func(_ context.Context, id, date, timeOfDay string) (domain.Reservation, error) {
			return domain.Reservation{ID: id, UserID: "user-1", RestaurantID: "rest-1", Date: date, Time: timeOfDay, Status: domain.ReservationStatusConfirmed}, nil
		},
	}
	w := newWorkflow(repo, &fakeNotifier{}, publisher)

	result, err := w.Reschedule(context.Background(), clientActor(), domain.RescheduleReservationCommand{
		ReservationID: "res-1",
		Date:          "2025-06-02",
		Time:          "20:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Notified) != 2 || result.Notified[0] != "email" || result.Notified[1] != "realtime" {
		t.Fatalf("unexpected notified channels: %v", result.Notified)
	}
	if len(publisher.events) != 1 || publisher.events[0].Action != domain.EventActionRescheduled {
		t.Fatalf("unexpected events: %v", publisher.events)
	}
}

func TestCheckAvailabilityVerdicts(t *testing.T) {
	t.Parallel()

	count := 0
	repo := &fakeRepo{
		countAtSlotFn: func(context.Context, domain.Slot, string) (int, error) { return count, nil },
	}
	w := newWorkflow(repo, &fakeNotifier{}, &fakePublisher{})
	slot := domain.Slot{RestaurantID: "rest-1", Date: "2025-06-02", Time: "20:00"}

	availability, err := w.CheckAvailability(context.Background(), slot, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !availability.Available {
		t.Fatal("expected empty slot to be available")
	}

	count = 5
	availability, err = w.CheckAvailability(context.Background(), slot, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if availability.Available {
		t.Fatal("expected full slot to be unavailable")
	}
	if availability.ExistingReservations != 5 {
		t.Fatalf("unexpected count: %d", availability.ExistingReservations)
	}
}

func TestPendingCountScoping(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		countPendingFn: func(_ context.Context, restaurantID string) (int, error) {
			if restaurantID == "" {
				return 7, nil
			}
			return 2, nil
		},
	}
	w := newWorkflow(repo, &fakeNotifier{}, &fakePublisher{})

	count, err := w.PendingCount(context.Background(), ownerActor(), "rest-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("unexpected count: %d", count)
	}

	count, err = w.PendingCount(context.Background(), adminActor(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Fatalf("unexpected count: %d", count)
	}

	if _, err := w.PendingCount(context.Background(), ownerActor(), "other-rest"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
