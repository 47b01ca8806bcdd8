package domain

import "testing"

func TestNormalizeReservationStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
		want  ReservationStatus
	}{
		{"lowercase", "pending", ReservationStatusPending},
		{"padded", "  CONFIRMED  ", ReservationStatusConfirmed},
		{"mixed case", "Cancelled", ReservationStatusCancelled},
		{"completed", "COMPLETED", ReservationStatusCompleted},
		{"unknown string", "SEATED", ReservationStatusUnknown},
		{"empty", "", ReservationStatusUnknown},
		{"non string", 42, ReservationStatusUnknown},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeReservationStatus(tc.input); got != tc.want {
				t.Fatalf("NormalizeReservationStatus(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestReservationStatusTransitions(t *testing.T) {
	t.Parallel()

	allowed := []struct {
		from, to ReservationStatus
	}{
		{ReservationStatusPending, ReservationStatusConfirmed},
		{ReservationStatusPending, ReservationStatusCancelled},
		{ReservationStatusConfirmed, ReservationStatusCompleted},
		{ReservationStatusConfirmed, ReservationStatusCancelled},
	}
	for _, edge := range allowed {
		if !edge.from.CanTransitionTo(edge.to) {
			t.Fatalf("expected %s -> %s to be allowed", edge.from, edge.to)
		}
	}

	statuses := []ReservationStatus{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusCancelled,
		ReservationStatusCompleted,
	}
	allowedSet := make(map[[2]ReservationStatus]struct{}, len(allowed))
	for _, edge := range allowed {
		allowedSet[[2]ReservationStatus{edge.from, edge.to}] = struct{}{}
	}
	for _, from := range statuses {
		for _, to := range statuses {
			if _, ok := allowedSet[[2]ReservationStatus{from, to}]; ok {
				continue
			}
			if from.CanTransitionTo(to) {
				t.Fatalf("expected %s -> %s to be rejected", from, to)
			}
		}
	}
}

func TestReservationStatusTerminalStatesRejectEverything(t *testing.T) {
	t.Parallel()

	for _, terminal := range []ReservationStatus{ReservationStatusCancelled, ReservationStatusCompleted} {
		if !terminal.IsTerminal() {
			t.Fatalf("expected %s to be terminal", terminal)
		}
		for _, next := range []ReservationStatus{ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled, ReservationStatusCompleted} {
			if terminal.CanTransitionTo(next) {
				t.Fatalf("terminal %s must not transition to %s", terminal, next)
			}
		}
	}
}

func TestReservationStatusAllowsReschedule(t *testing.T) {
	t.Parallel()

	if !ReservationStatusPending.AllowsReschedule() {
		t.Fatal("pending must allow reschedule")
	}
	if !ReservationStatusConfirmed.AllowsReschedule() {
		t.Fatal("confirmed must allow reschedule")
	}
	if ReservationStatusCancelled.AllowsReschedule() {
		t.Fatal("cancelled must not allow reschedule")
	}
	if ReservationStatusCompleted.AllowsReschedule() {
		t.Fatal("completed must not allow reschedule")
	}
}
