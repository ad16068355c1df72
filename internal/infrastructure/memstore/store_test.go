package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

var fixedTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestStore() *Store {
	return New(WithClock(func() time.Time { return fixedTime }))
}

func TestStore_SequentialIDs(t *testing.T) {
	store := newTestStore()
	events := NewEventRepository(store)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		e, err := events.Create(ctx, &domain.Event{Title: "Run", OrganizerID: 1, Status: domain.EventDraft})
		if err != nil {
			t.Fatalf("create event %d: %v", i, err)
		}
		if e.ID != i {
			t.Fatalf("expected id %d, got %d", i, e.ID)
		}
		if !e.CreatedAt.Equal(fixedTime) {
			t.Fatalf("expected createdAt %v, got %v", fixedTime, e.CreatedAt)
		}
	}
}

func TestStore_IDsNotReusedAfterDelete(t *testing.T) {
	store := newTestStore()
	events := NewEventRepository(store)
	ctx := context.Background()

	first, _ := events.Create(ctx, &domain.Event{Title: "A", OrganizerID: 1, Status: domain.EventDraft})
	if err := events.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	second, _ := events.Create(ctx, &domain.Event{Title: "B", OrganizerID: 1, Status: domain.EventDraft})
	if second.ID != 2 {
		t.Fatalf("expected id 2 after delete, got %d", second.ID)
	}
}

func TestStore_CloneIsolation(t *testing.T) {
	store := newTestStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	created, err := users.Create(ctx, &domain.User{Username: "alice", Email: "a@example.com", Role: domain.RoleParticipant})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the returned struct must not leak into the store.
	created.Username = "mallory"

	got, err := users.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("stored user mutated through returned clone: %s", got.Username)
	}
}

func TestStore_RegistrationAdditionalInfoIsolation(t *testing.T) {
	store := newTestStore()
	registrations := NewRegistrationRepository(store)
	ctx := context.Background()

	created, err := registrations.Create(ctx, &domain.Registration{
		EventID: 1, UserID: 1, Status: domain.RegistrationRegistered,
		AdditionalInfo: map[string]any{"shirtSize": "M"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.AdditionalInfo["shirtSize"] = "XL"

	got, err := registrations.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AdditionalInfo["shirtSize"] != "M" {
		t.Fatalf("stored map mutated through returned clone: %v", got.AdditionalInfo)
	}
}

func TestStore_UpdateShallowMerge(t *testing.T) {
	store := newTestStore()
	events := NewEventRepository(store)
	ctx := context.Background()

	created, err := events.Create(ctx, &domain.Event{
		Title:            "Jakarta Marathon",
		Location:         "Jakarta",
		Price:            75,
		OrganizerID:      2,
		Status:           domain.EventPublished,
		RegistrationOpen: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	closed := false
	cancelled := domain.EventCancelled
	updated, err := events.Update(ctx, created.ID, ports.EventUpdate{
		Status:           &cancelled,
		RegistrationOpen: &closed,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.EventCancelled {
		t.Fatalf("expected status cancelled, got %s", updated.Status)
	}
	if updated.RegistrationOpen {
		t.Fatalf("expected registration closed")
	}
	if updated.Title != "Jakarta Marathon" || updated.Location != "Jakarta" || updated.Price != 75 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.OrganizerID != 2 {
		t.Fatalf("organizer changed: %d", updated.OrganizerID)
	}
}

func TestStore_DeleteThenGet(t *testing.T) {
	store := newTestStore()
	communities := NewCommunityRepository(store)
	ctx := context.Background()

	created, err := communities.Create(ctx, &domain.Community{Name: "Runners", Description: "d", ManagerID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := communities.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := communities.Get(ctx, created.ID); err != domain.ErrCommunityNotFound {
		t.Fatalf("expected ErrCommunityNotFound, got %v", err)
	}
	if err := communities.Delete(ctx, created.ID); err != domain.ErrCommunityNotFound {
		t.Fatalf("expected ErrCommunityNotFound on double delete, got %v", err)
	}
}

func TestStore_EventFilters(t *testing.T) {
	store := newTestStore()
	events := NewEventRepository(store)
	ctx := context.Background()

	_, _ = events.Create(ctx, &domain.Event{Title: "A", OrganizerID: 1, Status: domain.EventPublished})
	_, _ = events.Create(ctx, &domain.Event{Title: "B", OrganizerID: 2, Status: domain.EventDraft})
	_, _ = events.Create(ctx, &domain.Event{Title: "C", OrganizerID: 2, Status: domain.EventPublished})

	byOrganizer, err := events.ListByOrganizer(ctx, 2)
	if err != nil {
		t.Fatalf("list by organizer: %v", err)
	}
	if len(byOrganizer) != 2 || byOrganizer[0].Title != "B" || byOrganizer[1].Title != "C" {
		t.Fatalf("unexpected organizer filter result: %+v", byOrganizer)
	}

	published, err := events.ListByStatus(ctx, domain.EventPublished)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(published) != 2 || published[0].Title != "A" || published[1].Title != "C" {
		t.Fatalf("unexpected status filter result: %+v", published)
	}
}

func TestStore_RegistrationLookups(t *testing.T) {
	store := newTestStore()
	registrations := NewRegistrationRepository(store)
	ctx := context.Background()

	_, _ = registrations.Create(ctx, &domain.Registration{EventID: 1, UserID: 1, Status: domain.RegistrationRegistered})
	_, _ = registrations.Create(ctx, &domain.Registration{EventID: 1, UserID: 2, Status: domain.RegistrationRegistered})
	_, _ = registrations.Create(ctx, &domain.Registration{EventID: 2, UserID: 1, Status: domain.RegistrationRegistered})

	byEvent, err := registrations.ListByEvent(ctx, 1)
	if err != nil {
		t.Fatalf("list by event: %v", err)
	}
	if len(byEvent) != 2 {
		t.Fatalf("expected 2 registrations for event 1, got %d", len(byEvent))
	}

	byUser, err := registrations.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(byUser) != 2 {
		t.Fatalf("expected 2 registrations for user 1, got %d", len(byUser))
	}

	count, err := registrations.CountByEvent(ctx, 1)
	if err != nil {
		t.Fatalf("count by event: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2, got %d", count)
	}

	pair, err := registrations.GetByEventAndUser(ctx, 2, 1)
	if err != nil {
		t.Fatalf("get by event and user: %v", err)
	}
	if pair.EventID != 2 || pair.UserID != 1 {
		t.Fatalf("unexpected registration: %+v", pair)
	}

	if _, err := registrations.GetByEventAndUser(ctx, 2, 99); err != domain.ErrRegistrationNotFound {
		t.Fatalf("expected ErrRegistrationNotFound, got %v", err)
	}
}

func TestStore_UserLookups(t *testing.T) {
	store := newTestStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	_, _ = users.Create(ctx, &domain.User{Username: "alice", Email: "alice@example.com", Role: domain.RoleAdmin})
	_, _ = users.Create(ctx, &domain.User{Username: "bob", Email: "bob@example.com", Role: domain.RoleParticipant})

	byName, err := users.GetByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.ID != 2 {
		t.Fatalf("expected id 2, got %d", byName.ID)
	}

	byEmail, err := users.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.Username != "alice" {
		t.Fatalf("expected alice, got %s", byEmail.Username)
	}

	if _, err := users.GetByUsername(ctx, "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStore_CheckpointTimestampDefault(t *testing.T) {
	store := newTestStore()
	checkpoints := NewCheckpointRepository(store)
	ctx := context.Background()

	created, err := checkpoints.Create(ctx, &domain.ParticipantCheckpoint{
		RegistrationID: 1,
		CheckpointName: "Checkpoint 1",
		Status:         domain.CheckpointActive,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Timestamp.Equal(fixedTime) {
		t.Fatalf("expected default timestamp %v, got %v", fixedTime, created.Timestamp)
	}

	explicit := fixedTime.Add(-time.Hour)
	created2, err := checkpoints.Create(ctx, &domain.ParticipantCheckpoint{
		RegistrationID: 1,
		CheckpointName: "Checkpoint 2",
		Status:         domain.CheckpointActive,
		Timestamp:      explicit,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created2.Timestamp.Equal(explicit) {
		t.Fatalf("explicit timestamp overwritten: %v", created2.Timestamp)
	}
}
