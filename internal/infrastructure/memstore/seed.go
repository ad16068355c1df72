package memstore

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// Seed populates the store with the demo fixture: three named accounts, three
// published events, a few hundred synthetic registrations with deterministic
// modular status/category patterns, five communities, four race pack line
// items and ten checkpoints. Safe to call only on an empty store.
//
// Demo credentials: admin/admin123, organizer/organizer123,
// participant/participant123.
func Seed(s *Store) error {
	ctx := context.Background()
	users := NewUserRepository(s)
	events := NewEventRepository(s)
	registrations := NewRegistrationRepository(s)
	communities := NewCommunityRepository(s)
	racePacks := NewRacePackRepository(s)
	checkpoints := NewCheckpointRepository(s)

	for _, u := range []struct {
		username, password, email, fullName, role string
	}{
		{"admin", "admin123", "admin@eventhub.com", "Admin User", domain.RoleAdmin},
		{"organizer", "organizer123", "organizer@eventhub.com", "Event Organizer", domain.RoleOrganizer},
		{"participant", "participant123", "participant@example.com", "John Participant", domain.RoleParticipant},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}
		if _, err := users.Create(ctx, &domain.User{
			Username: u.username,
			Password: string(hash),
			Email:    u.email,
			FullName: u.fullName,
			Role:     u.role,
		}); err != nil {
			return fmt.Errorf("seed: create user %s: %w", u.username, err)
		}
	}

	seedEvents := []*domain.Event{
		{
			Title:            "Jakarta Marathon 2023",
			Description:      "Join the biggest marathon event in Jakarta",
			Date:             time.Date(2023, 10, 15, 7, 0, 0, 0, time.UTC),
			Location:         "Jakarta, Indonesia",
			Category:         "Running",
			Capacity:         intPtr(1000),
			Price:            75,
			Image:            strPtr("https://images.unsplash.com/photo-1594882645126-14020914d58d"),
			OrganizerID:      2,
			Status:           domain.EventPublished,
			RegistrationOpen: true,
		},
		{
			Title:            "Bali Cycling Tour",
			Description:      "Experience the beauty of Bali while cycling",
			Date:             time.Date(2023, 11, 5, 6, 30, 0, 0, time.UTC),
			Location:         "Bali, Indonesia",
			Category:         "Cycling",
			Capacity:         intPtr(500),
			Price:            85,
			Image:            strPtr("https://images.unsplash.com/photo-1517649763962-0c623066013b"),
			OrganizerID:      2,
			Status:           domain.EventPublished,
			RegistrationOpen: true,
		},
		{
			Title:            "Lombok Open Water Swim",
			Description:      "Swim in the crystal clear waters of Lombok",
			Date:             time.Date(2023, 12, 3, 8, 0, 0, 0, time.UTC),
			Location:         "Lombok, Indonesia",
			Category:         "Swimming",
			Capacity:         intPtr(300),
			Price:            65,
			Image:            strPtr("https://images.unsplash.com/photo-1560089000-7433a4ebbd64"),
			OrganizerID:      2,
			Status:           domain.EventPublished,
			RegistrationOpen: true,
		},
	}
	for _, e := range seedEvents {
		if _, err := events.Create(ctx, e); err != nil {
			return fmt.Errorf("seed: create event %s: %w", e.Title, err)
		}
	}

	// One shared hash for all generated participants keeps startup fast.
	sharedHash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("seed: hash shared password: %w", err)
	}

	// Jakarta Marathon: 782 registrations. Even iterations reuse the named
	// participant; odd iterations get a generated account.
	for i := 0; i < 782; i++ {
		userID := 3
		if i%2 != 0 {
			u, err := users.Create(ctx, &domain.User{
				Username: fmt.Sprintf("participant%d", i),
				Password: string(sharedHash),
				Email:    fmt.Sprintf("participant%d@example.com", i),
				FullName: fmt.Sprintf("Participant %d", i),
				Role:     domain.RoleParticipant,
			})
			if err != nil {
				return fmt.Errorf("seed: create participant %d: %w", i, err)
			}
			userID = u.ID
		}

		status := domain.RegistrationRegistered
		if i < 10 {
			status = domain.RegistrationFinished
			if i < 5 {
				status = domain.RegistrationActive
			}
		}
		category := "Half Marathon 21K"
		if i%3 == 0 {
			category = "Marathon 42K"
		}
		bib := fmt.Sprintf("M-%d", 5000+i)
		if i < 10 {
			bib = fmt.Sprintf("M-%d", 1000+i)
		}

		if _, err := registrations.Create(ctx, &domain.Registration{
			EventID:        1,
			UserID:         userID,
			Status:         status,
			BibNumber:      &bib,
			Category:       &category,
			AdditionalInfo: map[string]any{"shirtSize": "M", "emergencyContact": "123456789"},
		}); err != nil {
			return fmt.Errorf("seed: jakarta registration %d: %w", i, err)
		}
	}

	maxUserID := s.userID

	// Bali Cycling: 215 registrations walking back through existing users.
	for i := 0; i < 215; i++ {
		userID := maxUserID - i
		if userID <= 0 {
			continue
		}
		bib := fmt.Sprintf("C-%d", 2000+i)
		category := "Amateur"
		if _, err := registrations.Create(ctx, &domain.Registration{
			EventID:        2,
			UserID:         userID,
			Status:         domain.RegistrationRegistered,
			BibNumber:      &bib,
			Category:       &category,
			AdditionalInfo: map[string]any{"bikeType": "Mountain", "emergencyContact": "123456789"},
		}); err != nil {
			return fmt.Errorf("seed: bali registration %d: %w", i, err)
		}
	}

	// Lombok Swim: 148 registrations over every other user, counting down.
	for i := 0; i < 148; i++ {
		userID := maxUserID - i*2
		if userID <= 0 {
			continue
		}
		bib := fmt.Sprintf("S-%d", 3000+i)
		category := "Open Water 3K"
		if _, err := registrations.Create(ctx, &domain.Registration{
			EventID:        3,
			UserID:         userID,
			Status:         domain.RegistrationRegistered,
			BibNumber:      &bib,
			Category:       &category,
			AdditionalInfo: map[string]any{"swimExperience": "Intermediate", "emergencyContact": "123456789"},
		}); err != nil {
			return fmt.Errorf("seed: lombok registration %d: %w", i, err)
		}
	}

	for _, c := range []struct{ name, description string }{
		{"Jakarta Runners", "Community for running enthusiasts in Jakarta"},
		{"Bali Cyclists", "Community for cycling enthusiasts in Bali"},
		{"Indonesia Swimmers", "Community for swimming enthusiasts in Indonesia"},
		{"Triathlon Indonesia", "Community for triathlon enthusiasts in Indonesia"},
		{"Fitness Enthusiasts", "Community for fitness enthusiasts"},
	} {
		if _, err := communities.Create(ctx, &domain.Community{
			Name:        c.name,
			Description: c.description,
			ManagerID:   2,
		}); err != nil {
			return fmt.Errorf("seed: create community %s: %w", c.name, err)
		}
	}

	for _, p := range []*domain.RacePack{
		{EventID: 1, Name: "Event T-Shirt", SKU: "TS-MAR-2023", Category: "Apparel", StockQuantity: 850, DistributedQuantity: 682},
		{EventID: 1, Name: "Finisher Medal", SKU: "MD-MAR-2023", Category: "Awards", StockQuantity: 800, DistributedQuantity: 125},
		{EventID: 1, Name: "Bib Numbers", SKU: "BIB-MAR-2023", Category: "Essentials", StockQuantity: 1000, DistributedQuantity: 782},
		{EventID: 1, Name: "Energy Drinks", SKU: "DRK-MAR-2023", Category: "Refreshments", StockQuantity: 200, DistributedQuantity: 180},
	} {
		if _, err := racePacks.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: create race pack %s: %w", p.SKU, err)
		}
	}

	checkpointStatuses := []domain.CheckpointStatus{
		domain.CheckpointActive, domain.CheckpointFinished,
		domain.CheckpointActive, domain.CheckpointDelayed,
	}
	for i := 1; i <= 10; i++ {
		name := fmt.Sprintf("Checkpoint %d", i)
		if i == 4 {
			name = "Finished"
		}
		distance := float64(i * 7) // 7km intervals
		if _, err := checkpoints.Create(ctx, &domain.ParticipantCheckpoint{
			RegistrationID:     i,
			CheckpointName:     name,
			CheckpointDistance: &distance,
			Status:             checkpointStatuses[i%4],
		}); err != nil {
			return fmt.Errorf("seed: create checkpoint %d: %w", i, err)
		}
	}

	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
