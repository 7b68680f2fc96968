package service

import (
	"context"
	"errors"
	"testing"

	"github.com/quizdeck/quiz-backend/internal/model"
	"github.com/quizdeck/quiz-backend/internal/repository"
	"github.com/rs/zerolog"
)

// fakeAdminStore is an in-memory AdminStore.
type fakeAdminStore struct {
	admins  []model.Admin
	nextID  int
	creates int
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{nextID: 1}
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			admin := a
			return &admin, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.ID == id {
			admin := a
			return &admin, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminStore) Create(_ context.Context, a *model.Admin) error {
	f.creates++
	for _, existing := range f.admins {
		if existing.Email == a.Email {
			return repository.ErrDuplicate
		}
	}
	a.ID = f.nextID
	f.nextID++
	f.admins = append(f.admins, *a)
	return nil
}

func newAdminService(store AdminStore) *AdminService {
	return NewAdminService(store, NewAuthService(), zerolog.Nop())
}

func TestBootstrapIdempotent(t *testing.T) {
	store := newFakeAdminStore()
	svc := newAdminService(store)
	ctx := context.Background()

	for range 3 {
		if err := svc.Bootstrap(ctx, "root@example.com", "secret"); err != nil {
			t.Fatalf("bootstrap: %v", err)
		}
	}

	if len(store.admins) != 1 {
		t.Fatalf("expected exactly one admin, got %d", len(store.admins))
	}
	if store.creates != 1 {
		t.Fatalf("expected a single insert attempt, got %d", store.creates)
	}

	admin := store.admins[0]
	if admin.PasswordHash != NewAuthService().HashPassword("secret") {
		t.Fatal("bootstrap admin stored with wrong password hash")
	}
}

func TestBootstrapEmptyEmailSkips(t *testing.T) {
	store := newFakeAdminStore()
	svc := newAdminService(store)

	if err := svc.Bootstrap(context.Background(), "", "secret"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if len(store.admins) != 0 {
		t.Fatalf("expected no admins, got %d", len(store.admins))
	}
}

// raceAdminStore simulates another process inserting the admin between
// the bootstrap lookup and the insert: lookups see nothing, yet the
// insert hits the unique constraint.
type raceAdminStore struct {
	*fakeAdminStore
}

func (r *raceAdminStore) GetByEmail(context.Context, string) (*model.Admin, error) {
	return nil, nil
}

func (r *raceAdminStore) Create(context.Context, *model.Admin) error {
	return repository.ErrDuplicate
}

func TestBootstrapLosingRaceIsSuccess(t *testing.T) {
	svc := newAdminService(&raceAdminStore{newFakeAdminStore()})

	if err := svc.Bootstrap(context.Background(), "root@example.com", "secret"); err != nil {
		t.Fatalf("bootstrap must treat a lost duplicate race as success, got %v", err)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	store := newFakeAdminStore()
	svc := newAdminService(store)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "a@example.com", "pw"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, "a@example.com", "pw"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}
