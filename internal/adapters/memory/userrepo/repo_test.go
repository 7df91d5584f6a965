package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	memuserrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/userrepo"
	"github.com/wanderplan/travel-planner-api/internal/domain"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/userrepo"
)

func user(id domain.UserID, username, email string) userrepo.User {
	now := time.Unix(100, 0).UTC()
	return userrepo.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Role:         "USER",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()

	repo := memuserrepo.NewRepo()
	if err := repo.Create(context.Background(), user("u1", "alice", "alice@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := repo.GetByID(context.Background(), "u1")
	if err != nil || byID.Username != "alice" {
		t.Fatalf("GetByID: u=%+v err=%v", byID, err)
	}
	byName, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil || byName.ID != "u1" {
		t.Fatalf("GetByUsername: u=%+v err=%v", byName, err)
	}
	byEmail, err := repo.GetByEmail(context.Background(), "alice@example.com")
	if err != nil || byEmail.ID != "u1" {
		t.Fatalf("GetByEmail: u=%+v err=%v", byEmail, err)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := memuserrepo.NewRepo()
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, userrepo.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
	if _, err := repo.GetByUsername(context.Background(), "nope"); !errors.Is(err, userrepo.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestCreate_UniquenessEnforced(t *testing.T) {
	t.Parallel()

	repo := memuserrepo.NewRepo()
	if err := repo.Create(context.Background(), user("u1", "alice", "alice@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Create(context.Background(), user("u2", "alice", "other@example.com")); !errors.Is(err, userrepo.ErrUsernameTaken) {
		t.Fatalf("err=%v, want ErrUsernameTaken", err)
	}
	if err := repo.Create(context.Background(), user("u3", "bob", "alice@example.com")); !errors.Is(err, userrepo.ErrEmailTaken) {
		t.Fatalf("err=%v, want ErrEmailTaken", err)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	repo := memuserrepo.NewRepo()
	if err := repo.Create(context.Background(), user("u1", "alice", "alice@example.com")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if ok, _ := repo.ExistsByUsername(context.Background(), "alice"); !ok {
		t.Fatal("ExistsByUsername(alice)=false")
	}
	if ok, _ := repo.ExistsByEmail(context.Background(), "bob@example.com"); ok {
		t.Fatal("ExistsByEmail(bob@example.com)=true")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := memuserrepo.NewRepo()
	phone := "555-0100"
	u := user("u1", "alice", "alice@example.com")
	u.PhoneNumber = &phone
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	*got.PhoneNumber = "mutated"

	again, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if *again.PhoneNumber != "555-0100" {
		t.Fatalf("stored record mutated through returned copy: %q", *again.PhoneNumber)
	}
}
