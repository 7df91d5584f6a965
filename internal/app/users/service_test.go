package users_test

import (
	"context"
	"errors"
	"testing"
	"time"

	memuserrepo "github.com/wanderplan/travel-planner-api/internal/adapters/memory/userrepo"
	"github.com/wanderplan/travel-planner-api/internal/app/users"
	"github.com/wanderplan/travel-planner-api/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type stubSigner struct{}

func (stubSigner) Sign(subject string) (string, error) { return "tok-" + subject, nil }

func newService(t *testing.T) (*users.Service, *memuserrepo.Repo) {
	t.Helper()
	repo := memuserrepo.NewRepo()
	svc := users.NewService(repo, stubSigner{}, fixedClock{t: time.Unix(1700000000, 0).UTC()})
	n := 0
	svc.SetNewUserIDForTest(func() domain.UserID {
		n++
		return domain.UserID(string(rune('a'+n-1)) + "-id")
	})
	return svc, repo
}

func validSignUp() users.SignUpInput {
	return users.SignUpInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "correct horse",
		FirstName: "Alice",
		LastName:  "Appleseed",
	}
}

func TestSignUp_MintsTokenAndPersists(t *testing.T) {
	t.Parallel()

	svc, repo := newService(t)
	res, err := svc.SignUp(context.Background(), validSignUp())
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if res.Token != "tok-alice" || res.TokenType != "Bearer" {
		t.Fatalf("token=%q type=%q", res.Token, res.TokenType)
	}
	if res.Role != "USER" {
		t.Fatalf("role=%q, want USER", res.Role)
	}

	stored, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if stored.PasswordHash == "correct horse" || stored.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}

	in := validSignUp()
	in.Username = "alice2"
	_, err := svc.SignUp(context.Background(), in)
	var appErr *users.Error
	if !errors.As(err, &appErr) || appErr.Status != 409 || appErr.Code != "EMAIL_TAKEN" {
		t.Fatalf("err=%v, want 409 EMAIL_TAKEN", err)
	}
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}

	in := validSignUp()
	in.Email = "other@example.com"
	_, err := svc.SignUp(context.Background(), in)
	var appErr *users.Error
	if !errors.As(err, &appErr) || appErr.Status != 409 || appErr.Code != "USERNAME_TAKEN" {
		t.Fatalf("err=%v, want 409 USERNAME_TAKEN", err)
	}
}

func TestSignUp_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]func(*users.SignUpInput){
		"empty username": func(in *users.SignUpInput) { in.Username = "  " },
		"bad email":      func(in *users.SignUpInput) { in.Email = "not-an-email" },
		"short password": func(in *users.SignUpInput) { in.Password = "short" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newService(t)
			in := validSignUp()
			mutate(&in)
			_, err := svc.SignUp(context.Background(), in)
			var appErr *users.Error
			if !errors.As(err, &appErr) || appErr.Status != 422 {
				t.Fatalf("err=%v, want 422", err)
			}
		})
	}
}

func TestLogin_ByUsernameAndEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if res, err := svc.Login(context.Background(), users.LoginInput{Username: "alice", Password: "correct horse"}); err != nil || res.Token != "tok-alice" {
		t.Fatalf("login by username: res=%+v err=%v", res, err)
	}
	if res, err := svc.Login(context.Background(), users.LoginInput{Email: "alice@example.com", Password: "correct horse"}); err != nil || res.Token != "tok-alice" {
		t.Fatalf("login by email: res=%+v err=%v", res, err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	for name, in := range map[string]users.LoginInput{
		"wrong password": {Username: "alice", Password: "nope"},
		"unknown user":   {Username: "mallory", Password: "correct horse"},
	} {
		_, err := svc.Login(context.Background(), in)
		var appErr *users.Error
		if !errors.As(err, &appErr) || appErr.Status != 401 {
			t.Fatalf("%s: err=%v, want 401", name, err)
		}
	}
}

func TestExistsChecks(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t)
	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if ok, _ := svc.UsernameExists(context.Background(), "alice"); !ok {
		t.Fatalf("UsernameExists(alice)=false")
	}
	if ok, _ := svc.UsernameExists(context.Background(), "bob"); ok {
		t.Fatalf("UsernameExists(bob)=true")
	}
	if ok, _ := svc.EmailExists(context.Background(), "alice@example.com"); !ok {
		t.Fatalf("EmailExists(alice@example.com)=false")
	}
}
