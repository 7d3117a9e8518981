package account

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newRegister(repo *repository.BookingMemoryRepository) *Register {
	uc := NewRegister(repo)
	uc.checkDomain = func(string) bool { return true }
	return uc
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()

	u, err := newRegister(repo).Execute(ctx, RegisterInput{Name: "Ana", Email: " Ana@Example.com ", Password: "password1"})
	if err != nil {
		t.Fatal(err)
	}
	if u.OpenID != "local:ana@example.com" || u.LoginMethod != auth.LoginMethodLocal || u.Role != models.RoleUser {
		t.Errorf("unexpected user %+v", u)
	}

	if _, err := newRegister(repo).Execute(ctx, RegisterInput{Email: "ana@example.com", Password: "password2"}); httperr.KindOf(err) != httperr.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}

	login := NewPasswordLogin(repo, audit.Nop{})
	if _, err := login.Execute(ctx, "ana@example.com", "wrong-pass"); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Errorf("expected unauthorized, got %v", err)
	}
	if _, err := login.Execute(ctx, "nobody@example.com", "password1"); httperr.KindOf(err) != httperr.KindUnauthorized {
		t.Errorf("expected unauthorized, got %v", err)
	}

	got, err := login.Execute(ctx, "ANA@example.com", "password1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID || got.Name != "Ana" {
		t.Errorf("login must return the registered user, got %+v", got)
	}
}

func TestRegister_Validation(t *testing.T) {
	repo := repository.NewBookingMemoryRepository()
	uc := newRegister(repo)

	if _, err := uc.Execute(context.Background(), RegisterInput{Email: "bad", Password: "password1"}); !httperr.IsBusiness(err, "invalid_email") {
		t.Errorf("expected invalid_email, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), RegisterInput{Email: "a@b.com", Password: "short"}); !httperr.IsBusiness(err, "weak_password") {
		t.Errorf("expected weak_password, got %v", err)
	}

	uc.checkDomain = func(string) bool { return false }
	if _, err := uc.Execute(context.Background(), RegisterInput{Email: "a@nowhere.invalid", Password: "password1"}); !httperr.IsBusiness(err, "invalid_email_domain") {
		t.Errorf("expected invalid_email_domain, got %v", err)
	}
}

func TestOAuthLogin_NeverChangesRole(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()
	uc := NewOAuthLogin(repo, audit.Nop{})

	u, err := uc.Execute(ctx, auth.Profile{Subject: "owner-1", Name: "Owner"})
	if err != nil {
		t.Fatal(err)
	}
	if u.Role != models.RoleUser {
		t.Fatalf("first login must be a regular user, got %s", u.Role)
	}

	_ = repo.SetUserRole(ctx, "owner-1", models.RoleAdmin)

	again, err := uc.Execute(ctx, auth.Profile{Subject: "owner-1", Name: "Owner Renamed"})
	if err != nil {
		t.Fatal(err)
	}
	if again.Role != models.RoleAdmin || again.Name != "Owner Renamed" {
		t.Errorf("unexpected user after second login %+v", again)
	}
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingMemoryRepository()
	u, _ := repo.UpsertUser(ctx, &models.User{OpenID: "x", Name: "Old", Phone: "1"})

	name := "New"
	got, err := NewUpdateProfile(repo).Execute(ctx, UpdateProfileInput{UserID: u.ID, Name: &name})
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "New" || got.Phone != "1" {
		t.Errorf("only provided fields change, got %+v", got)
	}

	if _, err := NewUpdateProfile(repo).Execute(ctx, UpdateProfileInput{UserID: 999}); httperr.KindOf(err) != httperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
