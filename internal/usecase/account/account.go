package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const minPasswordLength = 8

var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid email or password.")

// ======================================================
// EXTERNAL LOGIN
// ======================================================

type OAuthLogin struct {
	repo  domain.UserStore
	audit audit.Recorder
	now   func() time.Time
}

func NewOAuthLogin(repo domain.UserStore, audit audit.Recorder) *OAuthLogin {
	return &OAuthLogin{repo: repo, audit: audit, now: time.Now}
}

// Execute upserts the provider identity. The stored role is never touched.
func (uc *OAuthLogin) Execute(ctx context.Context, p auth.Profile) (*models.User, error) {
	u, err := uc.repo.UpsertUser(ctx, &models.User{
		OpenID:       p.Subject,
		Name:         strings.TrimSpace(p.Name),
		Email:        strings.TrimSpace(p.Email),
		LoginMethod:  auth.LoginMethodOAuth,
		LastSignedIn: uc.now(),
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserLogin,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"method": auth.LoginMethodOAuth},
	})

	return u, nil
}

// ======================================================
// LOCAL ACCOUNTS
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type Register struct {
	repo        domain.UserStore
	checkDomain func(email string) bool
	now         func() time.Time
}

func NewRegister(repo domain.UserStore) *Register {
	return &Register{
		repo:        repo,
		checkDomain: validators.IsEmailDomainValid,
		now:         time.Now,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("invalid_email", "A valid email address is required.")
	}
	if !uc.checkDomain(email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "Email domain does not accept mail.")
	}
	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrValidation("weak_password", "Password must have at least 8 characters.")
	}

	openID := auth.LocalOpenID(email)

	_, err := uc.repo.GetUserByOpenID(ctx, openID)
	if err == nil {
		return nil, httperr.ErrConflict("email_taken", "An account with this email already exists.")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return uc.repo.UpsertUser(ctx, &models.User{
		OpenID:       openID,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		LoginMethod:  auth.LoginMethodLocal,
		PasswordHash: hash,
		LastSignedIn: uc.now(),
	})
}

type PasswordLogin struct {
	repo  domain.UserStore
	audit audit.Recorder
	now   func() time.Time
}

func NewPasswordLogin(repo domain.UserStore, audit audit.Recorder) *PasswordLogin {
	return &PasswordLogin{repo: repo, audit: audit, now: time.Now}
}

func (uc *PasswordLogin) Execute(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := uc.repo.GetUserByOpenID(ctx, auth.LocalOpenID(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if u.PasswordHash == "" || !auth.CheckPassword(u.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	u, err = uc.repo.UpsertUser(ctx, &models.User{
		OpenID:       u.OpenID,
		LastSignedIn: uc.now(),
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserLogin,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"method": auth.LoginMethodLocal},
	})

	return u, nil
}

// ======================================================
// PROFILE
// ======================================================

type UpdateProfileInput struct {
	UserID uint
	Name   *string
	Phone  *string
}

type UpdateProfile struct {
	repo domain.UserStore
}

func NewUpdateProfile(repo domain.UserStore) *UpdateProfile {
	return &UpdateProfile{repo: repo}
}

func (uc *UpdateProfile) Execute(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	u, err := uc.repo.GetUserByID(ctx, in.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrNotFound("user_not_found", "User not found.")
	}
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if len(name) > 100 {
			return nil, httperr.ErrValidation("name_too_long", "Name must be at most 100 characters.")
		}
		u.Name = name
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if len(phone) > 20 {
			return nil, httperr.ErrValidation("phone_too_long", "Phone must be at most 20 characters.")
		}
		u.Phone = phone
	}

	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
