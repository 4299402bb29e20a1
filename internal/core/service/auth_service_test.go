package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
)

// fakeUserRepo is an in-memory UserRepository keyed by username.
type fakeUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	f.seq++
	u := *user
	u.ID = fmt.Sprintf("user-%d", f.seq)
	f.users[u.Username] = &u
	out := u
	return &out, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) AppendReservationSummary(_ context.Context, userID string, summary domain.ReservationSummary) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.Reservations = append(u.Reservations, summary)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (f *fakeUserRepo) SetSummaryRating(_ context.Context, userID, roomID string, rating int, review string) error {
	for _, u := range f.users {
		if u.ID != userID {
			continue
		}
		for i := range u.Reservations {
			if u.Reservations[i].RoomID == roomID {
				r := rating
				u.Reservations[i].Rating = &r
				u.Reservations[i].Review = review
				return nil
			}
		}
	}
	return domain.ErrUserNotFound
}

func TestRegister_CreatesGuestWithToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)

	token, user, err := svc.Register(context.Background(), "alice", "password1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("registration must never create admins")
	}
	if user.PasswordHash == "password1" {
		t.Fatalf("password stored in plaintext")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["user_id"] != user.ID || claims["username"] != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if isAdmin, _ := claims["is_admin"].(bool); isAdmin {
		t.Fatalf("is_admin claim must be false for guests")
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "alice", "password1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(ctx, "alice", "other")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "secret", time.Hour)
	if _, _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "alice", "password1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(ctx, "alice", "password1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user.Username != "alice" {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, user)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "alice", "password1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(ctx, "alice", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUserMasked(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "secret", time.Hour)

	// Unknown usernames yield the same error as a bad password so the
	// response does not reveal which accounts exist.
	_, _, err := svc.Login(context.Background(), "ghost", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureAdmin_IdempotentSeed(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour)
	ctx := context.Background()

	if err := svc.EnsureAdmin(ctx, "root", "rootpw"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := svc.EnsureAdmin(ctx, "root", "rootpw"); err != nil {
		t.Fatalf("second seed must be a no-op: %v", err)
	}

	admin, err := repo.FindByUsername(ctx, "root")
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatalf("seeded account must be admin")
	}

	// The seeded admin can log in.
	if _, _, err := svc.Login(ctx, "root", "rootpw"); err != nil {
		t.Fatalf("admin login: %v", err)
	}
}
