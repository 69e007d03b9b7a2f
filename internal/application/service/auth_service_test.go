package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/pkg/apperror"
	"github.com/manikandans/billbook-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*entity.User, error) {
	for _, u := range r.users {
		if u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func testUser(t *testing.T, employeeID, password string, role enum.Role) *entity.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &entity.User{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Name:         "Test User",
		PasswordHash: string(hashed),
		Role:         role,
		IsActive:     true,
	}
}

func newAuthService(users ...*entity.User) (*service.AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo(users...)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return service.NewAuthService(repo, jwtManager), repo
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "EMP001", "secret123", enum.RoleBiller)
	svc, _ := newAuthService(user)

	result, err := svc.Login(ctx, "EMP001", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if result.User.ID != user.ID {
		t.Errorf("user = %v, want %v", result.User.ID, user.ID)
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "EMP001", "secret123", enum.RoleBiller)
	inactive := testUser(t, "EMP002", "secret123", enum.RoleBiller)
	inactive.IsActive = false
	svc, _ := newAuthService(user, inactive)

	if _, err := svc.Login(ctx, "EMP001", "wrong"); err != apperror.ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v, want invalid credentials", err)
	}
	if _, err := svc.Login(ctx, "NOBODY", "secret123"); err != apperror.ErrInvalidCredentials {
		t.Errorf("unknown employee: err = %v, want invalid credentials", err)
	}
	if _, err := svc.Login(ctx, "EMP002", "secret123"); err == nil {
		t.Error("inactive account should not log in")
	}
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "EMP001", "secret123", enum.RoleManager)
	svc, _ := newAuthService(user)

	login, err := svc.Login(ctx, "EMP001", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}

	if _, err := svc.RefreshToken(ctx, "not-a-token"); err != apperror.ErrInvalidToken {
		t.Errorf("garbage token: err = %v, want invalid token", err)
	}

	// A deactivated account cannot refresh even with a valid token.
	user.IsActive = false
	if _, err := svc.RefreshToken(ctx, login.RefreshToken); err != apperror.ErrUnauthorized {
		t.Errorf("inactive refresh: err = %v, want unauthorized", err)
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, "EMP001", "secret123", enum.RoleBiller)
	svc, _ := newAuthService(user)

	if err := svc.ChangePassword(ctx, user.ID, "wrong", "newpass456"); err == nil {
		t.Error("wrong current password should be rejected")
	}
	if err := svc.ChangePassword(ctx, user.ID, "secret123", "newpass456"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := svc.Login(ctx, "EMP001", "newpass456"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, err := svc.Login(ctx, "EMP001", "secret123"); err == nil {
		t.Error("old password should no longer work")
	}
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	admin := testUser(t, "EMP001", "secret123", enum.RoleAdmin)
	svc, repo := newAuthService(admin)

	created, err := svc.CreateUser(ctx, &service.CreateUserInput{
		EmployeeID: "EMP010",
		Name:       "New Biller",
		Password:   "welcome1",
		Role:       enum.RoleBiller,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.PasswordHash == "welcome1" {
		t.Error("password stored in the clear")
	}
	if len(repo.users) != 2 {
		t.Errorf("users = %d, want 2", len(repo.users))
	}

	_, err = svc.CreateUser(ctx, &service.CreateUserInput{
		EmployeeID: "EMP010",
		Name:       "Duplicate",
		Password:   "welcome1",
		Role:       enum.RoleBiller,
	})
	assertAppError(t, err, http.StatusConflict)

	_, err = svc.CreateUser(ctx, &service.CreateUserInput{
		EmployeeID: "EMP011",
		Name:       "Bad Role",
		Password:   "welcome1",
		Role:       "superuser",
	})
	assertAppError(t, err, http.StatusBadRequest)
}
