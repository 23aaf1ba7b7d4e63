package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/shipmight/shipmight/adapters/store/entity"
	"github.com/shipmight/shipmight/adapters/store/inmem"
	"github.com/shipmight/shipmight/domain/model"
)

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	mem := inmem.NewStore()
	if _, err := (&entity.SystemNamespace{Objects: mem}).Ensure(context.Background()); err != nil {
		t.Fatalf("ensure system namespace: %v", err)
	}
	return &UseCase{Repos: &Repos{User: entity.NewRepositories(mem, nil, "").User}, Cost: bcrypt.MinCost}
}

func TestUserCreateAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)

	if _, err := uc.Create(ctx, &CreateInput{Username: "admin", Password: "short"}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected short password to be rejected, got %v", err)
	}
	out, err := uc.Create(ctx, &CreateInput{Username: "admin", Password: "correct horse"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.User.PasswordHash == "correct horse" || out.User.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if _, err := uc.Create(ctx, &CreateInput{Username: "admin", Password: "another one"}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected username conflict, got %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "ok", username: "admin", password: "correct horse"},
		{name: "wrong password", username: "admin", password: "battery staple", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "root", password: "correct horse", wantErr: ErrInvalidCredentials},
		{name: "empty", wantErr: ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Authenticate(ctx, &AuthenticateInput{Username: tt.username, Password: tt.password})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil || got.User.ID != out.User.ID {
				t.Fatalf("authenticate: %+v %v", got, err)
			}
		})
	}
}

func TestUserUpdatePassword(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)
	out, err := uc.Create(ctx, &CreateInput{Username: "dev", Password: "first password"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pw := "second password"
	if _, err := uc.Update(ctx, &UpdateInput{UserID: out.User.ID, Password: &pw}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := uc.Authenticate(ctx, &AuthenticateInput{Username: "dev", Password: "first password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	if _, err := uc.Authenticate(ctx, &AuthenticateInput{Username: "dev", Password: pw}); err != nil {
		t.Fatalf("new password: %v", err)
	}
	if _, err := uc.Delete(ctx, &DeleteInput{UserID: out.User.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err := uc.List(ctx, &ListInput{})
	if err != nil || len(list.Users) != 0 {
		t.Fatalf("list: %v (%d)", err, len(list.Users))
	}
}
