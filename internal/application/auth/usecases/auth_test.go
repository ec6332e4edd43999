package usecases

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumelift/resumelift/internal/domain/user"
	apperrors "github.com/resumelift/resumelift/internal/shared/errors"
	"github.com/resumelift/resumelift/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if err := u.SetID(uint(len(r.byEmail) + 1)); err != nil {
		return err
	}
	r.byEmail[u.Email()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	for _, u := range r.byEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetBySID(_ context.Context, sid string) (*user.User, error) {
	for _, u := range r.byEmail {
		if u.SID() == sid {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	r.byEmail[u.Email()] = u
	return nil
}

// plainHasher is a transparent stand-in for the bcrypt hasher.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Compare(hashed, password string) error {
	if hashed != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type fakeTokens struct{ err error }

func (f *fakeTokens) GeneratePair(userID uint, sid, email, role string) (*TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &TokenPair{AccessToken: "access-" + sid, RefreshToken: "refresh-" + sid, ExpiresIn: 900}, nil
}

func TestRegisterUseCase_Execute(t *testing.T) {
	t.Run("registers a new account with default role", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUseCase(repo, plainHasher{}, testLogger())

		dto, err := uc.Execute(context.Background(), RegisterCommand{Email: "Alice@Example.com", Password: "hunter2hunter2"})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", dto.Email)
		assert.Equal(t, "user", dto.Role)
		assert.NotEmpty(t, dto.SID)

		stored, _ := repo.GetByEmail(context.Background(), "alice@example.com")
		require.NotNil(t, stored)
		assert.Equal(t, "hashed:hunter2hunter2", stored.PasswordHash())
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUseCase(repo, plainHasher{}, testLogger())

		_, err := uc.Execute(context.Background(), RegisterCommand{Email: "alice@example.com", Password: "hunter2hunter2"})
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), RegisterCommand{Email: "alice@example.com", Password: "otherpassword"})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("short password rejected", func(t *testing.T) {
		uc := NewRegisterUseCase(newFakeUserRepo(), plainHasher{}, testLogger())

		_, err := uc.Execute(context.Background(), RegisterCommand{Email: "alice@example.com", Password: "short"})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		uc := NewRegisterUseCase(newFakeUserRepo(), plainHasher{}, testLogger())

		_, err := uc.Execute(context.Background(), RegisterCommand{Email: "not-an-email", Password: "hunter2hunter2"})

		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestLoginUseCase_Execute(t *testing.T) {
	setup := func(t *testing.T) (*fakeUserRepo, *LoginUseCase) {
		t.Helper()
		repo := newFakeUserRepo()
		reg := NewRegisterUseCase(repo, plainHasher{}, testLogger())
		_, err := reg.Execute(context.Background(), RegisterCommand{Email: "alice@example.com", Password: "hunter2hunter2"})
		require.NoError(t, err)
		return repo, NewLoginUseCase(repo, plainHasher{}, &fakeTokens{}, testLogger())
	}

	t.Run("valid credentials issue tokens", func(t *testing.T) {
		_, uc := setup(t)

		res, err := uc.Execute(context.Background(), LoginCommand{Email: "Alice@Example.com ", Password: "hunter2hunter2"})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", res.User.Email)
		assert.NotEmpty(t, res.Tokens.AccessToken)
		assert.NotEmpty(t, res.Tokens.RefreshToken)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, uc := setup(t)

		_, wrongPw := uc.Execute(context.Background(), LoginCommand{Email: "alice@example.com", Password: "wrong"})
		_, unknown := uc.Execute(context.Background(), LoginCommand{Email: "bob@example.com", Password: "hunter2hunter2"})

		require.Error(t, wrongPw)
		require.Error(t, unknown)
		assert.Equal(t, wrongPw.Error(), unknown.Error())
	})
}
