package commands_test

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountWithPassword(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	account, err := user.NewUser(
		kernel.NewUUID(), "ravi", "Ravi Kumar", "ravi@example.com",
		string(hash), user.Consumer, "",
	)
	require.NoError(t, err)
	return account
}

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := newAccountWithPassword(t, "secret-pass")
	cmd, err := commands.NewLoginCommand("ravi", "secret-pass")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	sessionRepo := new(MockSessionRepository)
	uow := new(MockIdentityUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByLogin", mock.Anything, "ravi").Return(account, nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.Session")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory, time.Hour)
	session, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, session.UserID().IsEqual(account.ID()))
	assert.False(t, session.IsExpired(time.Now()))
	uow.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	account := newAccountWithPassword(t, "secret-pass")
	cmd, err := commands.NewLoginCommand("ravi", "not-the-password")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByLogin", mock.Anything, "ravi").Return(account, nil).Once()

	uow := new(MockIdentityUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory, time.Hour)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestLoginCommandHandler_Handle_UnknownLogin(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewLoginCommand("nobody", "secret-pass")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	userRepo.On("GetByLogin", mock.Anything, "nobody").
		Return(nil, errs.NewObjectNotFoundError("user", "nobody")).Once()

	uow := new(MockIdentityUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewLoginCommandHandler(factory, time.Hour)
	_, err = h.Handle(ctx, cmd)

	// Same error as a wrong password: the response must not reveal whether
	// the account exists.
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}
