package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"namabank/internal/models/db_models"
	"namabank/internal/models/request_models"
	"namabank/internal/testutil"
	"namabank/pkg/utils"
)

func TestCreateUserHashesPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.userSvc.CreateUser(ctx, request_models.CreateUserRequest{
		Name:     "Ram",
		Whatsapp: "+911234567890",
		Password: "japa-japa",
		City:     "Chennai",
	})
	require.NoError(t, err)
	require.NotEqual(t, "japa-japa", user.PasswordHash)
	require.NoError(t, utils.ComparePasswords(user.PasswordHash, "japa-japa"))
	require.Equal(t, db_models.RoleUser, user.Role)
	require.True(t, user.IsActive)
}

func TestCreateUserDuplicateWhatsapp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := request_models.CreateUserRequest{Name: "Ram", Whatsapp: "+911111", Password: "secret1"}
	_, err := f.userSvc.CreateUser(ctx, req)
	require.NoError(t, err)

	req.Name = "Other Ram"
	_, err = f.userSvc.CreateUser(ctx, req)
	require.ErrorIs(t, err, utils.ErrDuplicateWhatsapp)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userSvc.CreateUser(ctx, request_models.CreateUserRequest{
		Name: "Ram", Whatsapp: "+912222", Password: "secret1",
	})
	require.NoError(t, err)

	token, user, err := f.userSvc.Login(ctx, request_models.LoginRequest{
		Whatsapp: "+912222", Password: "secret1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "Ram", user.Name)

	_, _, err = f.userSvc.Login(ctx, request_models.LoginRequest{
		Whatsapp: "+912222", Password: "wrong-one",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, _, err = f.userSvc.Login(ctx, request_models.LoginRequest{
		Whatsapp: "+913333", Password: "secret1",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginDisabledUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.userSvc.CreateUser(ctx, request_models.CreateUserRequest{
		Name: "Gone", Whatsapp: "+914444", Password: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, f.db.Model(user).Update("is_active", false).Error)

	_, _, err = f.userSvc.Login(ctx, request_models.LoginRequest{
		Whatsapp: "+914444", Password: "secret1",
	})
	require.ErrorIs(t, err, utils.ErrUserDisabled)
}

func TestBulkCreateUsersAllOrNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userSvc.BulkCreateUsers(ctx, []request_models.CreateUserRequest{
		{Name: "One", Whatsapp: "+915555", Password: "secret1"},
		{Name: "Two", Whatsapp: "+915555", Password: "secret1"}, // dup within the batch
	})
	require.ErrorIs(t, err, utils.ErrDuplicateWhatsapp)

	var n int64
	require.NoError(t, f.db.Model(&db_models.User{}).Count(&n).Error)
	require.Equal(t, int64(0), n)

	users, err := f.userSvc.BulkCreateUsers(ctx, []request_models.CreateUserRequest{
		{Name: "One", Whatsapp: "+915555", Password: "secret1"},
		{Name: "Two", Whatsapp: "+916666", Password: "secret1"},
	})
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestReplaceLinksReconciles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	first := testutil.CreateAccount(t, f.db, "First", true)
	second := testutil.CreateAccount(t, f.db, "Second", true)
	testutil.LinkUserToAccount(t, f.db, user, first)

	require.NoError(t, f.userSvc.ReplaceLinks(ctx, user.ID, []uuid.UUID{second.ID}))

	linked, err := f.userSvc.LinkedAccounts(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	require.Equal(t, second.ID, linked[0].AccountID)
	require.Equal(t, "Second", linked[0].Name)
}

func TestReplaceLinksKeepsOverlap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	first := testutil.CreateAccount(t, f.db, "First", true)
	second := testutil.CreateAccount(t, f.db, "Second", true)
	testutil.LinkUserToAccount(t, f.db, user, first)

	// Keeping an already-linked account in the new set must not
	// collide with the existing row.
	require.NoError(t, f.userSvc.ReplaceLinks(ctx, user.ID, []uuid.UUID{first.ID, second.ID}))

	linked, err := f.userSvc.LinkedAccounts(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, linked, 2)
}

func TestReplaceLinksRelinkAfterRemoval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	first := testutil.CreateAccount(t, f.db, "First", true)
	second := testutil.CreateAccount(t, f.db, "Second", true)
	testutil.LinkUserToAccount(t, f.db, user, first)

	require.NoError(t, f.userSvc.ReplaceLinks(ctx, user.ID, []uuid.UUID{second.ID}))
	require.NoError(t, f.userSvc.ReplaceLinks(ctx, user.ID, []uuid.UUID{first.ID}))

	linked, err := f.userSvc.LinkedAccounts(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	require.Equal(t, first.ID, linked[0].AccountID)
}

func TestReplaceLinksValidatesTargets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")

	err := f.userSvc.ReplaceLinks(ctx, user.ID, []uuid.UUID{uuid.New()})
	require.ErrorIs(t, err, utils.ErrAccountNotFound)

	err = f.userSvc.ReplaceLinks(ctx, uuid.New(), nil)
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "Chennai")

	city := "Madurai"
	updated, err := f.userSvc.UpdateUser(ctx, user.ID, request_models.UpdateUserRequest{City: &city})
	require.NoError(t, err)
	require.Equal(t, "Madurai", updated.City)
	require.Equal(t, "ram", updated.Name)

	_, err = f.userSvc.UpdateUser(ctx, uuid.New(), request_models.UpdateUserRequest{})
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}
