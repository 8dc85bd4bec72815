package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"namabank/internal/models/request_models"
	"namabank/internal/testutil"
	"namabank/pkg/utils"
)

func TestCreateAccountDefaultsStartDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	goal := int64(1000000)
	account, err := f.accountSvc.CreateAccount(ctx, request_models.CreateAccountRequest{
		Name:       "Maha Yagna",
		TargetGoal: &goal,
	})
	require.NoError(t, err)
	require.Equal(t, date(0), account.StartDate)
	require.True(t, account.IsActive)
	require.Equal(t, goal, *account.TargetGoal)
}

func TestCreateAccountRejectsDuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.accountSvc.CreateAccount(ctx, request_models.CreateAccountRequest{Name: "Twice"})
	require.NoError(t, err)

	_, err = f.accountSvc.CreateAccount(ctx, request_models.CreateAccountRequest{Name: "Twice"})
	require.ErrorIs(t, err, utils.ErrDuplicateAccountName)
}

func TestCreateAccountRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	badGoal := int64(0)
	_, err := f.accountSvc.CreateAccount(ctx, request_models.CreateAccountRequest{
		Name:       "Goalless",
		TargetGoal: &badGoal,
	})
	require.ErrorIs(t, err, utils.ErrInvalidTarget)

	_, err = f.accountSvc.CreateAccount(ctx, request_models.CreateAccountRequest{
		Name:      "Dateless",
		StartDate: "June 1st",
	})
	require.ErrorIs(t, err, utils.ErrInvalidEntryDate)
}

func TestUpdateAccountSoftDisableKeepsLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, f.db, "ram", "")
	account := testutil.CreateAccount(t, f.db, "Winding Down", true)
	testutil.CreateEntry(t, f.db, user, account, 77, date(1))

	off := false
	updated, err := f.accountSvc.UpdateAccount(ctx, account.ID, request_models.UpdateAccountRequest{
		IsActive: &off,
	})
	require.NoError(t, err)
	require.False(t, updated.IsActive)

	active, err := f.accountSvc.ListActiveAccounts(ctx)
	require.NoError(t, err)
	require.Empty(t, active)

	all, err := f.accountSvc.ListAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	summary, err := f.statsSvc.AggregateForAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(77), summary.Overall)
}

func TestUpdateAccountRenameCollision(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	testutil.CreateAccount(t, f.db, "Taken", true)
	account := testutil.CreateAccount(t, f.db, "Free", true)

	name := "Taken"
	_, err := f.accountSvc.UpdateAccount(ctx, account.ID, request_models.UpdateAccountRequest{
		Name: &name,
	})
	require.ErrorIs(t, err, utils.ErrDuplicateAccountName)
}

func TestGetAccountNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.accountSvc.GetAccount(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrAccountNotFound)
}
