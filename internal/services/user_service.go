package services

import (
	"context"

	"github.com/google/uuid"

	"namabank/internal/models/db_models"
	"namabank/internal/models/request_models"
	"namabank/internal/models/response_models"
	"namabank/internal/repositories"
	"namabank/pkg/utils"
)

type UserService interface {
	Login(ctx context.Context, req request_models.LoginRequest) (string, *db_models.User, error)
	CreateUser(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error)
	BulkCreateUsers(ctx context.Context, reqs []request_models.CreateUserRequest) ([]*db_models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error)
	ListUsers(ctx context.Context) ([]db_models.User, error)
	LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]response_models.LinkedAccount, error)
	ReplaceLinks(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID) error
}

type userService struct {
	users    repositories.UserRepository
	links    repositories.LinkRepository
	accounts repositories.AccountRepository
}

func NewUserService(
	users repositories.UserRepository,
	links repositories.LinkRepository,
	accounts repositories.AccountRepository,
) UserService {
	return &userService{users: users, links: links, accounts: accounts}
}

func (u *userService) Login(ctx context.Context, req request_models.LoginRequest) (string, *db_models.User, error) {
	user, err := u.users.FindByWhatsapp(ctx, req.Whatsapp)
	if err != nil {
		return "", nil, storeErr(err)
	}
	if user == nil {
		return "", nil, utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, utils.ErrUserDisabled
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}
	return token, user, nil
}

func (u *userService) buildUser(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error) {
	existing, err := u.users.FindByWhatsapp(ctx, req.Whatsapp)
	if err != nil {
		return nil, storeErr(err)
	}
	if existing != nil {
		return nil, utils.ErrDuplicateWhatsapp
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, storeErr(err)
	}

	return &db_models.User{
		Name:         req.Name,
		Whatsapp:     req.Whatsapp,
		PasswordHash: hashed,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Role:         db_models.RoleUser,
		IsActive:     true,
	}, nil
}

func (u *userService) CreateUser(ctx context.Context, req request_models.CreateUserRequest) (*db_models.User, error) {
	user, err := u.buildUser(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := u.users.Insert(ctx, user); err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

// BulkCreateUsers validates every element before inserting the whole
// set in one transaction.
func (u *userService) BulkCreateUsers(ctx context.Context, reqs []request_models.CreateUserRequest) ([]*db_models.User, error) {
	if len(reqs) == 0 {
		return nil, utils.ErrEmptyBatch
	}

	seen := make(map[string]bool, len(reqs))
	users := make([]*db_models.User, 0, len(reqs))
	for _, req := range reqs {
		if seen[req.Whatsapp] {
			return nil, utils.ErrDuplicateWhatsapp
		}
		seen[req.Whatsapp] = true

		user, err := u.buildUser(ctx, req)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := u.users.InsertBatch(ctx, users); err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func (u *userService) UpdateUser(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.State != nil {
		user.State = *req.State
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.ProfilePhoto != nil {
		user.ProfilePhoto = *req.ProfilePhoto
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

func (u *userService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return users, nil
}

func (u *userService) LinkedAccounts(ctx context.Context, userID uuid.UUID) ([]response_models.LinkedAccount, error) {
	links, err := u.links.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err)
	}

	accounts := make([]response_models.LinkedAccount, 0, len(links))
	for _, link := range links {
		accounts = append(accounts, response_models.LinkedAccount{
			AccountID: link.AccountID,
			Name:      link.Account.Name,
			IsActive:  link.Account.IsActive,
		})
	}
	return accounts, nil
}

func (u *userService) ReplaceLinks(ctx context.Context, userID uuid.UUID, accountIDs []uuid.UUID) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return storeErr(err)
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	for _, accountID := range accountIDs {
		account, err := u.accounts.FindByID(ctx, accountID)
		if err != nil {
			return storeErr(err)
		}
		if account == nil {
			return utils.ErrAccountNotFound
		}
	}

	if err := u.links.Replace(ctx, userID, accountIDs); err != nil {
		return storeErr(err)
	}
	return nil
}
