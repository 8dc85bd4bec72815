package utils

import "errors"

var (
	// Validation errors: rejected before anything touches the store.
	ErrInvalidCount      = errors.New("count must be a positive integer")
	ErrInvalidEntryDate  = errors.New("invalid entry date")
	ErrInvalidSourceType = errors.New("invalid source type")
	ErrInvalidTarget     = errors.New("target goal must be a positive integer")
	ErrEmptyBatch        = errors.New("batch must contain at least one entry")

	ErrUnlinkedAccount = errors.New("account is not linked to this user")

	ErrAccountNotFound      = errors.New("nama account not found")
	ErrAccountDisabled      = errors.New("nama account is disabled")
	ErrDuplicateAccountName = errors.New("a nama account with this name already exists")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrDuplicateWhatsapp  = errors.New("a user with this whatsapp number already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPrayerNotFound = errors.New("prayer not found")
	ErrBookNotFound   = errors.New("book not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")

	// ErrStoreUnavailable wraps persistence failures. Ingestion
	// propagates it unchanged; composite reports degrade per section.
	ErrStoreUnavailable = errors.New("store unavailable")
)
