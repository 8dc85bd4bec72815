package services

import (
	"fmt"

	"namabank/pkg/utils"
)

// storeErr tags a persistence failure so handlers can map it without
// losing the underlying cause from the logs.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
}
