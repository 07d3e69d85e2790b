package ports

import "github.com/supercash/backoffice/internal/core/domain"

// ChangeObserver is notified after every store mutation, in mutation order.
// Implementations must not block and must not call back into the store.
type ChangeObserver interface {
	OnChange(change domain.Change)
}
