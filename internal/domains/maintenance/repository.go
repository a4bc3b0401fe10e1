package maintenance

import "context"

// Repository defines destructive maintenance operations. Only wired when
// test routes are enabled.
type Repository interface {
	// ResetAll deletes every row from every table in one transaction,
	// children before parents so foreign keys hold throughout.
	ResetAll(ctx context.Context) error
}
