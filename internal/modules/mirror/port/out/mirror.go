package out

import (
	"context"

	"tokenhub/internal/modules/mirror/domain"
)

// RemoteStore is the shared multi-device scan history. Write and clear calls
// are best effort: callers discard errors and never retry. List serves the
// shared-history dashboard.
//
// The same interface describes both sides of the wire: the JSON-RPC client a
// device talks through, and the hub-side store the server dispatches onto.
type RemoteStore interface {
	SaveScan(ctx context.Context, space string, doc domain.Document) error
	ClearUser(ctx context.Context, space, userID string) error
	ClearToday(ctx context.Context, space, userID string, startMillis, endMillis int64) error
	List(ctx context.Context, space, userID string) ([]domain.Document, error)
}

// Submitter schedules background replication work. Submit returns
// immediately; the scanning flow never awaits a mirror task.
type Submitter interface {
	Submit(task func(context.Context))
}

// HubServer exposes a hub-side RemoteStore to other devices.
type HubServer interface {
	Serve(ctx context.Context, addr string, store RemoteStore) error
}
