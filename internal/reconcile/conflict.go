package reconcile

import (
	"time"
)

// IsRemoteNewer reports whether a remote record should overwrite the local
// copy. With no local timestamp to protect, the remote always wins (the
// bootstrap case). Otherwise the coerced remote timestamp must strictly
// exceed the local one: ties are a local win.
//
// A malformed remote timestamp coerces to "now", so it compares newer than
// any local timestamp in the past.
func (p *Parser) IsRemoteNewer(remoteUpdatedAt any, localUpdatedAt *time.Time) bool {
	if localUpdatedAt == nil {
		return true
	}
	remote := p.coerceDate(remoteUpdatedAt, p.now())
	return remote.After(*localUpdatedAt)
}
