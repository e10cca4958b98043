package storage

import (
	"fmt"
	"time"
)

// Keys derives object store keys of the form
// <namespace>/<owner>/<millisecond-timestamp>.<ext>. The key doubles as the
// object name and the path segment of the public URLs, so a key must be
// generated exactly once per upload.
type Keys struct {
	namespace string
	owner     string
	now       func() time.Time
}

// NewKeys returns a generator scoped to one owner. The owner is resolved
// before the batch starts and never changes mid-run.
func NewKeys(namespace, owner string) *Keys {
	return &Keys{namespace: namespace, owner: owner, now: time.Now}
}

// Make derives a fresh key for the given file extension.
func (k *Keys) Make(ext string) string {
	return fmt.Sprintf("%s/%s/%d.%s", k.namespace, k.owner, k.now().UnixMilli(), ext)
}
