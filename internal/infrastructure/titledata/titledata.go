// Package titledata reads puzzle record batches from key/value "title data"
// storage. Two implementations exist: a remote HTTP client for the hosted
// backend and a sqlite-backed local mirror for offline and development use.
// Both treat an absent key as an empty batch, not an error.
package titledata

import (
	"fmt"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// DefaultNamespace prefixes every batch key.
const DefaultNamespace = "sfmc-tasks"

// BatchKey builds the storage key for one dataset batch,
// e.g. "sfmc-tasks-training2-batch3.json".
func BatchKey(namespace string, dataset domain.Dataset, n int) string {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return fmt.Sprintf("%s-%s-batch%d.json", namespace, dataset, n)
}
