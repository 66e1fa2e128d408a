// Package storage persists extracted image payloads and hands back locators
// that the question_image table records.
package storage

import (
	"context"

	"github.com/google/uuid"
)

// Storage stores image blobs owned by a question. Locators are opaque to
// callers; only the storage that issued one can resolve it.
type Storage interface {
	Save(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (string, error)
	Delete(ctx context.Context, locator string) (bool, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}
