package repository

import (
	"sync"

	"github.com/l27labs/dca-engine/internal/model"
	"github.com/l27labs/dca-engine/internal/store"
)

type DraftRepositoryInterface interface {
	Append(d model.Draft)
	List() []model.Draft
}

// DraftRepository holds the persisted drafts collection: loaded once at
// construction, newest first, written through on every append. The mutex
// covers concurrent HTTP handlers; the logical model stays single-writer.
type DraftRepository struct {
	Store *store.FileStore

	mu     sync.Mutex
	drafts []model.Draft
}

func NewDraftRepository(s *store.FileStore) *DraftRepository {
	r := &DraftRepository{Store: s}
	r.Store.Load(store.DraftsKey, &r.drafts)
	return r
}

// Append prepends the draft and persists the collection. Drafts are never
// deleted.
func (r *DraftRepository) Append(d model.Draft) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts = append([]model.Draft{d}, r.drafts...)
	r.Store.Save(store.DraftsKey, r.drafts)
}

// List returns a copy of the collection, newest first.
func (r *DraftRepository) List() []model.Draft {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Draft, len(r.drafts))
	copy(out, r.drafts)
	return out
}
