package service

import (
	"sync"

	"student_result_system/internals/features/students/model"
)

// StudentCache adalah cache baca hasil dari server. Tidak ada edit lokal
// yang disinkronkan balik.
type StudentCache struct {
	mu     sync.RWMutex
	recs   []model.DisplayRecord
	loaded bool
}

func NewStudentCache() *StudentCache {
	return &StudentCache{}
}

// All mengembalikan salinan; ok=false kalau belum pernah dimuat.
func (c *StudentCache) All() ([]model.DisplayRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return append([]model.DisplayRecord(nil), c.recs...), true
}

func (c *StudentCache) Get(id int) (model.DisplayRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.recs {
		if r.ID == id {
			return r, true
		}
	}
	return model.DisplayRecord{}, false
}

func (c *StudentCache) ReplaceAll(recs []model.DisplayRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append([]model.DisplayRecord(nil), recs...)
	c.loaded = true
}

// Upsert mengganti record dengan id sama, atau menambah di belakang.
func (c *StudentCache) Upsert(rec model.DisplayRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.recs {
		if c.recs[i].ID == rec.ID {
			c.recs[i] = rec
			return
		}
	}
	c.recs = append(c.recs, rec)
}

func (c *StudentCache) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.recs[:0]
	for _, r := range c.recs {
		if r.ID != id {
			out = append(out, r)
		}
	}
	c.recs = out
}

func (c *StudentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = nil
	c.loaded = false
}
