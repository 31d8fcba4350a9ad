// Package cache provides the process-lifetime memoization tier for analysis
// results. Entries are keyed by the content-addressed cache key and shared
// across identities; only a restart evicts them.
package cache

import (
	"sync"

	"github.com/fadilmartias/resume-analyzer/internal/dto"
)

// AnalysisCache is the ephemeral tier. It is injected into the usecase rather
// than held as package state so tests get a fresh instance per case.
type AnalysisCache struct {
	mu      sync.RWMutex
	entries map[string]*dto.AnalysisRecord
}

func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{entries: make(map[string]*dto.AnalysisRecord)}
}

func (c *AnalysisCache) Get(key string) (*dto.AnalysisRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.entries[key]
	return record, ok
}

func (c *AnalysisCache) Set(key string, record *dto.AnalysisRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = record
}

func (c *AnalysisCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
