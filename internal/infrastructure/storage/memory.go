package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/opsmatters/opsmatters-media-sub001/internal/domain"
	"github.com/opsmatters/opsmatters-media-sub001/internal/ports"
)

// MemoryOrganisations keeps organisation sites in memory.
type MemoryOrganisations struct {
	mu   sync.RWMutex
	orgs map[string]domain.Organisation
}

var _ ports.OrganisationStore = (*MemoryOrganisations)(nil)

func NewMemoryOrganisations(orgs ...domain.Organisation) *MemoryOrganisations {
	m := &MemoryOrganisations{orgs: map[string]domain.Organisation{}}
	for _, org := range orgs {
		m.orgs[orgKey(org.SiteID, org.Code)] = org
	}
	return m
}

func (m *MemoryOrganisations) Organisation(_ context.Context, siteID, code string) (domain.Organisation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	org, ok := m.orgs[orgKey(siteID, code)]
	if !ok {
		return domain.Organisation{}, fmt.Errorf("organisation %s/%s: %w", siteID, code, ports.ErrNotFound)
	}
	return org, nil
}

func (m *MemoryOrganisations) SaveOrganisation(_ context.Context, org domain.Organisation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orgs[orgKey(org.SiteID, org.Code)] = org
	return nil
}

func orgKey(siteID, code string) string {
	return siteID + "/" + code
}

// MemoryParameters serves parameters from a fixed map.
type MemoryParameters struct {
	mu     sync.RWMutex
	values map[string]int64
}

var _ ports.Parameters = (*MemoryParameters)(nil)

func NewMemoryParameters(values map[string]int64) *MemoryParameters {
	copied := make(map[string]int64, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &MemoryParameters{values: copied}
}

func (m *MemoryParameters) Int(_ context.Context, key string) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores or replaces a parameter.
func (m *MemoryParameters) Set(key string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
}
