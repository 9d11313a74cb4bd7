package store

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"math"
	"strings"

	"quotely/internal/domain/entities"
)

var (
	ErrDomainNotFound = errors.New("business domain not found")
	ErrDomainInvalid  = errors.New("domain requires a name and a non-negative hourly rate")
	ErrDomainInUse    = errors.New("business domain is referenced by one or more quotes")
)

// rateMemoEntry caches one domain's rate-resolved view, keyed by a content
// signature. While the signature matches, ResolveDomain hands out the same
// pointer, so identity-comparing consumers skip recomputation.
type rateMemoEntry struct {
	sig      uint64
	resolved *entities.BusinessDomain
}

// ListDomains returns the rate-resolved view of every domain: when a domain
// has rate components, its effective hourly rate is their sum.
func (s *Store) ListDomains() []entities.BusinessDomain {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.BusinessDomain, len(s.domains))
	for i, d := range s.domains {
		resolved, _ := s.resolveDomainLocked(d.ID)
		out[i] = resolved.Clone()
	}
	return out
}

// ResolveDomain returns the rate-resolved view of one domain. The returned
// pointer is stable across calls until the domain's content changes and
// must be treated as read-only.
func (s *Store) ResolveDomain(id string) (*entities.BusinessDomain, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resolved, ok := s.resolveDomainLocked(id)
	if !ok {
		return nil, ErrDomainNotFound
	}
	return resolved, nil
}

// SaveDomain validates and stores a business domain. With components
// present the stored hourly rate is recomputed from their sum; it is never
// edited independently.
func (s *Store) SaveDomain(ctx context.Context, d entities.BusinessDomain) (entities.BusinessDomain, error) {
	if strings.TrimSpace(d.Name) == "" {
		return entities.BusinessDomain{}, ErrDomainInvalid
	}
	if len(d.RateComponents) == 0 && (d.HourlyRate < 0 || math.IsNaN(d.HourlyRate)) {
		return entities.BusinessDomain{}, ErrDomainInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if d.ID == "" {
		d.ID = s.newID()
	}
	for i := range d.RateComponents {
		if d.RateComponents[i].ID == "" {
			d.RateComponents[i].ID = s.newID()
		}
	}
	if len(d.RateComponents) > 0 {
		d.HourlyRate = componentSum(d.RateComponents)
	}
	d.UpdatedAt = s.now()

	stored := d.Clone()
	replaced := false
	for i := range s.domains {
		if s.domains[i].ID == d.ID {
			s.domains[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		s.domains = append(s.domains, stored)
	}
	s.dropRateMemoLocked(d.ID)
	s.persist(ctx)
	return d, nil
}

// DeleteDomain removes a domain unless a quote still references it.
func (s *Store) DeleteDomain(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.quotes {
		if q.BusinessDomainID == id {
			return ErrDomainInUse
		}
	}
	kept := make([]entities.BusinessDomain, 0, len(s.domains))
	found := false
	for _, d := range s.domains {
		if d.ID == id {
			found = true
			continue
		}
		kept = append(kept, d)
	}
	if !found {
		return ErrDomainNotFound
	}
	s.domains = kept
	s.dropRateMemoLocked(id)
	s.persist(ctx)
	return nil
}

// resolveDomainLocked serves the memoized rate resolution. Safe under
// either lock mode of s.mu: the memo map has its own guard.
func (s *Store) resolveDomainLocked(id string) (*entities.BusinessDomain, bool) {
	var found *entities.BusinessDomain
	for i := range s.domains {
		if s.domains[i].ID == id {
			found = &s.domains[i]
			break
		}
	}
	if found == nil {
		return nil, false
	}

	sig := domainSignature(*found)

	s.memoMu.Lock()
	defer s.memoMu.Unlock()
	if entry, ok := s.rateMemo[id]; ok && entry.sig == sig {
		return entry.resolved, true
	}
	resolved := found.Clone()
	if len(resolved.RateComponents) > 0 {
		resolved.HourlyRate = componentSum(resolved.RateComponents)
	}
	s.rateMemo[id] = &rateMemoEntry{sig: sig, resolved: &resolved}
	return &resolved, true
}

func (s *Store) dropRateMemoLocked(id string) {
	s.memoMu.Lock()
	defer s.memoMu.Unlock()
	delete(s.rateMemo, id)
}

// componentSum adds the component values, coercing non-finite values to 0.
func componentSum(components []entities.RateComponent) float64 {
	var sum float64
	for _, c := range components {
		v := c.Value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		sum += v
	}
	return sum
}

// domainSignature hashes the fields that feed rate resolution, so editing
// a component (not just the parent domain) changes the signature.
func domainSignature(d entities.BusinessDomain) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	h.Write([]byte(d.Name))
	h.Write([]byte{0})
	writeFloat(d.HourlyRate)
	for _, c := range d.RateComponents {
		h.Write([]byte(c.ID))
		h.Write([]byte{0})
		h.Write([]byte(c.Label))
		h.Write([]byte{0})
		writeFloat(c.Value)
	}
	return h.Sum64()
}
