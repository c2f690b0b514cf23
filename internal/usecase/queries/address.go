package queries

import (
	"context"
	"sync"

	"devion-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// Place is the resolved locality for a postal code.
type Place struct {
	City       string
	Region     string
	RegionCode string
}

// PostalResolver resolves a country/postal pair to a locality.
type PostalResolver interface {
	Resolve(ctx context.Context, country, postal string) (*Place, error)
}

type AddressView struct {
	City       string `json:"city"`
	Region     string `json:"region"`
	RegionCode string `json:"regionCode,omitempty"`
}

type AddressQueries interface {
	Lookup(ctx context.Context, sessionID uuid.UUID, country, postal string) (*AddressView, error)
}

type addressQueriesImpl struct {
	resolver        PostalResolver
	minPostalLength int

	mu          sync.Mutex
	generations map[uuid.UUID]uint64
}

func NewAddressQueries(resolver PostalResolver, minPostalLength int) AddressQueries {
	return &addressQueriesImpl{
		resolver:        resolver,
		minPostalLength: minPostalLength,
		generations:     map[uuid.UUID]uint64{},
	}
}

func (q *addressQueriesImpl) nextGeneration(sessionID uuid.UUID) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.generations[sessionID]++
	return q.generations[sessionID]
}

func (q *addressQueriesImpl) isCurrent(sessionID uuid.UUID, generation uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.generations[sessionID] == generation
}

// Lookup resolves city/region for a postal code. Each call supersedes the
// session's previous one; a response that arrives after a newer lookup was
// dispatched is discarded so out-of-order answers never overwrite fresher
// input.
func (q *addressQueriesImpl) Lookup(ctx context.Context, sessionID uuid.UUID, country, postal string) (*AddressView, error) {
	if len(postal) < q.minPostalLength {
		return nil, errs.ErrLookupNotFound
	}

	generation := q.nextGeneration(sessionID)

	place, err := q.resolver.Resolve(ctx, country, postal)
	if !q.isCurrent(sessionID, generation) {
		return nil, errs.ErrStaleLookup
	}
	if err != nil {
		return nil, err
	}

	return &AddressView{
		City:       place.City,
		Region:     place.Region,
		RegionCode: place.RegionCode,
	}, nil
}
