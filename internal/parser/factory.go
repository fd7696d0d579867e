package parser

import (
	"sort"

	"sellersuite/internal/domain"
	"sellersuite/internal/port"
)

// ParserFactory creates the TransactionParser for a portal.
type ParserFactory func() port.TransactionParser

// registry of portal strategies, populated by init() in each strategy file
// or explicitly via RegisterPortal.
var portals = map[domain.Portal]ParserFactory{}

// RegisterPortal registers a parsing strategy for a portal tag.
func RegisterPortal(portal domain.Portal, factory ParserFactory) {
	portals[portal] = factory
}

// NewTransactionParser returns the strategy for a declared portal. Tags are case-insensitive.
func NewTransactionParser(portal string) (port.TransactionParser, error) {
	factory, ok := portals[domain.NormalizePortal(portal)]
	if !ok {
		return nil, &UnsupportedPortalError{Portal: portal, Supported: SupportedPortals()}
	}
	return factory(), nil
}

// SupportedPortals lists every registered portal tag, sorted.
func SupportedPortals() []string {
	names := make([]string, 0, len(portals))
	for p := range portals {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// Registry resolves portal strategies, optionally restricted to an allow-list of portal tags.
type Registry struct {
	allowed map[domain.Portal]bool
}

// NewRegistry creates a Registry. An empty allow-list accepts every registered portal.
func NewRegistry(allowed []string) *Registry {
	r := &Registry{}
	if len(allowed) > 0 {
		r.allowed = make(map[domain.Portal]bool, len(allowed))
		for _, p := range allowed {
			r.allowed[domain.NormalizePortal(p)] = true
		}
	}
	return r
}

// NewTransactionParser implements port.ParserRegistry.
func (r *Registry) NewTransactionParser(portal string) (port.TransactionParser, error) {
	if r.allowed != nil && !r.allowed[domain.NormalizePortal(portal)] {
		return nil, &UnsupportedPortalError{Portal: portal, Supported: r.SupportedPortals()}
	}
	p, err := NewTransactionParser(portal)
	if err != nil {
		return nil, &UnsupportedPortalError{Portal: portal, Supported: r.SupportedPortals()}
	}
	return p, nil
}

// SupportedPortals implements port.ParserRegistry.
func (r *Registry) SupportedPortals() []string {
	all := SupportedPortals()
	if r.allowed == nil {
		return all
	}
	names := make([]string, 0, len(all))
	for _, p := range all {
		if r.allowed[domain.Portal(p)] {
			names = append(names, p)
		}
	}
	return names
}
