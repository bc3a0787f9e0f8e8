package features

import (
	"fmt"
	"strings"
)

// Registry lists every feature in menu order
type Registry struct {
	factories []Factory
}

// NewRegistry creates a registry over factories
func NewRegistry(factories ...Factory) *Registry {
	return &Registry{factories: factories}
}

// Default returns the registry of all back-office features
func Default() *Registry {
	return NewRegistry(
		orders,
		inventory,
		employees,
		suppliers,
		customers,
		invoices,
		attendance,
		leaveRequests,
		performanceReviews,
		purchaseOrders,
		salesReports,
		categoryList,
		productList,
		foodList,
	)
}

// All returns the factories in menu order
func (r *Registry) All() []Factory {
	out := make([]Factory, len(r.factories))
	copy(out, r.factories)
	return out
}

// Lookup finds a feature by slug
func (r *Registry) Lookup(slug string) (Factory, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, f := range r.factories {
		if f.Slug() == slug {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, slug)
}

// Open creates a fresh section for slug
func (r *Registry) Open(slug string, rowsPerPage int) (Section, error) {
	f, err := r.Lookup(slug)
	if err != nil {
		return nil, err
	}
	return f.New(rowsPerPage), nil
}

// Slugs returns every feature slug in menu order
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.factories))
	for i, f := range r.factories {
		out[i] = f.Slug()
	}
	return out
}
