// Package proposal provides named proposal networks and an explicit Registry
// for enforcing name uniqueness.
//
// A Registry is an ordinary value owned by the calling layer; there is no
// package-level registry and no global state, so independent registries can
// be constructed and discarded freely (in tests in particular).
package proposal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tubeplan/network"
)

var (
	// ErrEmptyName is returned for proposals without a name.
	ErrEmptyName = errors.New("proposal: empty proposal name")

	// ErrDuplicateName is returned by Registry.Add when a proposal with the
	// same name is already registered.
	ErrDuplicateName = errors.New("proposal: proposal name already in use")
)

// Proposal is a named proposed extension of the current network.
type Proposal struct {
	Name string
	Net  *network.Network
}

// New wraps an already-built network into a named proposal.
func New(name string, net *network.Network) (*Proposal, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if net == nil {
		return nil, fmt.Errorf("proposal: %q has no network: %w", name, network.ErrInvalidInput)
	}

	return &Proposal{Name: name, Net: net}, nil
}

// FromEdges builds a proposal network from (u, v, weight) triples, with the
// same semantics as network.NewFromEdges.
func FromEdges(name string, edges []network.Edge) (*Proposal, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	net, err := network.NewFromEdges(edges)
	if err != nil {
		return nil, fmt.Errorf("proposal: %q: %w", name, err)
	}

	return &Proposal{Name: name, Net: net}, nil
}

// String implements fmt.Stringer.
func (p *Proposal) String() string {
	return fmt.Sprintf("Proposal (%s) of %d nodes and %d edges",
		p.Name, p.Net.NumNodes(), p.Net.NumEdges())
}

// Registry maps proposal names to proposals, preserving insertion order.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	byName map[string]*Proposal
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Proposal)}
}

// Add registers p, failing with ErrDuplicateName when the name is taken.
func (r *Registry) Add(p *Proposal) error {
	if _, exists := r.byName[p.Name]; exists {
		return fmt.Errorf("proposal: %q: %w", p.Name, ErrDuplicateName)
	}
	r.byName[p.Name] = p
	r.order = append(r.order, p.Name)

	return nil
}

// Get looks a proposal up by name.
func (r *Registry) Get(name string) (*Proposal, bool) {
	p, ok := r.byName[name]

	return p, ok
}

// Names returns all registered names in insertion order.
func (r *Registry) Names() []string { return append([]string(nil), r.order...) }

// All returns all proposals in insertion order.
func (r *Registry) All() []*Proposal {
	out := make([]*Proposal, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}

	return out
}

// Len returns the number of registered proposals.
func (r *Registry) Len() int { return len(r.order) }
