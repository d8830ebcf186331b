package criteria

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/tubeplan/network"
)

// Cost component names accepted by NewCost. "total" selects all three.
const (
	CostInfra = "infra" // building or extending track
	CostStaff = "staff" // hiring for newly connected stations
	CostVehic = "vehic" // rolling stock for the longest proposed edge
	CostTotal = "total"
)

// trainsPerDay scales the vehicle cost: one train per hour in each direction.
const trainsPerDay = 24

// Cost scores a proposal by how far its estimated cost stays under a budget:
// score = weight × (budget − selected cost components).
type Cost struct {
	meta
	costs  []string // deduplicated, sorted, lower-case component names
	budget float64
}

// NewCost builds a cost criterion for the given component subset.
// Components must be drawn from {infra, staff, vehic, total}; the list is
// lower-cased, deduplicated and sorted. Returns ErrBadCriterion for an empty
// or unknown component list or a non-positive weight.
func NewCost(costs []string, budget float64, description string, weight float64) (*Cost, error) {
	m, err := newMeta(description, weight)
	if err != nil {
		return nil, err
	}
	if len(costs) == 0 {
		return nil, fmt.Errorf("criteria: no cost components given: %w", ErrBadCriterion)
	}
	seen := make(map[string]bool, len(costs))
	cleaned := make([]string, 0, len(costs))
	for _, c := range costs {
		name := strings.ToLower(c)
		switch name {
		case CostInfra, CostStaff, CostVehic, CostTotal:
		default:
			return nil, fmt.Errorf("criteria: unknown cost component %q: %w", c, ErrBadCriterion)
		}
		if !seen[name] {
			seen[name] = true
			cleaned = append(cleaned, name)
		}
	}
	sort.Strings(cleaned)

	return &Cost{meta: m, costs: cleaned, budget: budget}, nil
}

// Evaluate returns weight × (budget − cost). Requires a fixed-cost table
// with the "new", "ext", "hire" and "train" entries (ErrMissingCosts).
func (c *Cost) Evaluate(proposed, current *network.Network, costs Costs) (float64, error) {
	if err := costs.validate(); err != nil {
		return 0, err
	}

	cur, prop, size := paddedMatrices(current, proposed)

	// Infrastructure: every proposed edge is either brand new or an
	// extension of an existing one.
	var addedEdges, existingEdges int
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			if prop[i][j] <= 0 {
				continue
			}
			if cur[i][j] > 0 {
				existingEdges++
			} else {
				addedEdges++
			}
		}
	}
	infra := float64(addedEdges)*costs["new"] + float64(existingEdges)*costs["ext"]

	// Staffing: sub-linear in the number of new edges at each station.
	var staff float64
	for i := 0; i < size; i++ {
		var newEdges int
		for j := 0; j < size; j++ {
			if i != j && prop[i][j] > 0 && cur[i][j] == 0 {
				newEdges++
			}
		}
		if newEdges > 0 {
			staff += costs["hire"] * math.Sqrt(float64(newEdges))
		}
	}

	// Vehicles: sized by the heaviest proposed edge.
	var maxW float64
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if prop[i][j] > maxW {
				maxW = prop[i][j]
			}
		}
	}
	vehic := trainsPerDay * maxW * costs["train"]

	var total float64
	if c.has(CostTotal) {
		total = infra + staff + vehic
	} else {
		if c.has(CostInfra) {
			total += infra
		}
		if c.has(CostStaff) {
			total += staff
		}
		if c.has(CostVehic) {
			total += vehic
		}
	}

	return c.weight * (c.budget - total), nil
}

// has reports whether component name was selected.
func (c *Cost) has(name string) bool {
	for _, v := range c.costs {
		if v == name {
			return true
		}
	}

	return false
}

// Spec returns the criteria-file form of the criterion.
func (c *Cost) Spec() map[string]any {
	return map[string]any{
		"description": c.description,
		"weight":      c.weight,
		"costs":       append([]string(nil), c.costs...),
		"budget":      c.budget,
	}
}
