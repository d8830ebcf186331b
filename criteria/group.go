package criteria

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/tubeplan/flow"
	"github.com/katalvlaran/tubeplan/network"
)

// Group splits criteria into essential (failures are reported) and desirable
// (nice to have). Both kinds contribute their weighted score to the total.
type Group struct {
	Essential []Criterion
	Desirable []Criterion
}

// Evaluate scores a proposal against the current network.
//
// Essential criteria scoring ≤ 0 are collected into failed but still
// contribute, so infeasible proposals sink in the ranking instead of
// disappearing from it. A criterion that errors (missing costs, engine
// failure surfaced by a custom implementation) is treated as not satisfied:
// it contributes −weight and, when essential, is recorded as failed. One
// broken criterion therefore never aborts a batch evaluation.
func (g *Group) Evaluate(proposed, current *network.Network, costs Costs) (score float64, failed []Criterion) {
	for _, c := range g.Essential {
		v, err := c.Evaluate(proposed, current, costs)
		if err != nil {
			v = -c.Weight()
		}
		if v <= 0 {
			failed = append(failed, c)
		}
		score += v
	}
	for _, c := range g.Desirable {
		v, err := c.Evaluate(proposed, current, costs)
		if err != nil {
			v = -c.Weight()
		}
		score += v
	}

	return score, failed
}

// SetFlowOptions applies flow engine options (iteration budget, logging) to
// every performance criterion in the group. Cost criteria are unaffected.
func (g *Group) SetFlowOptions(o *flow.Options) {
	for _, c := range g.Essential {
		if p, ok := c.(*Performance); ok {
			p.SetFlowOptions(o)
		}
	}
	for _, c := range g.Desirable {
		if p, ok := c.(*Performance); ok {
			p.SetFlowOptions(o)
		}
	}
}

// groupFile is the on-disk shape of a criteria file, shared by the JSON and
// TOML formats.
type groupFile struct {
	Essential []criterionSpec `json:"essential" toml:"essential"`
	Desirable []criterionSpec `json:"desirable" toml:"desirable"`
}

// criterionSpec is one criteria-file entry. Cost entries carry costs+budget;
// performance entries carry sources+sinks (and optionally supplies+demands).
type criterionSpec struct {
	Description string    `json:"description" toml:"description"`
	Weight      *float64  `json:"weight" toml:"weight"`
	Costs       []string  `json:"costs" toml:"costs"`
	Budget      *float64  `json:"budget" toml:"budget"`
	Sources     []int     `json:"sources" toml:"sources"`
	Sinks       []int     `json:"sinks" toml:"sinks"`
	Supplies    []float64 `json:"supplies" toml:"supplies"`
	Demands     []float64 `json:"demands" toml:"demands"`
}

// build turns a file entry into a concrete Criterion, dispatching on which
// keys are present. Unrecognizable entries fail with ErrBadCriterion.
func (s criterionSpec) build() (Criterion, error) {
	weight := 1.0
	if s.Weight != nil {
		weight = *s.Weight
	}
	switch {
	case s.Costs != nil && s.Budget != nil:
		return NewCost(s.Costs, *s.Budget, s.Description, weight)
	case len(s.Sources) > 0 && len(s.Sinks) > 0:
		return NewPerformance(s.Sources, s.Sinks, s.Supplies, s.Demands, s.Description, weight)
	default:
		return nil, fmt.Errorf("criteria: entry is neither a cost nor a performance criterion: %w",
			ErrBadCriterion)
	}
}

// LoadGroup reads a criteria file. Files ending in .toml are decoded as
// TOML; everything else is decoded as JSON (the original .json/.cfile
// formats).
func LoadGroup(path string) (*Group, error) {
	var file groupFile
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &file); err != nil {
			return nil, fmt.Errorf("criteria: decode %s: %w", path, err)
		}
	} else {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("criteria: read %s: %w", path, err)
		}
		if err = json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("criteria: decode %s: %w", path, err)
		}
	}

	g := &Group{}
	for _, spec := range file.Essential {
		c, err := spec.build()
		if err != nil {
			return nil, err
		}
		g.Essential = append(g.Essential, c)
	}
	for _, spec := range file.Desirable {
		c, err := spec.build()
		if err != nil {
			return nil, err
		}
		g.Desirable = append(g.Desirable, c)
	}

	return g, nil
}

// Save writes the group as a JSON criteria file that LoadGroup can read
// back. Entries are serialized through Criterion.Spec.
func (g *Group) Save(path string) error {
	out := map[string][]map[string]any{
		"essential": {},
		"desirable": {},
	}
	for _, c := range g.Essential {
		out["essential"] = append(out["essential"], c.Spec())
	}
	for _, c := range g.Desirable {
		out["desirable"] = append(out["desirable"], c.Spec())
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("criteria: encode group: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("criteria: write %s: %w", path, err)
	}

	return nil
}
