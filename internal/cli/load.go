package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/tubeplan/criteria"
	"github.com/katalvlaran/tubeplan/network"
	"github.com/katalvlaran/tubeplan/proposal"
)

// loadNetwork reads a network from a CSV file. A file whose rows are all
// numeric and form a square matrix is treated as an adjacency matrix; any
// other numeric layout is treated as edge rows u,v[,w] with a default weight
// of 1.
func loadNetwork(path string) (*network.Network, error) {
	rows, err := readNumericCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cli: %s: no numeric rows: %w", path, network.ErrInvalidInput)
	}

	if isSquare(rows) {
		return network.New(rows)
	}

	edges := make([]network.Edge, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		w := 1.0
		if len(row) > 2 {
			w = row[2]
		}
		edges = append(edges, network.Edge{U: int(row[0]), V: int(row[1]), W: w})
	}

	return network.NewFromEdges(edges)
}

// proposalFile is the JSON list form: [{"name": ..., "edges": [[u,v,w], ...]}].
type proposalFile struct {
	Name  string      `json:"name"`
	Edges [][]float64 `json:"edges"`
}

// loadProposals reads proposals from a JSON file (either a list of
// name/edges objects or a mapping from name to edge lists) or from a CSV
// file with name,u,v[,w] rows. Rows that cannot be parsed (headers, blank
// lines) are skipped. Proposal order follows first appearance.
func loadProposals(path string) ([]*proposal.Proposal, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadProposalsJSON(path)
	}

	return loadProposalsCSV(path)
}

func loadProposalsJSON(path string) ([]*proposal.Proposal, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cli: read %s: %w", path, err)
	}

	// List form first; fall back to the mapping form.
	var list []proposalFile
	if err = json.Unmarshal(raw, &list); err != nil {
		var byName map[string][][]float64
		if err = json.Unmarshal(raw, &byName); err != nil {
			return nil, fmt.Errorf("cli: decode %s: %w", path, err)
		}
		// Mapping order is undefined in JSON; sort names for determinism.
		names := make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			list = append(list, proposalFile{Name: name, Edges: byName[name]})
		}
	}

	out := make([]*proposal.Proposal, 0, len(list))
	for _, entry := range list {
		edges := make([]network.Edge, 0, len(entry.Edges))
		for _, e := range entry.Edges {
			if len(e) < 2 {
				continue
			}
			w := 1.0
			if len(e) > 2 {
				w = e[2]
			}
			edges = append(edges, network.Edge{U: int(e[0]), V: int(e[1]), W: w})
		}
		p, err := proposal.FromEdges(entry.Name, edges)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

func loadProposalsCSV(path string) ([]*proposal.Proposal, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	edgesByName := make(map[string][]network.Edge)
	var order []string
	for _, row := range records {
		if len(row) < 3 {
			continue
		}
		name := strings.TrimSpace(row[0])
		u, errU := strconv.Atoi(strings.TrimSpace(row[1]))
		v, errV := strconv.Atoi(strings.TrimSpace(row[2]))
		if errU != nil || errV != nil {
			continue // header or malformed row
		}
		w := 1.0
		if len(row) > 3 {
			if parsed, errW := strconv.ParseFloat(strings.TrimSpace(row[3]), 64); errW == nil {
				w = parsed
			}
		}
		if _, seen := edgesByName[name]; !seen {
			order = append(order, name)
		}
		edgesByName[name] = append(edgesByName[name], network.Edge{U: u, V: v, W: w})
	}

	out := make([]*proposal.Proposal, 0, len(order))
	for _, name := range order {
		p, err := proposal.FromEdges(name, edgesByName[name])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// loadCosts reads a fixed-cost table from a JSON object or key,value CSV
// rows. CSV rows with an unparsable value are skipped.
func loadCosts(path string) (criteria.Costs, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cli: read %s: %w", path, err)
		}
		var costs criteria.Costs
		if err = json.Unmarshal(raw, &costs); err != nil {
			return nil, fmt.Errorf("cli: decode %s: %w", path, err)
		}

		return costs, nil
	}

	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	costs := make(criteria.Costs)
	for _, row := range records {
		if len(row) < 2 {
			continue
		}
		value, errV := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if errV != nil {
			continue
		}
		costs[strings.TrimSpace(row[0])] = value
	}

	return costs, nil
}

// readCSV reads all records, tolerating rows of varying length.
func readCSV(path string) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: open %s: %w", path, err)
	}
	defer fh.Close()

	r := csv.NewReader(fh)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cli: parse %s: %w", path, err)
	}

	return records, nil
}

// readNumericCSV parses every fully numeric row of a CSV file into floats,
// skipping rows with non-numeric fields (e.g. headers).
func readNumericCSV(path string) ([][]float64, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		numeric := len(record) > 0
		for _, field := range record {
			v, errF := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if errF != nil {
				numeric = false
				break
			}
			row = append(row, v)
		}
		if numeric {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// isSquare reports whether rows form an n×n matrix.
func isSquare(rows [][]float64) bool {
	n := len(rows)
	for _, row := range rows {
		if len(row) != n {
			return false
		}
	}

	return true
}
