// Package visualization renders the causal graph in various output formats.
package visualization

import (
	"fmt"
	"strings"

	"github.com/kmills/causalpath/internal/model"
)

// Format specifies the output format for graph rendering.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

// nodeColors maps node roles to DOT colors.
var nodeColors = map[model.Role]string{
	model.RoleTreatment:  "steelblue",
	model.RoleMediator:   "mediumseagreen",
	model.RoleConfounder: "goldenrod",
	model.RoleOutcome:    "tomato",
}

// RenderDOT produces a Graphviz DOT representation of the causal graph,
// with edges labeled by their coefficients under c.
func RenderDOT(g model.Graph, c model.Coefficients) (string, error) {
	if err := c.Validate(); err != nil {
		return "", fmt.Errorf("invalid coefficients: %w", err)
	}

	var b strings.Builder
	b.WriteString("digraph causalpath {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	for _, node := range g.Nodes {
		color := nodeColors[node.Role]
		if color == "" {
			color = "lightgray"
		}
		b.WriteString(fmt.Sprintf("  %q [fillcolor=%q, tooltip=%q, pos=\"%g,%g!\"];\n",
			node.Name, color, node.Role.String(), node.X, node.Y))
	}
	b.WriteString("\n")

	for _, edge := range g.Edges {
		coef, ok := model.EdgeCoefficient(c, edge.Source, edge.Target)
		if !ok {
			return "", fmt.Errorf("edge %s->%s has no coefficient", edge.Source, edge.Target)
		}
		b.WriteString(fmt.Sprintf("  %q -> %q [label=\"%.2f\"];\n", edge.Source, edge.Target, coef))
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// RenderJSON produces a JSON-ready graph representation with nodes and
// edges arrays, each edge carrying its coefficient under c.
func RenderJSON(g model.Graph, c model.Coefficients) (map[string]interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coefficients: %w", err)
	}

	jsonNodes := make([]map[string]interface{}, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		jsonNodes = append(jsonNodes, map[string]interface{}{
			"name": node.Name,
			"role": node.Role.String(),
			"x":    node.X,
			"y":    node.Y,
		})
	}

	jsonEdges := make([]map[string]interface{}, 0, len(g.Edges))
	for _, edge := range g.Edges {
		coef, ok := model.EdgeCoefficient(c, edge.Source, edge.Target)
		if !ok {
			return nil, fmt.Errorf("edge %s->%s has no coefficient", edge.Source, edge.Target)
		}
		jsonEdges = append(jsonEdges, map[string]interface{}{
			"source":      edge.Source,
			"target":      edge.Target,
			"coefficient": coef,
		})
	}

	return map[string]interface{}{
		"nodes": jsonNodes,
		"edges": jsonEdges,
	}, nil
}
