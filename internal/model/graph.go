package model

// Role classifies a node's position in the causal graph.
type Role string

const (
	RoleTreatment  Role = "treatment"
	RoleMediator   Role = "mediator"
	RoleConfounder Role = "confounder"
	RoleOutcome    Role = "outcome"
)

// Valid returns true if the role is a recognized value.
func (r Role) Valid() bool {
	switch r {
	case RoleTreatment, RoleMediator, RoleConfounder, RoleOutcome:
		return true
	}
	return false
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// Node is one vertex of the causal graph. X and Y are layout coordinates
// for rendering; they carry no statistical meaning.
type Node struct {
	Name string  `json:"name"`
	Role Role    `json:"role"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Edge is one directed edge of the causal graph.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the causal DAG: a fixed node set with layout coordinates and a
// fixed directed edge set.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// CausalGraph returns the hard-coded DAG topology. The treatment sits left,
// mediators fan out in the middle, the outcome sits right, and the
// confounder hangs below the outcome.
func CausalGraph() Graph {
	return Graph{
		Nodes: []Node{
			{Name: NodeTreatment, Role: RoleTreatment, X: 0, Y: 0},
			{Name: NodeMediatorOS, Role: RoleMediator, X: 1, Y: 1.5},
			{Name: NodeMediatorOP, Role: RoleMediator, X: 1, Y: 0.5},
			{Name: NodeMediatorFM, Role: RoleMediator, X: 1, Y: -0.5},
			{Name: NodeMediatorFR, Role: RoleMediator, X: 1, Y: -1.5},
			{Name: NodeConfounder, Role: RoleConfounder, X: 2, Y: -1.5},
			{Name: NodeOutcome, Role: RoleOutcome, X: 2, Y: 0},
		},
		Edges: []Edge{
			{Source: NodeTreatment, Target: NodeMediatorOS},
			{Source: NodeTreatment, Target: NodeMediatorOP},
			{Source: NodeTreatment, Target: NodeMediatorFM},
			{Source: NodeTreatment, Target: NodeMediatorFR},
			{Source: NodeTreatment, Target: NodeOutcome},
			{Source: NodeMediatorOS, Target: NodeOutcome},
			{Source: NodeMediatorOP, Target: NodeOutcome},
			{Source: NodeMediatorFM, Target: NodeOutcome},
			{Source: NodeMediatorFR, Target: NodeOutcome},
			{Source: NodeConfounder, Target: NodeOutcome},
		},
	}
}

// EdgeCoefficient returns the coefficient attached to a given edge under c,
// and false if the edge is not part of the graph.
func EdgeCoefficient(c Coefficients, source, target string) (float64, bool) {
	if source == NodeTreatment && target == NodeOutcome {
		return c.Direct, true
	}
	if source == NodeConfounder && target == NodeOutcome {
		return c.Confounder, true
	}
	for _, m := range c.Mediators {
		if source == NodeTreatment && target == m.Name {
			return m.Activation, true
		}
		if source == m.Name && target == NodeOutcome {
			return m.Effect, true
		}
	}
	return 0, false
}
