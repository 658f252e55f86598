package pokedex

// NamedValue is a reference to an upstream resource together with the
// display string chosen for it.
type NamedValue struct {
	ID          int
	Name        string
	DisplayName string
}

// Label returns the display name, or the canonical name when none was resolved
func (n *NamedValue) Label() string {
	if n == nil {
		return ""
	}
	if n.DisplayName != "" {
		return n.DisplayName
	}
	return n.Name
}

// SpeciesNode identifies one species inside an evolution tree
type SpeciesNode struct {
	ID          int
	Name        string
	DisplayName string
}

// Label returns the display name, or the canonical name when none was resolved
func (s SpeciesNode) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}

// Requirement is one sparse set of conditions guarding a transition.
// Zero values mean the condition is absent.
type Requirement struct {
	MinLevel     int
	MinHappiness int
	MinBeauty    int
	MinAffection int

	Item     *NamedValue
	HeldItem *NamedValue
	Trigger  *NamedValue

	// TimeOfDay is "day", "night" or any other raw upstream value
	TimeOfDay string

	Location      *NamedValue
	KnownMove     *NamedValue
	KnownMoveType *NamedValue
	PartySpecies  *NamedValue
	PartyType     *NamedValue

	NeedsOverworldRain bool
}

// Transition is an edge to the next stage. Any one of Requirements is
// enough to satisfy it.
type Transition struct {
	Requirements []Requirement
	// Text is every non-empty requirement rendered and joined for display
	Text   string
	Target *EvolutionTree
}

// EvolutionTree is a species and the transitions leaving it, in upstream order
type EvolutionTree struct {
	Species     SpeciesNode
	Transitions []Transition
}

// Walk visits every node depth-first, parents before children, siblings in order.
func (t *EvolutionTree) Walk(visit func(node *EvolutionTree, depth int)) {
	t.walk(visit, 0)
}

func (t *EvolutionTree) walk(visit func(node *EvolutionTree, depth int), depth int) {
	if t == nil {
		return
	}
	visit(t, depth)
	for _, transition := range t.Transitions {
		transition.Target.walk(visit, depth+1)
	}
}

// Depth returns the number of stages on the longest path
func (t *EvolutionTree) Depth() int {
	maxDepth := 0
	t.Walk(func(_ *EvolutionTree, depth int) {
		if depth+1 > maxDepth {
			maxDepth = depth + 1
		}
	})
	return maxDepth
}
