package graph

// Graph is an adjacency-list graph with string vertex IDs.
//
// Vertices remember their insertion order and each adjacency list keeps
// its edges in the order AddEdge added them, so iteration is fully
// deterministic. Construct with New; the zero value has no maps.
type Graph struct {
	directed bool
	order    []string          // vertex IDs in insertion order
	adj      map[string][]Edge // out-edges per vertex, in add order
}

// New returns an empty graph, undirected unless WithDirected is given.
func New(opts ...Option) *Graph {
	g := &Graph{adj: make(map[string][]Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph was built with WithDirected.
func (g *Graph) Directed() bool {
	return g.directed
}

// AddVertex registers id. Adding an existing vertex is a no-op.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensureVertex(id)

	return nil
}

// AddEdge stores an edge from → to with weight 1, or the WithWeight
// override. Unknown endpoints are created on the fly. On an undirected
// graph the reverse direction is stored as well, so the edge shows up in
// both adjacency lists. Parallel edges and self-loops are permitted.
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	e := Edge{From: from, To: to, Weight: defaultWeight}
	for _, opt := range opts {
		opt(&e)
	}

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adj[from] = append(g.adj[from], e)
	if !g.directed {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Weight: e.Weight})
	}

	return nil
}

// HasVertex reports whether id was ever added.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// HasEdge reports whether at least one stored edge runs from → to.
func (g *Graph) HasEdge(from, to string) bool {
	for _, e := range g.adj[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// Vertices returns every vertex ID in insertion order.
// The returned slice is a copy.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.order...)
}

// Neighbors returns the out-edges of id in the order they were added.
// The returned slice is a copy. Unknown IDs yield ErrVertexNotFound.
//
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	edges, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return append([]Edge(nil), edges...), nil
}

// Edges returns every logical edge once, in vertex-insertion then
// edge-add order. On undirected graphs each stored mirror pair collapses
// to its first-seen direction; parallel edges keep their multiplicity.
func (g *Graph) Edges() []Edge {
	var out []Edge
	if g.directed {
		for _, id := range g.order {
			out = append(out, g.adj[id]...)
		}
		return out
	}

	// Undirected: each edge is stored once per direction. Count pending
	// forward sightings per (from, to, weight) key and cancel the mirror
	// when it arrives, so parallel edges keep their multiplicity.
	type key struct {
		from, to string
		weight   int64
	}
	pending := make(map[key]int)
	for _, id := range g.order {
		for _, e := range g.adj[id] {
			mirror := key{from: e.To, to: e.From, weight: e.Weight}
			if pending[mirror] > 0 {
				pending[mirror]--
				continue
			}
			pending[key{from: e.From, to: e.To, weight: e.Weight}]++
			out = append(out, e)
		}
	}

	return out
}

// NumVertices returns the number of vertices.
func (g *Graph) NumVertices() int {
	return len(g.order)
}

// NumEdges returns the number of logical edges, counting an undirected
// edge once.
func (g *Graph) NumEdges() int {
	total := 0
	for _, id := range g.order {
		total += len(g.adj[id])
	}
	if g.directed {
		return total
	}

	return total / 2
}

// ensureVertex registers id if new; id must be non-empty.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
}
