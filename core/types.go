package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Directed mirrors the graph default at creation time. For undirected edges
// From/To keep the orientation the edge was added with.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge payload; the answer engine stores moved quantities here.
	Weight int64

	// Directed reports whether the edge is one-way.
	Directed bool

	seq uint64 // creation sequence, drives deterministic ordering
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices and vertexOrder; muEdgeAdj protects edges,
// edgeOrder and the out/in adjacency. Lock order is muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed bool
	weighted bool

	// Storage
	nextEdgeID  uint64             // atomic edge ID generator
	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // insertion order of vertex IDs
	edges       map[string]*Edge   // edge ID → Edge
	edgeOrder   []string           // insertion order of edge IDs

	// out[v] lists edge IDs leaving v (and, for undirected edges, touching v).
	// in[v] lists edge IDs entering v.
	out map[string][]string
	in  map[string][]string
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph is undirected and unweighted. Self-loops and parallel
// edges are never accepted.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]string),
		in:       make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the default edge orientation of g.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are accepted.
func (g *Graph) Weighted() bool { return g.weighted }
