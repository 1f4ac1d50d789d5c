// Package dot encodes a galaxy snapshot as a Graphviz DOT document.
//
// Each cluster becomes a "cluster_" subgraph labelled with the cluster's
// label and holding its nodes; each link is written once as an undirected
// edge. Laying out or rasterizing the document (fdp, neato, ...) is left to
// the caller.
package dot

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	graphviz "github.com/emicklei/dot"

	"github.com/katalvlaran/galaxygen/galaxy"
)

// ErrNilWriter indicates Encode was given a nil writer.
var ErrNilWriter = errors.New("dot: nil writer")

// ErrUnknownNode indicates a link whose endpoint belongs to no cluster.
var ErrUnknownNode = errors.New("dot: link endpoint not in any cluster")

// Option customizes the document header.
type Option func(*options)

type options struct {
	name   string
	layout string
}

// WithName sets the graph identifier (default "galaxy").
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLayout records a preferred Graphviz engine as the graph "layout"
// attribute, e.g. "fdp". Empty means no attribute.
func WithLayout(engine string) Option {
	return func(o *options) { o.layout = engine }
}

// Build converts s into an undirected Graphviz graph. Nodes are labelled
// with their decimal IDs.
//
// Errors: ErrUnknownNode.
// Complexity: O(N + E).
func Build(s galaxy.Snapshot, opts ...Option) (*graphviz.Graph, error) {
	o := options{name: "galaxy"}
	for _, opt := range opts {
		opt(&o)
	}

	g := graphviz.NewGraph(graphviz.Undirected)
	g.ID(o.name)
	if o.layout != "" {
		g.Attr("layout", o.layout)
	}

	nodes := make(map[int]graphviz.Node, s.NodeCount())
	for _, c := range s.Clusters {
		sub := g.Subgraph(c.Label, graphviz.ClusterOption{})
		sub.Attr("label", c.Label)
		for _, id := range c.NodeIDs {
			nodes[id] = sub.Node(strconv.Itoa(id))
		}
	}
	for _, e := range s.Edges {
		a, okA := nodes[e.A]
		b, okB := nodes[e.B]
		if !okA || !okB {
			return nil, fmt.Errorf("dot: link %d-%d: %w", e.A, e.B, ErrUnknownNode)
		}
		g.Edge(a, b)
	}

	return g, nil
}

// Encode writes s to w in DOT syntax. Output is deterministic for a given
// snapshot.
//
// Errors: ErrNilWriter, ErrUnknownNode, or a write failure.
func Encode(w io.Writer, s galaxy.Snapshot, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	g, err := Build(s, opts...)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(w, g.String()); err != nil {
		return fmt.Errorf("dot: write: %w", err)
	}

	return nil
}
