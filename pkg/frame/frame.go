// Package frame models a structural frame: nodes with 3D positions and the
// members that connect them.
//
// A [Frame] is built once from decoded rows and never mutated afterwards.
// Members keep their raw node identifiers; resolution against the node index
// happens on demand, so a member that references a missing node stays in the
// dataset and is simply skipped by consumers that need geometry.
package frame

import (
	"fmt"

	"github.com/rashika27/frameview/pkg/geom"
)

// Node is a frame joint.
type Node struct {
	ID       string
	Position geom.Vec
}

// Member connects two nodes by identifier.
type Member struct {
	// ID is derived from Start and End; see [MemberID].
	ID    string
	Start string
	End   string
}

// Frame is an immutable dataset of members and nodes.
type Frame struct {
	members []Member
	nodes   []Node
	index   map[string]int

	// Duplicates lists node IDs that appeared more than once. The first
	// occurrence is kept.
	Duplicates []string
}

// MemberID returns the identifier for the n-th (1-based) member spanning
// start and end. [New] picks n so that IDs within a frame are unique.
func MemberID(start, end string, n int) string {
	id := start + "->" + end
	if n > 1 {
		id = fmt.Sprintf("%s#%d", id, n)
	}
	return id
}

// New builds a frame from raw member endpoints and nodes. Member IDs are
// assigned here; any ID already set on the input is ignored.
func New(members []Member, nodes []Node) *Frame {
	f := &Frame{
		members: make([]Member, 0, len(members)),
		nodes:   make([]Node, 0, len(nodes)),
		index:   make(map[string]int, len(nodes)),
	}

	for _, n := range nodes {
		if _, ok := f.index[n.ID]; ok {
			f.Duplicates = append(f.Duplicates, n.ID)
			continue
		}
		f.index[n.ID] = len(f.nodes)
		f.nodes = append(f.nodes, n)
	}

	// A raw identifier may itself end in "#n", so the counter keeps
	// climbing until the generated ID is unused.
	taken := make(map[string]bool, len(members))
	next := make(map[string]int, len(members))
	for _, m := range members {
		pair := m.Start + "->" + m.End
		n := next[pair] + 1
		id := MemberID(m.Start, m.End, n)
		for taken[id] {
			n++
			id = MemberID(m.Start, m.End, n)
		}
		next[pair] = n
		taken[id] = true
		f.members = append(f.members, Member{ID: id, Start: m.Start, End: m.End})
	}
	return f
}

// Empty returns a frame with no members and no nodes.
func Empty() *Frame {
	return New(nil, nil)
}

// Members returns the members in input order.
// The returned slice must not be modified.
func (f *Frame) Members() []Member { return f.members }

// Nodes returns the unique nodes in input order.
// The returned slice must not be modified.
func (f *Frame) Nodes() []Node { return f.nodes }

// MemberCount returns the number of members.
func (f *Frame) MemberCount() int { return len(f.members) }

// NodeCount returns the number of unique nodes.
func (f *Frame) NodeCount() int { return len(f.nodes) }

// IsEmpty reports whether the frame has neither members nor nodes.
func (f *Frame) IsEmpty() bool { return len(f.members) == 0 && len(f.nodes) == 0 }

// Node looks up a node by identifier.
func (f *Frame) Node(id string) (Node, bool) {
	i, ok := f.index[id]
	if !ok {
		return Node{}, false
	}
	return f.nodes[i], true
}

// Resolve returns both nodes a member references. ok is false when either
// identifier has no matching node.
func (f *Frame) Resolve(m Member) (start, end Node, ok bool) {
	start, okStart := f.Node(m.Start)
	end, okEnd := f.Node(m.End)
	return start, end, okStart && okEnd
}

// Positions returns every node position in node order.
func (f *Frame) Positions() []geom.Vec {
	out := make([]geom.Vec, len(f.nodes))
	for i, n := range f.nodes {
		out[i] = n.Position
	}
	return out
}
