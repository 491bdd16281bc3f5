package frame

// Counts maps a node identifier to the number of member ends touching it.
// Keys are raw identifiers, so references to missing nodes are counted too.
type Counts map[string]int

// CountConnections tallies member ends per node identifier.
// A member whose start and end are the same adds two to that key.
func CountConnections(members []Member) Counts {
	c := make(Counts, len(members)+1)
	for _, m := range members {
		c[m.Start]++
		c[m.End]++
	}
	return c
}

// IsEndpoint reports whether exactly one member touches id.
func (c Counts) IsEndpoint(id string) bool {
	return c[id] == 1
}

// Endpoints returns the identifiers with a count of exactly one, in the
// order they first appear in members.
func (c Counts) Endpoints(members []Member) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range members {
		for _, id := range [2]string{m.Start, m.End} {
			if seen[id] || !c.IsEndpoint(id) {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Total returns the sum of all counts. It is always twice the number of
// members that were counted.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
