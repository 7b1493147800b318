package forkjoin

import "github.com/parlab/parlay/pkg/ir"

// Bounds on the structuring walk. Malformed input can form goto cycles or
// deeply nested fork chains; on overflow the walk returns the partial
// region built so far rather than an error.
const (
	maxStructureDepth = 64
	maxBranchSteps    = 4096
)

// region is the transient shape recovered from the CFG before it is
// reduced to IR. The set of implementations is closed: atomRegion,
// seqRegion, and parRegion.
type region interface {
	regionNode()
}

type atomRegion struct {
	name string
}

type seqRegion struct {
	regions []region
}

type parRegion struct {
	branches []region
}

func (atomRegion) regionNode() {}
func (seqRegion) regionNode()  {}
func (parRegion) regionNode()  {}

// newSeq builds a reduced sequence: nested sequences are flattened and
// empty sub-regions dropped, so a sequence never survives construction
// with zero or one child.
func newSeq(regions []region) region {
	var flat []region
	for _, r := range regions {
		switch r := r.(type) {
		case seqRegion:
			for _, sub := range r.regions {
				if !emptyRegion(sub) {
					flat = append(flat, sub)
				}
			}
		default:
			if !emptyRegion(r) {
				flat = append(flat, r)
			}
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return seqRegion{regions: flat}
}

func emptyRegion(r region) bool {
	switch r := r.(type) {
	case seqRegion:
		return len(r.regions) == 0
	case parRegion:
		return len(r.branches) == 0
	}
	return false
}

// ToIR recovers the nested parallel/sequential structure of the program.
//
// The statement list is turned into a CFG and structured by recursive
// descent from statement 0 with a shared visited set. Atomic statements
// become atomic regions, join and goto are transparent pass-throughs, and
// fork opens a parallel region whose branches are walked independently
// until they converge. Convergence is discovered implicitly: a branch
// ends where it reaches a join instruction or a statement another path
// already claimed.
//
// Malformed input - unresolved labels, unreachable statements, goto
// cycles - never produces an error; the walk degrades to a best-effort
// partial tree. Dependency annotations and terminal markers cannot exist
// in this notation, so every recovered atomic has empty deps and terminal
// unset.
func ToIR(g Graph) ir.Graph {
	s := &structurer{
		cfg:     buildCFG(g),
		visited: make(map[int]bool),
	}
	root := s.walk(0, 0)
	switch n := regionToIR(root).(type) {
	case ir.Sequence:
		return ir.Graph{Nodes: n.Children}
	default:
		return ir.Graph{Nodes: []ir.Node{n}}
	}
}

type structurer struct {
	cfg     *cfg
	visited map[int]bool // globally claimed statement indices
}

// walk structures the single-threaded statement path starting at start.
// It stops at dead ends, at statements already claimed, or when the step
// bound runs out.
func (s *structurer) walk(start, depth int) region {
	var regions []region
	current := start

	for steps := 0; steps < maxBranchSteps; steps++ {
		if s.visited[current] {
			break
		}
		node := s.cfg.node(current)
		if node == nil {
			break
		}

		switch node := node.(type) {
		case Atomic:
			s.visited[current] = true
			regions = append(regions, atomRegion{name: node.Name})
			current = s.cfg.next(current)
		case Join, Goto:
			// Transparent: no region, follow the edge. A goto to "end"
			// or an unresolved label has no edge and ends the path.
			s.visited[current] = true
			current = s.cfg.next(current)
		case Fork:
			par, conv := s.fork(current, s.visited, depth)
			if !emptyRegion(par) {
				regions = append(regions, par)
			}
			if conv < 0 {
				return newSeq(regions)
			}
			current = conv
		}
		if current < 0 {
			break
		}
	}
	return newSeq(regions)
}

// fork structures the parallel region opened by the fork at idx. The
// branch entry points are the fall-through continuation and every
// resolved target of the run of consecutive fork statements beginning at
// idx. Each branch is built with a local visited set that is merged into
// the global one only once the branch is complete, so sibling branches
// never block each other prematurely.
//
// The second result is the shared convergence point of the branches, or
// -1 when none was found.
func (s *structurer) fork(idx int, mark map[int]bool, depth int) (region, int) {
	var targets []int
	cur := idx
	for {
		f, ok := s.cfg.node(cur).(Fork)
		if !ok {
			break
		}
		mark[cur] = true
		if target, resolved := s.cfg.labels[f.Target]; resolved {
			targets = append(targets, target)
		}
		cur++
	}
	entries := append([]int{cur}, targets...)

	var branches []region
	conv := -1
	for _, entry := range entries {
		local := make(map[int]bool)
		branch, c := s.branch(entry, local, depth+1)
		for i := range local {
			s.visited[i] = true
		}
		if !emptyRegion(branch) {
			branches = append(branches, branch)
		}
		if conv < 0 && c >= 0 {
			conv = c
		}
	}
	return parRegion{branches: branches}, conv
}

// branch follows one forked control path until it converges or dies.
// Convergence is a join instruction or a globally claimed statement;
// death is a terminal goto, a dead end, a local cycle, or an exhausted
// depth or step bound. The returned index is the convergence point, or -1.
func (s *structurer) branch(start int, local map[int]bool, depth int) (region, int) {
	if depth > maxStructureDepth {
		return seqRegion{}, -1
	}

	var regions []region
	current := start
	conv := -1

	for steps := 0; steps < maxBranchSteps; steps++ {
		if current < 0 {
			break
		}
		if s.visited[current] || s.cfg.isJoin(current) {
			conv = current
			break
		}
		if local[current] {
			break
		}
		node := s.cfg.node(current)
		if node == nil {
			break
		}

		switch node := node.(type) {
		case Atomic:
			local[current] = true
			regions = append(regions, atomRegion{name: node.Name})
			current = s.cfg.next(current)
		case Goto:
			local[current] = true
			current = s.cfg.next(current)
		case Fork:
			par, c := s.fork(current, local, depth+1)
			if !emptyRegion(par) {
				regions = append(regions, par)
			}
			if c < 0 {
				return newSeq(regions), -1
			}
			if s.cfg.isJoin(c) && !s.visited[c] {
				// Nested convergence belongs to the nested parallel;
				// consume its join and resume behind it.
				local[c] = true
				current = s.cfg.next(c)
			} else {
				current = c
			}
		case Join:
			// Handled by the convergence check above.
			conv = current
			return newSeq(regions), conv
		}
	}
	return newSeq(regions), conv
}

// regionToIR reduces a region tree to IR nodes: atomics map 1:1, reduced
// sequences become IR sequences, and a parallel region becomes an IR
// parallel of its mapped branches.
func regionToIR(r region) ir.Node {
	switch r := r.(type) {
	case atomRegion:
		return ir.Atomic{Name: r.name}
	case seqRegion:
		children := make([]ir.Node, len(r.regions))
		for i, sub := range r.regions {
			children[i] = regionToIR(sub)
		}
		return ir.Sequence{Children: children}
	case parRegion:
		branches := make([]ir.Node, len(r.branches))
		for i, b := range r.branches {
			branches[i] = regionToIR(b)
		}
		return ir.Parallel{Branches: branches}
	}
	return ir.Sequence{}
}
