// Package validate checks the dependency annotations of an IR graph.
//
// Two rules are enforced:
//
//   - every dependency names an atomic that exists somewhere in the graph
//   - the dependency relation is acyclic
//
// All violations are collected into a single [xerrors.List] rather than
// stopping at the first one. A graph that passes is wrapped in
// [Validated], which downstream consumers require as proof that the
// checks ran.
package validate

import (
	"strings"

	"github.com/parlab/parlay/pkg/ir"
	"github.com/parlab/parlay/pkg/xerrors"
)

// Validated is an IR graph whose dependency annotations were checked.
// The zero value carries an empty graph; non-trivial values only come
// out of [Validate].
type Validated struct {
	graph ir.Graph
}

// Graph returns the underlying IR graph.
func (v Validated) Graph() ir.Graph {
	return v.graph
}

// Validate checks g and returns it wrapped as [Validated]. On failure
// the error is an [xerrors.List] holding one entry per violation, all
// missing-dependency findings first, then one entry per distinct cycle.
//
// Atomics sharing a name are collapsed: the last occurrence's deps win,
// matching the flattening the execution graph applies.
func Validate(g ir.Graph) (Validated, error) {
	names, info := flatten(g)

	var errs xerrors.List
	errs = append(errs, checkMissing(names, info)...)
	errs = append(errs, checkCircular(names, info)...)
	if len(errs) > 0 {
		return Validated{}, errs
	}
	return Validated{graph: g}, nil
}

type nodeInfo struct {
	deps []string
}

// flatten collapses the graph into per-name dependency info. Names keep
// first-encounter order so findings are reported deterministically.
func flatten(g ir.Graph) ([]string, map[string]nodeInfo) {
	info := make(map[string]nodeInfo)
	var names []string
	for _, a := range g.Atomics() {
		if _, ok := info[a.Name]; !ok {
			names = append(names, a.Name)
		}
		info[a.Name] = nodeInfo{deps: a.Deps}
	}
	return names, info
}

func checkMissing(names []string, info map[string]nodeInfo) xerrors.List {
	var errs xerrors.List
	for _, name := range names {
		for _, dep := range info[name].deps {
			if _, ok := info[dep]; !ok {
				errs = append(errs, xerrors.New(xerrors.CodeMissingDependency,
					"Node '%s' depends on '%s' which doesn't exist", name, dep))
			}
		}
	}
	return errs
}

// checkCircular runs a DFS over the dependency relation and reports one
// finding per cycle. The cycle path repeats the entry name at both ends,
// e.g. "s0 -> s1 -> s2 -> s0".
func checkCircular(names []string, info map[string]nodeInfo) xerrors.List {
	var errs xerrors.List
	d := &cycleDetector{
		info:     info,
		visited:  make(map[string]bool),
		recStack: make(map[string]bool),
	}
	for _, name := range names {
		if d.visited[name] {
			continue
		}
		// A cycle return leaves the path mid-descent; each root starts
		// from an empty one.
		d.path = d.path[:0]
		if cycle := d.detect(name); cycle != nil {
			errs = append(errs, xerrors.New(xerrors.CodeCircularDependency,
				"Circular dependency: %s", strings.Join(cycle, " -> ")))
		}
	}
	return errs
}

type cycleDetector struct {
	info     map[string]nodeInfo
	visited  map[string]bool
	recStack map[string]bool
	path     []string
}

func (d *cycleDetector) detect(name string) []string {
	d.visited[name] = true
	d.recStack[name] = true
	d.path = append(d.path, name)

	for _, dep := range d.info[name].deps {
		if !d.visited[dep] {
			if cycle := d.detect(dep); cycle != nil {
				return cycle
			}
		} else if d.recStack[dep] {
			var cycle []string
			for i, p := range d.path {
				if p == dep {
					cycle = append(cycle, d.path[i:]...)
					break
				}
			}
			return append(cycle, dep)
		}
	}

	d.recStack[name] = false
	d.path = d.path[:len(d.path)-1]
	return nil
}
