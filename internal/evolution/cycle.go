package evolution

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Cycle is a loop in the evolution edges: following parents from any of
// its species returns to that species.
//
// Cycles are warnings, not errors. PreEvolutions stops at the first
// repeated species, so a cycle only makes chains longer than intended.
type Cycle struct {
	Path    []int  `json:"path"` // e.g. [25, 172, 25]
	Message string `json:"message"`
}

// parentGraph maps species to parent, applying edges the way NewTree does.
type parentGraph map[int]int

// AnalyzeCycles reports every cycle in edges, smallest species first.
// An acyclic edge set returns an empty list.
func AnalyzeCycles(edges []Edge) []Cycle {
	graph := make(parentGraph, len(edges))
	for _, e := range edges {
		graph[e.Species] = e.Parent
	}

	cycles := []Cycle{}
	for _, scc := range tarjanSCC(graph) {
		if len(scc) > 1 || graph[scc[0]] == scc[0] {
			cycles = append(cycles, newCycle(scc, graph))
		}
	}
	slices.SortFunc(cycles, func(a, b Cycle) int { return a.Path[0] - b.Path[0] })
	return cycles
}

// tarjanSCC finds strongly connected components using Tarjan's algorithm.
// Nodes are visited in ascending order so the result is deterministic.
func tarjanSCC(graph parentGraph) [][]int {
	var (
		index   = 0
		stack   []int
		indices = make(map[int]int)
		lowlink = make(map[int]int)
		onStack = make(map[int]bool)
		sccs    [][]int
	)

	var strongConnect func(int)
	strongConnect = func(v int) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		if w, ok := graph[v]; ok {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		// v is the root of a component: pop it.
		if lowlink[v] == indices[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	nodes := make([]int, 0, len(graph))
	for species := range graph {
		nodes = append(nodes, species)
	}
	slices.Sort(nodes)
	for _, v := range nodes {
		if _, visited := indices[v]; !visited {
			strongConnect(v)
		}
	}
	return sccs
}

// newCycle walks parents from the smallest species of scc back to itself.
func newCycle(scc []int, graph parentGraph) Cycle {
	start := slices.Min(scc)
	path := []int{start}
	for next := graph[start]; ; next = graph[next] {
		path = append(path, next)
		if next == start {
			break
		}
	}

	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = strconv.Itoa(s)
	}
	msg := fmt.Sprintf("evolution cycle: %s", strings.Join(parts, " → "))
	if len(scc) == 1 {
		msg = fmt.Sprintf("species %d lists itself as its parent", start)
	}
	return Cycle{Path: path, Message: msg}
}
