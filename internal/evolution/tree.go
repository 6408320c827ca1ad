// Package evolution answers which species a record could have been before
// it evolved. It is the default pre-evolution service used by the engine;
// callers with a fuller data set can supply their own.
package evolution

import "github.com/roach88/giftcheck/internal/pkm"

// NoCeiling disables the species ceiling.
const NoCeiling = 0

// MaxSpeciesGen3 is the highest species number that exists in generation 3.
const MaxSpeciesGen3 = 386

// DexLevel is one step of a pre-evolution chain: a species and the highest
// level the record could have had as that species.
type DexLevel struct {
	Species int `json:"species"`
	Level   int `json:"level"`
}

// Edge records that Species evolves from Parent. MinLevel is the level at
// which a level-up evolution happens; zero means the evolution is not
// level-gated.
type Edge struct {
	Species  int `json:"species"`
	Parent   int `json:"parent"`
	MinLevel int `json:"min_level"`
}

// Tree is an in-memory pre-evolution table.
type Tree struct {
	parents map[int]Edge
}

// NewTree builds a tree from edges. A later edge for the same species
// replaces an earlier one.
func NewTree(edges []Edge) *Tree {
	t := &Tree{parents: make(map[int]Edge, len(edges))}
	for _, e := range edges {
		t.parents[e.Species] = e
	}
	return t
}

// Edges returns the number of distinct species with a known parent.
func (t *Tree) Edges() int {
	if t == nil {
		return 0
	}
	return len(t.parents)
}

// PreEvolutions returns the chain from the record's current species back
// to its earliest ancestor. Species above maxSpecies are left out of the
// result but still walked through; pass NoCeiling for no limit.
//
// A parent is unreachable when the record's level is below the level its
// evolution requires.
func (t *Tree) PreEvolutions(rec *pkm.Record, maxSpecies int) []DexLevel {
	level := rec.Level
	if level == 0 {
		level = rec.MetLevel
	}

	var chain []DexLevel
	seen := make(map[int]bool)
	species := rec.Species
	for !seen[species] {
		seen[species] = true
		if maxSpecies == NoCeiling || species <= maxSpecies {
			chain = append(chain, DexLevel{Species: species, Level: level})
		}

		if t == nil {
			break
		}
		edge, ok := t.parents[species]
		if !ok || edge.MinLevel > level {
			break
		}
		species = edge.Parent
	}
	return chain
}
