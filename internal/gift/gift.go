package gift

import (
	"fmt"
	"iter"

	"github.com/roach88/giftcheck/internal/pkm"
)

// Gift is the accessor surface shared by every template variant.
// The set of implementations is closed.
type Gift interface {
	// Generation is the variant tag (3 through 7).
	Generation() int

	// Info returns a copy of the fields every variant carries.
	Info() Header

	sealed()
}

// Header holds the fields common to all variants.
type Header struct {
	CardID  int    `json:"card_id"`
	Title   string `json:"title"`
	Species int    `json:"species"`
	Form    int    `json:"form"`
	IsEgg   bool   `json:"is_egg"`
}

// Info returns a copy of the header.
func (h Header) Info() Header {
	return h
}

// Key identifies a template for display and lookups, e.g. "gen6/0525".
func Key(g Gift) string {
	return fmt.Sprintf("gen%d/%04d", g.Generation(), g.Info().CardID)
}

// Receivable reports whether a card restricted to games can be received
// on version v. A card with no recorded compatibility is unrestricted.
func Receivable(games pkm.VersionSet, v pkm.Version) bool {
	return games.IsAny() || games.Contains(v)
}

// Catalog holds the templates of every generation in catalog order.
// A nil slice means the generation's catalog was never loaded.
type Catalog struct {
	Gen3 []*WC3 `json:"gen3,omitempty"`
	Gen4 []*PCD `json:"gen4,omitempty"`
	Gen5 []*PGF `json:"gen5,omitempty"`
	Gen6 []*WC6 `json:"gen6,omitempty"`
	Gen7 []*WC7 `json:"gen7,omitempty"`
}

// Len returns the number of templates across all generations.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Gen3) + len(c.Gen4) + len(c.Gen5) + len(c.Gen6) + len(c.Gen7)
}

// Add appends g to its generation's slice.
func (c *Catalog) Add(g Gift) {
	switch v := g.(type) {
	case *WC3:
		c.Gen3 = append(c.Gen3, v)
	case *PCD:
		c.Gen4 = append(c.Gen4, v)
	case *PGF:
		c.Gen5 = append(c.Gen5, v)
	case *WC6:
		c.Gen6 = append(c.Gen6, v)
	case *WC7:
		c.Gen7 = append(c.Gen7, v)
	}
}

// Merge appends every template of other after the receiver's own. A
// generation present in other stays present in c even when it is empty.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	c.Gen3 = mergeGeneration(c.Gen3, other.Gen3)
	c.Gen4 = mergeGeneration(c.Gen4, other.Gen4)
	c.Gen5 = mergeGeneration(c.Gen5, other.Gen5)
	c.Gen6 = mergeGeneration(c.Gen6, other.Gen6)
	c.Gen7 = mergeGeneration(c.Gen7, other.Gen7)
}

func mergeGeneration[T Gift](dst, src []T) []T {
	if dst == nil && src != nil {
		dst = make([]T, 0, len(src))
	}
	return append(dst, src...)
}

// All yields every template, generation by generation, in catalog order.
func (c *Catalog) All() iter.Seq[Gift] {
	return func(yield func(Gift) bool) {
		if c == nil {
			return
		}
		for _, g := range c.Gen3 {
			if !yield(g) {
				return
			}
		}
		for _, g := range c.Gen4 {
			if !yield(g) {
				return
			}
		}
		for _, g := range c.Gen5 {
			if !yield(g) {
				return
			}
		}
		for _, g := range c.Gen6 {
			if !yield(g) {
				return
			}
		}
		for _, g := range c.Gen7 {
			if !yield(g) {
				return
			}
		}
	}
}

// Find returns the first template of generation gen carrying cardID.
func (c *Catalog) Find(gen, cardID int) (Gift, bool) {
	for g := range c.All() {
		if g.Generation() == gen && g.Info().CardID == cardID {
			return g, true
		}
	}
	return nil, false
}
