package motion

import (
	"math/rand/v2"
	"time"
)

// Source is the random source used for selection. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Selector picks motions from a catalog. IdleGroup is the canonical idle
// group name for the character, matched exactly.
//
// A Selector is not safe for concurrent use; its random source carries state.
type Selector struct {
	IdleGroup string
	rng       Source
}

// NewSelector creates a selector. A nil rng is replaced by a time-seeded source.
func NewSelector(idleGroup string, rng Source) *Selector {
	if rng == nil {
		rng = NewSource(uint64(time.Now().UnixNano()))
	}
	return &Selector{IdleGroup: idleGroup, rng: rng}
}

// Source returns the selector's random source.
func (s *Selector) Source() Source {
	return s.rng
}

// SelectExplicit validates a requested clip and returns it unchanged.
func (s *Selector) SelectExplicit(c *Catalog, group string, index int) (Selection, error) {
	return SelectExplicit(c, group, index)
}

// SelectExplicit validates group and index against the catalog.
func SelectExplicit(c *Catalog, group string, index int) (Selection, error) {
	g, ok := c.Group(group)
	if !ok {
		return Selection{}, groupNotFound(group)
	}
	if index < 0 || index >= g.Len() {
		return Selection{}, indexOutOfRange(group, index, g.Len())
	}
	return Selection{Group: group, Index: index}, nil
}

// SelectRandom picks a group uniformly among the non-empty groups, then a
// clip uniformly within it.
func (s *Selector) SelectRandom(c *Catalog) (Selection, error) {
	if c.Len() == 0 {
		return Selection{}, ErrEmptyCatalog
	}

	candidates := s.candidates(c, "")
	if len(candidates) == 0 {
		return Selection{}, emptyGroup(c.at(0).Name)
	}

	g := c.at(candidates[s.rng.IntN(len(candidates))])
	return Selection{Group: g.Name, Index: s.rng.IntN(g.Len())}, nil
}

// SelectContextual picks a clip for the given intent.
//
// Idle returns index 0 of the idle group when the catalog has it, else index
// 0 of the first non-empty group. Motion picks uniformly among the non-empty
// groups other than the idle group, then uniformly among their clips, and
// falls back like Idle when no such group exists. With a previous selection,
// Motion avoids repeating the same clip when any alternative exists.
func (s *Selector) SelectContextual(c *Catalog, ctx Context, previous *Selection) (Selection, error) {
	if c.Len() == 0 {
		return Selection{}, ErrEmptyCatalog
	}
	if ctx == ContextMotion {
		if sel, ok := s.pickMotion(c, previous); ok {
			return sel, nil
		}
	}
	return s.pickIdle(c)
}

func (s *Selector) pickIdle(c *Catalog) (Selection, error) {
	if g, ok := c.Group(s.IdleGroup); ok {
		if g.Len() == 0 {
			return Selection{}, emptyGroup(g.Name)
		}
		return Selection{Group: g.Name, Index: 0}, nil
	}

	for i := 0; i < c.Len(); i++ {
		if g := c.at(i); g.Len() > 0 {
			return Selection{Group: g.Name, Index: 0}, nil
		}
	}
	return Selection{}, emptyGroup(c.at(0).Name)
}

func (s *Selector) pickMotion(c *Catalog, previous *Selection) (Selection, bool) {
	candidates := s.candidates(c, s.IdleGroup)
	if len(candidates) == 0 {
		return Selection{}, false
	}

	pick := s.rng.IntN(len(candidates))
	g := c.at(candidates[pick])

	if previous == nil || previous.Group != g.Name || previous.Index < 0 || previous.Index >= g.Len() {
		return Selection{Group: g.Name, Index: s.rng.IntN(g.Len())}, true
	}

	// Same group as last time: take another clip in it, or another group.
	if g.Len() > 1 {
		idx := s.rng.IntN(g.Len() - 1)
		if idx >= previous.Index {
			idx++
		}
		return Selection{Group: g.Name, Index: idx}, true
	}
	if len(candidates) > 1 {
		alt := s.rng.IntN(len(candidates) - 1)
		if alt >= pick {
			alt++
		}
		g = c.at(candidates[alt])
		return Selection{Group: g.Name, Index: s.rng.IntN(g.Len())}, true
	}
	return Selection{Group: g.Name, Index: 0}, true
}

// candidates returns positions of non-empty groups, skipping exclude.
func (s *Selector) candidates(c *Catalog, exclude string) []int {
	out := make([]int, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		g := c.at(i)
		if g.Len() == 0 || (exclude != "" && g.Name == exclude) {
			continue
		}
		out = append(out, i)
	}
	return out
}
