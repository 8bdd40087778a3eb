// Package motion models a character's motion groups and decides which motion
// to play next.
package motion

import (
	"fmt"
	"strconv"
	"strings"
)

// Definition is the raw shape of one motion group as exposed by a loaded model.
type Definition struct {
	Group string
	Files []string // one entry per motion, may be empty strings
}

// Clip is a single motion inside a group.
type Clip struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	File  string `json:"file,omitempty"`
}

// Group is a named, ordered list of clips with its static metadata.
type Group struct {
	Name        string   `json:"name"`
	Clips       []Clip   `json:"motions"`
	Description string   `json:"description"`
	Meta        Metadata `json:"meta"`
}

// Len returns the number of clips in the group.
func (g *Group) Len() int {
	return len(g.Clips)
}

// Catalog is the read-only set of motion groups of one loaded model.
// Groups keep the order in which the model defined them.
type Catalog struct {
	groups []Group
	index  map[string]int
}

// BuildCatalog derives a catalog from model definitions. A repeated group
// name replaces the earlier clips but keeps the earlier position.
func BuildCatalog(defs []Definition, table MetadataTable) *Catalog {
	c := &Catalog{index: make(map[string]int, len(defs))}

	for _, def := range defs {
		clips := make([]Clip, len(def.Files))
		for i, file := range def.Files {
			clips[i] = Clip{Index: i, Name: DisplayName(file, i), File: file}
		}

		meta, _ := table.Lookup(def.Group)
		g := Group{
			Name:        def.Group,
			Clips:       clips,
			Description: table.Describe(def.Group),
			Meta:        meta,
		}

		if pos, ok := c.index[def.Group]; ok {
			c.groups[pos] = g
			continue
		}
		c.index[def.Group] = len(c.groups)
		c.groups = append(c.groups, g)
	}
	return c
}

// NewCatalog builds a catalog from group names and clip counts, in order.
// Clips get default names. Useful for callers that only know the shape.
func NewCatalog(shape ...GroupShape) *Catalog {
	defs := make([]Definition, len(shape))
	for i, s := range shape {
		defs[i] = Definition{Group: s.Name, Files: make([]string, s.Count)}
	}
	return BuildCatalog(defs, nil)
}

// GroupShape names a group and its clip count.
type GroupShape struct {
	Name  string
	Count int
}

// Len returns the number of groups.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.groups)
}

// Names returns group names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.groups))
	for i := range c.groups {
		names[i] = c.groups[i].Name
	}
	return names
}

// Has reports whether the named group exists.
func (c *Catalog) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// Group returns the named group.
func (c *Catalog) Group(name string) (*Group, bool) {
	if c == nil {
		return nil, false
	}
	pos, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return &c.groups[pos], true
}

// Count returns the number of clips in the named group, 0 if absent.
func (c *Catalog) Count(name string) int {
	if g, ok := c.Group(name); ok {
		return g.Len()
	}
	return 0
}

// Groups returns a copy of all groups in catalog order.
func (c *Catalog) Groups() []Group {
	if c == nil {
		return nil
	}
	out := make([]Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// at returns the group at position i.
func (c *Catalog) at(i int) *Group {
	return &c.groups[i]
}

// Selection identifies one clip to play.
type Selection struct {
	Group string `json:"group"`
	Index int    `json:"index"`
}

// String renders the selection as "Group[index]".
func (s Selection) String() string {
	return fmt.Sprintf("%s[%d]", s.Group, s.Index)
}

// ParseSelection parses the "Group[index]" form produced by String.
func ParseSelection(s string) (Selection, error) {
	open := strings.LastIndexByte(s, '[')
	if open <= 0 || !strings.HasSuffix(s, "]") {
		return Selection{}, fmt.Errorf("invalid selection %q: expected Group[index]", s)
	}
	idx, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil {
		return Selection{}, fmt.Errorf("invalid selection index in %q: %w", s, err)
	}
	return Selection{Group: s[:open], Index: idx}, nil
}
