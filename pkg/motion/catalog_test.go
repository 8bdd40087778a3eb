package motion

import "testing"

var maoTable = MetadataTable{
	"mtn_01": {Description: "Movement animation 01", Priority: PriorityIdle, AutoPlay: true},
	"mtn_02": {Description: "Movement animation 02", Priority: PriorityNormal},
}

func TestBuildCatalog(t *testing.T) {
	defs := []Definition{
		{Group: "mtn_01", Files: []string{"motions/mtn_01.motion3.json"}},
		{Group: "mtn_02", Files: []string{"motions\\mtn_02.motion3.json", ""}},
		{Group: "special", Files: []string{"special"}},
	}
	c := BuildCatalog(defs, maoTable)

	if c.Len() != 3 {
		t.Fatalf("expected 3 groups, got %d", c.Len())
	}
	names := c.Names()
	for i, want := range []string{"mtn_01", "mtn_02", "special"} {
		if names[i] != want {
			t.Errorf("group %d: expected %s, got %s", i, want, names[i])
		}
	}

	g, ok := c.Group("mtn_02")
	if !ok {
		t.Fatal("mtn_02 missing")
	}
	if g.Clips[0].Name != "mtn_02" {
		t.Errorf("expected clip name mtn_02, got %s", g.Clips[0].Name)
	}
	if g.Clips[1].Name != "Motion 1" {
		t.Errorf("expected fallback name 'Motion 1', got %s", g.Clips[1].Name)
	}
	if g.Clips[1].Index != 1 {
		t.Errorf("expected clip index 1, got %d", g.Clips[1].Index)
	}
	if g.Description != "Movement animation 02" || g.Meta.Priority != PriorityNormal {
		t.Errorf("unexpected metadata: %+v", g)
	}

	special, _ := c.Group("special")
	if special.Description != DefaultDescription {
		t.Errorf("expected default description, got %s", special.Description)
	}
	if special.Meta != (Metadata{}) {
		t.Errorf("expected zero metadata, got %+v", special.Meta)
	}
}

func TestBuildCatalog_DuplicateGroupKeepsPosition(t *testing.T) {
	c := BuildCatalog([]Definition{
		{Group: "A", Files: []string{"a0"}},
		{Group: "B", Files: []string{"b0"}},
		{Group: "A", Files: []string{"a0", "a1"}},
	}, nil)

	if c.Len() != 2 {
		t.Fatalf("expected 2 groups, got %d", c.Len())
	}
	if c.Names()[0] != "A" || c.Count("A") != 2 {
		t.Errorf("expected A first with 2 clips, got %v / %d", c.Names(), c.Count("A"))
	}
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	if c.Len() != 0 || c.Has("Idle") || c.Count("Idle") != 0 || c.Names() != nil || c.Groups() != nil {
		t.Error("nil catalog should behave as empty")
	}
}

func TestCatalog_GroupsIsCopy(t *testing.T) {
	c := NewCatalog(GroupShape{Name: "Idle", Count: 1})
	groups := c.Groups()
	groups[0].Name = "changed"
	if !c.Has("Idle") || c.Names()[0] != "Idle" {
		t.Error("mutating Groups() result changed the catalog")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		file  string
		index int
		want  string
	}{
		{"motions/Idle_01.motion3.json", 0, "Idle_01"},
		{"TAP.MOTION3.JSON", 1, "TAP"},
		{"", 3, "Motion 3"},
		{"motions/.motion3.json", 2, "Motion 2"},
		{"flick.mtn", 0, "flick.mtn"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.file, tt.index); got != tt.want {
			t.Errorf("DisplayName(%q, %d) = %q, want %q", tt.file, tt.index, got, tt.want)
		}
	}
}

func TestMetadataTableDescriptions(t *testing.T) {
	if got := maoTable.Describe("mtn_01"); got != "Movement animation 01" {
		t.Errorf("unexpected description %q", got)
	}
	if got := maoTable.Describe("mtn_09"); got != DefaultDescription {
		t.Errorf("expected default, got %q", got)
	}
	if got := maoTable.PlayDescription("mtn_09"); got != UnknownDescription {
		t.Errorf("expected unknown, got %q", got)
	}
	var nilTable MetadataTable
	if got := nilTable.Describe("x"); got != DefaultDescription {
		t.Errorf("nil table: expected default, got %q", got)
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection("Tap@Body[2]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Group != "Tap@Body" || sel.Index != 2 {
		t.Errorf("unexpected selection %+v", sel)
	}
	if sel.String() != "Tap@Body[2]" {
		t.Errorf("round trip failed: %s", sel)
	}

	for _, bad := range []string{"", "Idle", "[0]", "Idle[x]", "Idle[0"} {
		if _, err := ParseSelection(bad); err == nil {
			t.Errorf("ParseSelection(%q): expected error", bad)
		}
	}
}
