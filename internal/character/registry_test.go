package character

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

func TestBuiltin(t *testing.T) {
	r := Builtin()

	if r.Len() != 9 {
		t.Fatalf("expected 9 built-in characters, got %d", r.Len())
	}
	for _, c := range r.List() {
		if err := c.Validate(); err != nil {
			t.Errorf("built-in %s invalid: %v", c.ID, err)
		}
	}

	if r.List()[0].ID != "hiyori" {
		t.Errorf("expected hiyori first, got %s", r.List()[0].ID)
	}

	mao, err := r.Get("mao")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mao.IdleGroup != "mtn_01" {
		t.Errorf("expected mao idle group mtn_01, got %s", mao.IdleGroup)
	}
	if !mao.Animations["mtn_01"].AutoPlay {
		t.Error("expected mtn_01 to auto play")
	}

	shizuku, _ := r.Get("shizuku")
	if shizuku.Animations.Describe("Tap") != "Touch/click animation" {
		t.Errorf("unexpected Tap description %q", shizuku.Animations.Describe("Tap"))
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := Builtin().Get("nobody")
	if !errors.Is(err, ErrUnknownCharacter) {
		t.Errorf("expected ErrUnknownCharacter, got %v", err)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	r := Builtin()
	mao, _ := r.Get("mao")
	mao.IdleGroup = "changed"
	mao.Animations["mtn_01"] = motion.Metadata{Description: "changed"}

	again, _ := r.Get("mao")
	if again.IdleGroup != "mtn_01" {
		t.Error("Get must return a copy")
	}
	if again.Animations["mtn_01"].Description == "changed" {
		t.Error("animation table must be copied")
	}
}

func TestProfilesMatchScaleTable(t *testing.T) {
	got := Builtin().Profiles()
	for id, want := range scale.DefaultProfiles() {
		if got[id] != want {
			t.Errorf("%s: expected %+v, got %+v", id, want, got[id])
		}
	}
}

func TestMerge(t *testing.T) {
	r := Builtin()

	if err := r.Merge(Character{ID: "mao", IdleGroup: "mtn_02"}); err != nil {
		t.Fatalf("merge existing: %v", err)
	}
	mao, _ := r.Get("mao")
	if mao.IdleGroup != "mtn_02" {
		t.Errorf("expected overridden idle group, got %s", mao.IdleGroup)
	}
	if mao.Name != "Mao" || mao.Animations.Describe("mtn_01") != "Movement animation 01" {
		t.Error("merge dropped existing fields")
	}

	if err := r.Merge(Character{ID: "custom"}); err != nil {
		t.Fatalf("merge new: %v", err)
	}
	custom, _ := r.Get("custom")
	if custom.IdleGroup != DefaultIdleGroup || custom.TapMode != TapContextual || !custom.Scale.Valid() {
		t.Errorf("defaults not applied: %+v", custom)
	}
	if r.Len() != 10 {
		t.Errorf("expected 10 characters, got %d", r.Len())
	}

	if err := r.Merge(Character{ID: "broken", TapMode: "sideways"}); err == nil {
		t.Error("expected validation error for unknown tap mode")
	}
	if err := r.Merge(Character{}); err == nil {
		t.Error("expected validation error for empty id")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "characters.yaml")

	content := `
characters:
  - id: wanko
    tap_mode: contextual
    animations:
      sleep:
        description: "Sleeping"
        priority: 1
  - id: koharu
    name: Koharu
    model_path: /models/Koharu/Koharu.model3.json
    idle_group: Idle
    auto_cycle: true
    scale:
      base_scale: 0.3
      min_scale: 0.05
      max_scale: 1.0
      responsive_multiplier: 0.9
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r := Builtin()
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	wanko, _ := r.Get("wanko")
	if wanko.TapMode != TapContextual {
		t.Errorf("expected contextual tap mode, got %s", wanko.TapMode)
	}
	if wanko.Animations.Describe("sleep") != "Sleeping" || wanko.Animations.Describe("idle") != "Wanko resting animations" {
		t.Error("animation tables not merged")
	}

	koharu, err := r.Get("koharu")
	if err != nil {
		t.Fatalf("koharu missing: %v", err)
	}
	if !koharu.AutoCycle || koharu.Scale.BaseScale != 0.3 {
		t.Errorf("unexpected koharu: %+v", koharu)
	}
}

func TestLoadFileErrors(t *testing.T) {
	r := Builtin()
	if err := r.LoadFile("/nonexistent/characters.yaml"); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("characters: [oops: {"), 0644)
	if err := r.LoadFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
