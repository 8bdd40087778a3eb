package session

import (
	"github.com/Faultbox/live2d-viewer/internal/animlog"
	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

// Snapshot is the plain-data view of a session for the control panel.
type Snapshot struct {
	ID               string          `json:"id"`
	Character        string          `json:"character"`
	CharacterName    string          `json:"character_name"`
	Loaded           bool            `json:"loaded"`
	Width            float64         `json:"width"`
	Height           float64         `json:"height"`
	Scale            scale.Config    `json:"scale"`
	Controls         Controls        `json:"controls"`
	Groups           []motion.Group  `json:"groups"`
	SelectedGroup    string          `json:"selected_group"`
	CurrentAnimation string          `json:"current_animation"`
	AutoCycle        bool            `json:"auto_cycle"`
	Log              []animlog.Entry `json:"log"`
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:               s.id,
		Character:        s.char.ID,
		CharacterName:    s.char.Name,
		Loaded:           s.model != nil,
		Width:            s.width,
		Height:           s.height,
		Scale:            s.scale,
		Controls:         s.controls,
		Groups:           s.catalog.Groups(),
		SelectedGroup:    s.selected,
		CurrentAnimation: s.current,
		AutoCycle:        s.cycle != nil,
		Log:              s.log.Entries(),
	}
}
