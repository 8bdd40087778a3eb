// Package session ties a loaded model to scale resolution, motion selection
// and the animation log of one viewer panel.
package session

import (
	"errors"
	"fmt"
	gomath "math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/live2d-viewer/internal/animlog"
	"github.com/Faultbox/live2d-viewer/internal/character"
	"github.com/Faultbox/live2d-viewer/internal/logger"
	"github.com/Faultbox/live2d-viewer/pkg/color"
	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

// ErrNotMeasurable is returned when the surface has no area yet.
var ErrNotMeasurable = errors.New("surface is not measurable")

// DefaultAutoCycleInterval is the auto-cycle tick period.
const DefaultAutoCycleInterval = 8 * time.Second

// Options configures a session.
type Options struct {
	Width  float64
	Height float64

	// Model bounds used when the model reports none. Zero means static scaling.
	ModelWidth  float64
	ModelHeight float64
	FillRatio   float64 // 0 means scale.DefaultFillRatio

	AutoCycleInterval time.Duration // 0 means DefaultAutoCycleInterval
	IdleProbability   float64       // <= 0 means motion.DefaultIdleProbability
	BackgroundColor   string        // "" or invalid means DefaultBackgroundColor

	Profiles scale.Profiles   // nil means the character's own profile
	Source   motion.Source    // nil means time seeded
	Clock    func() time.Time // nil means time.Now
	Logger   *zap.Logger      // nil means a child of the global logger
}

// Session is one viewer panel. All methods are safe for concurrent use.
type Session struct {
	id   string
	char *character.Character
	opts Options
	zlog *zap.Logger

	mu       sync.Mutex
	model    Model
	catalog  *motion.Catalog
	selector *motion.Selector
	log      *animlog.Log
	width    float64
	height   float64
	scale    scale.Config
	controls Controls
	selected string
	current  string
	last     *motion.Selection
	cycle    *cycle
}

// New creates a session for char. The model is attached with Load.
func New(id string, char *character.Character, opts Options) *Session {
	if opts.AutoCycleInterval <= 0 {
		opts.AutoCycleInterval = DefaultAutoCycleInterval
	}
	if opts.IdleProbability <= 0 {
		opts.IdleProbability = motion.DefaultIdleProbability
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	zlog := opts.Logger
	if zlog == nil {
		zlog = logger.Named("session", zap.String("session", id), zap.String("character", char.ID))
	}
	if opts.BackgroundColor == "" {
		opts.BackgroundColor = DefaultBackgroundColor
	}
	if bg, err := color.Normalize(opts.BackgroundColor); err != nil {
		zlog.Warn("invalid background color, using default",
			zap.String("color", opts.BackgroundColor), zap.Error(err))
		opts.BackgroundColor = DefaultBackgroundColor
	} else {
		opts.BackgroundColor = bg
	}

	s := &Session{
		id:       id,
		char:     char,
		opts:     opts,
		zlog:     zlog,
		selector: char.NewSelector(opts.Source),
		width:    opts.Width,
		height:   opts.Height,
		controls: Controls{BackgroundColor: opts.BackgroundColor},
	}
	s.log = animlog.New(
		animlog.WithClock(opts.Clock),
		animlog.WithSink(func(line string) { zlog.Info(line) }),
	)
	s.resolveLocked()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Character returns the session's character record.
func (s *Session) Character() *character.Character {
	return s.char
}

// Load attaches a model, builds its catalog and applies the current controls.
// A model without motion definitions fails with motion.ErrModelNotReady and
// leaves any previously loaded model in place.
func (s *Session) Load(m Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m == nil {
		return s.failLocked(motion.ErrModelNotReady)
	}
	defs, ok := m.MotionDefinitions()
	if !ok {
		return s.failLocked(motion.ErrModelNotReady)
	}

	s.stopCycleLocked()
	s.model = m
	s.catalog = motion.BuildCatalog(defs, s.char.Animations)
	s.selected = ""
	if names := s.catalog.Names(); len(names) > 0 {
		s.selected = names[0]
	}
	s.current = ""
	s.last = nil

	s.resolveLocked()
	s.applyLocked()

	s.log.Addf("Model %s loaded", s.char.Name)
	s.log.Addf("Available groups: %s", strings.Join(s.catalog.Names(), ", "))
	return nil
}

// Resize records new surface dimensions and re-resolves the scale. The
// control scale follows the resolved scale.
func (s *Session) Resize(width, height float64) (scale.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !(width > 0) || !(height > 0) {
		return s.scale, s.failLocked(fmt.Errorf("%w: %gx%g", ErrNotMeasurable, width, height))
	}
	s.width, s.height = width, height
	s.resolveLocked()
	s.applyLocked()
	s.zlog.Debug("surface resized",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Float64("scale", s.scale.Scale))
	return s.scale, nil
}

// Scale returns the resolved scale configuration.
func (s *Session) Scale() scale.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

// PlayExplicit plays group[index] after validating it against the catalog.
func (s *Session) PlayExplicit(group string, index int) (motion.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return motion.Selection{}, s.failLocked(err)
	}
	sel, err := s.selector.SelectExplicit(s.catalog, group, index)
	if err != nil {
		return motion.Selection{}, s.failLocked(err)
	}
	return s.playLocked(sel, "Playing: %s - %s", sel, s.char.Animations.PlayDescription(sel.Group))
}

// PlayRandom plays a uniformly random clip.
func (s *Session) PlayRandom() (motion.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playRandomLocked()
}

// PlayContextual plays a clip chosen for ctx.
func (s *Session) PlayContextual(ctx motion.Context) (motion.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playContextualLocked(ctx)
}

// Tap handles a click on the model. The character's tap mode picks either a
// contextual motion or a random clip.
func (s *Session) Tap() (motion.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readyLocked(); err != nil {
		return motion.Selection{}, s.failLocked(err)
	}
	s.log.Add("Model clicked, playing motion")
	if s.char.TapMode == character.TapRandom {
		return s.playRandomLocked()
	}
	return s.playContextualLocked(motion.ContextMotion)
}

func (s *Session) playRandomLocked() (motion.Selection, error) {
	if err := s.readyLocked(); err != nil {
		return motion.Selection{}, s.failLocked(err)
	}
	sel, err := s.selector.SelectRandom(s.catalog)
	if err != nil {
		return motion.Selection{}, s.failLocked(err)
	}
	return s.playLocked(sel, "Playing: %s - %s", sel, s.char.Animations.PlayDescription(sel.Group))
}

func (s *Session) playContextualLocked(ctx motion.Context) (motion.Selection, error) {
	if err := s.readyLocked(); err != nil {
		return motion.Selection{}, s.failLocked(err)
	}
	sel, err := s.selector.SelectContextual(s.catalog, ctx, s.last)
	if err != nil {
		return motion.Selection{}, s.failLocked(err)
	}
	return s.playLocked(sel, "Context: %s -> %s - %s", ctx, sel, s.char.Animations.PlayDescription(sel.Group))
}

// playLocked issues the playback call and, only on success, updates the
// current label and logs the line.
func (s *Session) playLocked(sel motion.Selection, format string, args ...any) (motion.Selection, error) {
	if err := s.model.Play(sel.Group, sel.Index); err != nil {
		return motion.Selection{}, s.failLocked(fmt.Errorf("playing %s: %w", sel, err))
	}
	s.current = sel.String()
	s.selected = sel.Group
	last := sel
	s.last = &last
	s.log.Addf(format, args...)
	return sel, nil
}

// UpdateControls applies a partial control change. Invalid values reject the
// whole update.
func (s *Session) UpdateControls(u ControlUpdate) (Controls, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.controls
	if u.Scale != nil {
		v := *u.Scale
		if !(v > 0) || gomath.IsInf(v, 0) {
			return s.controls, s.failLocked(fmt.Errorf("%w: %g", ErrInvalidScale, v))
		}
		if s.scale.Measurable() {
			v = s.scale.Clamp(v)
		}
		next.Scale = v
	}
	if u.BackgroundColor != nil {
		bg, err := color.Normalize(*u.BackgroundColor)
		if err != nil {
			return s.controls, s.failLocked(err)
		}
		next.BackgroundColor = bg
	}
	if u.X != nil {
		next.X = *u.X
	}
	if u.Y != nil {
		next.Y = *u.Y
	}
	if u.Rotation != nil {
		next.Rotation = *u.Rotation
	}
	if u.ShowHitAreas != nil {
		next.ShowHitAreas = *u.ShowHitAreas
	}
	if u.ShowBackground != nil {
		next.ShowBackground = *u.ShowBackground
	}

	s.controls = next
	s.applyLocked()
	return s.controls, nil
}

// Controls returns the control panel state.
func (s *Session) Controls() Controls {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controls
}

// CurrentAnimation returns the label of the last successful playback,
// "group[index]", or "" before any.
func (s *Session) CurrentAnimation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Log returns the animation log, most recent first.
func (s *Session) Log() []animlog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Entries()
}

// LogLines returns the rendered log lines, most recent first.
func (s *Session) LogLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Lines()
}

// Catalog returns the motion catalog, nil before Load.
func (s *Session) Catalog() *motion.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// Close stops the auto-cycle and waits for it to exit.
func (s *Session) Close() {
	s.mu.Lock()
	c := s.stopCycleLocked()
	s.mu.Unlock()
	if c != nil {
		<-c.done
	}
}

func (s *Session) readyLocked() error {
	if s.model == nil || s.catalog == nil {
		return motion.ErrModelNotReady
	}
	return nil
}

// failLocked records err as exactly one log line and returns it.
func (s *Session) failLocked(err error) error {
	s.log.Add("Error: " + err.Error())
	return err
}

// resolveLocked recomputes the scale for the current surface. The surface
// must be measured; until then the previous configuration is kept.
func (s *Session) resolveLocked() {
	if !(s.width > 0) || !(s.height > 0) {
		return
	}
	mw, mh := s.opts.ModelWidth, s.opts.ModelHeight
	if s.model != nil {
		if w, h := s.model.Bounds(); w > 0 && h > 0 {
			mw, mh = w, h
		}
	}
	profiles := s.opts.Profiles
	if profiles == nil {
		profiles = scale.Profiles{s.char.ID: s.char.Scale}
	}
	s.scale = scale.Resolve(s.width, s.height, scale.Options{
		ModelWidth:  mw,
		ModelHeight: mh,
		FillRatio:   s.opts.FillRatio,
		Character:   s.char.ID,
		Profiles:    profiles,
	})
	if s.scale.Measurable() {
		s.controls.Scale = s.scale.Scale
	} else {
		s.zlog.Warn("resolved scale is not usable", zap.Float64("scale", s.scale.Scale))
	}
}

// applyLocked pushes controls to the model. Position is the surface centre
// plus the control offsets.
func (s *Session) applyLocked() {
	if s.model == nil {
		return
	}
	if s.controls.Scale > 0 {
		s.model.SetScale(s.controls.Scale)
	}
	s.model.SetPosition(s.width/2+s.controls.X, s.height/2+s.controls.Y)
	s.model.SetRotation(s.controls.Rotation * gomath.Pi / 180)
	s.model.SetHitAreaVisibility(s.controls.ShowHitAreas)
	s.model.SetBackgroundVisibility(s.controls.ShowBackground)
	if bc, ok := s.model.(BackgroundColorer); ok {
		if rgb, err := color.Parse(s.controls.BackgroundColor); err == nil {
			bc.SetBackgroundColor(rgb)
		}
	}
}
