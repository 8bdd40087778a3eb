package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Faultbox/live2d-viewer/internal/session"
	"github.com/Faultbox/live2d-viewer/pkg/motion"
	"github.com/Faultbox/live2d-viewer/pkg/scale"
)

// --- Request bodies ---

type createSessionRequest struct {
	Character   string  `json:"character"` // "" means the configured default
	ModelPath   string  `json:"model_path"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	ModelWidth  float64 `json:"model_width"`
	ModelHeight float64 `json:"model_height"`
	FillRatio   float64 `json:"fill_ratio"`
}

type resizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type playRequest struct {
	Group string `json:"group" binding:"required"`
	Index *int   `json:"index" binding:"required"`
}

type contextualRequest struct {
	Context motion.Context `json:"context"`
}

// playResponse is returned by every playback endpoint.
type playResponse struct {
	Selection        motion.Selection `json:"selection"`
	CurrentAnimation string           `json:"current_animation"`
}

// --- Characters ---

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
}

func (s *Server) listCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, s.chars.List())
}

func (s *Server) getCharacter(c *gin.Context) {
	ch, err := s.chars.Get(c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (s *Server) resolveScale(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.chars.Get(id); err != nil {
		abort(c, err)
		return
	}

	width, err := queryFloat(c, "width", 0)
	if err != nil {
		abort(c, err)
		return
	}
	height, err := queryFloat(c, "height", 0)
	if err != nil {
		abort(c, err)
		return
	}
	opts := scale.Options{Character: id, Profiles: s.chars.Profiles()}
	if opts.ModelWidth, err = queryFloat(c, "model_width", 0); err != nil {
		abort(c, err)
		return
	}
	if opts.ModelHeight, err = queryFloat(c, "model_height", 0); err != nil {
		abort(c, err)
		return
	}
	if opts.FillRatio, err = queryFloat(c, "fill_ratio", s.cfg.Viewer.FillRatio); err != nil {
		abort(c, err)
		return
	}
	if err := checkScaleInputs(width, height, opts.ModelWidth, opts.ModelHeight, opts.FillRatio); err != nil {
		abort(c, err)
		return
	}

	mode := "static"
	if opts.Dynamic() {
		mode = "dynamic"
	}
	c.JSON(http.StatusOK, gin.H{
		"character": id,
		"mode":      mode,
		"config":    scale.Resolve(width, height, opts),
	})
}

// --- Sessions ---

func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v := s.cfg.Viewer
	if req.Character == "" {
		req.Character = v.Character
	}
	ch, err := s.chars.Get(req.Character)
	if err != nil {
		abort(c, err)
		return
	}

	width := orDefault(req.Width, float64(v.Width))
	height := orDefault(req.Height, float64(v.Height))
	modelWidth := orDefault(req.ModelWidth, v.ModelWidth)
	modelHeight := orDefault(req.ModelHeight, v.ModelHeight)
	fill := orDefault(req.FillRatio, v.FillRatio)
	if err := checkScaleInputs(width, height, modelWidth, modelHeight, fill); err != nil {
		abort(c, err)
		return
	}

	modelPath := req.ModelPath
	if modelPath == "" && ch.ID == v.Character {
		modelPath = v.ModelPath
	}
	if modelPath == "" {
		modelPath = ch.ModelPath
	}
	model, err := s.open(s.modelFile(modelPath))
	if err != nil {
		abort(c, err)
		return
	}

	opts := session.Options{
		Width:             width,
		Height:            height,
		ModelWidth:        modelWidth,
		ModelHeight:       modelHeight,
		FillRatio:         fill,
		AutoCycleInterval: v.AutoCycle,
		IdleProbability:   v.IdleProbability,
		BackgroundColor:   v.BackgroundColor,
		Profiles:          s.chars.Profiles(),
	}
	if v.Seed != 0 {
		opts.Source = motion.NewSource(v.Seed)
	}

	sess, err := s.sessions.Create(ch, opts)
	if err != nil {
		abort(c, err)
		return
	}
	if err := sess.Load(model); err != nil {
		_ = s.sessions.Remove(sess.ID())
		abort(c, err)
		return
	}
	if ch.AutoCycle {
		if err := sess.StartAutoCycle(); err != nil {
			s.log.Warn("auto cycle not started", zap.String("session", sess.ID()), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, sess.Snapshot())
}

// withSession resolves :id and passes the session to fn.
func (s *Server) withSession(fn func(*gin.Context, *session.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.sessions.Get(c.Param("id"))
		if err != nil {
			abort(c, err)
			return
		}
		fn(c, sess)
	}
}

func (s *Server) getSession(c *gin.Context, sess *session.Session) {
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) deleteSession(c *gin.Context) {
	if err := s.sessions.Remove(c.Param("id")); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) resize(c *gin.Context, sess *session.Session) {
	var req resizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cfg, err := sess.Resize(req.Width, req.Height)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scale": cfg, "controls": sess.Controls()})
}

func (s *Server) playExplicit(c *gin.Context, sess *session.Session) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	played(c, sess)(sess.PlayExplicit(req.Group, *req.Index))
}

func (s *Server) playRandom(c *gin.Context, sess *session.Session) {
	played(c, sess)(sess.PlayRandom())
}

func (s *Server) playContextual(c *gin.Context, sess *session.Session) {
	var req contextualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	played(c, sess)(sess.PlayContextual(req.Context))
}

func (s *Server) tap(c *gin.Context, sess *session.Session) {
	played(c, sess)(sess.Tap())
}

// played renders the result of a playback call.
func played(c *gin.Context, sess *session.Session) func(motion.Selection, error) {
	return func(sel motion.Selection, err error) {
		if err != nil {
			abort(c, err)
			return
		}
		c.JSON(http.StatusOK, playResponse{Selection: sel, CurrentAnimation: sess.CurrentAnimation()})
	}
}

func (s *Server) startAuto(c *gin.Context, sess *session.Session) {
	if err := sess.StartAutoCycle(); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"auto_cycle": true})
}

func (s *Server) stopAuto(c *gin.Context, sess *session.Session) {
	wasRunning := sess.StopAutoCycle()
	c.JSON(http.StatusOK, gin.H{"auto_cycle": false, "stopped": wasRunning})
}

func (s *Server) updateControls(c *gin.Context, sess *session.Session) {
	var req session.ControlUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Empty() {
		abort(c, fmt.Errorf("%w: no control fields given", ErrBadRequest))
		return
	}
	controls, err := sess.UpdateControls(req)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, controls)
}

func (s *Server) sessionLog(c *gin.Context, sess *session.Session) {
	c.JSON(http.StatusOK, gin.H{"entries": sess.Log(), "lines": sess.LogLines()})
}

// --- Helpers ---

func queryFloat(c *gin.Context, key string, def float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrBadRequest, key, raw)
	}
	return v, nil
}

func orDefault(v, def float64) float64 {
	if v != 0 {
		return v
	}
	return def
}

// checkScaleInputs rejects surfaces that are not positive, negative model
// bounds and fill ratios outside (0, 1].
func checkScaleInputs(width, height, modelWidth, modelHeight, fill float64) error {
	if !(width > 0) || !(height > 0) {
		return fmt.Errorf("%w: width and height must be positive, got %gx%g", ErrBadRequest, width, height)
	}
	if !(modelWidth >= 0) || !(modelHeight >= 0) {
		return fmt.Errorf("%w: model bounds must not be negative, got %gx%g", ErrBadRequest, modelWidth, modelHeight)
	}
	if !(fill > 0) || fill > 1 {
		return fmt.Errorf("%w: fill_ratio must be in (0,1], got %g", ErrBadRequest, fill)
	}
	return nil
}
