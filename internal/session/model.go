package session

import "github.com/Faultbox/live2d-viewer/pkg/motion"

// Model is the capability set a session drives on a loaded model handle.
// internal/model3.Model implements it headlessly.
type Model interface {
	// MotionDefinitions returns the motion groups in definition order, or
	// false when the model has no usable motion section.
	MotionDefinitions() ([]motion.Definition, bool)

	// Bounds returns the intrinsic bounding box, zero when unknown.
	Bounds() (width, height float64)

	Play(group string, index int) error
	SetScale(s float64)
	SetPosition(x, y float64)
	SetRotation(radians float64)
	SetHitAreaVisibility(visible bool)
	SetBackgroundVisibility(visible bool)
}

// BackgroundColorer is implemented by models that own the surface clear colour.
type BackgroundColorer interface {
	SetBackgroundColor(rgb uint32)
}
