package picker

// Orientation is the swipe orientation of the picker.
// It constrains which axis of pointer movement drives the scroll offset;
// the orthogonal component is ignored entirely.
type Orientation int

const (
	// OrientationVertical swipes along the Y axis (default).
	OrientationVertical Orientation = iota
	// OrientationHorizontal swipes along the X axis.
	OrientationHorizontal
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationVertical:
		return "vertical"
	case OrientationHorizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// DefaultRowExtent is the size of one row along the swipe axis when no
// explicit extent is configured.
const DefaultRowExtent float32 = 44

// Physics holds the tuning constants for the scroll physics engine.
// These are product-tuning values; the defaults are deliberate choices,
// not values dictated by the selection contract.
type Physics struct {
	// Friction is the exponential decay rate of the release velocity
	// during deceleration, in 1/seconds. Higher stops sooner.
	Friction float32

	// RubberBandDamping scales displacement past the content bounds in
	// non-looping mode. 0.5 means the wheel moves half as far as the
	// pointer once it is beyond the first or last row.
	RubberBandDamping float32

	// SettleDuration is the length of the snap-to-row animation in seconds.
	SettleDuration float32

	// StopVelocity is the speed (units/second) below which deceleration
	// ends and the wheel starts settling onto the nearest row.
	StopVelocity float32

	// FlickVelocity is the minimum release speed (units/second) that
	// starts a deceleration phase. Slower releases settle immediately.
	FlickVelocity float32
}

// DefaultPhysics returns the default physics tuning.
func DefaultPhysics() Physics {
	return Physics{
		Friction:          4.0,
		RubberBandDamping: 0.5,
		SettleDuration:    0.25,
		StopVelocity:      20,
		FlickVelocity:     50,
	}
}

// Option configures a Picker at construction time.
type Option func(*Picker)

// WithOrientation sets the swipe orientation.
func WithOrientation(o Orientation) Option {
	return func(p *Picker) { p.orientation = o }
}

// WithLooping makes the picker display the data source as a ring: past the
// last row the first row follows again.
func WithLooping(looping bool) Option {
	return func(p *Picker) { p.looping = looping }
}

// WithRowExtent sets the size of one row along the swipe axis.
// Non-positive values fall back to DefaultRowExtent.
func WithRowExtent(extent float32) Option {
	return func(p *Picker) {
		if extent > 0 {
			p.rowExtent = extent
		}
	}
}

// WithPhysics overrides the scroll physics tuning.
func WithPhysics(phys Physics) Option {
	return func(p *Picker) { p.phys = phys }
}

// WithStyle sets the visual style.
func WithStyle(style Style) Option {
	return func(p *Picker) { p.style = style }
}

// WithDelegate sets the selection delegate.
func WithDelegate(d Delegate) Option {
	return func(p *Picker) { p.delegate = d }
}

// WithFrame sets the control's frame rectangle.
func WithFrame(frame Rect) Option {
	return func(p *Picker) { p.frame = frame }
}

// WithRenderRequest registers a callback invoked whenever the picker needs
// the host to redraw outside its normal animation flow (after a reload or a
// committed selection). Hosts that redraw every frame can ignore this.
func WithRenderRequest(fn func()) Option {
	return func(p *Picker) { p.requestRender = fn }
}
