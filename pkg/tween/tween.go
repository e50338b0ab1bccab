package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	quickmath "xnamath.theprimeagen.com/pkg/quick-math"
)

// progress eases 0 -> 1 over the duration. gween works in float32, the
// eased value is only used as an interpolation amount so the precision is
// plenty.
type progress struct {
	tween *gween.Tween
	Done  bool
}

func newProgress(duration float32, fn ease.TweenFunc) progress {
	if fn == nil {
		fn = ease.Linear
	}
	return progress{tween: gween.New(0, 1, duration, fn)}
}

// advance returns the eased amount after dt seconds. Once finished it
// keeps returning 1.
func (p *progress) advance(dt float32) float64 {
	if p.Done {
		return 1
	}

	amount, finished := p.tween.Update(dt)
	if finished {
		p.Done = true
		return 1
	}
	return float64(amount)
}

func (p *progress) reset() {
	p.tween.Reset()
	p.Done = false
}

// Vector2Tween moves From to To with Vector2.Lerp. Call Update(dt) each
// frame, Done flips once the duration has elapsed and Update then returns
// To exactly.
type Vector2Tween struct {
	progress
	From, To quickmath.Vector2
}

func NewVector2Tween(from, to quickmath.Vector2, duration float32, fn ease.TweenFunc) *Vector2Tween {
	return &Vector2Tween{progress: newProgress(duration, fn), From: from, To: to}
}

func (t *Vector2Tween) Update(dt float32) quickmath.Vector2 {
	amount := t.advance(dt)
	if t.Done {
		return t.To
	}
	return t.From.Lerp(t.To, amount)
}

func (t *Vector2Tween) Reset() {
	t.reset()
}

type Vector3Tween struct {
	progress
	From, To quickmath.Vector3
}

func NewVector3Tween(from, to quickmath.Vector3, duration float32, fn ease.TweenFunc) *Vector3Tween {
	return &Vector3Tween{progress: newProgress(duration, fn), From: from, To: to}
}

func (t *Vector3Tween) Update(dt float32) quickmath.Vector3 {
	amount := t.advance(dt)
	if t.Done {
		return t.To
	}
	return t.From.Lerp(t.To, amount)
}

func (t *Vector3Tween) Reset() {
	t.reset()
}

// QuaternionTween rotates From to To along the shorter great arc.
// Overshooting eases (back, elastic) are fine, SLerp extrapolates past the
// end points.
type QuaternionTween struct {
	progress
	From, To quickmath.Quaternion
}

func NewQuaternionTween(from, to quickmath.Quaternion, duration float32, fn ease.TweenFunc) *QuaternionTween {
	return &QuaternionTween{progress: newProgress(duration, fn), From: from, To: to}
}

func (t *QuaternionTween) Update(dt float32) quickmath.Quaternion {
	amount := t.advance(dt)
	if t.Done {
		return t.To
	}
	return t.From.SLerp(t.To, amount)
}

func (t *QuaternionTween) Reset() {
	t.reset()
}
