package wheel

import (
	"time"

	"github.com/rs/zerolog"
)

// Spin is the plan computed when a spin starts.
type Spin struct {
	Chosen    int
	FullSpins int
	From      float64
	Target    float64
	Duration  time.Duration
}

// Result is delivered once, on the Update that finishes a spin.
type Result struct {
	Index    int
	Entry    Entry
	Rotation float64
}

type animation struct {
	plan    Spin
	elapsed time.Duration
}

// Engine owns the wheel entries and the spin animation. It is not safe for
// concurrent use; drive it from a single event loop.
type Engine struct {
	entries   []Entry
	rotation  float64
	highlight int // -1 when nothing is highlighted
	anim      *animation

	rng      RandomSource
	selector Selector
	params   Params
	log      zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the random source. nil keeps the default.
func WithRandom(rng RandomSource) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSelector sets the winner selection rule. nil keeps Uniform.
func WithSelector(s Selector) Option {
	return func(e *Engine) {
		if s != nil {
			e.selector = s
		}
	}
}

// WithParams overrides the spin parameters.
func WithParams(p Params) Option {
	return func(e *Engine) { e.params = p }
}

// WithLogger attaches a logger; spins are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l.With().Str("component", "wheel").Logger() }
}

// New creates an empty wheel at rotation 0.
func New(opts ...Option) *Engine {
	e := &Engine{
		highlight: -1,
		rng:       DefaultRNG(),
		selector:  Uniform{},
		params:    DefaultParams(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddEntry appends a trimmed entry. A blank name is ignored without error;
// negative weights are stored as 0.
func (e *Engine) AddEntry(name string, weight float64) error {
	if e.anim != nil {
		return ErrSpinInProgress
	}
	entry, ok := normalizeEntry(name, weight)
	if !ok {
		return nil
	}
	e.entries = append(e.entries, entry)
	return nil
}

// RemoveEntry deletes the entry at i. The highlight follows its entry: it is
// cleared if that entry is the one removed.
func (e *Engine) RemoveEntry(i int) error {
	if e.anim != nil {
		return ErrSpinInProgress
	}
	if i < 0 || i >= len(e.entries) {
		return ErrInvalidIndex
	}
	e.entries = append(e.entries[:i], e.entries[i+1:]...)
	switch {
	case e.highlight == i:
		e.highlight = -1
	case e.highlight > i:
		e.highlight--
	}
	return nil
}

// Clear empties the wheel and stops any running spin. The rotation is kept.
func (e *Engine) Clear() {
	if e.anim != nil {
		e.log.Debug().Float64("rotation", e.rotation).Msg("spin dropped by clear")
	}
	e.entries = nil
	e.highlight = -1
	e.anim = nil
}

// SetEntries replaces the whole entry list, normalising each entry the way
// AddEntry does.
func (e *Engine) SetEntries(list []Entry) error {
	if e.anim != nil {
		return ErrSpinInProgress
	}
	entries := make([]Entry, 0, len(list))
	for _, it := range list {
		if entry, ok := normalizeEntry(it.Name, it.Weight); ok {
			entries = append(entries, entry)
		}
	}
	e.entries = entries
	e.highlight = -1
	return nil
}

// Entries returns a copy of the current entries.
func (e *Engine) Entries() []Entry {
	return append([]Entry(nil), e.entries...)
}

// Len returns the number of entries.
func (e *Engine) Len() int { return len(e.entries) }

// Spinning reports whether an animation is running.
func (e *Engine) Spinning() bool { return e.anim != nil }

// Rotation returns the current absolute rotation in degrees.
func (e *Engine) Rotation() float64 { return e.rotation }

// Highlight returns the winning index of the last completed spin.
func (e *Engine) Highlight() (int, bool) {
	if e.highlight < 0 {
		return -1, false
	}
	return e.highlight, true
}

// Progress returns the animation progress in [0,1], or 0 when idle.
func (e *Engine) Progress() float64 {
	if e.anim == nil {
		return 0
	}
	if e.anim.plan.Duration <= 0 {
		return 1
	}
	t := float64(e.anim.elapsed) / float64(e.anim.plan.Duration)
	if t > 1 {
		t = 1
	}
	return t
}

// State returns a snapshot for rendering.
func (e *Engine) State() WheelState {
	idx, ok := e.Highlight()
	return WheelState{
		Entries:        e.Entries(),
		RotationAngle:  e.rotation,
		HighlightIndex: idx,
		Highlighted:    ok,
		Spinning:       e.anim != nil,
		Progress:       e.Progress(),
	}
}

// Resolve returns the entry index currently under the pointer.
func (e *Engine) Resolve() (int, error) {
	return ResolveSelection(e.rotation, len(e.entries))
}

// Spin plans a spin and starts the animation. The wheel lands on the index
// chosen by the selector, at a random point away from the slice edges, after
// a few cosmetic full turns.
func (e *Engine) Spin() (Spin, error) {
	if e.anim != nil {
		return Spin{}, ErrSpinInProgress
	}
	n := len(e.entries)
	if n == 0 {
		return Spin{}, ErrEmptyWheel
	}

	chosen := e.selector.Pick(e.entries, e.rng)
	if chosen < 0 || chosen >= n {
		return Spin{}, ErrInvalidIndex
	}
	seg := SegmentAngle(n)
	offset := uniformBetween(e.rng, e.params.EdgeMargin*seg, (1-e.params.EdgeMargin)*seg)
	finalRelative := float64(chosen)*seg + offset
	finalAngle := NormalizeDeg(PointerAngleDeg - finalRelative)
	fullSpins := intBetween(e.rng, e.params.MinFullSpins, e.params.MaxFullSpins)

	// plan from the last full turn, not from rotation mod 360, so that
	// target mod 360 == finalAngle and the wheel never turns backwards
	base := e.rotation - NormalizeDeg(e.rotation)
	target := base + finalAngle + 360*float64(fullSpins)
	if target < e.rotation {
		target += 360
	}

	duration := e.params.BaseDuration
	if e.params.DurationJitter > 0 {
		duration += time.Duration(e.rng.Float64() * float64(e.params.DurationJitter))
	}

	plan := Spin{
		Chosen:    chosen,
		FullSpins: fullSpins,
		From:      e.rotation,
		Target:    target,
		Duration:  duration,
	}
	e.anim = &animation{plan: plan}
	e.highlight = -1

	e.log.Debug().
		Int("entries", n).
		Int("chosen", chosen).
		Int("full_spins", fullSpins).
		Float64("from", plan.From).
		Float64("target", target).
		Dur("duration", duration).
		Msg("spin started")
	return plan, nil
}

// Update advances a running spin by dt. It returns the result and true on
// the call that completes the spin, and false otherwise.
func (e *Engine) Update(dt time.Duration) (Result, bool) {
	if e.anim == nil {
		return Result{}, false
	}
	if dt > 0 {
		e.anim.elapsed += dt
	}
	plan := e.anim.plan
	if e.anim.elapsed < plan.Duration {
		t := float64(e.anim.elapsed) / float64(plan.Duration)
		e.rotation = plan.From + (plan.Target-plan.From)*e.params.Easing.Apply(t)
		return Result{}, false
	}

	e.rotation = plan.Target
	e.anim = nil
	idx, err := e.Resolve()
	if err != nil {
		return Result{}, false
	}
	e.highlight = idx
	res := Result{Index: idx, Entry: e.entries[idx], Rotation: e.rotation}
	e.log.Debug().Int("index", idx).Str("winner", res.Entry.Name).Msg("spin finished")
	return res, true
}

// Cancel stops a running spin where it is. No winner is highlighted.
func (e *Engine) Cancel() {
	if e.anim == nil {
		return
	}
	e.anim = nil
	e.log.Debug().Float64("rotation", e.rotation).Msg("spin cancelled")
}
