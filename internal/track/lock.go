package track

// Event is one emitted gesture lock, carrying the phrase to speak.
type Event struct {
	Gesture     GestureID `json:"gesture"`
	Phrase      string    `json:"phrase"`
	TimestampMs int64     `json:"timestampMs"`
}

// Locker is the debounce state machine. It requires a run of consecutive
// identical non-null candidates before locking, applies a cooldown between
// locks, and suppresses re-locking the same gesture until a different one
// has locked in between. The suppression is what keeps a gesture held in
// view from being spoken over and over.
type Locker struct {
	cfg Config

	candidate GestureID
	streak    int

	lastLocked GestureID
	lastLockMs int64
	hasLocked  bool
}

// NewLocker creates a Locker in the idle state.
func NewLocker(cfg Config) *Locker {
	return &Locker{cfg: cfg}
}

// Reset returns the machine to idle and clears the lock history.
func (l *Locker) Reset() {
	*l = Locker{cfg: l.cfg}
}

// Step consumes one frame's candidate and returns a lock event when the
// streak, cooldown and same-gesture checks all pass. A differing candidate
// resets the streak; a null candidate resets it to zero.
func (l *Locker) Step(candidate GestureID, nowMs int64) (Event, bool) {
	if candidate == l.candidate {
		l.streak++
	} else {
		l.candidate = candidate
		if candidate != GestureNone {
			l.streak = 1
		} else {
			l.streak = 0
		}
	}

	if candidate == GestureNone || l.streak < l.cfg.LockFrames {
		return Event{}, false
	}
	if l.hasLocked && nowMs-l.lastLockMs < l.cfg.CooldownMs {
		return Event{}, false
	}
	if candidate == l.lastLocked {
		return Event{}, false
	}

	l.lastLocked = candidate
	l.lastLockMs = nowMs
	l.hasLocked = true

	return Event{
		Gesture:     candidate,
		Phrase:      Phrase(candidate),
		TimestampMs: nowMs,
	}, true
}

// Current returns this frame's candidate and its streak length.
func (l *Locker) Current() (GestureID, int) {
	return l.candidate, l.streak
}

// LastLocked returns the most recently locked gesture and its timestamp.
// ok is false before the first lock of the session.
func (l *Locker) LastLocked() (g GestureID, atMs int64, ok bool) {
	return l.lastLocked, l.lastLockMs, l.hasLocked
}

// PulseActive reports whether the short locked-this-instant pulse is still
// live, for transient visual or haptic feedback.
func (l *Locker) PulseActive(nowMs int64) bool {
	return l.hasLocked && nowMs-l.lastLockMs < l.cfg.PulseMs
}
