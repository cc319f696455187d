package app

// WinnerRing is a circular buffer of recent spin winners.
type WinnerRing struct {
	buf   []string
	pos   int
	count int
}

// NewWinnerRing creates a new circular buffer with the given capacity.
func NewWinnerRing(capacity int) *WinnerRing {
	if capacity < 1 {
		capacity = 1
	}
	return &WinnerRing{
		buf: make([]string, capacity),
	}
}

// Push adds a winner to the ring buffer.
func (r *WinnerRing) Push(name string) {
	r.buf[r.pos] = name
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored winners in chronological order.
func (r *WinnerRing) Values() []string {
	if r.count == 0 {
		return nil
	}
	result := make([]string, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Last returns the most recent winner, or "" if empty.
func (r *WinnerRing) Last() string {
	if r.count == 0 {
		return ""
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// Len returns the number of stored winners.
func (r *WinnerRing) Len() int {
	return r.count
}
