package session

import "sync"

// History holds the frames of the current session in tick order.
type History struct {
	sync.RWMutex
	frames []Frame
}

// Append adds a frame at the end.
func (h *History) Append(f Frame) {
	h.Lock()
	defer h.Unlock()

	h.frames = append(h.frames, f)
}

// Get returns the frame at index, false if there is none.
func (h *History) Get(index int) (Frame, bool) {
	h.RLock()
	defer h.RUnlock()

	if index < 0 || index >= len(h.frames) {
		return Frame{}, false
	}
	return h.frames[index], true
}

// Last returns the most recent frame.
func (h *History) Last() (Frame, bool) {
	h.RLock()
	defer h.RUnlock()

	if len(h.frames) == 0 {
		return Frame{}, false
	}
	return h.frames[len(h.frames)-1], true
}

// Count returns the number of frames held.
func (h *History) Count() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.frames)
}

// Reset drops every frame.
func (h *History) Reset() {
	h.Lock()
	defer h.Unlock()

	h.frames = nil
}
