package canvas

// MaxHistory bounds both the undo and redo stacks.
const MaxHistory = 20

// snapshotRing is a bounded stack of mask snapshots backed by a ring, so
// pushing at capacity evicts the oldest entry in O(1) instead of shifting.
type snapshotRing struct {
	buf   [MaxHistory][]uint8
	head  int // index of the oldest entry
	count int
}

func (r *snapshotRing) push(snap []uint8) {
	if r.count == MaxHistory {
		r.buf[r.head] = snap
		r.head = (r.head + 1) % MaxHistory
		return
	}
	r.buf[(r.head+r.count)%MaxHistory] = snap
	r.count++
}

func (r *snapshotRing) pop() ([]uint8, bool) {
	if r.count == 0 {
		return nil, false
	}
	r.count--
	i := (r.head + r.count) % MaxHistory
	snap := r.buf[i]
	r.buf[i] = nil
	return snap, true
}

func (r *snapshotRing) clear() {
	*r = snapshotRing{}
}

// History tracks undoable mask states. Push must be called exactly once per
// discrete mutating user action (stroke start, canvas clear), before the
// mutation happens, never once per brush sample.
type History struct {
	undo snapshotRing
	redo snapshotRing
}

// Push records the current mask state as an undo point and invalidates any
// redo entries, evicting the oldest undo entry when at capacity.
func (h *History) Push(m *Mask) {
	h.undo.push(m.Snapshot())
	h.redo.clear()
}

// Undo moves the current mask state onto the redo stack and restores the
// most recent undo entry. It reports whether anything was undone; an empty
// undo stack is a no-op, not an error.
func (h *History) Undo(m *Mask) bool {
	snap, ok := h.undo.pop()
	if !ok {
		return false
	}
	h.redo.push(m.Snapshot())
	m.Restore(snap)
	return true
}

// Redo is the mirror of Undo.
func (h *History) Redo(m *Mask) bool {
	snap, ok := h.redo.pop()
	if !ok {
		return false
	}
	h.undo.push(m.Snapshot())
	m.Restore(snap)
	return true
}

// CanUndo reports whether an undo entry is available.
func (h *History) CanUndo() bool { return h.undo.count > 0 }

// CanRedo reports whether a redo entry is available.
func (h *History) CanRedo() bool { return h.redo.count > 0 }

// Clear drops all history, as when a snapshot is loaded over the canvas.
func (h *History) Clear() {
	h.undo.clear()
	h.redo.clear()
}
