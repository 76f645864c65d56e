package engine

import "github.com/petrih/glaze/internal/grid"

// replayRecord pairs an action with the polarity it was recorded at. Keeping
// action and flag in one element makes the index-for-index pairing of the
// two logical queues hold by construction.
type replayRecord struct {
	action PaintAction
	isUndo bool
}

// ReplayTracker records a session's actions and plays them back in original
// order, each with its original undo/redo polarity.
//
// Recording is FIFO and bounded at TrackerCapacity; a full tracker silently
// drops further records. StartReplay only marks the transition from
// recording to playback; draining works the same either way.
type ReplayTracker struct {
	records   []replayRecord
	replaying bool
}

// NewReplayTracker creates an empty tracker in recording mode.
func NewReplayTracker() *ReplayTracker {
	return &ReplayTracker{
		records: make([]replayRecord, 0, 64),
	}
}

// Pending returns how many recorded actions have not been played yet.
func (t *ReplayTracker) Pending() int { return len(t.records) }

// Replaying reports whether StartReplay has been called.
func (t *ReplayTracker) Replaying() bool { return t.replaying }

// AddAction appends an action and its polarity as the last record. Draw,
// special, and redo operations record with isUndo false; an undone action
// records with isUndo true so playback inverts it at the same point. A full
// tracker drops the record silently.
func (t *ReplayTracker) AddAction(a PaintAction, isUndo bool) {
	if len(t.records) >= TrackerCapacity {
		return
	}
	t.records = append(t.records, replayRecord{action: a, isUndo: isUndo})
}

// StartReplay marks the switch from recording to playback.
func (t *ReplayTracker) StartReplay() {
	t.replaying = true
}

// PlayNextAction plays the oldest unplayed record against g. Returns true
// when there was nothing left to play (and g is untouched), false after a
// record was played.
func (t *ReplayTracker) PlayNextAction(g *grid.Grid) bool {
	if len(t.records) == 0 {
		return true
	}
	r := t.records[0]
	// Clear the slot so the drained prefix does not pin played actions.
	t.records[0] = replayRecord{}
	if len(t.records) == 1 {
		t.records = t.records[:0]
	} else {
		t.records = t.records[1:]
	}

	if r.isUndo {
		r.action.UndoApply(g)
	} else {
		r.action.RedoApply(g)
	}
	return false
}
