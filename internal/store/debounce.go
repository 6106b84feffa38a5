package store

// Debouncer tracks the one outstanding save of an event loop. Each Schedule
// supersedes the previous generation; only the newest generation is due when
// its timer fires. It is not safe for concurrent use; the owning event loop
// serializes calls.
type Debouncer struct {
	gen     uint64
	pending bool
	skip    bool
}

// Schedule starts a new quiet window and returns its generation. After
// SkipNext it consumes the flag, cancels any pending save and reports
// ok=false.
func (d *Debouncer) Schedule() (gen uint64, ok bool) {
	d.gen++
	if d.skip {
		d.skip = false
		d.pending = false
		return 0, false
	}
	d.pending = true
	return d.gen, true
}

// Fire reports whether gen is the newest pending generation and, if so,
// marks it done.
func (d *Debouncer) Fire(gen uint64) bool {
	if !d.pending || gen != d.gen {
		return false
	}
	d.pending = false
	return true
}

// Cancel drops any pending save.
func (d *Debouncer) Cancel() {
	d.gen++
	d.pending = false
}

// SkipNext makes the next Schedule a no-op.
func (d *Debouncer) SkipNext() {
	d.skip = true
}

// Pending reports whether a save is waiting for its window to elapse.
func (d *Debouncer) Pending() bool {
	return d.pending
}
