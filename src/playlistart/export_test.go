package playlistart

// Flush blocks until the Builder loop has handled every event posted before
// the call.
func (b *Builder) Flush() {
	flushed := make(chan struct{})
	b.queue.post(event{kind: eventFlush, flushed: flushed})
	<-flushed
}

// HasCanvas tells whether the Builder currently holds a canvas.
func (b *Builder) HasCanvas() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.comp.hasCanvas()
}
