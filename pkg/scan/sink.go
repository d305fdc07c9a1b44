package scan

// Sink receives every SizeUpdate emitted by a Scanner. Notify may be called
// from multiple goroutines concurrently and should return quickly; a slow
// sink stalls the scan that produced the update.
type Sink interface {
	Notify(update SizeUpdate)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(update SizeUpdate)

func (f SinkFunc) Notify(update SizeUpdate) {
	f(update)
}

// ChannelSink forwards every update into a buffered channel. The consumer
// must drain C for the lifetime of the scan or producers will block once
// the buffer fills.
type ChannelSink struct {
	C chan SizeUpdate
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelSink{C: make(chan SizeUpdate, buffer)}
}

func (s *ChannelSink) Notify(update SizeUpdate) {
	s.C <- update
}
