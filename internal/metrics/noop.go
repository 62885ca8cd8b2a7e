package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncCreated is a no-op.
func (n *NoopRecorder) IncCreated(entity string) {}

// IncUpdated is a no-op.
func (n *NoopRecorder) IncUpdated(entity string) {}

// IncDeleted is a no-op.
func (n *NoopRecorder) IncDeleted(entity string) {}

// IncValidationFailed is a no-op.
func (n *NoopRecorder) IncValidationFailed(entity string) {}

// IncPersistFailed is a no-op.
func (n *NoopRecorder) IncPersistFailed(entity string) {}

// IncViewCacheHit is a no-op.
func (n *NoopRecorder) IncViewCacheHit() {}

// IncViewCacheMiss is a no-op.
func (n *NoopRecorder) IncViewCacheMiss() {}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}
