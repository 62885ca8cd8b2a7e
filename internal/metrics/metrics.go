// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Mutation metrics, labelled by entity ("invoice", "customer", "user")
	IncCreated(entity string)
	IncUpdated(entity string)
	IncDeleted(entity string)
	IncValidationFailed(entity string)
	IncPersistFailed(entity string)

	// Listing view cache metrics
	IncViewCacheHit()
	IncViewCacheMiss()

	// Credentials flow metrics
	IncLoginSuccess()
	IncLoginFailed()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
