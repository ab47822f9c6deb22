package driven

// ConfigStore persists user-facing defaults between runs.
// The comparison core itself is stateless; only preferences such as the
// default threshold live here.
type ConfigStore interface {
	// Threshold returns the default alignment threshold.
	Threshold() int

	// HeaderKeywords returns extra running-header keywords to strip
	// during normalization, in addition to the built-in set.
	HeaderKeywords() []string

	// ReportPath returns the default report output path.
	// Empty means no report is written unless the caller asks.
	ReportPath() string

	// Save writes the current values back to the backing store.
	Save() error
}
