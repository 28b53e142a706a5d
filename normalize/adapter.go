package normalize

// Adapter implements the engine's Normalizer collaborator interface
// (NormalizeQuery, CleanQuery, SoundexFR) against this package's pure
// functions of the same names.
type Adapter struct{}

// NewAdapter constructs the default Normalizer adapter.
func NewAdapter() Adapter { return Adapter{} }

// NormalizeQuery implements engine.Normalizer.
func (Adapter) NormalizeQuery(s string) string { return NormalizeQuery(s) }

// CleanQuery implements engine.Normalizer.
func (Adapter) CleanQuery(s string) string { return CleanQuery(s) }

// SoundexFR implements engine.Normalizer.
func (Adapter) SoundexFR(s string) string { return SoundexFR(s) }
