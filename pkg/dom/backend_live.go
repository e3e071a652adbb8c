//go:build !graft_nodom

package dom

// Default returns the backend selected at build time: Live unless the build
// carries the graft_nodom tag.
func Default() Backend {
	return LiveBackend{}
}
