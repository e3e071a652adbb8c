//go:build graft_nodom

package dom

// Default returns the backend selected at build time: Null under the
// graft_nodom tag.
func Default() Backend {
	return NullBackend{}
}
