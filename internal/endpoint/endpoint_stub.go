//go:build !windows

package endpoint

import "fmt"

// System-wide per-channel endpoint volume is a Windows Core Audio feature;
// other platforms get a stub so the rest of the tree still builds.
func newSystem() (System, error) {
	return nil, fmt.Errorf("%w: endpoint volume control requires windows", ErrUnavailable)
}
