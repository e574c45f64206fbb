package markup

import (
	"github.com/maloquacious/semver"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 3,
		Patch: 0,
		Build: semver.Commit(),
	}
)

// Version returns version of the markup translator, build part is the VCS revision the binary is built from.
func Version() semver.Version {
	return version
}
