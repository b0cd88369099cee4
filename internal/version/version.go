// Package version provides build information of the binaries
package version

import (
	"fmt"
	"runtime"
)

// set by the linker: -ldflags "-X github.com/effective-security/keysign/internal/version.Version=..."
var (
	Version = "0.0.0"
	Commit  = ""
)

// Info describes the build
type Info struct {
	Version   string
	Commit    string
	GoVersion string
}

// Current returns the build information of the running binary
func Current() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	if i.Commit == "" {
		return fmt.Sprintf("%s (%s)", i.Version, i.GoVersion)
	}
	return fmt.Sprintf("%s-%s (%s)", i.Version, i.Commit, i.GoVersion)
}
