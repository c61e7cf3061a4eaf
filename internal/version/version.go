package version

import (
	"fmt"
	"runtime"
)

// Version and Commit are overridden at build time with
// -ldflags "-X .../internal/version.Version=... -X .../internal/version.Commit=...".
var (
	Version = "dev"
	Commit  = "none"
)

// String describes the build: version, commit and the Go toolchain and
// platform it was built for.
func String() string {
	return fmt.Sprintf("%s (commit %s, %s %s/%s)", Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
