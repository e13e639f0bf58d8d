package commands

import (
	"fmt"
	"io"
	"runtime"
)

// RunVersion prints the application version and the Go runtime it was built with.
func RunVersion(writer io.Writer, version string) error {
	_, err := fmt.Fprintf(writer, "fibrohash %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}
