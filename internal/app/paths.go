package app

import (
	"os"
	"path/filepath"
)

// DefaultInputName is the page file looked up next to the binary.
const DefaultInputName = "fb_usecases.html"

// DefaultInputPath returns DefaultInputName in the directory of the running
// executable, or in the working directory when that cannot be resolved.
func DefaultInputPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultInputName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultInputName)
}
