package filedeps

import "path/filepath"

// ResolvePath resolves a path declared inside a manifest against the manifest
// file's directory. Absolute declarations pass through untouched; relative ones
// are joined to the directory of manifestPath. Pure function, no I/O.
func ResolvePath(declared, manifestPath string) string {
	if filepath.IsAbs(declared) {
		return declared
	}
	return filepath.Join(filepath.Dir(manifestPath), declared)
}
