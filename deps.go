package filedeps

import "strings"

// SingleFile pairs a file name as declared in the manifest (possibly relative)
// with its resolved absolute path.
type SingleFile struct {
	FileName string
	FullPath string
}

// IsEmpty reports whether no file name was declared.
func (f SingleFile) IsEmpty() bool { return strings.TrimSpace(f.FileName) == "" }

// SingleFileDependency is a named dependency on one file. An instance with a
// name but no file is the valid sentinel for an absent optional dependency,
// distinct from a validation failure.
type SingleFileDependency struct {
	Name     string
	Optional bool
	File     *SingleFile
}

// IsEmpty reports whether the dependency carries no file.
func (d *SingleFileDependency) IsEmpty() bool {
	return d == nil || d.File == nil || d.File.IsEmpty()
}

// EmptySingleFileDependency returns the sentinel for an optional dependency
// whose field was blank.
func EmptySingleFileDependency(name string, optional bool) *SingleFileDependency {
	return &SingleFileDependency{Name: name, Optional: optional}
}

// MultipleFilesDependency is a named dependency on an ordered list of files.
// Blank entries are dropped during extraction and never appear here.
type MultipleFilesDependency struct {
	Name     string
	Optional bool
	Files    []SingleFile
}

// Dependencies is the typed tree a successful validation produces: the named
// node plus its single-file, multiple-file and nested sub-dependency
// collections. It is a tree, not a graph; each child is owned by exactly one
// parent and nothing is mutated after the validation pass.
type Dependencies struct {
	Name            string
	MultipleFiles   []*MultipleFilesDependency
	SingleFiles     []*SingleFileDependency
	Subdependencies []*Dependencies
}

// Single returns the first single-file dependency with the given name, or nil.
func (d *Dependencies) Single(name string) *SingleFileDependency {
	for _, s := range d.SingleFiles {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Multiple returns the first multiple-files dependency with the given name, or
// nil.
func (d *Dependencies) Multiple(name string) *MultipleFilesDependency {
	for _, m := range d.MultipleFiles {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Sub returns the first nested Dependencies node with the given name, or nil.
func (d *Dependencies) Sub(name string) *Dependencies {
	for _, s := range d.Subdependencies {
		if s.Name == name {
			return s
		}
	}
	return nil
}
