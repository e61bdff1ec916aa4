package filedeps

import (
	"fmt"
	"os"
	"strings"
)

// The three extractors share one five-step policy: locate the field, check its
// shape, apply the emptiness policy, resolve each declared path and check the
// file exists, and (for arrays) apply the blank-element skip policy. The first
// failure aborts the extraction; no partial collection is ever returned.

// SingleFileDep extracts a dependency on one file from the property at
// propertyPath. A blank value is tolerated for optional dependencies (the
// empty sentinel is returned, the existence check never runs) and is an
// Empty{Field} failure for required ones.
func (v *Validator) SingleFileDep(root Node, propertyPath, manifestPath string, optional bool) Result[*SingleFileDependency, *ValidationError] {
	loc := v.Locate(root, propertyPath, manifestPath)
	if loc.IsFailure() {
		return Fail[*SingleFileDependency](loc.Err())
	}
	return v.singleFileAt(loc.Value(), propertyPath, propertyPath, manifestPath, optional, -1)
}

// singleFileAt runs the blank/resolve/exists steps against an already located
// node. depName is the name recorded on the dependency, field the property the
// codes are built from; index >= 0 tags array-element messages.
func (v *Validator) singleFileAt(node Node, depName, field, manifestPath string, optional bool, index int) Result[*SingleFileDependency, *ValidationError] {
	declared, _ := node.Text()
	if strings.TrimSpace(declared) == "" {
		if optional {
			return Ok[*SingleFileDependency, *ValidationError](EmptySingleFileDependency(depName, optional))
		}
		msg := fmt.Sprintf("required property %q in %q has no file name", field, manifestPath)
		if index >= 0 {
			msg = fmt.Sprintf("required property %q in %q has no file name at index %d", field, manifestPath, index)
		}
		return Fail[*SingleFileDependency](v.fail(v.code(codeVerbEmpty, field), msg))
	}

	full := ResolvePath(declared, manifestPath)
	if _, err := os.Stat(full); err != nil {
		msg := fmt.Sprintf("file %q declared by property %q in %q does not exist", declared, field, manifestPath)
		if index >= 0 {
			msg = fmt.Sprintf("file %q declared by property %q in %q at index %d does not exist", declared, field, manifestPath, index)
		}
		return Fail[*SingleFileDependency](v.fail(v.codeNotFound(field), msg))
	}
	return Ok[*SingleFileDependency, *ValidationError](&SingleFileDependency{
		Name:     depName,
		Optional: optional,
		File:     &SingleFile{FileName: declared, FullPath: full},
	})
}

// MultipleFilesDep extracts a dependency on an array of file names at
// propertyPath. An empty array is always an Empty{Field} failure, optional or
// not. Blank elements are silently dropped when the dependency is optional and
// are a hard failure (with the zero-based index) when it is required.
func (v *Validator) MultipleFilesDep(root Node, propertyPath, manifestPath string, optional bool) Result[*MultipleFilesDependency, *ValidationError] {
	loc := v.Locate(root, propertyPath, manifestPath)
	if loc.IsFailure() {
		return Fail[*MultipleFilesDependency](loc.Err())
	}
	node := loc.Value()
	if !node.IsArray() {
		return Fail[*MultipleFilesDependency](v.fail(
			v.code(codeVerbInvalid, propertyPath),
			fmt.Sprintf("property %q in %q is not an array", propertyPath, manifestPath),
		))
	}
	items := node.Items()
	if len(items) == 0 {
		return Fail[*MultipleFilesDependency](v.fail(
			v.code(codeVerbEmpty, propertyPath),
			fmt.Sprintf("array %q in %q is empty", propertyPath, manifestPath),
		))
	}

	files := make([]SingleFile, 0, len(items))
	for i, item := range items {
		declared, _ := item.Text()
		if strings.TrimSpace(declared) == "" {
			if optional {
				continue
			}
			return Fail[*MultipleFilesDependency](v.fail(
				v.code(codeVerbEmpty, propertyPath),
				fmt.Sprintf("array %q in %q has no file name at index %d", propertyPath, manifestPath, i),
			))
		}
		full := ResolvePath(declared, manifestPath)
		if _, err := os.Stat(full); err != nil {
			return Fail[*MultipleFilesDependency](v.fail(
				v.codeNotFound(propertyPath),
				fmt.Sprintf("file %q declared by array %q in %q at index %d does not exist", declared, propertyPath, manifestPath, i),
			))
		}
		files = append(files, SingleFile{FileName: declared, FullPath: full})
	}
	return Ok[*MultipleFilesDependency, *ValidationError](&MultipleFilesDependency{
		Name:     propertyPath,
		Optional: optional,
		Files:    files,
	})
}

// FileObjectsDep extracts one single-file dependency per element of the array
// at arrayPath, reading each element's fileField. The outer array is shape-
// and emptiness-checked like MultipleFilesDep; each element then goes through
// the full single-file steps against its own scope. Resulting dependencies are
// named "{arrayPath}/{fileField}[{i}]" so repeated fields stay addressable.
// Any element failure aborts the whole array.
func (v *Validator) FileObjectsDep(root Node, arrayPath, fileField, manifestPath string, optional bool) Result[[]*SingleFileDependency, *ValidationError] {
	loc := v.Locate(root, arrayPath, manifestPath)
	if loc.IsFailure() {
		return Fail[[]*SingleFileDependency](loc.Err())
	}
	node := loc.Value()
	if !node.IsArray() {
		return Fail[[]*SingleFileDependency](v.fail(
			v.code(codeVerbInvalid, arrayPath),
			fmt.Sprintf("property %q in %q is not an array", arrayPath, manifestPath),
		))
	}
	items := node.Items()
	if len(items) == 0 {
		return Fail[[]*SingleFileDependency](v.fail(
			v.code(codeVerbEmpty, arrayPath),
			fmt.Sprintf("array %q in %q is empty", arrayPath, manifestPath),
		))
	}

	deps := make([]*SingleFileDependency, 0, len(items))
	for i, item := range items {
		elemLoc := v.Locate(item, fileField, manifestPath)
		if elemLoc.IsFailure() {
			return Fail[[]*SingleFileDependency](elemLoc.Err())
		}
		name := fmt.Sprintf("%s/%s[%d]", arrayPath, fileField, i)
		one := v.singleFileAt(elemLoc.Value(), name, fileField, manifestPath, optional, i)
		if one.IsFailure() {
			return Fail[[]*SingleFileDependency](one.Err())
		}
		deps = append(deps, one.Value())
	}
	return Ok[[]*SingleFileDependency, *ValidationError](deps)
}
