package filedeps

// Package filedeps validates that a manifest file correctly declares a set of
// file-based dependencies and reports precisely which property is missing,
// empty, malformed or points at a file that does not exist.
//
// It provides:
//
// - A Result/Error core with code-only error equality and dotted, machine-readable codes
// - A decoder-agnostic property locator over slash-separated paths ("data/items")
// - Three extraction strategies: single file, array of files, array of objects with a file field
// - A declarative FormatSpec builder assembling nested Dependencies trees
//
// Design policy:
// - Keep the public API in the root package; put manifest decoders under source/ and the CLI under cmd/filedeps.
// - Every fallible operation returns a Result; the first failure short-circuits the whole pass.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	import _ "github.com/pfragkiad/filedeps/source/jsonc"
//
//	spec := filedeps.NewFormat("build").
//		Single("source").Required().
//		Multi("data/items").
//		Spec()
//	v := filedeps.NewValidator("FileValidator")
//	res := v.Validate("build.json", spec)
//	if res.IsFailure() {
//		log.Fatal(res.Err())
//	}
//	deps := res.Value()
