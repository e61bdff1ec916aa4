package filedeps

import (
	"fmt"
	"os"
	"strings"
)

// Format is the per-file-format hook: given the decoded document tree and the
// absolute manifest path, it assembles the Dependencies tree by composing
// Locate and the extractor methods. The engine imposes no structural policy of
// its own; FormatSpec provides the declarative implementation most callers
// use.
type Format interface {
	Dependencies(v *Validator, root Node, manifestPath string) Result[*Dependencies, *ValidationError]
}

// FormatFunc adapts a plain function into a Format.
type FormatFunc func(v *Validator, root Node, manifestPath string) Result[*Dependencies, *ValidationError]

func (fn FormatFunc) Dependencies(v *Validator, root Node, manifestPath string) Result[*Dependencies, *ValidationError] {
	return fn(v, root, manifestPath)
}

// ValidatorOpt carries the optional collaborators of a Validator.
type ValidatorOpt struct {
	// Sink receives every failure this validator produces; nil disables
	// reporting.
	Sink Sink
	// Severity is the level failures are reported at when Sink is set.
	Severity Severity
}

// Validator runs a single-pass, depth-first validation of one manifest file.
// The name becomes the prefix of every error code the validator produces
// ("{Name}.MissingSource" and so on), which is the machine-readable taxonomy
// consumers parse. A Validator holds no per-run state and is safe for
// concurrent use; each Validate call owns its entire result tree.
type Validator struct {
	name     string
	sink     Sink
	severity Severity
}

// NewValidator creates a validator with the given code-prefix name, commonly
// "FileValidator".
func NewValidator(name string, opt ...ValidatorOpt) *Validator {
	v := &Validator{name: name, severity: SeverityError}
	if len(opt) > 0 {
		v.sink = opt[0].Sink
		v.severity = opt[0].Severity
	}
	return v
}

// Name returns the code-prefix name.
func (v *Validator) Name() string { return v.name }

// fail is the single construction point for validation failures: it builds the
// error, pushes it to the sink when one is attached, and returns it. Failures
// are constructed exactly once and then propagate unchanged, so nothing is
// ever reported twice.
func (v *Validator) fail(code, message string, details ...string) *ValidationError {
	err := NewError(code, message, details...)
	if v.sink != nil {
		v.sink.Report(v.severity, err)
	}
	return err
}

func (v *Validator) code(verb, propertyPath string) string {
	return v.name + "." + verb + fieldToken(propertyPath)
}

func (v *Validator) codeNotFound(propertyPath string) string {
	return v.name + "." + fieldToken(propertyPath) + codeSuffixAbsent
}

// Locate walks a slash-separated property path down from root, descending one
// object level per segment. It short-circuits at the first missing segment:
// the error names exactly that segment and later segments are never looked at.
func (v *Validator) Locate(root Node, propertyPath, sourceLabel string) Result[Node, *ValidationError] {
	node := root
	for _, segment := range strings.Split(propertyPath, "/") {
		child, ok := node.Child(segment)
		if !ok {
			return Fail[Node](v.fail(
				v.code(codeVerbMissing, segment),
				fmt.Sprintf("property %q is missing from %q", segment, sourceLabel),
			))
		}
		node = child
	}
	return Ok[Node, *ValidationError](node)
}

// Validate is the top-level driver: it checks the manifest path, reads and
// decodes the document, then delegates tree assembly to the format hook. The
// first failure anywhere aborts the pass and becomes the overall result; there
// is no aggregation mode.
func (v *Validator) Validate(path string, f Format) (res Result[*Dependencies, *ValidationError]) {
	if strings.TrimSpace(path) == "" {
		return Fail[*Dependencies](v.fail(
			v.name+"."+codeEmptyFilePath,
			"no manifest file path was given",
		))
	}
	if _, err := os.Stat(path); err != nil {
		return Fail[*Dependencies](v.fail(
			v.name+"."+codeFilePathNotFound,
			fmt.Sprintf("manifest file %q does not exist", path),
		))
	}

	// Anything unexpected past this point surfaces as a single Exception
	// failure carrying the underlying message as a detail.
	defer func() {
		if r := recover(); r != nil {
			res = Fail[*Dependencies](v.fail(
				v.name+"."+codeException,
				fmt.Sprintf("validation of %q failed unexpectedly", path),
				fmt.Sprint(r),
			))
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return Fail[*Dependencies](v.fail(
			v.name+"."+codeException,
			fmt.Sprintf("manifest file %q could not be read", path),
			err.Error(),
		))
	}

	dec := DecoderForPath(path)
	if dec == nil {
		return Fail[*Dependencies](v.fail(
			v.name+"."+codeException,
			fmt.Sprintf("no decoder is registered for %q", path),
		))
	}
	tree, err := dec.Decode(data)
	if err != nil {
		return Fail[*Dependencies](v.fail(
			v.name+"."+codeJSONParseError,
			fmt.Sprintf("manifest file %q is not a valid %s document", path, dec.Name()),
			err.Error(),
		))
	}

	return f.Dependencies(v, NodeOf(tree), path)
}
