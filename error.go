package filedeps

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error is an immutable failure value with a machine-readable code, a
// human-readable message and an ordered list of secondary detail messages.
//
// NOTE: two Errors are defined equal iff their codes are equal; Message and
// Details never participate in equality. Consumers deduplicate and branch on
// codes alone, so the invariant is part of the public contract.
type Error[C comparable] struct {
	Code    C
	Message string
	Details []string
}

// NewError constructs an Error from a code, a message and optional details.
func NewError[C comparable](code C, message string, details ...string) *Error[C] {
	return &Error[C]{Code: code, Message: message, Details: details}
}

// Equals compares by code only (see the type comment).
func (e *Error[C]) Equals(other *Error[C]) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Code == other.Code
}

// Error renders the message followed by any details, making the value usable
// at stdlib error call sites.
func (e *Error[C]) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Details, "; ") + ")"
}

// ValidationError is the concrete error type produced by validators. Codes are
// dotted strings following the "{Validator}.{Verb}{Field}" convention, for
// example "FileValidator.MissingSource" or "FileValidator.SourceNotFound".
type ValidationError = Error[string]

// Verb prefixes/suffixes of the validation code taxonomy.
const (
	codeVerbMissing  = "Missing"
	codeVerbInvalid  = "Invalid"
	codeVerbEmpty    = "Empty"
	codeSuffixAbsent = "NotFound"
)

// Driver-level code stems (prefixed with the validator name at runtime).
const (
	codeEmptyFilePath    = "EmptyFilePath"
	codeFilePathNotFound = "FilePathNotFound"
	codeJSONParseError   = "JsonParseError"
	codeException        = "Exception"
)

// fieldToken reduces a slash-separated property path to the code token of its
// last segment: "data/items" becomes "Items".
func fieldToken(propertyPath string) string {
	seg := propertyPath
	if i := strings.LastIndexByte(seg, '/'); i >= 0 {
		seg = seg[i+1:]
	}
	if seg == "" {
		return seg
	}
	r, size := utf8.DecodeRuneInString(seg)
	return string(unicode.ToUpper(r)) + seg[size:]
}
