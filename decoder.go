package filedeps

import (
	"path/filepath"
	"strings"
	"sync"
)

// Decoder converts raw manifest bytes into the generic document tree NodeOf
// understands. Concrete decoders live under source/ and register themselves in
// an init function; importing a source package for side effects activates its
// dialect:
//
//	import _ "github.com/pfragkiad/filedeps/source/jsonc"
type Decoder interface {
	Name() string
	// Extensions lists the file extensions (with leading dot, lower case)
	// this decoder claims.
	Extensions() []string
	Decode(data []byte) (any, error)
}

var (
	decMu       sync.RWMutex
	decoders    = map[string]Decoder{}
	fallbackDec Decoder
)

// RegisterDecoder makes d available for the extensions it claims. Later
// registrations win on extension conflicts.
func RegisterDecoder(d Decoder) {
	decMu.Lock()
	defer decMu.Unlock()
	for _, ext := range d.Extensions() {
		decoders[strings.ToLower(ext)] = d
	}
}

// SetFallbackDecoder sets the decoder used for paths whose extension no
// registered decoder claims. The relaxed-JSON decoder installs itself as the
// fallback, so unknown extensions are treated as JSON documents.
func SetFallbackDecoder(d Decoder) {
	decMu.Lock()
	defer decMu.Unlock()
	fallbackDec = d
}

// DecoderForPath picks the decoder for a manifest path by extension, falling
// back to the fallback decoder. Returns nil when nothing is registered.
func DecoderForPath(path string) Decoder {
	decMu.RLock()
	defer decMu.RUnlock()
	if d, ok := decoders[strings.ToLower(filepath.Ext(path))]; ok {
		return d
	}
	return fallbackDec
}
