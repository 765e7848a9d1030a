// Package pysrc reads Python source files: it sniffs the declared text
// encoding, decodes the content to UTF-8, parses it into a syntax tree
// tagged as an executable module, and lowers valid trees into code
// objects.
package pysrc

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding applies when neither a BOM nor a coding comment is
// present.
const DefaultEncoding = "utf-8"

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}

	// PEP 263 coding declaration, valid on the first two lines only.
	codingRe = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-_.a-zA-Z0-9]+)`)
)

// Aliases Python uses that the IANA registry does not know under the same
// spelling.
var encodingAliases = map[string]string{
	"latin-1":     "latin1",
	"latin_1":     "latin1",
	"iso-latin-1": "latin1",
	"utf8":        "utf-8",
	"utf16":       "utf-16",
}

// DetectEncoding returns the text encoding of Python source bytes: a
// byte-order mark wins, then a coding comment on line one or two, then
// DefaultEncoding.
func DetectEncoding(src []byte) string {
	if bytes.HasPrefix(src, bomUTF8) {
		return "utf-8"
	}
	if bytes.HasPrefix(src, bomUTF16LE) || bytes.HasPrefix(src, bomUTF16BE) {
		return "utf-16"
	}
	lines := bytes.SplitN(src, []byte("\n"), 3)
	for i := 0; i < len(lines) && i < 2; i++ {
		if m := codingRe.FindSubmatch(lines[i]); m != nil {
			return string(m[1])
		}
	}
	return DefaultEncoding
}

// Decode converts source bytes to UTF-8 according to the detected
// encoding, stripping any leading byte-order mark.
func Decode(src []byte) ([]byte, error) {
	name := normalizeEncoding(DetectEncoding(src))
	switch name {
	case "utf-8":
		return bytes.TrimPrefix(src, bomUTF8), nil
	case "utf-16":
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := decoder.Bytes(src)
		if err != nil {
			return nil, fmt.Errorf("failed to decode utf-16 source: %w", err)
		}
		return out, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown source encoding %q", name)
	}
	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s source: %w", name, err)
	}
	return out, nil
}

func normalizeEncoding(name string) string {
	name = strings.ToLower(name)
	if alias, ok := encodingAliases[name]; ok {
		return alias
	}
	return name
}
