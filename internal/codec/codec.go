// Package codec encodes resolver reports and decodes secret files.
package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Codec reads and writes one serialization format
type Codec interface {
	Encode(w io.Writer, v any) error
	Decode(data []byte, v any) error
	Format() string
}

// ForFormat returns the codec for a format name such as "json" or "yaml"
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json", "jsonc":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// ForPath picks a codec from the file extension. Files without a known
// extension are treated as YAML, which also accepts plain JSON.
func ForPath(path string) Codec {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if c, err := ForFormat(ext); err == nil {
		return c
	}
	return NewYAMLCodec()
}

// DecodeFile decodes data read from path using the codec for its extension
func DecodeFile(path string, data []byte, v any) error {
	if err := ForPath(path).Decode(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
