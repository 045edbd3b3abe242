package mapfs

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EntryType distinguishes directories from files in the encoded entry value.
type EntryType int

const (
	// Directory is an entry with an empty payload that anchors child paths.
	Directory EntryType = iota
	// File is an entry whose payload holds text or marked binary content.
	File
)

// entryDelimiter separates the type tag from the payload. Eight consecutive
// colons cannot plausibly appear inside a type tag.
const entryDelimiter = "::::::::"

// BinaryMarker prefixes base64-encoded binary payloads inside file entries.
const BinaryMarker = "BINARYFILE"

// String returns the wire tag of the entry type.
func (t EntryType) String() string {
	switch t {
	case Directory:
		return "DIRECTORY"
	case File:
		return "FILE"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

// EncodeEntry packs an entry type and payload into a single store value.
func EncodeEntry(t EntryType, payload string) string {
	return t.String() + entryDelimiter + payload
}

// DecodeEntry splits a raw store value on the first delimiter occurrence and
// maps the left side back to an entry type. An unrecognized tag or a missing
// delimiter means the store holds a value this package never wrote; both
// wrap ErrStoreCorrupt.
func DecodeEntry(raw string) (EntryType, string, error) {
	parts := strings.SplitN(raw, entryDelimiter, 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("missing entry delimiter: %w", ErrStoreCorrupt)
	}
	switch parts[0] {
	case "DIRECTORY":
		return Directory, parts[1], nil
	case "FILE":
		return File, parts[1], nil
	default:
		return 0, "", fmt.Errorf("unknown entry type tag %q: %w", parts[0], ErrStoreCorrupt)
	}
}

// EncodeBinary converts raw bytes into a file payload: the binary marker
// followed by the base64 encoding of the bytes.
func EncodeBinary(data []byte) string {
	return BinaryMarker + base64.StdEncoding.EncodeToString(data)
}

// IsBinaryPayload reports whether a file payload carries the binary marker.
func IsBinaryPayload(payload string) bool {
	return strings.HasPrefix(payload, BinaryMarker)
}

// DecodeBinary strips the binary marker and decodes the base64 payload.
func DecodeBinary(payload string) ([]byte, error) {
	if !IsBinaryPayload(payload) {
		return nil, ErrNotBinary
	}
	data, err := base64.StdEncoding.DecodeString(payload[len(BinaryMarker):])
	if err != nil {
		return nil, fmt.Errorf("decode binary payload: %w", err)
	}
	return data, nil
}
