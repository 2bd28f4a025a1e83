// Package format defines the wire-level constants for the raw gdelta format:
// the header layout, magic sentinel, and instruction tag bytes. It holds no
// behavior, only the byte-level contract that the encoder writes and the
// decoder parses, separated from the code that produces or consumes them.
package format

// Magic is the 4-byte sentinel that opens every raw delta. It does not
// collide with the compression wrapper's "RAW\0"/"ZST\0"/"LZ4\0" tags
// (see gdelta/compress), which are a distinct, outer framing.
var Magic = [4]byte{'G', 'D', 'L', 'T'}

// Version is the only header version this implementation emits or accepts.
const Version uint8 = 1

// HeaderMinSize is the smallest possible encoded header: magic + version +
// flags + a one-byte new_len varint + a one-byte base_len_hint varint.
const HeaderMinSize = len(Magic) + 1 + 1 + 1 + 1

// Tag identifies the variant of an instruction in the delta body.
type Tag = byte

const (
	// TagLiteral marks a length-prefixed run of raw bytes.
	TagLiteral Tag = 0x00
	// TagCopy marks a (base_offset, length) reference into Base.
	TagCopy Tag = 0x01
)
