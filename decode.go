package gdelta

import (
	"fmt"

	"github.com/tomarus/gdelta/errs"
	"github.com/tomarus/gdelta/format"
	"github.com/tomarus/gdelta/internal/varint"
)

// Decode reconstructs New from a delta produced by Encode and the same Base
// buffer used to produce it. Decode is a single linear pass with no
// lookahead and no dynamic table: it parses the header, then repeatedly
// parses one instruction and appends the bytes it names to the output
// buffer.
func Decode(delta, base []byte) ([]byte, error) {
	if len(delta) > maxInputLen || len(base) > maxInputLen {
		return nil, errs.ErrInputTooLarge
	}

	hdr, err := parseHeader(delta)
	if err != nil {
		return nil, err
	}

	// new_len is only a capacity hint; it is capped so that a corrupted
	// header cannot demand an arbitrarily large up-front allocation.
	out := make([]byte, 0, min(hdr.newLen, uint64(len(delta))+uint64(len(base))))
	body := delta[hdr.headerLength:]

	for len(body) > 0 {
		var err error
		out, body, err = decodeOneInstruction(out, body, base)
		if err != nil {
			return nil, err
		}
	}

	if uint64(len(out)) != hdr.newLen {
		return nil, fmt.Errorf("%w: got %d, want %d", errs.ErrLengthMismatch, len(out), hdr.newLen)
	}

	return out, nil
}

// decodeOneInstruction parses and applies a single instruction from the
// front of body, appending its bytes to out. It returns the extended output
// and the remaining (unconsumed) body.
func decodeOneInstruction(out, body, base []byte) ([]byte, []byte, error) {
	tag := body[0]
	rest := body[1:]

	switch tag {
	case format.TagCopy:
		baseOffset, n1, err := varint.Read(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("gdelta: parsing copy base_offset: %w", err)
		}
		rest = rest[n1:]

		length, n2, err := varint.Read(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("gdelta: parsing copy length: %w", err)
		}
		rest = rest[n2:]

		end := baseOffset + length
		if end > uint64(len(base)) || end < baseOffset {
			return nil, nil, errs.ErrCopyOutOfRange
		}

		out = append(out, base[baseOffset:end]...)

		return out, rest, nil

	case format.TagLiteral:
		length, n1, err := varint.Read(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("gdelta: parsing literal length: %w", err)
		}
		rest = rest[n1:]

		if uint64(len(rest)) < length {
			return nil, nil, errs.ErrTruncated
		}

		out = append(out, rest[:length]...)
		rest = rest[length:]

		return out, rest, nil

	default:
		return nil, nil, fmt.Errorf("%w: 0x%02x", errs.ErrBadInstructionTag, tag)
	}
}
