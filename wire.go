package gdelta

import (
	"fmt"

	"github.com/tomarus/gdelta/errs"
	"github.com/tomarus/gdelta/format"
	"github.com/tomarus/gdelta/internal/varint"
)

// header is the parsed form of a delta's fixed preamble.
type header struct {
	version      byte
	flags        byte
	newLen       uint64
	baseLenHint  uint64
	headerLength int // bytes consumed parsing the header, i.e. where the body starts
}

// appendHeader writes the magic, version, flags, and the two length varints
// to dst and returns the extended slice.
func appendHeader(dst []byte, newLen, baseLenHint int) []byte {
	dst = append(dst, format.Magic[:]...)
	dst = append(dst, format.Version, 0)
	dst = varint.Append(dst, uint64(newLen))
	dst = varint.Append(dst, uint64(baseLenHint))

	return dst
}

// parseHeader reads and validates the fixed preamble of a delta.
func parseHeader(delta []byte) (header, error) {
	if len(delta) < len(format.Magic)+2 {
		return header{}, fmt.Errorf("gdelta: parsing header: %w", errs.ErrTruncated)
	}

	var magic [4]byte
	copy(magic[:], delta[:4])
	if magic != format.Magic {
		return header{}, errs.ErrBadMagic
	}

	version := delta[4]
	if version != format.Version {
		return header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	flags := delta[5]
	if flags != 0 {
		return header{}, fmt.Errorf("gdelta: reserved flags byte is non-zero: %w", errs.ErrUnsupportedVersion)
	}

	off := 6
	newLen, n, err := varint.Read(delta[off:])
	if err != nil {
		return header{}, fmt.Errorf("gdelta: parsing new_len: %w", err)
	}
	off += n

	baseLenHint, n, err := varint.Read(delta[off:])
	if err != nil {
		return header{}, fmt.Errorf("gdelta: parsing base_len_hint: %w", err)
	}
	off += n

	return header{
		version:      version,
		flags:        flags,
		newLen:       newLen,
		baseLenHint:  baseLenHint,
		headerLength: off,
	}, nil
}

// appendInstruction serializes one instruction and appends it to dst.
func appendInstruction(dst []byte, ins instruction) []byte {
	if ins.isCopy {
		dst = append(dst, format.TagCopy)
		dst = varint.Append(dst, uint64(ins.baseOffset))
		dst = varint.Append(dst, uint64(ins.length))

		return dst
	}

	dst = append(dst, format.TagLiteral)
	dst = varint.Append(dst, uint64(len(ins.literal)))
	dst = append(dst, ins.literal...)

	return dst
}
