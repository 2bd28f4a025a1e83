package gdelta

import (
	"github.com/tomarus/gdelta/errs"
	"github.com/tomarus/gdelta/format"
	"github.com/tomarus/gdelta/internal/gear"
	"github.com/tomarus/gdelta/internal/index"
	"github.com/tomarus/gdelta/internal/match"
	"github.com/tomarus/gdelta/internal/pool"
)

// maxInputLen bounds how large Base or New may be before Encode/Decode
// refuse the call with errs.ErrInputTooLarge.
const maxInputLen = 1 << 48

// Encode produces a delta such that Decode(Encode(new, base), base) == new.
// Encode is deterministic, reentrant, and performs no I/O; it borrows new
// and base for the call and returns a freshly allocated delta buffer.
func Encode(new, base []byte) ([]byte, error) {
	if len(new) > maxInputLen || len(base) > maxInputLen {
		return nil, errs.ErrInputTooLarge
	}

	instructions := planInstructions(new, base)

	buf := pool.Get()
	defer pool.Put(buf)

	if cap(buf.B) < estimateDeltaSize(instructions) {
		buf.B = make([]byte, 0, estimateDeltaSize(instructions))
	}

	buf.B = appendHeader(buf.B, len(new), len(base))
	for _, ins := range instructions {
		buf.B = appendInstruction(buf.B, ins)
	}

	// Encode promises a freshly allocated, caller-owned result,
	// so the pooled backing array is copied out before it goes back in the
	// pool for reuse.
	out := append([]byte(nil), buf.B...)

	return out, nil
}

// estimateDeltaSize is a cheap upper-bound estimate used only to pre-size
// the output buffer: header plus one tag byte and up to two 10-byte varints
// per instruction, plus literal payloads. It need not be exact; Encode
// still appends past it if the estimate is ever short.
func estimateDeltaSize(instructions []instruction) int {
	size := format.HeaderMinSize
	for _, ins := range instructions {
		size += 1 + 2*10
		if !ins.isCopy {
			size += len(ins.literal)
		}
	}

	return size
}

// planInstructions implements the full encoder algorithm: p and s (the
// common prefix/suffix of New and Base) are computed once and shared by
// both the trivial form and the general case, since the general case also
// splices prefix/suffix copies around whatever the sampled scan finds in
// the stripped middle.
func planInstructions(new, base []byte) []instruction {
	p := match.CommonPrefix(new, base)
	s := match.CommonSuffix(new[p:], base[p:])

	if p+s >= min(len(new), len(base)) {
		return trivialInstructions(new, base, p, s)
	}

	var out []instruction
	if p > 0 {
		out = append(out, copyInstruction(0, p))
	}

	out = append(out, scanMiddle(new[p:len(new)-s], base)...)

	if s > 0 {
		out = append(out, copyInstruction(len(base)-s, s))
	}

	return out
}

// trivialInstructions handles the case where the common prefix and suffix
// already cover everything worth copying. The suffix copy's base_offset is
// computed from len(base), never from len(new) — using len(new) there
// corrupts output whenever len(new) > len(base).
func trivialInstructions(new, base []byte, p, s int) []instruction {
	var out []instruction
	if p > 0 {
		out = append(out, copyInstruction(0, p))
	}
	if mid := new[p : len(new)-s]; len(mid) > 0 {
		out = append(out, literalInstruction(mid))
	}
	if s > 0 {
		out = append(out, copyInstruction(len(base)-s, s))
	}

	return out
}

// scanMiddle runs the sampled-scan/extend/emit loop over mid (the stripped
// middle of New) against the full base index.
func scanMiddle(mid, base []byte) []instruction {
	if len(mid) == 0 {
		return nil
	}

	var out []instruction
	idx := index.Build(base, WordSize, SampleRate)

	litStart := 0 // start offset (in mid) of the pending literal run
	i := 0
	missRun := 0

	flushLiteral := func(end int) {
		if end > litStart {
			out = append(out, literalInstruction(mid[litStart:end]))
		}
	}

	for i+WordSize <= len(mid) {
		f := gear.Sum(mid[i : i+WordSize])
		b, ok := idx.Lookup(f)
		if !ok {
			missRun++
			if missRun >= skipStride {
				i += WordSize
			} else {
				i++
			}

			continue
		}

		// match.Extend's backward scan is bounded to mid[litStart:i], so it
		// can never reclaim bytes belonging to an already-emitted
		// instruction.
		back, fwd := match.Extend(mid[litStart:i], mid[i:], base[:b], base[b:])

		total := back + fwd
		if total < WordSize {
			// False match: too short to be worth a Copy instruction.
			missRun++
			i++

			continue
		}

		missRun = 0
		flushLiteral(i - back)
		out = append(out, copyInstruction(b-back, total))
		litStart = i + fwd
		i = litStart
	}

	flushLiteral(len(mid))

	return out
}
