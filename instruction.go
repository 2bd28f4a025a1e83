package gdelta

// instruction is the encoder's in-memory representation of one delta
// operation before serialization: either a Copy from Base or a Literal run.
// Exactly one of the two forms is populated; which one is indicated by
// isCopy.
//
// literal holds a borrowed slice into New for the lifetime of Encode —
// it's copied into the output buffer once, by appendInstruction.
type instruction struct {
	isCopy bool

	// Copy fields.
	baseOffset int
	length     int

	// Literal field.
	literal []byte
}

func copyInstruction(baseOffset, length int) instruction {
	return instruction{isCopy: true, baseOffset: baseOffset, length: length}
}

func literalInstruction(b []byte) instruction {
	return instruction{isCopy: false, literal: b}
}
