package history

type Kind string

const (
	Seed   Kind = "seed"   // original document text, offset is always 0
	Insert Kind = "insert" // text added at Offset
	Delete Kind = "delete" // text removed at Offset, only its length matters at replay
)

// Record is one logged edit. It is plain data, nothing is validated here.
// Text is the caller's string, the log never copies it. Offset is a byte
// position in the document as it exists right before this record is folded,
// keeping it in range is the caller's job.
type Record struct {
	Kind   Kind
	Text   string
	Offset int
}
