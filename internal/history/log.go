package history

// Log is an append-only sequence of edit records plus a cursor.
// Records are never removed or changed once appended, only the cursor moves.
// Undo and redo are cursor moves, they do not drop records: appending after
// an undo keeps the undone records in the sequence and they fold back into
// the replayed document together with the new record.
// Not safe for concurrent use, whoever owns the log serializes access.
type Log struct {
	records []Record
	cursor  int // index of the current record, -1 when the log is empty
}

func NewLog() *Log {
	return &Log{cursor: -1}
}

// Append adds a record to the tail and makes it current.
func (l *Log) Append(kind Kind, text string, offset int) {
	l.records = append(l.records, Record{kind, text, offset})
	l.cursor = len(l.records) - 1
}

// Replace is delete + insert at the same offset, two records on the log.
// Undoing it fully takes two Undo calls, there is no atomic undo-pair.
func (l *Log) Replace(oldText string, newText string, offset int) {
	l.Append(Delete, oldText, offset)
	l.Append(Insert, newText, offset)
}

func (l *Log) Len() int { return len(l.records) }

// Cursor returns the index of the current record, -1 for an empty log.
func (l *Log) Cursor() int { return l.cursor }

func (l *Log) CanUndo() bool { return l.cursor > 0 }

func (l *Log) CanRedo() bool { return l.cursor < len(l.records)-1 }

// Undo moves the cursor one record back. At the first record or on an
// empty log it does nothing, the first record is always part of the fold.
func (l *Log) Undo() {
	if l.cursor <= 0 { return }
	l.cursor--
}

// Redo moves the cursor one record forward, doing nothing at the tail.
func (l *Log) Redo() {
	if l.cursor >= len(l.records)-1 { return }
	l.cursor++
}
