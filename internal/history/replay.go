package history

import (
	"errors"
	"fmt"
)

var (
	ErrInsertOutOfRange = errors.New("insert offset out of range")
	ErrDeleteOutOfRange = errors.New("delete range out of range")
)

// Replay folds records 0..cursor in order into the current document bytes.
// The log is not touched, the same log and cursor always give the same bytes.
// A record whose offset does not fit the buffer built so far is a caller
// precondition violation, Replay reports it as a range error naming the
// record instead of corrupting the buffer.
func (l *Log) Replay() ([]byte, error) {
	buf := []byte{}
	for i := 0; i <= l.cursor; i++ {
		r := l.records[i]
		switch r.Kind {
		case Seed:
			buf = append(buf, r.Text...)
		case Insert:
			if r.Offset < 0 || r.Offset >= len(buf) {
				return nil, fmt.Errorf("%w: record %d offset %d buffer %d",
					ErrInsertOutOfRange, i, r.Offset, len(buf))
			}
			buf = append(buf[:r.Offset], append([]byte(r.Text), buf[r.Offset:]...)...)
		case Delete:
			end := r.Offset + len(r.Text)
			if r.Offset < 0 || end > len(buf) {
				return nil, fmt.Errorf("%w: record %d offset %d length %d buffer %d",
					ErrDeleteOutOfRange, i, r.Offset, len(r.Text), len(buf))
			}
			buf = append(buf[:r.Offset], buf[end:]...)
		}
	}
	return buf, nil
}
