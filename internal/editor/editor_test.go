package editor

import (
	"edlog/internal/history"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestEditor(text string) *Editor {
	e := &Editor{ROWS: 24, COLUMNS: 80}
	e.History = history.NewLog()
	e.History.Append(history.Seed, text, 0)
	e.Refresh()
	return e
}

func replayString(t *testing.T, e *Editor) string {
	t.Helper()
	text, err := e.History.Replay()
	if err != nil { t.Fatalf("replay failed: %v", err) }
	return string(text)
}

func TestOffsetAt(t *testing.T) {
	e := newTestEditor("ab\ncd\n")

	tests := []struct {
		name string
		row  int
		col  int
		want int
	}{
		{name: "start", row: 0, col: 0, want: 0},
		{name: "first line middle", row: 0, col: 1, want: 1},
		{name: "first line end", row: 0, col: 2, want: 2},
		{name: "second line start", row: 1, col: 0, want: 3},
		{name: "second line end", row: 1, col: 2, want: 5},
		{name: "col past the line", row: 0, col: 99, want: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.OffsetAt(tc.row, tc.col); got != tc.want {
				t.Errorf("OffsetAt(%d, %d) got %d, want %d", tc.row, tc.col, got, tc.want)
			}
		})
	}
}

func TestOffsetAtMultibyte(t *testing.T) {
	e := newTestEditor("héllo\n")

	// é is two bytes, one screen column
	if got := e.OffsetAt(0, 2); got != 3 {
		t.Errorf("OffsetAt(0, 2) got %d, want 3", got)
	}
}

func TestAddChar(t *testing.T) {
	e := newTestEditor("ac\n")
	e.Row, e.Col = 0, 1

	e.AddChar('b')

	if got := replayString(t, e); got != "abc\n" {
		t.Errorf("document got %q, want %q", got, "abc\n")
	}
	if e.Col != 2 { t.Errorf("Col got %d, want 2", e.Col) }
}

func TestOnEnterKeepsIndent(t *testing.T) {
	e := newTestEditor("\tfoo\n")
	e.Row, e.Col = 0, 4

	e.OnEnter()

	if got := replayString(t, e); got != "\tfoo\n\t\n" {
		t.Errorf("document got %q, want %q", got, "\tfoo\n\t\n")
	}
	if e.Row != 1 || e.Col != 1 {
		t.Errorf("cursor got %d:%d, want 1:1", e.Row, e.Col)
	}
}

func TestOnDeleteChar(t *testing.T) {
	e := newTestEditor("abc\n")
	e.Row, e.Col = 0, 2

	e.OnDelete()

	if got := replayString(t, e); got != "ac\n" {
		t.Errorf("document got %q, want %q", got, "ac\n")
	}
	if e.Col != 1 { t.Errorf("Col got %d, want 1", e.Col) }
}

func TestOnDeleteJoinsLines(t *testing.T) {
	e := newTestEditor("ab\ncd\n")
	e.Row, e.Col = 1, 0

	e.OnDelete()

	if got := replayString(t, e); got != "abcd\n" {
		t.Errorf("document got %q, want %q", got, "abcd\n")
	}
	if e.Row != 0 || e.Col != 2 {
		t.Errorf("cursor got %d:%d, want 0:2", e.Row, e.Col)
	}
}

func TestOnDeleteAtStartIsNoop(t *testing.T) {
	e := newTestEditor("ab\n")
	e.Row, e.Col = 0, 0

	e.OnDelete()

	if got := replayString(t, e); got != "ab\n" {
		t.Errorf("document got %q, want %q", got, "ab\n")
	}
	if e.History.Len() != 1 { t.Errorf("Len() got %d, want 1", e.History.Len()) }
}

func TestCommentToggle(t *testing.T) {
	e := newTestEditor("\tfoo\nbar\n")
	e.Row, e.Col = 0, 0

	e.OnCommentLine()
	if got := replayString(t, e); got != "\t//foo\nbar\n" {
		t.Errorf("after comment got %q, want %q", got, "\t//foo\nbar\n")
	}

	// uncomment goes through Replace, two more records
	lenBefore := e.History.Len()
	e.Row = 0
	e.OnCommentLine()
	if got := replayString(t, e); got != "\tfoo\nbar\n" {
		t.Errorf("after uncomment got %q, want %q", got, "\tfoo\nbar\n")
	}
	if e.History.Len() != lenBefore+2 {
		t.Errorf("Len() got %d, want %d", e.History.Len(), lenBefore+2)
	}
}

func TestUndoRedoThroughEditor(t *testing.T) {
	e := newTestEditor("ab\n")
	e.Row, e.Col = 0, 2
	e.AddChar('c')

	e.OnUndo()
	if got := strings.Join(linesOf(e), "|"); got != "ab" {
		t.Errorf("after undo got %q, want %q", got, "ab")
	}

	e.OnRedo()
	if got := strings.Join(linesOf(e), "|"); got != "abc" {
		t.Errorf("after redo got %q, want %q", got, "abc")
	}
}

func linesOf(e *Editor) []string {
	lines := make([]string, len(e.Content))
	for i, l := range e.Content { lines[i] = string(l) }
	return lines
}

func TestReplayErrorShownNotFatal(t *testing.T) {
	e := newTestEditor("ab\n")
	e.History.Append(history.Insert, "x", 100) // bad offset, collaborator bug

	e.Refresh()

	if e.ReplayError == "" { t.Error("ReplayError not set") }
	// previous content stays on screen
	if got := strings.Join(linesOf(e), "|"); got != "ab" {
		t.Errorf("content got %q, want %q", got, "ab")
	}

	// undoing past the bad record recovers
	e.OnUndo()
	if e.ReplayError != "" { t.Errorf("ReplayError still set: %q", e.ReplayError) }
	if got := replayString(t, e); got != "ab\n" {
		t.Errorf("document got %q, want %q", got, "ab\n")
	}
}

func TestOpenAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	fname := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(fname, []byte("hello"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	e := &Editor{ROWS: 24, COLUMNS: 80}
	if err := e.OpenFile(fname); err != nil { t.Fatalf("OpenFile: %v", err) }

	// trailing newline is added on open
	if got := replayString(t, e); got != "hello\n" {
		t.Errorf("document got %q, want %q", got, "hello\n")
	}
	if e.History.Len() != 1 { t.Errorf("Len() got %d, want 1", e.History.Len()) }

	e.Row, e.Col = 0, 5
	e.AddChar('!')
	e.WriteFile()

	data, err := os.ReadFile(fname)
	if err != nil { t.Fatalf("read back: %v", err) }
	if string(data) != "hello!\n" {
		t.Errorf("file got %q, want %q", data, "hello!\n")
	}
	if e.IsContentChanged { t.Error("IsContentChanged still true after write") }
}
