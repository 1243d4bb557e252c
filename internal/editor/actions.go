package editor

import (
	. "edlog/internal/highlighter"
	"edlog/internal/history"
	. "edlog/internal/logger"
	. "edlog/internal/utils"

	"github.com/atotto/clipboard"
	"strings"
)

func (e *Editor) OnDown() {
	if len(e.Content) == 0 { return }
	if e.Row+1 >= len(e.Content) {
		e.Y = e.Row - e.ROWS + 1
		if e.Y < 0 { e.Y = 0 }
		return
	}
	e.Row++
	if e.Col > len(e.Content[e.Row]) { e.Col = len(e.Content[e.Row]) } // fit to e.Content
	if e.Row < e.Y { e.Y = e.Row }
	if e.Row >= e.Y + e.ROWS { e.Y = e.Row - e.ROWS + 1 }
}

func (e *Editor) OnUp() {
	if len(e.Content) == 0 { return }
	if e.Row == 0 { e.Y = 0; return }
	e.Row--
	if e.Col > len(e.Content[e.Row]) { e.Col = len(e.Content[e.Row]) } // fit to e.Content
	if e.Row < e.Y { e.Y = e.Row }
	if e.Row > e.Y + e.ROWS { e.Y = e.Row - e.ROWS + 1 }
}

func (e *Editor) OnLeft() {
	if len(e.Content) == 0 { return }

	if e.Col > 0 {
		e.Col--
	} else if e.Row > 0 {
		e.Row--
		e.Col = len(e.Content[e.Row]) // fit to e.Content
		if e.Row < e.Y { e.Y = e.Row }
	}
}

func (e *Editor) OnRight() {
	if len(e.Content) == 0 { return }

	if e.Col < len(e.Content[e.Row]) {
		e.Col++
	} else if e.Row < len(e.Content)-1 {
		e.Row++
		e.Col = 0
		if e.Row > e.Y + e.ROWS { e.Y++ }
	}
}

func (e *Editor) OnScrollUp() {
	if len(e.Content) == 0 { return }
	if e.Y == 0 { return }
	e.Y--
}

func (e *Editor) OnScrollDown() {
	if len(e.Content) == 0 { return }
	if e.Y + e.ROWS >= len(e.Content) { return }
	e.Y++
}

func (e *Editor) Focus() {
	if e.Row > e.Y + e.ROWS { e.Y = e.Row - e.ROWS + 1 }
	if e.Row < e.Y { e.Y = e.Row }
}

// OffsetAt maps a row and column to a byte offset in the replayed document.
// Lines are runes on screen but the log works in bytes.
func (e *Editor) OffsetAt(row int, col int) int {
	offset := 0
	for i := 0; i < row && i < len(e.Content); i++ {
		offset += len(string(e.Content[i])) + 1 // line and its newline
	}
	if row < len(e.Content) {
		line := e.Content[row]
		if col > len(line) { col = len(line) }
		offset += len(string(line[:col]))
	}
	return offset
}

func (e *Editor) CursorOffset() int {
	return e.OffsetAt(e.Row, e.Col)
}

// Refresh re-materializes the document from the log. A replay range error
// means some caller-derived offset was bad, it is shown on the status line
// and the previous content stays on screen.
func (e *Editor) Refresh() {
	text, err := e.History.Replay()
	if err != nil {
		e.ReplayError = err.Error()
		Log.Error("replay failed:", err.Error())
		return
	}
	e.ReplayError = ""
	e.SetText(string(text))
}

func (e *Editor) SetText(text string) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	e.Content = make([][]rune, len(lines))
	for i, line := range lines { e.Content[i] = []rune(line) }
	e.UpdateColors()
}

func (e *Editor) UpdateColors() {
	if !e.IsColorize { return }
	if e.Lang == "" { return }
	code := ConvertContentToString(e.Content)
	e.Colors = HighlighterGlobal.Colorize(code, e.Filename)
}

func (e *Editor) FitCursor() {
	if e.Row >= len(e.Content) { e.Row = len(e.Content) - 1 }
	if e.Row < 0 { e.Row = 0 }
	if e.Col > len(e.Content[e.Row]) { e.Col = len(e.Content[e.Row]) }
	if e.Col < 0 { e.Col = 0 }
}

func (e *Editor) Changed() {
	e.Refresh()
	e.FitCursor()
	e.Update = true
	e.IsContentChanged = true
}

func (e *Editor) AddChar(ch rune) {
	e.Focus()
	e.History.Append(history.Insert, string(ch), e.CursorOffset())
	e.Col++
	e.Changed()
}

func (e *Editor) OnTab() {
	e.AddChar('\t')
}

func (e *Editor) OnEnter() {
	offset := e.CursorOffset()
	line := e.Content[e.Row]
	tabs := CountTabs(line, e.Col)
	spaces := CountSpaces(line, e.Col)

	countToInsert := tabs
	characterToInsert := '\t'
	if tabs == 0 && spaces != 0 { characterToInsert = ' '; countToInsert = spaces }

	indent := strings.Repeat(string(characterToInsert), countToInsert)
	e.History.Append(history.Insert, "\n"+indent, offset)

	e.Row++
	e.Col = countToInsert
	e.Focus(); if e.Row - e.Y == e.ROWS { e.OnScrollDown() }
	e.Changed()
}

func (e *Editor) OnDelete() {
	if e.Col > 0 {
		prev := e.Content[e.Row][e.Col-1]
		e.History.Append(history.Delete, string(prev), e.OffsetAt(e.Row, e.Col-1))
		e.Col--
	} else if e.Row > 0 { // join with the previous line
		newCol := len(e.Content[e.Row-1])
		e.History.Append(history.Delete, "\n", e.OffsetAt(e.Row-1, newCol))
		e.Row--
		e.Col = newCol
	} else {
		return // nothing before the cursor
	}

	e.Focus()
	e.Changed()
}

func (e *Editor) OnCopy() {
	clipboard.WriteAll(string(e.Content[e.Row]) + "\n")
}

func (e *Editor) OnPaste() {
	text, _ := clipboard.ReadAll()
	if text == "" { return }

	e.Focus()
	e.History.Append(history.Insert, text, e.CursorOffset())

	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		e.Col += len([]rune(text))
	} else {
		e.Row += len(lines) - 1
		e.Col = len([]rune(lines[len(lines)-1]))
	}
	e.Changed()
}

// OnCommentLine toggles the language comment prefix on the current line.
// Uncommenting goes through the composite Replace, so it takes two undos
// to revert, same as any other replace.
func (e *Editor) OnCommentLine() {
	comment := e.langConf.Comment
	if comment == "" { comment = "//" }

	line := e.Content[e.Row]
	from := CountTabs(line, len(line))
	if from == 0 { from = CountSpaces(line, len(line)) }

	offset := e.OffsetAt(e.Row, from)
	rest := string(line[from:])

	if strings.HasPrefix(rest, comment) {
		e.History.Replace(comment, "", offset)
		if e.Col >= from + len([]rune(comment)) { e.Col -= len([]rune(comment)) }
	} else {
		e.History.Append(history.Insert, comment, offset)
		if e.Col >= from { e.Col += len([]rune(comment)) }
	}

	e.OnDown()
	e.Changed()
}

func (e *Editor) OnUndo() {
	e.History.Undo()
	e.Refresh()
	e.FitCursor()
	e.Update = true
	e.IsContentChanged = true
}

func (e *Editor) OnRedo() {
	e.History.Redo()
	e.Refresh()
	e.FitCursor()
	e.Update = true
	e.IsContentChanged = true
}
