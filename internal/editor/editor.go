package editor

import (
	. "edlog/internal/config"
	. "edlog/internal/highlighter"
	"edlog/internal/history"
	. "edlog/internal/logger"
	. "edlog/internal/search"
	. "edlog/internal/utils"

	"fmt"
	. "github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
	"os"
)

var EditorGlobal = Editor{ }

type Editor struct {
	COLUMNS     int // terminal size columns
	ROWS        int // terminal size rows
	LINES_WIDTH int // draw file lines number

	Row int // cursor position row
	Col int // cursor position column
	Y   int // row offset for scrolling
	X   int // col offset for scrolling

	Content [][]rune // lines of the replayed document
	Colors  [][]int  // text characters colors

	Screen Screen // Screen for drawing

	History *history.Log // the edit log, owns the document

	Lang         string // current file language
	Config       Config // config, theme, tabs, comments
	langConf     Lang   // current lang conf
	langTabWidth int    // current lang tabs indentation  '\t' -> "    "

	InputFile        string // exact user input
	Filename         string // current file name
	AbsoluteFilePath string // current file name and directory
	IsContentChanged bool   // shows * if file is changed
	IsColorize       bool   // colorize text is true by default
	Update           bool   // for Screen updates, if false it will not draw

	ReplayError string // last replay error for the status line

	SearchPattern []rune // pattern for search in a buffer
}

func (e *Editor) Start() {
	Log.Info("starting edlog")

	e.InitScreen()

	if len(os.Args) == 1 {
		e.Screen.Fini()
		fmt.Println("usage: edlog <file>")
		os.Exit(130)
	}

	e.Filename = os.Args[1]
	e.InputFile = e.Filename
	err := e.OpenFile(e.Filename)
	if err != nil {
		e.Screen.Fini()
		fmt.Println(err)
		os.Exit(130)
	}

	// main draw cycle
	for {
		if e.Update && e.Filename != "" {
			e.DrawEverything()
			e.Screen.Show()
		}
		e.HandleEvents()
	}
}

func (e *Editor) InitScreen() {
	encoding.Register()
	screen, err := NewScreen()
	if err != nil { fmt.Fprintf(os.Stderr, "%v\n", err); os.Exit(1) }
	e.Screen = screen

	err2 := e.Screen.Init()
	if err2 != nil { fmt.Fprintf(os.Stderr, "%v\n", err2); os.Exit(1) }

	e.Screen.EnableMouse()
	e.Screen.Clear()

	e.COLUMNS, e.ROWS = e.Screen.Size()

	e.LINES_WIDTH = 6
	e.Update = true
	e.IsColorize = e.Config.Colorize
}

func (e *Editor) HandleEvents() {
	e.Update = true
	ev := e.Screen.PollEvent()
	switch ev := ev.(type) {
	case *EventResize:
		e.COLUMNS, e.ROWS = e.Screen.Size()

	case *EventMouse:
		mx, my := ev.Position()
		buttons := ev.Buttons()

		e.HandleMouse(mx, my, buttons)

	case *EventKey:
		key := ev.Key()
		modifiers := ev.Modifiers()

		e.HandleKeyboard(key, ev, modifiers)
	}
}

func (e *Editor) HandleMouse(mx int, my int, buttons ButtonMask) {
	if buttons & WheelDown != 0 { e.OnScrollDown(); return }
	if buttons & WheelUp != 0 { e.OnScrollUp(); return }

	if buttons & Button1 == 1 {
		mx -= e.LINES_WIDTH
		if mx < 0 { return }
		if my > e.ROWS { return }

		e.Row = my + e.Y
		if e.Row > len(e.Content)-1 { e.Row = len(e.Content) - 1 } // fit cursor to e.Content
		e.Col = e.FindCursorXPosition(mx)
		if e.Col < 0 { e.Col = 0 }
	}
}

func (e *Editor) HandleKeyboard(key Key, ev *EventKey, modifiers ModMask) {
	if ev.Rune() == '/' && modifiers & ModAlt != 0 || int(ev.Rune()) == '÷' {
		// '÷' on Mac is option + '/'
		e.OnCommentLine(); return
	}

	if key == KeyRune { e.AddChar(ev.Rune()); return }
	if key == KeyTab { e.OnTab(); return }
	if key == KeyEnter { e.OnEnter(); return }
	if key == KeyBackspace || key == KeyBackspace2 { e.OnDelete(); return }

	if key == KeyDown { e.OnDown() }
	if key == KeyUp { e.OnUp() }
	if key == KeyLeft { e.OnLeft() }
	if key == KeyRight { e.OnRight() }

	if key == KeyCtrlU { e.OnUndo() }
	if key == KeyCtrlR { e.OnRedo() }
	if key == KeyCtrlS { e.WriteFile() }
	if key == KeyCtrlC { e.OnCopy() }
	if key == KeyCtrlV { e.OnPaste() }
	if key == KeyCtrlF { e.OnSearch() }
	if key == KeyCtrlQ { e.Screen.Fini(); os.Exit(0) }
}

func (e *Editor) DrawEverything() {
	if len(e.Content) == 0 { return }
	e.Screen.Clear()

	countTabsTo := CountTabsTo(e.Content[e.Row], e.Col)
	tabcor := countTabsTo * (e.langTabWidth - 1)
	if e.Col < e.X { e.X = e.Col }
	if e.Col + e.LINES_WIDTH + tabcor >= e.X + e.COLUMNS {
		e.X = e.Col - e.COLUMNS + 1 + e.LINES_WIDTH + tabcor
	}

	// draw Line number and chars according to scrolling offsets
	for row := 0; row < e.ROWS; row++ {
		ry := row + e.Y // index to get right row in characters buffer by scrolling offset Y
		if row >= len(e.Content) || ry >= len(e.Content) { break }
		e.DrawLineNumber(ry, row)

		tabsOffset := 0
		for col := 0; col <= e.COLUMNS; col++ {
			cx := col + e.X // index to get right column in characters buffer by scrolling offset x
			if cx < 0 { break }
			if cx >= len(e.Content[ry]) { break }
			ch := e.Content[ry][cx]
			style := e.GetStyle(ry, cx)
			if ch == '\t' && e.X == 0 {
				// draw wide cursor with next symbol color
				if ry == e.Row && cx == e.Col {
					var color = Color(AccentColor)
					if ry < len(e.Colors) && cx+1 < len(e.Colors[ry]) { color = Color(e.Colors[ry][cx+1]) }
					if color == -1 { color = Color(AccentColor) }
					style = StyleDefault.Background(color)
				}
				for i := 0; i < e.langTabWidth; i++ {
					e.Screen.SetContent(col + e.LINES_WIDTH + tabsOffset, row, ' ', nil, style)
					if i != e.langTabWidth-1 { tabsOffset++ }
				}
			} else {
				e.Screen.SetContent(col + e.LINES_WIDTH + tabsOffset, row, ch, nil, style)
			}
		}
	}

	var changes = ""; if e.IsContentChanged { changes = "*" }
	status := fmt.Sprintf(" %s %d %d %s%s %d/%d ",
		e.Lang, e.Row+1, e.Col+1, e.Filename, changes, e.History.Cursor()+1, e.History.Len())
	if e.ReplayError != "" { status = " " + e.ReplayError + " " }
	e.DrawStatus(status)

	// if tab under cursor, hide cursor because it has already drawn
	if e.Row < len(e.Content) && e.Col < len(e.Content[e.Row]) && e.Content[e.Row][e.Col] == '\t' {
		e.Screen.HideCursor()
	} else {
		tabs := CountTabsTo(e.Content[e.Row], e.Col) * (e.langTabWidth - 1)
		e.Screen.ShowCursor(e.Col - e.X + e.LINES_WIDTH + tabs, e.Row - e.Y)
		if e.X != 0 {
			e.Screen.ShowCursor(e.Col - e.X + e.LINES_WIDTH, e.Row - e.Y)
		}
	}
}

func (e *Editor) GetStyle(ry int, cx int) Style {
	var style = StyleDefault
	if !e.IsColorize { return style }
	if ry >= len(e.Colors) || cx >= len(e.Colors[ry]) { return style }
	color := e.Colors[ry][cx]
	if color > 0 { style = StyleDefault.Foreground(Color(color)) }
	return style
}

func (e *Editor) DrawLineNumber(brw int, row int) {
	var style = StyleDefault.Foreground(ColorDimGray)
	if brw == e.Row { style = StyleDefault }
	lineNumber := CenterNumber(brw+1, e.LINES_WIDTH)
	for index, char := range lineNumber {
		e.Screen.SetContent(index, row, char, nil, style)
	}
}

func (e *Editor) DrawStatus(text string) {
	var style = StyleDefault
	e.DrawText(e.ROWS-1, e.COLUMNS - len(text), text, style)
}

func (e *Editor) DrawText(row, col int, text string, style Style) {
	e.Screen.SetContent(col-1, row, ' ', nil, style)
	for _, ch := range []rune(text) {
		if col > e.COLUMNS { break }
		e.Screen.SetContent(col, row, ch, nil, style)
		col++
	}
}

func (e *Editor) FindCursorXPosition(mx int) int {
	count := 0; realCount := 0 // searching x position
	for _, ch := range e.Content[e.Row] {
		if count >= mx + e.X { break }
		if ch == '\t' && e.X == 0 {
			count += e.langTabWidth; realCount++
		} else {
			count++; realCount++
		}
	}
	return realCount
}

func (e *Editor) OnSearch() {
	var end = false
	if e.SearchPattern == nil { e.SearchPattern = []rune{} }
	var patternx = len(e.SearchPattern)
	var startline = e.Row
	var isChanged = true
	var isDownSearch = true
	var prefix = []rune("search: ")

	// loop until escape or enter pressed
	for !end {

		e.DrawSearch(prefix, e.SearchPattern, patternx)
		e.Screen.Show()

		if isChanged {
			e.X = 0
			var sy, sx = -1, -1
			if isDownSearch {
				sy, sx = SearchDown(e.Content, string(e.SearchPattern), startline)
			} else {
				sy, sx = SearchUp(e.Content, string(e.SearchPattern), startline)
			}

			if sx != -1 && sy != -1 {
				e.Row = sy; e.Col = sx; e.Focus()
				startline = sy
			}
			e.DrawEverything()
			e.DrawSearch(prefix, e.SearchPattern, patternx)
			e.Screen.Show()
		}

		switch ev := e.Screen.PollEvent().(type) { // poll and handle event
		case *EventResize:
			e.COLUMNS, e.ROWS = e.Screen.Size()

		case *EventKey:
			isChanged = false
			key := ev.Key()

			if key == KeyRune {
				e.SearchPattern = InsertTo(e.SearchPattern, patternx, ev.Rune())
				patternx++
				isChanged = true
			}
			if key == KeyBackspace2 && patternx > 0 && len(e.SearchPattern) > 0 {
				patternx--
				e.SearchPattern = Remove(e.SearchPattern, patternx)
				isChanged = true
			}
			if key == KeyLeft && patternx > 0 { patternx-- }
			if key == KeyRight && patternx < len(e.SearchPattern) { patternx++ }
			if key == KeyDown {
				isDownSearch = true
				isChanged = true
				if startline < len(e.Content)-1 { startline++ } else { startline = 0 }
			}
			if key == KeyUp {
				isDownSearch = false
				isChanged = true
				if startline == 0 { startline = len(e.Content) - 1 } else { startline-- }
			}
			if key == KeyESC || key == KeyEnter || key == KeyCtrlF { end = true }
		}
	}
}

func (e *Editor) DrawSearch(prefix []rune, pattern []rune, patternx int) {
	for i := 0; i < len(prefix); i++ {
		e.Screen.SetContent(i + e.LINES_WIDTH, e.ROWS-1, prefix[i], nil, StyleDefault)
	}

	e.Screen.SetContent(len(prefix) + e.LINES_WIDTH, e.ROWS-1, ' ', nil, StyleDefault)

	for i := 0; i < len(pattern); i++ {
		e.Screen.SetContent(len(prefix) + i + e.LINES_WIDTH, e.ROWS-1, pattern[i], nil, StyleDefault)
	}

	e.Screen.ShowCursor(len(prefix) + patternx + e.LINES_WIDTH, e.ROWS-1)

	for i := len(prefix) + len(pattern) + e.LINES_WIDTH; i < e.COLUMNS; i++ {
		e.Screen.SetContent(i, e.ROWS-1, ' ', nil, StyleDefault)
	}
}
