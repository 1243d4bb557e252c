package editor

import (
	. "edlog/internal/config"
	. "edlog/internal/highlighter"
	"edlog/internal/history"
	. "edlog/internal/logger"
	. "edlog/internal/utils"

	"bufio"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// OpenFile reads the file and seeds a fresh edit log with its text.
// A missing file starts as an empty document, the file appears on save.
// The document always ends with a newline so any cursor position maps to
// a byte offset strictly inside the replayed buffer.
func (e *Editor) OpenFile(fname string) error {
	absoluteDir, err := filepath.Abs(path.Dir(fname))
	if err != nil { return err }
	e.Filename = filepath.Base(fname)
	e.AbsoluteFilePath = path.Join(absoluteDir, e.Filename)

	Log.Info("open", e.AbsoluteFilePath)

	e.Lang = DetectLang(e.Filename)
	conf, found := e.Config.Langs[e.Lang]
	if !found { conf = DefaultLangConfig }
	e.langConf = conf
	e.langTabWidth = conf.TabWidth
	if e.langTabWidth == 0 { e.langTabWidth = DefaultLangConfig.TabWidth }

	code, err := ReadFileToString(e.AbsoluteFilePath)
	if err != nil {
		if !os.IsNotExist(err) { return err }
		code = ""
	}
	if !strings.HasSuffix(code, "\n") { code += "\n" }

	e.History = history.NewLog()
	e.History.Append(history.Seed, code, 0)
	e.Refresh()

	e.Row = 0; e.Col = 0; e.Y = 0; e.X = 0
	e.IsContentChanged = false

	return nil
}

// WriteFile writes the replayed document to disk.
func (e *Editor) WriteFile() {
	text, err := e.History.Replay()
	if err != nil {
		e.ReplayError = err.Error()
		Log.Error("replay failed, not writing:", err.Error())
		return
	}

	f, err := os.Create(e.AbsoluteFilePath)
	if err != nil { Log.Error("write failed:", err.Error()); return }

	w := bufio.NewWriter(f)
	if _, err := w.Write(text); err != nil { Log.Error("write failed:", err.Error()) }
	if err := w.Flush(); err != nil { Log.Error("write failed:", err.Error()) }
	if err := f.Close(); err != nil { Log.Error("write failed:", err.Error()) }

	e.IsContentChanged = false
}

func IsFileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
