package main

import . "edlog/internal/highlighter"
import . "edlog/internal/logger"
import . "edlog/internal/editor"
import . "edlog/internal/config"



func main() {
	Log.Start()
	config := GetConfig()
	EditorGlobal.Config = config
	HighlighterGlobal.SetTheme(config.Theme)
	EditorGlobal.Start()
}
