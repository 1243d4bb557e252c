package highlighter

import (
	. "edlog/internal/logger"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/gdamore/tcell"
	"strings"
)

var HighlighterGlobal = Highlighter{}

type Highlighter struct {

}

var theme = styles.Fallback

var SelectionColor = 246 // gray
var AccentColor = 303    // pink

func DetectLang(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil { return "" }
	config := lexer.Config()
	if config == nil { return "" }
	return strings.ToLower(config.Name)
}

func (h *Highlighter) SetTheme(name string) {
	theme = styles.Get(name)
	AccentColor = int(tcell.GetColor(theme.Get(chroma.Keyword).Colour.String()))
}

// Colorize turns code into a color per character, line by line,
// colors are tcell color values picked from the chroma theme.
func (h *Highlighter) Colorize(code string, filename string) [][]int {
	if code == "" { return [][]int{nil} }

	lexer := lexers.Match(filename)
	if lexer == nil { lexer = lexers.Fallback }

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		Log.Error("tokenization failed:", err.Error())
		return [][]int{nil}
	}

	tokensIntoLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	textColors := [][]int{}

	for _, tokens := range tokensIntoLines {
		lineColors := []int{}
		for _, token := range tokens {
			chromaColor := theme.Get(token.Type).Colour.String()
			color := int(tcell.GetColor(chromaColor))
			// same color for each token character
			for range token.Value { lineColors = append(lineColors, color) }
		}
		textColors = append(textColors, lineColors)
	}

	return textColors
}
