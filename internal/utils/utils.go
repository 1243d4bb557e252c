package utils

import (
	"os"
	"strconv"
	"strings"
)

func Max(x, y int) int {
	if x < y {
		return y
	}
	return x
}

func Min(x, y int) int {
	if x <= y {
		return x
	}
	return y
}

func InsertTo[T any](a []T, index int, value T) []T {
	n := len(a)
	if index < 0 {
		index = (index%n + n) % n
	}
	switch {
	case index == n: // nil or empty slice or after last element
		return append(a, value)

	case index < n: // index < len(a)
		a = append(a[:index+1], a[index:]...)
		a[index] = value
		return a

	case index < cap(a): // index > len(a)
		a = a[:index+1]
		var zero T
		for i := n; i < index; i++ {
			a[i] = zero
		}
		a[index] = value
		return a

	default:
		b := make([]T, index+1) // malloc
		if n > 0 {
			copy(b, a)
		}
		b[index] = value
		return b
	}
}

func Remove[T any](slice []T, s int) []T {
	return append(slice[:s], slice[s+1:]...)
}

func Contains[T comparable](slice []T, e T) bool {
	for _, val := range slice {
		if val == e {
			return true
		}
	}
	return false
}

func CountTabs(str []rune, stopIndex int) int {
	if stopIndex == 0 { return 0 }

	count := 0
	for i, char := range str {
		if i >= stopIndex { break }
		if char == '\t' { count++ } else { break }
	}
	return count
}
func CountTabsTo(str []rune, stopIndex int) int {
	if stopIndex == 0 { return 0 }

	count := 0
	for i, char := range str {
		if i >= stopIndex { break }
		if char == '\t' { count++ }
	}
	return count
}
func CountSpaces(str []rune, stopIndex int) int {
	if stopIndex == 0 { return 0 }

	count := 0
	for i, char := range str {
		if i >= stopIndex { break }
		if char == ' ' { count++ } else { break }
	}
	return count
}

func ReadFileToString(filePath string) (string, error) {
	filecontent, err := os.ReadFile(filePath)
	if err != nil { return "", err }
	return string(filecontent), nil
}

// ConvertContentToString joins rune lines into one string, a '\n' after
// every line including the last one.
func ConvertContentToString(content [][]rune) string {
	var result strings.Builder
	for _, row := range content {
		for _, ch := range row { result.WriteRune(ch) }
		result.WriteByte('\n')
	}
	return result.String()
}

func CenterNumber(brw int, width int) string {
	lineNumber := strconv.Itoa(brw)
	padding := width - len(lineNumber)
	leftPad := strings.Repeat(" ", Max(0, padding/2))
	rightPad := strings.Repeat(" ", Max(0, padding-(padding/2)))
	return leftPad + lineNumber + rightPad
}
