package utils

import "testing"

func TestInsertTo(t *testing.T) {
	tests := []struct {
		name  string
		slice []rune
		index int
		value rune
		want  string
	}{
		{name: "empty", slice: []rune{}, index: 0, value: 'a', want: "a"},
		{name: "begin", slice: []rune("bc"), index: 0, value: 'a', want: "abc"},
		{name: "middle", slice: []rune("ac"), index: 1, value: 'b', want: "abc"},
		{name: "end", slice: []rune("ab"), index: 2, value: 'c', want: "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := InsertTo(tc.slice, tc.index, tc.value)
			if string(got) != tc.want {
				t.Errorf("InsertTo() got %q, want %q", string(got), tc.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	got := Remove([]rune("abc"), 1)
	if string(got) != "ac" {
		t.Errorf("Remove() got %q, want %q", string(got), "ac")
	}
}

func TestCountTabsAndSpaces(t *testing.T) {
	line := []rune("\t\t  x")
	if got := CountTabs(line, len(line)); got != 2 {
		t.Errorf("CountTabs() got %d, want 2", got)
	}
	if got := CountSpaces([]rune("   x"), 4); got != 3 {
		t.Errorf("CountSpaces() got %d, want 3", got)
	}
	if got := CountTabsTo([]rune("\ta\tb"), 4); got != 2 {
		t.Errorf("CountTabsTo() got %d, want 2", got)
	}
}

func TestConvertContentToString(t *testing.T) {
	content := [][]rune{[]rune("one"), []rune(""), []rune("three")}
	want := "one\n\nthree\n"
	if got := ConvertContentToString(content); got != want {
		t.Errorf("ConvertContentToString() got %q, want %q", got, want)
	}
}

func TestCenterNumber(t *testing.T) {
	if got := CenterNumber(7, 5); got != "  7  " {
		t.Errorf("CenterNumber() got %q", got)
	}
	if got := CenterNumber(12345, 3); got != "12345" {
		t.Errorf("CenterNumber() overflow got %q", got)
	}
}
