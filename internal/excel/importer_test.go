package excel

import "testing"

func TestColumnToIndex(t *testing.T) {
	cases := []struct {
		column string
		want   int
	}{
		{"A", 0}, {"B", 1}, {"Z", 25}, {"AA", 26}, {"AB", 27}, {"a", 0}, {"1", -1}, {"", -1},
	}
	for _, c := range cases {
		if got := columnToIndex(c.column); got != c.want {
			t.Errorf("columnToIndex(%q) = %d, want %d", c.column, got, c.want)
		}
	}
}

func TestCellHandlesShortRows(t *testing.T) {
	row := []string{"abandon", " /əˈbændən/ "}
	if got := cell(row, "A"); got != "abandon" {
		t.Errorf("cell A = %q", got)
	}
	if got := cell(row, "B"); got != "/əˈbændən/" {
		t.Errorf("cell B = %q, want trimmed", got)
	}
	if got := cell(row, "E"); got != "" {
		t.Errorf("cell beyond row = %q, want empty", got)
	}
}

func TestCellIntClamps(t *testing.T) {
	row := []string{"150", "-3", "junk", "42"}
	if got := cellInt(row, "A", 0, 100); got != 100 {
		t.Errorf("over range = %d, want clamped 100", got)
	}
	if got := cellInt(row, "B", 0, 100); got != 0 {
		t.Errorf("negative = %d, want 0", got)
	}
	if got := cellInt(row, "C", 0, 100); got != 0 {
		t.Errorf("junk = %d, want 0", got)
	}
	if got := cellInt(row, "D", 0, 100); got != 42 {
		t.Errorf("plain = %d, want 42", got)
	}
}
