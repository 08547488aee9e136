package formats

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRows(t *testing.T) {
	cells, err := ParseRows([]string{"#.#", " _.", "###"})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	want := []int{1, 2, 1, 0, 0, 2, 1, 1, 1}
	if !reflect.DeepEqual(cells, want) {
		t.Errorf("ParseRows = %v, expected %v", cells, want)
	}

	if got := FormatRows(3, cells); !reflect.DeepEqual(got, []string{"#.#", "  .", "###"}) {
		t.Errorf("FormatRows = %q", got)
	}
}

func TestParseRowsErrors(t *testing.T) {
	tests := [][]string{
		{"##", "#"},
		{"#x", "##"},
		{"###", "###", "###", "###"},
	}
	for _, rows := range tests {
		if _, err := ParseRows(rows); err == nil {
			t.Errorf("ParseRows(%q) should fail", rows)
		}
	}
}

func TestParseYAML(t *testing.T) {
	m, err := ParseYAML([]byte("id: x\nsize: 2\ncells: [1, 2, 0, 1]\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if m.ID != "x" || m.Name != "x" || m.Size != 2 || len(m.Cells) != 4 {
		t.Errorf("ParseYAML = %+v", m)
	}

	if _, err := ParseYAML([]byte("id: empty\n")); !errors.Is(err, ErrNoLayout) {
		t.Errorf("expected ErrNoLayout, got %v", err)
	}
	if _, err := ParseYAML([]byte("id: [broken")); err == nil {
		t.Error("malformed YAML should fail")
	}
}
