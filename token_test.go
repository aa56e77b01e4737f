package sicasm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		Name string
		Line string
		Want []string
	}{
		{
			Name: "label op operand",
			Line: "FIRST  STL     RETADR",
			Want: []string{"FIRST", "STL", "RETADR"},
		},
		{
			Name: "op only",
			Line: "        RSUB",
			Want: []string{"RSUB"},
		},
		{
			Name: "quoted character literal keeps spaces",
			Line: "       BYTE    C'EOF '",
			Want: []string{"BYTE", "C'EOF '"},
		},
		{
			Name: "empty line",
			Line: "",
			Want: nil,
		},
		{
			Name: "tabs as separators",
			Line: "COPY\tSTART\t1000",
			Want: []string{"COPY", "START", "1000"},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got := Tokenize(test.Line)
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", test.Line, diff)
			}
		})
	}
}
