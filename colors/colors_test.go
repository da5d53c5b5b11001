package colors

import (
	"errors"
	"testing"

	"github.com/softgl/softgl"
)

func TestParse(t *testing.T) {

	tests := []struct {
		in   string
		want softgl.Color
	}{
		{"white", White()},
		{" Midnight ", Midnight()},
		{"#ff8000", softgl.NewColor(255, 128, 0)},
		{"00ff00", Green()},
		{"#f0f", Pink()},
		{"#10203040", softgl.NewColorRGBA(0x10, 0x20, 0x30, 0x40)},
	}

	for _, test := range tests {
		got, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.in, got, test.want)
		}
	}

	for _, bad := range []string{"", "mauve", "#12", "#gggggg", "#1234567"} {
		if _, err := Parse(bad); !errors.Is(err, ErrBadColor) {
			t.Errorf("Parse(%q) err = %v, want ErrBadColor", bad, err)
		}
	}

}

func TestNames(t *testing.T) {
	names := Names()
	for i, name := range names {
		if _, err := Parse(name); err != nil {
			t.Errorf("Names()[%d] = %q doesn't parse: %v", i, name, err)
		}
		if i > 0 && names[i-1] >= name {
			t.Errorf("Names() isn't sorted at %q", name)
		}
	}
}
