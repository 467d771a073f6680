package fancy

import (
	"errors"
	"os"
	"testing"

	"github.com/henvic/readmegen/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	ec := m.Run()
	color.NoColor = false
	os.Exit(ec)
}

type errorProvider struct {
	in   interface{}
	want string
}

var errorCases = []errorProvider{
	{"", "! "},
	{"x", "! X."},
	{errors.New("missing required field: badge label"), "! Missing required field: badge label."},
	{"already done!", "! Already done!"},
	{"what?", "! What?"},
	{"two\nlines", "! Two\n! lines"},
}

func TestError(t *testing.T) {
	for _, c := range errorCases {
		if got := Error(c.in); got != c.want {
			t.Errorf("Error(%q): wanted %q, got %q instead", c.in, c.want, got)
		}
	}
}

func TestInfoAndSuccess(t *testing.T) {
	if got := Info("palette loaded"); got != "! palette loaded" {
		t.Errorf("Unexpected info message: %q", got)
	}

	if got := Success("done"); got != "! done" {
		t.Errorf("Unexpected success message: %q", got)
	}

	if got := Tip("readmegen --help"); got != "[readmegen --help]" {
		t.Errorf("Unexpected tip: %q", got)
	}
}
