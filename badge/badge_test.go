package badge

import (
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/defaults"
	"github.com/kylelemons/godebug/pretty"
)

func TestNewMissingLabel(t *testing.T) {
	for _, label := range []string{"", " ", "\t\n"} {
		if _, err := New(label, Options{}); err != ErrMissingLabel {
			t.Errorf("New(%q): expected %v, got %v instead", label, ErrMissingLabel, err)
		}
	}
}

func TestNewIconDefaultsToLabel(t *testing.T) {
	b, err := New("Flask", Options{})

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	if b.Icon != "Flask" {
		t.Errorf("Expected icon to default to label, got %v instead", b.Icon)
	}
}

func TestMarkdownPythonFanatic(t *testing.T) {
	b, err := New("Python (Fanatic)", Options{
		Icon:      "Python",
		IconColor: "eed49f",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	b.Background = "24273a"

	var want = "![Python (Fanatic)](https://img.shields.io/badge/Python%20%28Fanatic%29-24273a?logo=Python&logoColor=eed49f)"

	if got := b.String(); got != want {
		t.Errorf("Wanted %v, got %v instead", want, got)
	}

	if got := b.Markdown(defaults.ShieldsEndpoint); got != want {
		t.Errorf("Wanted %v, got %v instead", want, got)
	}
}

type urlProvider struct {
	badge Badge
	want  string
}

var urlCases = []urlProvider{
	{
		Badge{Label: "Git", Icon: "Git", Background: "24273a"},
		"https://img.shields.io/badge/Git-24273a?logo=Git",
	},
	{
		Badge{Label: "After Effects", Icon: "Adobe After Effects", Background: "24273a", IconColor: "b7bdf8"},
		"https://img.shields.io/badge/After%20Effects-24273a?logo=Adobe%20After%20Effects&logoColor=b7bdf8",
	},
	{
		Badge{Label: "Bash/Zsh scripting, automation", Icon: "GNUBash", Background: "24273a", IconColor: "f0c6c6"},
		"https://img.shields.io/badge/Bash%2FZsh%20scripting%2C%20automation-24273a?logo=GNUBash&logoColor=f0c6c6",
	},
	{
		Badge{Label: "C++", Icon: "C++", Background: "24273a", IconColor: "7dc4e4", Style: "for-the-badge"},
		"https://img.shields.io/badge/C%2B%2B-24273a?logo=C%2B%2B&logoColor=7dc4e4&style=for-the-badge",
	},
	{
		Badge{Label: "R&D: $1+1=2 @home", Icon: "R", Background: "24273a"},
		"https://img.shields.io/badge/R%26D%3A%20%241%2B1%3D2%20%40home-24273a?logo=R",
	},
	{
		Badge{Label: "Pending"},
		"https://img.shields.io/badge/Pending-?",
	},
}

func TestURL(t *testing.T) {
	for _, c := range urlCases {
		if got := c.badge.URL(defaults.ShieldsEndpoint); got != c.want {
			t.Errorf("Wanted URL %v, got %v instead", c.want, got)
		}
	}
}

func TestURLIsIdempotent(t *testing.T) {
	var b = Badge{Label: "Raspberry Pi", Icon: "Raspberry Pi", Background: "24273a", IconColor: "ed8796"}
	var first = b.URL(defaults.ShieldsEndpoint)

	for i := 0; i < 10; i++ {
		if got := b.URL(defaults.ShieldsEndpoint); got != first {
			t.Fatalf("Expected same URL, got %v and %v", first, got)
		}
	}
}

func TestURLRoundTrip(t *testing.T) {
	var labels = []string{
		"Python (Fanatic)",
		"Pycord (Bot Framework)",
		"Bash/Zsh scripting, automation",
		"C++",
		"100% café & ünïcödé ?#",
		"a-b_c.d~e",
	}

	for _, label := range labels {
		var b = Badge{Label: label, Icon: label, Background: "24273a"}
		u, err := url.Parse(b.URL("https://img.shields.io/badge/"))

		if err != nil {
			t.Fatalf("Expected URL for %q to parse, got %v instead", label, err)
		}

		var segment = strings.TrimPrefix(u.EscapedPath(), "/badge/")
		var sep = strings.LastIndex(segment, "-")
		gotLabel, err := url.PathUnescape(segment[:sep])

		if err != nil || gotLabel != label {
			t.Errorf("Expected label %q to round-trip, got %q (%v) instead", label, gotLabel, err)
		}

		var rawLogo = strings.TrimPrefix(u.RawQuery, "logo=")
		gotIcon, err := url.PathUnescape(rawLogo)

		if err != nil || gotIcon != label {
			t.Errorf("Expected icon %q to round-trip, got %q (%v) instead", label, gotIcon, err)
		}
	}
}

type fakeSource struct {
	values []string
	calls  int
}

func (f *fakeSource) Next() string {
	var v = f.values[f.calls%len(f.values)]
	f.calls++
	return v
}

func TestBatch(t *testing.T) {
	var badges = []Badge{
		{Label: "Git", Icon: "Git", IconColor: "f5a97f"},
		{Label: "Flask", Icon: "Flask"},
		{Label: "Linux", Icon: "Linux", Background: "ffffff"},
	}

	var source = &fakeSource{values: []string{"c6a0f6", "a6da95"}}
	var got = Batch(badges, "24273a", source)

	var want = []Badge{
		{Label: "Git", Icon: "Git", Background: "24273a", IconColor: "f5a97f"},
		{Label: "Flask", Icon: "Flask", Background: "24273a", IconColor: "c6a0f6"},
		{Label: "Linux", Icon: "Linux", Background: "24273a", IconColor: "a6da95"},
	}

	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("Unexpected batch:\n%s", diff)
	}

	if source.calls != 2 {
		t.Errorf("Expected 2 colors to be drawn, got %d instead", source.calls)
	}

	if badges[1].IconColor != "" || badges[0].Background != "" {
		t.Errorf("Expected input badges to be left untouched, got %+v instead", badges)
	}
}

func TestBatchUsesWholePalette(t *testing.T) {
	var colors = []string{
		"f4dbd6", "f0c6c6", "f5bde6", "c6a0f6", "ed8796", "ee99a0", "f5a97f",
		"eed49f", "a6da95", "8bd5ca", "91d7e3", "7dc4e4", "8aadf4", "b7bdf8",
	}

	wheel, err := colorwheel.NewShuffle(colors)

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	var badges []Badge

	for i := 0; i < len(colors); i++ {
		b, err := New(strings.Repeat("x", i+1), Options{})

		if err != nil {
			t.Fatalf("Expected no error, got %v instead", err)
		}

		badges = append(badges, b)
	}

	var got []string

	for _, b := range Batch(badges, "24273a", wheel) {
		got = append(got, b.IconColor)
	}

	var want = append([]string(nil), colors...)
	sort.Strings(want)
	sort.Strings(got)

	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("Expected every palette color exactly once:\n%s", diff)
	}
}

func TestRow(t *testing.T) {
	var badges = []Badge{
		{Label: "Blender", Icon: "Blender", Background: "24273a", IconColor: "f5a97f"},
		{Label: "Raspberry Pi", Icon: "Raspberry Pi", Background: "24273a", IconColor: "ed8796"},
	}

	var want = "![Blender](https://img.shields.io/badge/Blender-24273a?logo=Blender&logoColor=f5a97f) " +
		"![Raspberry Pi](https://img.shields.io/badge/Raspberry%20Pi-24273a?logo=Raspberry%20Pi&logoColor=ed8796)"

	if got := Row(badges, defaults.ShieldsEndpoint); got != want {
		t.Errorf("Wanted %v, got %v instead", want, got)
	}

	if got := Row(nil, defaults.ShieldsEndpoint); got != "" {
		t.Errorf("Expected empty row, got %v instead", got)
	}
}
