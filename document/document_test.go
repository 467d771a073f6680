package document

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/badge"
	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/palette"
	"github.com/henvic/readmegen/profile"
	"github.com/henvic/readmegen/tdata"
	"github.com/kylelemons/godebug/diff"
	"github.com/kylelemons/godebug/pretty"
)

var update bool

func init() {
	flag.BoolVar(&update, "update", false, "update golden files")
}

func fixedClock() time.Time {
	return time.Date(2023, time.January, 2, 15, 4, 5, 123456000, time.UTC)
}

func macchiato(t *testing.T) palette.Palette {
	p, err := palette.Flavor(palette.Macchiato)

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	return p
}

func TestRenderDefault(t *testing.T) {
	var buf bytes.Buffer

	err := Render(context.Background(), &buf, profile.Default(), Options{
		Palette: macchiato(t),
		Now:     fixedClock,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	var got = buf.String()

	if update {
		tdata.ToFile("mocks/default.md", got)
	}

	var want = tdata.FromFile("mocks/default.md")

	if got != want {
		t.Errorf("Document doesn't match golden file:\n%s", diff.Diff(want, got))
	}
}

func TestRenderOmitTimestamp(t *testing.T) {
	var buf bytes.Buffer

	err := Render(context.Background(), &buf, profile.Default(), Options{
		Palette:       macchiato(t),
		OmitTimestamp: true,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	if !strings.HasPrefix(buf.String(), "# Hi! I'm @JoshPaulie\n") {
		t.Errorf("Expected document to start with the title, got %v instead", buf.String())
	}
}

func TestRenderDrawsWholePalette(t *testing.T) {
	var p = macchiato(t)
	var section = profile.Section{Title: "Everything"}

	for i := 0; i < p.Len(); i++ {
		section.Badges = append(section.Badges, profile.Badge{
			Label: strings.Repeat("b", i+1),
		})
	}

	wheel, err := colorwheel.NewShuffle(p.Hexes(), colorwheel.Seeded(99))

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	rows, err := Colorize(context.Background(), profile.Profile{
		Title:    "x",
		Sections: []profile.Section{section},
	}, Options{
		Palette: p,
		Colors:  wheel,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	var got []string

	for _, b := range rows[0].Badges {
		got = append(got, b.IconColor)

		if b.Background != "24273a" {
			t.Errorf("Expected background to default to palette base, got %v instead", b.Background)
		}
	}

	var want = p.Hexes()
	sort.Strings(want)
	sort.Strings(got)

	if d := pretty.Compare(want, got); d != "" {
		t.Errorf("Expected every palette color exactly once:\n%s", d)
	}
}

func TestRenderSharesWheelAcrossSections(t *testing.T) {
	var wheel, _ = colorwheel.NewShuffle([]string{"111111", "222222"}, colorwheel.Seeded(5))

	var p = profile.Profile{
		Title: "x",
		Sections: []profile.Section{
			{Title: "a", Badges: []profile.Badge{{Label: "one"}}},
			{Title: "b", Badges: []profile.Badge{{Label: "two"}}},
		},
	}

	rows, err := Colorize(context.Background(), p, Options{
		Palette:    macchiato(t),
		Colors:     wheel,
		Background: "000000",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	if rows[0].Badges[0].IconColor == rows[1].Badges[0].IconColor {
		t.Errorf("Expected sections to share one round of the wheel, got %v twice",
			rows[0].Badges[0].IconColor)
	}
}

func TestRenderCustomProfile(t *testing.T) {
	var p = profile.Profile{
		Title: "Ana",
		Sections: []profile.Section{
			{
				Title:      "Tools",
				Level:      2,
				Badges:     []profile.Badge{{Label: "Go", IconColor: "ffffff"}},
				Paragraphs: []string{"First.", "Second."},
			},
		},
	}

	var buf bytes.Buffer

	err := Render(context.Background(), &buf, p, Options{
		Palette:       macchiato(t),
		Background:    "000000",
		Endpoint:      "https://example.com/badge/",
		Style:         "flat-square",
		OmitTimestamp: true,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v instead", err)
	}

	var want = `# Ana
## Tools
![Go](https://example.com/badge/Go-000000?logo=Go&logoColor=ffffff&style=flat-square)
First.

Second.

`

	if got := buf.String(); got != want {
		t.Errorf("Unexpected document:\n%s", diff.Diff(want, got))
	}
}

func TestRenderInvalidProfile(t *testing.T) {
	var p = profile.Profile{
		Title: "x",
		Sections: []profile.Section{
			{Title: "a", Badges: []profile.Badge{{Icon: "Go"}}},
		},
	}

	var buf bytes.Buffer
	err := Render(context.Background(), &buf, p, Options{Palette: macchiato(t)})

	if !errwrap.Contains(err, badge.ErrMissingLabel.Error()) {
		t.Errorf("Expected %v, got %v instead", badge.ErrMissingLabel, err)
	}

	if buf.Len() != 0 {
		t.Errorf("Expected nothing to be written, got %v instead", buf.String())
	}
}

func TestRenderEmptyPalette(t *testing.T) {
	var buf bytes.Buffer
	err := Render(context.Background(), &buf, profile.Default(), Options{})

	if !errwrap.Contains(err, colorwheel.ErrEmpty.Error()) {
		t.Errorf("Expected %v, got %v instead", colorwheel.ErrEmpty, err)
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Render(ctx, &buf, profile.Default(), Options{Palette: macchiato(t)})

	if err != context.Canceled {
		t.Errorf("Expected %v, got %v instead", context.Canceled, err)
	}

	if buf.Len() != 0 {
		t.Errorf("Expected nothing to be written, got %v instead", buf.String())
	}
}

var errClosed = errors.New("closed")

type closedWriter struct{}

func (closedWriter) Write(p []byte) (int, error) {
	return 0, errClosed
}

func TestRenderWriteError(t *testing.T) {
	err := Render(context.Background(), closedWriter{}, profile.Default(), Options{
		Palette: macchiato(t),
	})

	if !errwrap.Contains(err, errClosed.Error()) {
		t.Errorf("Expected %v, got %v instead", errClosed, err)
	}
}
