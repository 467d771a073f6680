/*
Package document renders a profile as a markdown README.

The document is assembled in memory and written with a single call, so a
failure never leaves a partial README behind.
*/
package document

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/badge"
	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/defaults"
	"github.com/henvic/readmegen/markdown"
	"github.com/henvic/readmegen/palette"
	"github.com/henvic/readmegen/profile"
	"github.com/henvic/readmegen/verbose"
)

// TimestampLayout used on the generation comment
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Options for rendering a document
type Options struct {
	// Palette used to resolve color names of the profile.
	Palette palette.Palette

	// Colors drawn for badges without an icon color, shared by every section
	// of the document. A new wheel over the palette is used when nil.
	Colors colorwheel.Source

	// Background applied to every badge. Defaults to the palette base.
	Background string

	// Endpoint of the badge service. Defaults to shields.io.
	Endpoint string

	// Style of the badges.
	Style string

	// Now is used for the generation timestamp. Defaults to time.Now.
	Now func() time.Time

	// OmitTimestamp skips the generation comment.
	OmitTimestamp bool
}

// Render the profile to w
func Render(ctx context.Context, w io.Writer, p profile.Profile, o Options) error {
	var buf bytes.Buffer

	if err := Build(ctx, &buf, p, o); err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errwrap.Wrapf("can't write document: {{err}}", err)
	}

	return nil
}

// BadgeRow of a section, with its badges colored and ready for rendering
type BadgeRow struct {
	Title  string        `json:"title"`
	Badges []badge.Badge `json:"badges"`
}

// Colorize resolves the badges of every section of the profile, in order,
// drawing colors from o.Colors when needed
func Colorize(ctx context.Context, p profile.Profile, o Options) ([]BadgeRow, error) {
	var colors = o.Colors

	if colors == nil {
		wheel, err := colorwheel.NewShuffle(o.Palette.Hexes())

		if err != nil {
			return nil, errwrap.Wrapf("palette "+o.Palette.Name()+": {{err}}", err)
		}

		colors = wheel
	}

	var background = o.Background

	if background == "" {
		background = o.Palette.Base()
	}

	var list = make([]BadgeRow, 0, len(p.Sections))

	for _, s := range p.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		badges, err := s.BadgeList(o.Palette, o.Style)

		if err != nil {
			return nil, err
		}

		list = append(list, BadgeRow{
			Title:  s.Title,
			Badges: badge.Batch(badges, background, colors),
		})
	}

	return list, nil
}

// Build writes the markdown document, element by element
func Build(ctx context.Context, w io.Writer, p profile.Profile, o Options) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var endpoint = o.Endpoint

	if endpoint == "" {
		endpoint = defaults.ShieldsEndpoint
	}

	var now = o.Now

	if now == nil {
		now = time.Now
	}

	colored, err := Colorize(ctx, p, o)

	if err != nil {
		return err
	}

	var mw = markdown.NewWriter(w)

	if !o.OmitTimestamp {
		mw.Comment("This README.md was generated @ " + now().Format(TimestampLayout))
	}

	mw.Heading(1, p.Title)

	if p.Intro != "" {
		mw.Paragraph(p.Intro)
	}

	for i, s := range p.Sections {
		mw.Heading(s.HeadingLevel(), s.Title)

		if len(colored[i].Badges) != 0 {
			mw.Line(badge.Row(colored[i].Badges, endpoint))
		}

		for _, text := range s.Paragraphs {
			mw.Paragraph(text)
		}

		if contact := s.ContactLine(); contact != "" {
			mw.Paragraph(contact)
		}
	}

	verbose.Debug("Rendered", len(p.Sections), "sections")
	return mw.Err()
}
