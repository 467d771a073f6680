package errorhandler

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/errwrap"
	"github.com/henvic/readmegen/badge"
	"github.com/henvic/readmegen/colorwheel"
	"github.com/henvic/readmegen/palette"
)

func TestHandleNil(t *testing.T) {
	if err := Handle(nil); err != nil {
		t.Errorf("Expected nil, got %v instead", err)
	}
}

func TestHandleUnknown(t *testing.T) {
	var err = errors.New("something else")

	if got := Handle(err); got != err {
		t.Errorf("Expected error to be kept as is, got %v instead", got)
	}
}

func TestHandleEmptyPalette(t *testing.T) {
	var err = errwrap.Wrapf("palette custom: {{err}}", colorwheel.ErrEmpty)
	var got = Handle(err)

	var want = "The color palette has no colors to draw badge icon colors from\n" +
		"palette custom: color wheel needs at least one value"

	if got.Error() != want {
		t.Errorf("Wanted %q, got %q instead", want, got.Error())
	}

	if !errwrap.Contains(got, colorwheel.ErrEmpty.Error()) {
		t.Errorf("Expected original error to be kept")
	}
}

func TestHandleUnknownFlavor(t *testing.T) {
	_, err := palette.Flavor("espresso")
	var got = Handle(err).Error()

	if !strings.HasPrefix(got, "Use one of the available flavors: frappe, latte, macchiato, mocha\n") {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestHandleCommandOverride(t *testing.T) {
	var defaultCommandName = CommandName
	CommandName = "badge --icon Go"
	defer func() {
		CommandName = defaultCommandName
	}()

	var got = Handle(badge.ErrMissingLabel).Error()
	var want = "Pass the badge label as the first argument\n" + badge.ErrMissingLabel.Error()

	if got != want {
		t.Errorf("Wanted %q, got %q instead", want, got)
	}
}

func TestGetTypes(t *testing.T) {
	var err = errwrap.Wrapf("wrapped {{err}}", colorwheel.ErrEmpty)
	var want = "*errors.errorString:*errors.errorString"

	if got := GetTypes(err); got != want {
		t.Errorf("Wanted %v, got %v instead", want, got)
	}
}
