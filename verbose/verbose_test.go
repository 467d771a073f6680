package verbose

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/henvic/readmegen/color"
	"github.com/henvic/readmegen/tdata"
)

var update bool

func init() {
	flag.BoolVar(&update, "update", false, "update golden files")
}

var bufErrStream bytes.Buffer

func TestMain(m *testing.M) {
	var defaultErrStream = ErrStream
	ErrStream = &bufErrStream
	color.NoColor = true
	ec := m.Run()
	color.NoColor = false
	ErrStream = defaultErrStream
	os.Exit(ec)
}

func TestDefer(t *testing.T) {
	bufErrStream.Reset()
	Enabled = true
	Deferred = true
	defer func() {
		Enabled = false
		Deferred = false
	}()

	Debug("Hello...", "World!")

	if l := bufErrStream.Len(); l != 0 {
		t.Errorf("Expected err stream to be empty, got %v instead", bufErrStream.String())
	}

	PrintDeferred()
	got := bufErrStream.String()

	if update {
		tdata.ToFile("mocks/defer", got)
	}

	var want = tdata.FromFile("mocks/defer")

	if got != want {
		t.Errorf("Wanted %s, got %s instead", want, got)
	}

	bufErrStream.Reset()
	PrintDeferred()

	if l := bufErrStream.Len(); l != 0 {
		t.Errorf("Expected deferred messages to be printed only once, got %v", bufErrStream.String())
	}
}

func TestDebugOn(t *testing.T) {
	bufErrStream.Reset()
	Enabled = true
	defer func() {
		Enabled = false
	}()

	Debug("Hello...", "World!")

	var want = "Hello... World!\n"
	if got := bufErrStream.String(); got != want {
		t.Errorf("Wanted %s, got %s instead", want, got)
	}
}

func TestDebugOff(t *testing.T) {
	bufErrStream.Reset()
	Enabled = false
	Debug("1, 2, 3")

	if got := bufErrStream.String(); len(got) != 0 {
		t.Errorf("Wanted no debug, got %s instead", got)
	}
}
