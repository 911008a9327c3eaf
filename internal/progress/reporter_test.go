package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(3)
	r.Update(1, "index.html")
	r.Update(2, "style.css")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Building site: 3 files", "[1/3] index.html", "[2/3] style.css", "Site build complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
