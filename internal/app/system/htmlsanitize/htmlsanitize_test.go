package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/itsthtdev/neighborhoods-unite/internal/app/system/htmlsanitize"
)

func TestSanitizeDropsScripts(t *testing.T) {
	in := `<p>Pool hours updated</p><script>alert("x")</script>`
	out := htmlsanitize.Sanitize(in)

	if strings.Contains(out, "<script") || strings.Contains(out, "alert") {
		t.Errorf("script content survived: %q", out)
	}
	if !strings.Contains(out, "Pool hours updated") {
		t.Errorf("benign content lost: %q", out)
	}
}

func TestStripTagsRemovesAllMarkup(t *testing.T) {
	in := `<b>Oak Hills</b> <i>HOA</i>`
	out := htmlsanitize.StripTags(in)

	if strings.ContainsAny(out, "<>") {
		t.Errorf("markup survived: %q", out)
	}
	if !strings.Contains(out, "Oak Hills") {
		t.Errorf("text lost: %q", out)
	}
}

func TestSanitizePlainTextUnchanged(t *testing.T) {
	in := "Streetlight out on Elm Ave"
	if out := htmlsanitize.Sanitize(in); out != in {
		t.Errorf("plain text changed: %q", out)
	}
}
