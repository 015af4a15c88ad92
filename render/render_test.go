package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/keys"
	"github.com/vsariola/toneboard/options"
	"github.com/vsariola/toneboard/render"
)

func TestKeys(t *testing.T) {
	r, err := render.New()
	if err != nil {
		t.Fatalf("render.New failed: %v", err)
	}
	html, err := r.Keys(keys.Standard())
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if n := strings.Count(html, `<div class="key-group">`); n != 15 {
		t.Errorf("expected 15 key groups, got %d", n)
	}
	if n := strings.Count(html, `<div class="key white"`); n != 15 {
		t.Errorf("expected 15 white keys, got %d", n)
	}
	if n := strings.Count(html, `<div class="key black"`); n != 10 {
		t.Errorf("expected 10 black keys, got %d", n)
	}
	for _, s := range []string{
		`onmousedown="synthKeyPress('C4')">C</div>`,
		`onmousedown="synthKeyPress('C#4')">C#</div>`,
		`onmousedown="synthKeyPress('C6')">C</div>`,
	} {
		if !strings.Contains(html, s) {
			t.Errorf("keys should contain %q", s)
		}
	}
	if strings.Contains(html, "E#") || strings.Contains(html, "B#") {
		t.Error("E and B should have no black keys")
	}
}

func TestOptions(t *testing.T) {
	r, err := render.New()
	if err != nil {
		t.Fatalf("render.New failed: %v", err)
	}
	html, err := r.Options(options.Generate(options.Specs, toneboard.DefaultSettings()))
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if n := strings.Count(html, ` checked`); n != 2 {
		t.Errorf("expected 2 checked radios, got %d", n)
	}
	if n := strings.Count(html, `type="radio"`); n != 8 {
		t.Errorf("expected 8 radios, got %d", n)
	}
	if n := strings.Count(html, `type="number"`); n != 4 {
		t.Errorf("expected 4 number inputs, got %d", n)
	}
	for _, s := range []string{
		`<div class="options envelope">`,
		`<span class="options-title">Oscillator</span>`,
		`name="osc-type"`,
		`value="default"`,
		`onchange="updateOscillator('shape', this.value, '')"`,
		`onchange="updateOscillator('envelope', this.value, 'release')"`,
		`value="1.2"`,
		`step="0.1" min="0.1"`,
		`<img src="assets/img/shape-sine.svg"`,
	} {
		if !strings.Contains(html, s) {
			t.Errorf("options should contain %q", s)
		}
	}
}

func TestPage(t *testing.T) {
	r, err := render.New()
	if err != nil {
		t.Fatalf("render.New failed: %v", err)
	}
	var buf bytes.Buffer
	err = r.Page(&buf, render.Page{
		Scripts: render.DefaultScripts,
		Keys:    keys.Standard(),
		Options: options.Generate(options.Specs, toneboard.DefaultSettings()),
	})
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	html := buf.String()
	for _, s := range []string{
		`<title>Toneboard</title>`,
		`<div id="options-container">`,
		`<div id="synth-keys-container">`,
		`<script src="synth.js"></script>`,
	} {
		if !strings.Contains(html, s) {
			t.Errorf("page should contain %q", s)
		}
	}
}
