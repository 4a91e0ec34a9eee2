package main

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/DSU-DefSec/harmony-viewer/harmony"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootText(t *testing.T) {
	out, err := run(t, "#3366cc")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"#3366cc", "#cc9933", "#cc3366", "#66cc33", "Triad 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootDefaultsColor(t *testing.T) {
	out, err := run(t, "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var set harmony.Set
	if err := json.Unmarshal([]byte(out), &set); err != nil {
		t.Fatal(err)
	}
	if set.Base != defaultColor {
		t.Fatalf("base = %q", set.Base)
	}
}

func TestRootYAML(t *testing.T) {
	out, err := run(t, "tomato", "--output", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	var set harmony.Set
	if err := yaml.Unmarshal([]byte(out), &set); err != nil {
		t.Fatal(err)
	}
	want, _ := harmony.Harmonize("#ff6347")
	if set.Base != want.Base || !reflect.DeepEqual(set.Diad, want.Diad) || !reflect.DeepEqual(set.Triad, want.Triad) {
		t.Fatalf("yaml set = %+v, want %+v", set, want)
	}
}

func TestDiadCommand(t *testing.T) {
	out, err := run(t, "diad", "36c", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var colors []string
	if err := json.Unmarshal([]byte(out), &colors); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(colors, []string{"#cc9933"}) {
		t.Fatalf("diad = %v", colors)
	}
}

func TestTriadCommand(t *testing.T) {
	out, err := run(t, "triad", "red")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "#00ff00") || !strings.Contains(out, "#0000ff") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestHSLCommand(t *testing.T) {
	out, err := run(t, "hsl", "#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "hsl(0, 1, 0.5)" {
		t.Fatalf("hsl output = %q", out)
	}
}

func TestHexCommand(t *testing.T) {
	out, err := run(t, "hex", "0", "0", "0.5", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatal(err)
	}
	if body["hex"] != "#808080" {
		t.Fatalf("hex = %q", body["hex"])
	}
}

func TestInvalidInput(t *testing.T) {
	if _, err := run(t, "#nothex"); !harmony.IsInvalidColor(err) {
		t.Errorf("root: expected invalid color error, got %v", err)
	}
	if _, err := run(t, "triad", "blurple"); !harmony.IsInvalidColor(err) {
		t.Errorf("triad: expected invalid color error, got %v", err)
	}
	if _, err := run(t, "hex", "a", "1", "0.5"); err == nil {
		t.Error("hex: expected parse error")
	}
	if _, err := run(t, "hex", "0", "5", "0.5"); err == nil {
		t.Error("hex: expected saturation range error")
	}
	if _, err := run(t, "hex", "0", "1", "1.5"); err == nil {
		t.Error("hex: expected lightness range error")
	}
	if _, err := run(t, "-o", "xml"); err == nil {
		t.Error("expected unknown format error")
	}
}
