package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and case", " SVG , Json ", []string{"svg", "json"}},
		{"empty entries skipped", "svg,,png", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, fallback, want string
	}{
		{"", "kolam-flower-9", "kolam-flower-9"},
		{"out/star", "x", "out/star"},
		{"out/star.svg", "x", "out/star"},
		{"out/star.PNG", "x", "out/star.PNG"},
		{"star.v2", "x", "star.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.fallback); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.fallback, got, tt.want)
		}
	}
}

func testCLI(out io.Writer) *CLI {
	c := New(io.Discard, log.InfoLevel)
	c.out = out
	return c
}

func TestWriteArtifacts(t *testing.T) {
	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
	}

	t.Run("multiple formats use base path", func(t *testing.T) {
		dir := t.TempDir()
		c := testCLI(io.Discard)
		paths, err := c.writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"svg", "json"},
			output:    filepath.Join(dir, "nested", "lotus.svg"),
		})
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		want := []string{filepath.Join(dir, "nested", "lotus.svg"), filepath.Join(dir, "nested", "lotus.json")}
		if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
		data, _ := os.ReadFile(want[1])
		if string(data) != "{}" {
			t.Errorf("json artifact = %q", data)
		}
	})

	t.Run("single format exact path", func(t *testing.T) {
		dir := t.TempDir()
		c := testCLI(io.Discard)
		path := filepath.Join(dir, "drawing.out")
		paths, err := c.writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"svg"},
			output:    path,
		})
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		if len(paths) != 1 || paths[0] != path {
			t.Errorf("paths = %v, want [%s]", paths, path)
		}
	})

	t.Run("fallback name", func(t *testing.T) {
		dir := t.TempDir()
		c := testCLI(io.Discard)
		paths, err := c.writeArtifacts(artifactWriteParams{
			artifacts: artifacts,
			formats:   []string{"svg"},
			fallback:  filepath.Join(dir, "kolam-star-9"),
		})
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		if len(paths) != 1 || paths[0] != filepath.Join(dir, "kolam-star-9.svg") {
			t.Errorf("paths = %v", paths)
		}
	})

	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		c := testCLI(&buf)
		paths, err := c.writeArtifacts(artifactWriteParams{artifacts: artifacts, formats: []string{"svg"}, output: "-"})
		if err != nil {
			t.Fatalf("writeArtifacts: %v", err)
		}
		if paths != nil || buf.String() != "<svg/>" {
			t.Errorf("paths = %v, stdout = %q", paths, buf.String())
		}
	})

	t.Run("stdout needs one format", func(t *testing.T) {
		c := testCLI(io.Discard)
		if _, err := c.writeArtifacts(artifactWriteParams{artifacts: artifacts, formats: []string{"svg", "json"}, output: "-"}); err == nil {
			t.Error("expected an error for two formats on stdout")
		}
	})
}
