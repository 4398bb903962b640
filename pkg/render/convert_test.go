package render

import (
	"bytes"
	"context"
	"testing"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><circle cx="5" cy="5" r="2"/></svg>`

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats() {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v", f, err)
		}
	}
	for _, f := range []string{"", "gif", "SVG"} {
		if err := ValidateFormat(f); !kerrors.Is(err, kerrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) = %v, want %s", f, err, kerrors.ErrCodeInvalidFormat)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		FormatSVG:  "image/svg+xml",
		FormatPNG:  "image/png",
		FormatPDF:  "application/pdf",
		FormatJSON: "application/json",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestConverterMissing(t *testing.T) {
	old := converter
	converter = "kolam-no-such-converter"
	defer func() { converter = old }()

	if Available() {
		t.Fatal("Available() = true for a missing tool")
	}
	if _, err := ToPDF(context.Background(), []byte(tinySVG)); !kerrors.Is(err, kerrors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want %s", err, kerrors.ErrCodeUnsupported)
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(context.Background(), []byte(tinySVG), 2)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("ToPNG() output is not a PNG")
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	pdf, err := ToPDF(context.Background(), []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("ToPDF() output is not a PDF")
	}
}
