package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	kerrors "github.com/kolamstudio/kolam/pkg/errors"
)

// Output formats understood by the renderers.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists every supported output format.
func Formats() []string { return []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON} }

// converter is the external SVG conversion tool.
var converter = "rsvg-convert"

// ToPDF converts SVG to PDF with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "-f", "pdf")
}

// ToPNG converts SVG to PNG with rsvg-convert at the given scale (1.0 keeps
// the SVG's pixel size, 2.0 doubles it).
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, "-f", "png", "-z", strconv.FormatFloat(scale, 'f', -1, 64))
}

// Available reports whether the converter can be found on PATH.
func Available() bool {
	_, err := exec.LookPath(converter)
	return err == nil
}

func convert(ctx context.Context, svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath(converter)
	if err != nil {
		return nil, kerrors.Wrap(kerrors.ErrCodeUnsupported, err,
			"%s not found; install librsvg to export PNG or PDF", converter)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, kerrors.Wrap(kerrors.ErrCodeRenderFailed, err, "%s: %s", converter, msg)
	}
	return stdout.Bytes(), nil
}

// ValidateFormat rejects unknown output formats.
func ValidateFormat(format string) error {
	switch format {
	case FormatSVG, FormatPNG, FormatPDF, FormatJSON:
		return nil
	}
	return kerrors.New(kerrors.ErrCodeInvalidFormat, "unknown format %q (want %s)", format, strings.Join(Formats(), ", "))
}

// ContentType is the MIME type for an output format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	}
	return fmt.Sprintf("application/x-%s", format)
}
