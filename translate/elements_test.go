package translate_test

import (
	"context"
	"fmt"
	"image"
	"strings"
	"testing"

	"github.com/cmbaughman/zpl2dpl/design"
	"github.com/cmbaughman/zpl2dpl/dpl"
	"github.com/cmbaughman/zpl2dpl/translate"
)

type stubLoader struct {
	img   image.Image
	err   error
	calls int
}

func (s *stubLoader) Load(ctx context.Context, uri string) (image.Image, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.img, nil
}

func inkImage(w, h int) image.Image {
	// the Gray zero value is black, ie. ink
	return image.NewGray(image.Rect(0, 0, w, h))
}

func TestElementsEndToEnd(t *testing.T) {
	loader := &stubLoader{img: inkImage(8, 1)}
	elems := []design.Element{
		&design.Text{Placement: design.Placement{Left: 100, Top: 200}, Content: "HELLO"},
		&design.Image{
			Placement: design.Placement{Left: 10, Top: 20, Width: 8, Height: 1},
			Name:      "LOGO",
			Source:    "logo.png",
		},
	}

	script, diags := translate.Elements(context.Background(), elems, loader, translate.Options{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	want := scriptHeader +
		"\x02IALOGO\r" + "FF\r" +
		"1911000" + "0200" + "0100" + "HELLO\r" +
		"1Y11000" + "0020" + "0010" + "LOGO\r" +
		"E\r"
	if script != want {
		t.Fatalf("got %q, want %q", script, want)
	}
	if loader.calls != 1 {
		t.Fatalf("expected exactly one sequential load, got %d", loader.calls)
	}
}

func TestElementsShapeRecords(t *testing.T) {
	elems := []design.Element{
		&design.Box{Placement: design.Placement{Left: 10, Top: 20, Width: 30, Height: 40}, Thickness: 2},
		&design.Circle{Placement: design.Placement{Left: 5, Top: 6, Width: 50}, Diameter: 50, Thickness: 3},
		&design.DiagonalLine{Placement: design.Placement{Left: 1, Top: 2, Width: 3, Height: 4}, Thickness: 1},
	}
	script, diags := translate.Elements(context.Background(), elems, nil, translate.Options{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	want := scriptHeader +
		"1X11000B" + "0020" + "0010" + "0060" + "0040" + "002" + "002\r" +
		"1X11000C" + "0006" + "0005" + "0050" + "003\r" +
		"1X11000L" + "0002" + "0001" + "0006" + "0004" + "001\r" +
		"E\r"
	if script != want {
		t.Fatalf("got %q, want %q", script, want)
	}
}

func TestElementsBarcodeSymbologyRouting(t *testing.T) {
	elems := []design.Element{
		&design.Barcode{Placement: design.Placement{Left: 1, Top: 2}, Symbology: "code39", Payload: "AAA"},
		&design.Barcode{Placement: design.Placement{Left: 3, Top: 4}, Symbology: "qr", Payload: "BBB"},
	}
	script, diags := translate.Elements(context.Background(), elems, nil, translate.Options{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	if !strings.Contains(script, "1A22050" + "0002" + "0001" + "AAA\r") {
		t.Fatalf("linear record missing: %q", script)
	}
	if !strings.Contains(script, "1W1c44" + "0004" + "0003" + "A" + "BBB\r") {
		t.Fatalf("matrix record missing: %q", script)
	}
}

func TestElementsImageFailureSkipsElement(t *testing.T) {
	loader := &stubLoader{err: fmt.Errorf("connection refused")}
	elems := []design.Element{
		&design.Image{Placement: design.Placement{Left: 1, Top: 1}, Name: "LOGO", Source: "logo.png"},
		&design.Text{Placement: design.Placement{Left: 2, Top: 3}, Content: "STILL HERE"},
	}
	script, diags := translate.Elements(context.Background(), elems, loader, translate.Options{})
	if len(diags) != 1 || diags[0].Severity != dpl.SeverityError {
		t.Fatalf("expected one resource diagnostic, got %+v", diags)
	}
	if strings.Contains(script, "LOGO") {
		t.Fatalf("failed image must emit neither store nor recall: %q", script)
	}
	want := scriptHeader + "1911000" + "0003" + "0002" + "STILL HERE\r" + "E\r"
	if script != want {
		t.Fatalf("translation should continue: %q", script)
	}
}

func TestElementsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := &stubLoader{img: inkImage(8, 1)}
	elems := []design.Element{
		&design.Image{Placement: design.Placement{Left: 1, Top: 1}, Name: "LOGO", Source: "logo.png"},
		&design.Text{Placement: design.Placement{Left: 2, Top: 3}, Content: "KEPT"},
	}
	script, diags := translate.Elements(ctx, elems, loader, translate.Options{})
	if len(diags) != 1 || diags[0].Severity != dpl.SeverityError {
		t.Fatalf("cancellation should fail the element, got %+v", diags)
	}
	if loader.calls != 0 {
		t.Fatalf("cancelled acquisition should not start a load, got %d calls", loader.calls)
	}
	if !strings.Contains(script, "KEPT") {
		t.Fatalf("cancellation must not be fatal for the script: %q", script)
	}
}

func TestElementsUnknownKindWarning(t *testing.T) {
	elems := []design.Element{
		design.Resolve("video", 0, 0, 0, 0, nil), // resolves to nil
		&design.Text{Placement: design.Placement{Left: 1, Top: 1}, Content: "OK"},
	}
	script, diags := translate.Elements(context.Background(), elems, nil, translate.Options{})
	if len(diags) != 1 || diags[0].Severity != dpl.SeverityWarning {
		t.Fatalf("expected one warning, got %+v", diags)
	}
	if !strings.Contains(script, "OK") {
		t.Fatalf("remaining elements should still emit: %q", script)
	}
}

func TestElementsUnnamedImageGetsStableName(t *testing.T) {
	loader := &stubLoader{img: inkImage(8, 1)}
	elems := []design.Element{
		&design.Image{Placement: design.Placement{Left: 1, Top: 1, Width: 8, Height: 1}, Source: "a.png"},
	}
	script, diags := translate.Elements(context.Background(), elems, loader, translate.Options{})
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	if !strings.Contains(script, "\x02IAIMG0\r") || !strings.Contains(script, "1Y11000" + "0001" + "0001" + "IMG0\r") {
		t.Fatalf("derived name missing: %q", script)
	}
}
