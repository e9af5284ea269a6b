package design_test

import (
	"testing"

	"github.com/cmbaughman/zpl2dpl/design"
)

func TestResolveText(t *testing.T) {
	el := design.Resolve("text", 10, 20, 100, 30, map[string]string{"text": "HELLO"})
	txt, ok := el.(*design.Text)
	if !ok {
		t.Fatalf("expected *design.Text, got %T", el)
	}
	if txt.Left != 10 || txt.Top != 20 || txt.Content != "HELLO" {
		t.Fatalf("unexpected text element: %+v", txt)
	}
}

func TestResolveBarcodeNormalizesSymbology(t *testing.T) {
	el := design.Resolve("barcode", 0, 0, 0, 0, map[string]string{
		"symbology": "Code128",
		"data":      "12345",
	})
	bc, ok := el.(*design.Barcode)
	if !ok {
		t.Fatalf("expected *design.Barcode, got %T", el)
	}
	if bc.Symbology != "code128" || bc.Payload != "12345" {
		t.Fatalf("unexpected barcode element: %+v", bc)
	}
}

func TestResolveThicknessPxSuffix(t *testing.T) {
	el := design.Resolve("box", 0, 0, 50, 50, map[string]string{"thickness": " 4px "})
	box, ok := el.(*design.Box)
	if !ok {
		t.Fatalf("expected *design.Box, got %T", el)
	}
	if box.Thickness != 4 {
		t.Fatalf("expected thickness 4, got %d", box.Thickness)
	}
}

func TestResolveCircleDiameterDefaultsToWidth(t *testing.T) {
	el := design.Resolve("circle", 0, 0, 80, 80, nil)
	c, ok := el.(*design.Circle)
	if !ok {
		t.Fatalf("expected *design.Circle, got %T", el)
	}
	if c.Diameter != 80 || c.Thickness != 1 {
		t.Fatalf("unexpected circle defaults: %+v", c)
	}
}

func TestResolveImage(t *testing.T) {
	el := design.Resolve("image", 1, 2, 3, 4, map[string]string{
		"src":  "logo.png",
		"name": "LOGO",
	})
	img, ok := el.(*design.Image)
	if !ok {
		t.Fatalf("expected *design.Image, got %T", el)
	}
	if img.Source != "logo.png" || img.Name != "LOGO" || img.Width != 3 {
		t.Fatalf("unexpected image element: %+v", img)
	}
}

func TestResolveUnknownKind(t *testing.T) {
	if el := design.Resolve("video", 0, 0, 0, 0, nil); el != nil {
		t.Fatalf("expected nil for unknown kind, got %T", el)
	}
}

func TestResolveMalformedNumberFallsBack(t *testing.T) {
	el := design.Resolve("diagonal-line", 0, 0, 10, 10, map[string]string{"thickness": "wide"})
	line, ok := el.(*design.DiagonalLine)
	if !ok {
		t.Fatalf("expected *design.DiagonalLine, got %T", el)
	}
	if line.Thickness != 1 {
		t.Fatalf("expected fallback thickness 1, got %d", line.Thickness)
	}
}
