// Package design models the elements a visual designer places on a label
// canvas. The designer hands the engine loosely typed attribute maps; they
// are resolved once here, at the boundary, into a closed set of strongly
// typed variants so the translation core never touches string maps.
package design

import (
	"strconv"
	"strings"
)

// Element is one placed element. The set of implementations is closed: text,
// barcode, box, circle, diagonal line and image.
type Element interface {
	isElement()
}

// Placement carries the pixel position and size every element shares.
type Placement struct {
	Left, Top     int
	Width, Height int
}

func (Placement) isElement() {}

// Text is a literal text run.
type Text struct {
	Placement
	Content string
}

// Barcode carries its payload and symbology directly; whether it maps to a
// linear or a matrix record is decided by the symbology vocabulary.
type Barcode struct {
	Placement
	Symbology string
	Payload   string
}

// Box is a rectangular frame.
type Box struct {
	Placement
	Thickness int
}

// Circle is described by its bounding-box corner plus diameter.
type Circle struct {
	Placement
	Diameter  int
	Thickness int
}

// DiagonalLine runs from the top-left corner of its placement to the
// opposite corner.
type DiagonalLine struct {
	Placement
	Thickness int
}

// Image references an external bitmap by source URI and stores it under a
// logical name the layout can later recall.
type Image struct {
	Placement
	Name   string
	Source string
}

// Resolve converts one designer element into its typed variant. kind is the
// designer's type tag; attrs is its loose attribute map. Unknown kinds
// resolve to nil, which the assembler reports as a skipped element.
func Resolve(kind string, left, top, width, height int, attrs map[string]string) Element {
	p := Placement{Left: left, Top: top, Width: width, Height: height}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "text":
		return &Text{Placement: p, Content: attr(attrs, "text")}
	case "barcode":
		return &Barcode{
			Placement: p,
			Symbology: strings.ToLower(attr(attrs, "symbology")),
			Payload:   attr(attrs, "data"),
		}
	case "box":
		return &Box{Placement: p, Thickness: attrInt(attrs, "thickness", 1)}
	case "circle":
		return &Circle{
			Placement: p,
			Diameter:  attrInt(attrs, "diameter", width),
			Thickness: attrInt(attrs, "thickness", 1),
		}
	case "diagonal-line":
		return &DiagonalLine{Placement: p, Thickness: attrInt(attrs, "thickness", 1)}
	case "image":
		return &Image{Placement: p, Name: attr(attrs, "name"), Source: attr(attrs, "src")}
	default:
		return nil
	}
}

func attr(attrs map[string]string, key string) string {
	return strings.TrimSpace(attrs[key])
}

// attrInt parses a numeric attribute, tolerating the px suffix designer
// styles carry; missing or malformed values fall back.
func attrInt(attrs map[string]string, key string, fallback int) int {
	v, ok := attrs[key]
	if !ok {
		return fallback
	}
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
