package translate

import (
	"context"
	"fmt"
	"image"

	"github.com/cmbaughman/zpl2dpl/design"
	"github.com/cmbaughman/zpl2dpl/dpl"
	"github.com/cmbaughman/zpl2dpl/raster"
)

// ImageLoader 提供按 URI 读取位图的能力，由调用方注入。
type ImageLoader interface {
	Load(ctx context.Context, uri string) (image.Image, error)
}

// Options 配置版面路径的翻译行为。
type Options struct {
	// Threshold 是二值化阈值，0 表示使用默认值。
	Threshold uint8
}

// Elements 将设计器放置的元素序列翻译为目标脚本。
// 图像严格按元素顺序逐个获取、二值化并编码——同一时刻至多一次加载在途，
// 以一幅解码位图为内存上界。取消只把在途元素标记为失败，不中断整体翻译。
func Elements(ctx context.Context, elems []design.Element, loader ImageLoader, opts Options) (string, []dpl.Diagnostic) {
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = raster.DefaultThreshold
	}

	var images []dpl.ImageRecord
	var diags []dpl.Diagnostic
	stored := make(map[int]string) // 元素下标 -> 成功驻留的逻辑名

	for i, e := range elems {
		img, ok := e.(*design.Image)
		if !ok {
			continue
		}
		name, rec, err := acquireImage(ctx, loader, img, i, threshold)
		if err != nil {
			// 图像失败是可恢复的：跳过该元素并以诊断形式上报。
			diags = append(diags, dpl.Diagnostic{
				Severity: dpl.SeverityError,
				Source:   fmt.Sprintf("element[%d]", i),
				Message:  err.Error(),
			})
			continue
		}
		images = append(images, rec)
		stored[i] = name
	}

	fields, fdiags := elementFields(elems, stored)
	diags = append(diags, fdiags...)

	script, adiags := dpl.Assemble(images, fields)
	return script, append(diags, adiags...)
}

// acquireImage 获取并编码单个图像元素。加载由调用方能力完成；
// 元素带有显式尺寸时先缩放到该尺寸再编码。
func acquireImage(ctx context.Context, loader ImageLoader, img *design.Image, idx int, threshold uint8) (string, dpl.ImageRecord, error) {
	if loader == nil {
		return "", dpl.ImageRecord{}, fmt.Errorf("缺少图像加载能力")
	}
	if err := ctx.Err(); err != nil {
		return "", dpl.ImageRecord{}, fmt.Errorf("图像获取已取消: %w", err)
	}
	m, err := loader.Load(ctx, img.Source)
	if err != nil {
		return "", dpl.ImageRecord{}, fmt.Errorf("加载图像 %s 失败: %w", img.Source, err)
	}
	name := img.Name
	if name == "" {
		name = fmt.Sprintf("IMG%d", idx)
	}
	payload := raster.EncodeScaled(m, img.Width, img.Height, threshold)
	return name, dpl.ImageRecord{Name: name, Hex: payload}, nil
}

// elementFields 按原始顺序把元素映射为版面记录，坐标取元素自身的位置。
func elementFields(elems []design.Element, stored map[int]string) ([]dpl.Field, []dpl.Diagnostic) {
	var fields []dpl.Field
	var diags []dpl.Diagnostic

	for i, e := range elems {
		switch el := e.(type) {
		case *design.Text:
			fields = append(fields, dpl.TextField{X: el.Left, Y: el.Top, Data: el.Content})
		case *design.Barcode:
			if matrixSymbology(el.Symbology) {
				fields = append(fields, dpl.Barcode2DField{X: el.Left, Y: el.Top, Data: el.Payload})
			} else {
				fields = append(fields, dpl.BarcodeField{
					X:         el.Left,
					Y:         el.Top,
					Symbology: elementSymbology(el.Symbology),
					Data:      el.Payload,
				})
			}
		case *design.Box:
			fields = append(fields, dpl.BoxField{
				X: el.Left, Y: el.Top,
				Width: el.Width, Height: el.Height,
				Thickness: el.Thickness,
			})
		case *design.Circle:
			fields = append(fields, dpl.CircleField{
				X: el.Left, Y: el.Top,
				Diameter:  el.Diameter,
				Thickness: el.Thickness,
			})
		case *design.DiagonalLine:
			fields = append(fields, dpl.LineField{
				X: el.Left, Y: el.Top,
				Width: el.Width, Height: el.Height,
				Thickness: el.Thickness,
			})
		case *design.Image:
			name, ok := stored[i]
			if !ok {
				// 获取失败的元素已在图像段记过诊断，这里静默省略召回。
				continue
			}
			fields = append(fields, dpl.ImageRecallField{X: el.Left, Y: el.Top, Name: name})
		default:
			diags = append(diags, dpl.Diagnostic{
				Severity: dpl.SeverityWarning,
				Source:   fmt.Sprintf("element[%d]", i),
				Message:  "未识别的元素类型，已跳过",
			})
		}
	}
	return fields, diags
}

// matrixSymbology 判断符号集是否走二维条码记录。
func matrixSymbology(sym string) bool {
	switch sym {
	case "datamatrix", "qr", "qrcode":
		return true
	}
	return false
}

// elementSymbology 把设计器的符号集词汇映射到目标符号集字母。
func elementSymbology(sym string) byte {
	switch sym {
	case "code39":
		return 'A'
	case "ean13":
		return 'F'
	default:
		return 'E' // code128 为默认
	}
}
