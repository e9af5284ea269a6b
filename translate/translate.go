// Package translate 将页面描述翻译为打印机的目标脚本：
// 文本路径消费源标记文本，版面路径消费设计器放置的元素序列。
// 两条路径共用同一套装配框架与定长坐标编码规则。
package translate

import (
	"strconv"
	"strings"

	"github.com/cmbaughman/zpl2dpl/dpl"
	"github.com/cmbaughman/zpl2dpl/zpl"
)

// Text 将源标记文本翻译为目标脚本，并返回结构化诊断。
// 默认策略是尽力而为：单条记录失败只跳过自身，整体翻译继续。
func Text(input string) (string, []dpl.Diagnostic) {
	cmds, err := zpl.Parse(input)
	if err != nil {
		return "", []dpl.Diagnostic{{
			Severity: dpl.SeverityError,
			Source:   "zpl",
			Message:  err.Error(),
		}}
	}

	// 图像存储段独立于标签块：下载图形可以出现在块外。
	graphics, gerrs := zpl.Graphics(cmds)
	var diags []dpl.Diagnostic
	for _, e := range gerrs {
		diags = append(diags, dpl.Diagnostic{
			Severity: dpl.SeverityError,
			Source:   "graphics",
			Message:  e.Error(),
		})
	}

	images := make([]dpl.ImageRecord, 0, len(graphics))
	stored := make(map[string]bool, len(graphics))
	for _, g := range graphics {
		images = append(images, dpl.ImageRecord{Name: g.Name, Hex: g.Hex})
		stored[g.Name] = true
	}

	fields := commandFields(zpl.LabelBlock(cmds), stored)
	script, adiags := dpl.Assemble(images, fields)
	return script, append(diags, adiags...)
}

// commandFields 顺序遍历标签块内的命令并映射为版面记录。
// 游标是显式穿行的值：仅由定位命令更新，并一直带到下一次更新为止。
func commandFields(cmds []zpl.Command, stored map[string]bool) []dpl.Field {
	var fields []dpl.Field
	cursorX, cursorY := 0, 0
	claimed := make(map[int]bool) // 已被前面条码认领的字段数据命令

	for i, c := range cmds {
		switch c.Code {
		case "FO":
			// 定位命令只移动游标，自身不产出任何记录。
			cursorX, cursorY = parseXY(c.Param)
		case "FD":
			if claimed[i] {
				continue
			}
			fields = append(fields, dpl.TextField{X: cursorX, Y: cursorY, Data: c.Param})
		case "BC", "B3", "BE":
			j, ok := nextFieldData(cmds, i, claimed)
			if !ok {
				// 块内没有后续字段数据，该条码静默省略。
				continue
			}
			claimed[j] = true
			fields = append(fields, dpl.BarcodeField{
				X:         cursorX,
				Y:         cursorY,
				Symbology: linearSymbology(c.Code),
				Data:      cmds[j].Param,
			})
		case "BX", "BQ":
			j, ok := nextFieldData(cmds, i, claimed)
			if !ok {
				continue
			}
			claimed[j] = true
			fields = append(fields, dpl.Barcode2DField{X: cursorX, Y: cursorY, Data: cmds[j].Param})
		case "GB":
			w, h, t := param3(c.Param)
			fields = append(fields, dpl.BoxField{X: cursorX, Y: cursorY, Width: w, Height: h, Thickness: t})
		case "GC":
			parts := strings.Split(c.Param, ",")
			fields = append(fields, dpl.CircleField{
				X:         cursorX,
				Y:         cursorY,
				Diameter:  paramAt(parts, 0, 1),
				Thickness: paramAt(parts, 1, 1),
			})
		case "GD":
			w, h, t := param3(c.Param)
			fields = append(fields, dpl.LineField{X: cursorX, Y: cursorY, Width: w, Height: h, Thickness: t})
		case "XG":
			name := zpl.NormalizeGraphicName(strings.SplitN(c.Param, ",", 2)[0])
			if !stored[name] {
				// 没有成功驻留的图像记录，召回静默省略。
				continue
			}
			fields = append(fields, dpl.ImageRecallField{X: cursorX, Y: cursorY, Name: name})
		default:
			// 未识别的命令保留在流里以保证索引正确，但不产出记录。
		}
	}
	return fields
}

// nextFieldData 自条码命令处向前扫描，返回第一条尚未被认领的字段数据命令。
func nextFieldData(cmds []zpl.Command, from int, claimed map[int]bool) (int, bool) {
	for j := from + 1; j < len(cmds); j++ {
		if cmds[j].Code == "FD" && !claimed[j] {
			return j, true
		}
	}
	return 0, false
}

// linearSymbology 把源标记的一维条码命令映射到目标符号集字母。
func linearSymbology(code string) byte {
	switch code {
	case "B3":
		return 'A' // Code 39
	case "BE":
		return 'F' // EAN-13
	default:
		return 'E' // Code 128
	}
}

// parseXY 解析定位命令的两个逗号分隔参数，x 在前 y 在后。
func parseXY(param string) (int, int) {
	parts := strings.Split(param, ",")
	return paramAt(parts, 0, 0), paramAt(parts, 1, 0)
}

func param3(param string) (int, int, int) {
	parts := strings.Split(param, ",")
	return paramAt(parts, 0, 1), paramAt(parts, 1, 1), paramAt(parts, 2, 1)
}

func paramAt(parts []string, idx, fallback int) int {
	if idx >= len(parts) {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[idx]))
	if err != nil {
		return fallback
	}
	return n
}
