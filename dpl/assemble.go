package dpl

import (
	"fmt"
	"strings"
)

// Severity 标记诊断级别。
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic 描述翻译过程中被跳过或降级的部分。装配的公开契约是同时返回
// 脚本与诊断列表，库内部不做任何日志旁路。
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Source   string   `json:"source"`
	Message  string   `json:"message"`
}

// ImageRecord 是一幅待驻留的图像：逻辑名加已编码的单色十六进制载荷。
// 记录由编码侧产生，在装配图像存储段时消费一次，之后不再保留。
type ImageRecord struct {
	Name string
	Hex  string
}

// Assemble 按两段式拼装目标脚本：先按出现顺序写出全部图像存储记录，
// 再写出版面记录。两段永不交错——版面段引用的逻辑名必须先于引用驻留。
// 编码失败的记录被跳过并记入诊断，其余记录继续。
func Assemble(images []ImageRecord, fields []Field) (string, []Diagnostic) {
	var sb strings.Builder
	var diags []Diagnostic

	sb.WriteString(startOfLabel)
	sb.WriteString(configRecord)

	for _, img := range images {
		sb.WriteString(imageStoreMarker)
		sb.WriteString(img.Name)
		sb.WriteString(CR)
		sb.WriteString(img.Hex)
		sb.WriteString(CR)
	}

	for i, f := range fields {
		if f == nil {
			continue
		}
		rec, err := f.record()
		if err != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Source:   fmt.Sprintf("field[%d]", i),
				Message:  err.Error(),
			})
			continue
		}
		sb.WriteString(rec)
	}

	sb.WriteString(endOfLabel)
	return sb.String(), diags
}
