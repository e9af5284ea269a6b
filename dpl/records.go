package dpl

import "fmt"

// 该文件集中定义目标脚本的记录常量与定长字段编码，供装配与字段编码共用。

// 记录分隔与整体框架使用打印机固件期望的字面控制字符。
const (
	STX = "\x02"
	CR  = "\r"

	startOfLabel = STX + "L" + CR
	configRecord = "D11" + CR
	endOfLabel   = "E" + CR
)

// 各类记录的固定前缀。文本前缀为 7 位字体/样式/旋转字段；
// 图形记录沿用 1X11000 图形域格式，以尾字母区分形状。
const (
	imageStoreMarker  = STX + "IA"
	textPrefix        = "1911000"
	barcode2DPrefix   = "1W1c44"
	barcode2DModeFlag = "A"
	boxMarker         = "1X11000B"
	circleMarker      = "1X11000C"
	lineMarker        = "1X11000L"
	imageRecallMarker = "1Y11000"
)

// Position 将像素坐标编码为 4 位零填充的行/列字段。
// 负值或超过 4 位的值不做静默截断，而是返回错误，由装配层降级为诊断并跳过该记录。
func Position(v int) (string, error) {
	return field4(v)
}

// field4 渲染一个 4 位零填充的定长数值字段。
func field4(v int) (string, error) {
	if v < 0 || v > 9999 {
		return "", fmt.Errorf("dpl: 数值 %d 超出 4 位字段范围", v)
	}
	return fmt.Sprintf("%04d", v), nil
}

// field3 渲染 3 位线宽字段；线宽不是坐标，超界时裁剪而非报错。
func field3(v int) string {
	if v < 1 {
		v = 1
	}
	if v > 999 {
		v = 999
	}
	return fmt.Sprintf("%03d", v)
}
