package dpl

// 该文件定义版面段的记录变体。每种变体知道如何把自己编码为一条定长记录；
// 坐标编码失败时返回错误，由 Assemble 统一降级处理。

// Field 是版面段中一条待编码的记录。
type Field interface {
	record() (string, error)
}

// TextField 在 (X, Y) 处放置一段字面文本。
type TextField struct {
	X, Y int
	Data string
}

func (f TextField) record() (string, error) {
	y, x, err := positions(f.Y, f.X)
	if err != nil {
		return "", err
	}
	return textPrefix + y + x + f.Data + CR, nil
}

// BarcodeField 是一维条码：旋转、符号集字母、宽窄比与条高为固定选项。
type BarcodeField struct {
	X, Y      int
	Symbology byte
	Data      string
}

func (f BarcodeField) record() (string, error) {
	y, x, err := positions(f.Y, f.X)
	if err != nil {
		return "", err
	}
	return "1" + string(f.Symbology) + "22050" + y + x + f.Data + CR, nil
}

// Barcode2DField 是矩阵式二维条码，载荷模式为固定标志。
type Barcode2DField struct {
	X, Y int
	Data string
}

func (f Barcode2DField) record() (string, error) {
	y, x, err := positions(f.Y, f.X)
	if err != nil {
		return "", err
	}
	return barcode2DPrefix + y + x + barcode2DModeFlag + f.Data + CR, nil
}

// BoxField 以左上角与宽高描述矩形框，纵横边线宽相同。
type BoxField struct {
	X, Y          int
	Width, Height int
	Thickness     int
}

func (f BoxField) record() (string, error) {
	y, x, err := positions(f.Y, f.X)
	if err != nil {
		return "", err
	}
	// 终点坐标由位置加尺寸计算，并按同样的 4 位规则重新校验。
	ey, ex, err := positions(f.Y+f.Height, f.X+f.Width)
	if err != nil {
		return "", err
	}
	t := field3(f.Thickness)
	return boxMarker + y + x + ey + ex + t + t + CR, nil
}

// CircleField 以左上角、直径与线宽描述圆。
type CircleField struct {
	X, Y      int
	Diameter  int
	Thickness int
}

func (f CircleField) record() (string, error) {
	y, x, err := positions(f.Y, f.X)
	if err != nil {
		return "", err
	}
	d, err := field4(f.Diameter)
	if err != nil {
		return "", err
	}
	return circleMarker + y + x + d + field3(f.Thickness) + CR, nil
}

// LineField 是斜线段，由起点与宽高偏移确定终点。
type LineField struct {
	X, Y          int
	Width, Height int
	Thickness     int
}

func (f LineField) record() (string, error) {
	y, x, err := positions(f.Y, f.X)
	if err != nil {
		return "", err
	}
	ey, ex, err := positions(f.Y+f.Height, f.X+f.Width)
	if err != nil {
		return "", err
	}
	return lineMarker + y + x + ey + ex + field3(f.Thickness) + CR, nil
}

// ImageRecallField 按逻辑名召回一幅已在图像存储段驻留的图。
type ImageRecallField struct {
	X, Y int
	Name string
}

func (f ImageRecallField) record() (string, error) {
	y, x, err := positions(f.Y, f.X)
	if err != nil {
		return "", err
	}
	return imageRecallMarker + y + x + f.Name + CR, nil
}

func positions(y, x int) (string, string, error) {
	ys, err := Position(y)
	if err != nil {
		return "", "", err
	}
	xs, err := Position(x)
	if err != nil {
		return "", "", err
	}
	return ys, xs, nil
}
