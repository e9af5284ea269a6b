package translate

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
)

// FileLoader 以 BaseDir 为根解析相对路径并解码图片，
// 是最常用的一种图像加载能力实现。
type FileLoader struct {
	BaseDir string
}

var _ ImageLoader = FileLoader{}

// Load 打开并解码 uri 指向的图片文件。
func (l FileLoader) Load(ctx context.Context, uri string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := uri
	if !filepath.IsAbs(path) && l.BaseDir != "" {
		path = filepath.Join(l.BaseDir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("读取图片 %s 失败: %w", uri, err)
	}
	defer f.Close()
	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("解码图片 %s 失败: %w", uri, err)
	}
	return m, nil
}
