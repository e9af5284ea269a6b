package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cmbaughman/zpl2dpl/dpl"
	"github.com/cmbaughman/zpl2dpl/translate"
)

func main() {
	input := flag.String("in", "", "ZPL 输入文件路径")
	output := flag.String("out", "", "DPL 输出文件路径，留空时输出到标准输出")
	debug := flag.String("debug", "", "诊断 JSON 输出路径")
	flag.Parse()

	if err := run(*input, *output, *debug); err != nil {
		log.Fatalf("翻译失败: %v", err)
	}
}

// run 串联解析、装配与输出。
func run(inputPath, outputPath, debugPath string) error {
	if inputPath == "" {
		return fmt.Errorf("必须通过 -in 指定 ZPL 输入文件")
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("无法读取输入文件 %s: %w", inputPath, err)
	}

	script, diags := translate.Text(string(data))
	for _, d := range diags {
		log.Printf("[%s] %s: %s", d.Severity, d.Source, d.Message)
	}

	if debugPath != "" {
		if err := writeDiagnostics(diags, debugPath); err != nil {
			return err
		}
	}

	if outputPath == "" {
		fmt.Print(script)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(script), 0o644); err != nil {
		return fmt.Errorf("写入 DPL 文件失败: %w", err)
	}
	return nil
}

// writeDiagnostics 将诊断列表输出为 JSON，便于设计器侧展示。
func writeDiagnostics(diags []dpl.Diagnostic, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建诊断目录失败: %w", err)
	}
	out, err := json.MarshalIndent(diags, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("输出诊断 JSON 失败: %w", err)
	}
	return nil
}
