// Package main 将项目详情页导出为 PDF
//
// Usage:
//
//	go run ./cmd/export_project [flags]
//
// Flags:
//
//	--id <project>     项目ID（默认 search-engine）
//	--data <location>  项目数据：本地文件或 http(s) URL（默认 data/project_data.json）
//	--out <file>       输出文件（默认 <id>.pdf）
//	--all              导出数据中的所有项目（忽略 --id 和 --out）
//	--timeout <dur>    加载超时（默认 10s）
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/folio/pkg/project"
)

var (
	idFlag      = flag.String("id", project.DefaultID, "Project id to export")
	dataFlag    = flag.String("data", project.DefaultDataPath, "Project data file or http(s) URL")
	outFlag     = flag.String("out", "", "Output PDF file (default <id>.pdf)")
	allFlag     = flag.Bool("all", false, "Export every project in the data file")
	timeoutFlag = flag.Duration("timeout", 10*time.Second, "Load timeout")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	src := project.NewSource(*dataFlag)
	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	ids := []string{*idFlag}
	if *allFlag {
		data, err := src.Load(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ids = project.IDs(data)
	}

	failed := 0
	for _, id := range ids {
		out := *outFlag
		if out == "" || *allFlag {
			out = id + ".pdf"
		}
		if err := export(ctx, src, id, out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", id, err)
			failed++
			continue
		}
		fmt.Printf("Exported %s -> %s\n", id, out)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// export 加载并导出单个项目；加载失败时仍写出错误页，并返回错误
func export(ctx context.Context, src project.Source, id, out string) error {
	p := project.Load(ctx, src, id)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := project.ExportPDF(f, p); err != nil {
		return err
	}
	if p.Failed() {
		return fmt.Errorf("%s", p.Error)
	}
	return nil
}
