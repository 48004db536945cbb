// Package bench sends every source file in a directory to a running server
// and reports latency per language.
package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kdduha/code-explainer/internal/models"
	"golang.org/x/sync/errgroup"
)

type Explainer interface {
	Explain(ctx context.Context, req models.ExplainRequest) (*models.ExplanationResult, error)
}

var extLanguages = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".java": "java",
	".cs":   "csharp",
	".cpp":  "cpp",
	".c":    "c",
	".rs":   "rust",
	".rb":   "ruby",
	".php":  "php",
	".sql":  "sql",
}

// LanguageForFile guesses the declared language from the file extension.
func LanguageForFile(path string) string {
	if lang, ok := extLanguages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "auto"
}

// Run benchmarks all regular files under dir with at most concurrency calls
// in flight. Per-file failures are kept in the results, not returned.
func Run(ctx context.Context, e Explainer, dir string, concurrency int) ([]Result, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(files))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))
	for _, file := range files {
		g.Go(func() error {
			res := benchmarkFile(ctx, e, file)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	return results, nil
}

func benchmarkFile(ctx context.Context, e Explainer, path string) Result {
	start := time.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{File: filepath.Base(path), Err: err}
	}

	req := models.ExplainRequest{
		Code:     string(raw),
		Language: LanguageForFile(path),
	}
	res, err := e.Explain(ctx, req)

	out := Result{
		File:     filepath.Base(path),
		Language: req.Language,
		Duration: time.Since(start),
		Err:      err,
		Size:     int64(len(raw)),
	}
	if res != nil {
		out.ServerTime = time.Duration(res.ResponseTime * float64(time.Second))
	}
	return out
}

func aggregate(results []Result) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		a := m[r.Language]
		a.Count++
		a.TotalBytes += r.Size
		a.Total += r.Duration
		a.ServerTime += r.ServerTime
		m[r.Language] = a
	}
	return m
}

// PrintMarkdown writes a summary table, one row per language.
func PrintMarkdown(w io.Writer, results []Result) {
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Language | Requests | Avg Time | Avg Server Time | Total Time | Avg File Size |")
	fmt.Fprintln(w, "|----------|----------|----------|-----------------|------------|---------------|")

	agg := aggregate(results)
	languages := make([]string, 0, len(agg))
	for lang := range agg {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	var (
		totalCount    int
		totalDuration time.Duration
		totalServer   time.Duration
		totalBytes    int64
	)

	for _, lang := range languages {
		a := agg[lang]
		n := time.Duration(a.Count)
		fmt.Fprintf(w, "| %s | %d | %v | %v | %v | %s |\n",
			lang,
			a.Count,
			(a.Total / n).Round(time.Millisecond),
			(a.ServerTime / n).Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			humanBytes(a.TotalBytes/int64(a.Count)),
		)
		totalCount += a.Count
		totalDuration += a.Total
		totalServer += a.ServerTime
		totalBytes += a.TotalBytes
	}

	if totalCount > 0 {
		n := time.Duration(totalCount)
		fmt.Fprintf(w, "| **ALL** | %d | %v | %v | %v | %s |\n",
			totalCount,
			(totalDuration / n).Round(time.Millisecond),
			(totalServer / n).Round(time.Millisecond),
			totalDuration.Round(time.Millisecond),
			humanBytes(totalBytes/int64(totalCount)),
		)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(w, "\n%d of %d requests failed\n", failed, len(results))
	}
}

func humanBytes(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2f GB", float64(size)/GB)
	case size >= MB:
		return fmt.Sprintf("%.2f MB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
