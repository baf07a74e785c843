// printlab - photo-lab order mapping and frame allocation
//
// Reads a customer order and frame request file, expands them into
// concrete print items with frames allocated from inventory, and writes
// production deliverables (summary PDF, claim labels, Excel item list).
//
// Build:
//   go build -o printlab ./cmd/printlab
//
// Usage:
//   printlab -order order.csv -frames frames.csv -pdf order.pdf

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/printlab/internal/engine"
	"github.com/piwi3910/printlab/internal/export"
	"github.com/piwi3910/printlab/internal/importer"
	"github.com/piwi3910/printlab/internal/model"
	"github.com/piwi3910/printlab/internal/project"
	"github.com/piwi3910/printlab/internal/resolver"
)

func main() {
	var (
		orderPath   = flag.String("order", "", "order line file (.csv, .tsv or .xlsx)")
		framesPath  = flag.String("frames", "", "frame request file (.csv, .tsv or .xlsx)")
		catalogPath = flag.String("catalog", project.DefaultCatalogPath(), "product catalog JSON")
		metaPath    = flag.String("frame-meta", project.DefaultFrameMetaPath(), "frame metadata JSON")
		retouchPath = flag.String("retouch", project.DefaultRetouchPath(), "retouch code list JSON")
		imagesDir   = flag.String("images", "", "image directory for code resolution")
		orderRef    = flag.String("ref", "order", "order reference printed on deliverables")
		pose        = flag.String("pose", "", "directory pose image code")
		pdfPath     = flag.String("pdf", "", "write order summary PDF to this path")
		xlsxPath    = flag.String("xlsx", "", "write order item list workbook to this path")
		labelsPath  = flag.String("labels", "", "write QR claim labels PDF to this path")
		strict      = flag.Bool("strict", false, "fail on unknown product codes instead of skipping")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	if *orderPath == "" {
		fmt.Fprintln(os.Stderr, "usage: printlab -order <file> [-frames <file>] [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cat, err := project.LoadCatalog(*catalogPath)
	if err != nil {
		logger.Error("failed to load catalog", "path", *catalogPath, "error", err)
		os.Exit(1)
	}

	frameMeta, err := project.LoadFrameMeta(*metaPath)
	if err != nil {
		logger.Error("failed to load frame metadata", "path", *metaPath, "error", err)
		os.Exit(1)
	}

	retouch, err := project.LoadRetouchCodes(*retouchPath)
	if err != nil {
		logger.Error("failed to load retouch codes", "path", *retouchPath, "error", err)
		os.Exit(1)
	}

	lines, ok := importOrders(logger, *orderPath, retouch)
	if !ok {
		os.Exit(1)
	}

	var frames []model.FrameRequest
	if *framesPath != "" {
		frames, ok = importFrames(logger, *framesPath)
		if !ok {
			os.Exit(1)
		}
	}

	settings := engine.DefaultSettings()
	if *strict {
		settings.UnknownCode = engine.UnknownFail
	}
	eng := engine.NewWithSettings(cat, settings)
	eng.SetFrameMeta(frameMeta)

	result, err := eng.Run(engine.Order{
		Lines:         lines,
		DirectoryPose: *pose,
		Frames:        frames,
	})
	if err != nil {
		logger.Error("order mapping failed", "error", err)
		os.Exit(1)
	}

	for _, w := range result.Warnings {
		logger.Warn("order warning", "detail", w)
	}
	for _, d := range result.UnmetDemands() {
		logger.Warn("unmet frame demand",
			"frame_no", d.FrameNo, "size", d.Size, "color", d.Color, "unmet", d.Residual())
	}
	logger.Info("order mapped", "ref", *orderRef, "items", len(result.Items))

	if *imagesDir != "" {
		resolveImages(logger, *imagesDir, result.Items)
	}

	if *pdfPath != "" {
		if err := export.OrderPDF(*pdfPath, *orderRef, result.Items, result.Demands, result.Warnings); err != nil {
			logger.Error("PDF export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote order summary", "path", *pdfPath)
	}
	if *xlsxPath != "" {
		if err := export.OrderExcel(*xlsxPath, *orderRef, result.Items, result.Demands); err != nil {
			logger.Error("Excel export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote item workbook", "path", *xlsxPath)
	}
	if *labelsPath != "" {
		if err := export.ClaimLabels(*labelsPath, *orderRef, result.Items); err != nil {
			logger.Error("label export failed", "error", err)
			os.Exit(1)
		}
		logger.Info("wrote claim labels", "path", *labelsPath)
	}
}

// importOrders loads order lines from a CSV/TSV or Excel file.
func importOrders(logger *slog.Logger, path string, retouch map[string]bool) ([]model.OrderLine, bool) {
	var result importer.OrderResult
	if isExcel(path) {
		result = importer.ImportOrdersExcel(path, retouch)
	} else {
		result = importer.ImportOrdersCSV(path, retouch)
	}
	logImport(logger, "order", result.Errors, result.Warnings)
	if len(result.Lines) == 0 && len(result.Errors) > 0 {
		return nil, false
	}
	return result.Lines, true
}

// importFrames loads frame requests from a CSV/TSV or Excel file.
func importFrames(logger *slog.Logger, path string) ([]model.FrameRequest, bool) {
	var result importer.FrameResult
	if isExcel(path) {
		result = importer.ImportFramesExcel(path)
	} else {
		result = importer.ImportFramesCSV(path)
	}
	logImport(logger, "frame", result.Errors, result.Warnings)
	if len(result.Frames) == 0 && len(result.Errors) > 0 {
		return nil, false
	}
	return result.Frames, true
}

// resolveImages reports which item image codes have no candidate files.
func resolveImages(logger *slog.Logger, dir string, items []model.PrintItem) {
	codes := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		for _, code := range item.Images {
			if code != "" && !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}

	res := resolver.New(dir)
	resolved, err := res.Resolve(codes)
	if err != nil {
		logger.Error("image resolution failed", "dir", dir, "error", err)
		return
	}
	for code, paths := range resolved {
		if len(paths) == 0 {
			logger.Warn("no image file for code", "code", code)
		}
	}
}

// isExcel reports whether the path looks like an Excel workbook.
func isExcel(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".xlsx" || ext == ".xls"
}

// logImport forwards import problems to the logger.
func logImport(logger *slog.Logger, kind string, errors, warnings []string) {
	for _, e := range errors {
		logger.Error(kind+" import error", "detail", e)
	}
	for _, w := range warnings {
		logger.Info(kind+" import notice", "detail", w)
	}
}
