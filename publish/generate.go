package publish

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"trellis/config"
	"trellis/css"
	"trellis/element"
	"trellis/page"
	"trellis/render"
	"trellis/state"
)

// generateHTML writes the page as a single markup document. In link mode the
// stylesheet goes into a sibling file named after the document, so several
// pages rendered into one directory keep their own sheets.
func generateHTML(d *page.Document, root *element.Element, extra *css.Stylesheet, srcDir, outputPath string, env *state.LocalEnv, log *zap.Logger) error {
	mode := d.StylesheetModeOr(env.Cfg.Document.StylesheetMode)

	r := render.NewRenderer(log, render.Options{
		InlineImages: env.Cfg.Document.Images.Inline,
		SourceDir:    srcDir,
	})

	cssHref := strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath)) + ".css"
	info := render.DocInfo{
		Title:   d.Title,
		Lang:    d.Language,
		LinkCSS: mode == config.StylesheetModeLink,
		CSSHref: cssHref,
	}

	doc, cssText, err := r.Document(info, root, extra)
	if err != nil {
		return err
	}

	if err := writeDocument(doc, outputPath); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}

	if len(cssText) > 0 {
		cssPath := filepath.Join(filepath.Dir(outputPath), cssHref)
		if err := os.WriteFile(cssPath, []byte(cssText), 0644); err != nil {
			return fmt.Errorf("unable to write stylesheet: %w", err)
		}
		log.Debug("Stylesheet written", zap.String("file", cssPath))
	}
	return nil
}

func writeDocument(doc *etree.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := doc.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("unable to copy file contents: %w", err)
	}
	return destinationFile.Close()
}
