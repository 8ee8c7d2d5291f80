package publish

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"trellis/config"
	"trellis/css"
	"trellis/element"
	"trellis/page"
	"trellis/render"
	"trellis/state"
)

const bundleEntryName = "index.html"

// bundleManifest describes the bundle to whoever unpacks it.
type bundleManifest struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	Source   string `yaml:"source"`
	Entry    string `yaml:"entry"`
	Created  string `yaml:"created"`
}

// generateBundle writes the page as a zip bundle: the rendered document, its
// stylesheet when the mode asks for a separate one, a manifest and every
// local image the page references. The archive is assembled in a temporary
// file and moved into place only when complete.
func generateBundle(d *page.Document, root *element.Element, extra *css.Stylesheet, src, srcDir, outputPath string, env *state.LocalEnv, log *zap.Logger) error {
	mode := d.StylesheetModeOr(env.Cfg.Document.StylesheetMode)

	r := render.NewRenderer(log, render.Options{
		InlineImages: env.Cfg.Document.Images.Inline,
		SourceDir:    srcDir,
	})

	var assets []bundleAsset
	if !env.Cfg.Document.Images.Inline {
		assets = collectImages(root, srcDir, log)
	}

	info := render.DocInfo{
		Title:   d.Title,
		Lang:    d.Language,
		LinkCSS: mode == config.StylesheetModeLink,
		CSSHref: env.Cfg.Document.StylesheetName,
	}

	doc, cssText, err := r.Document(info, root, extra)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".trellis-*.zip")
	if err != nil {
		return fmt.Errorf("unable to create temporary bundle: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	defer tmp.Close()

	zw := zip.NewWriter(tmp)
	defer zw.Close()

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return fmt.Errorf("unable to serialize document: %w", err)
	}
	if err := writeDataToZip(zw, bundleEntryName, buf.Bytes()); err != nil {
		return fmt.Errorf("unable to write document: %w", err)
	}

	if len(cssText) > 0 {
		if err := writeDataToZip(zw, env.Cfg.Document.StylesheetName, []byte(cssText)); err != nil {
			return fmt.Errorf("unable to write stylesheet: %w", err)
		}
	}

	if err := writeManifest(zw, d, src); err != nil {
		return fmt.Errorf("unable to write manifest: %w", err)
	}

	for _, asset := range assets {
		if err := writeFileToZip(zw, asset.Name, asset.Path); err != nil {
			return fmt.Errorf("unable to write image %s: %w", asset.Name, err)
		}
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close bundle archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to finalize bundle file: %w", err)
	}

	if env.Cfg.Document.FixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputPath)
	}
	return copyFile(tmpName, outputPath)
}

func writeManifest(zw *zip.Writer, d *page.Document, src string) error {
	data, err := yaml.Marshal(bundleManifest{
		ID:       d.ID,
		Title:    d.Title,
		Language: d.Language,
		Source:   src,
		Entry:    bundleEntryName,
		Created:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return writeDataToZip(zw, "manifest.yaml", data)
}

func writeDataToZip(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeFileToZip(zw *zip.Writer, name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return writeDataToZip(zw, name, data)
}

// copyZipWithoutDataDescriptors rewrites the archive dropping data
// descriptor records, some readers refuse entries carrying them.
func copyZipWithoutDataDescriptors(from, to string) error {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	return nil
}
