package publish

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trellis/element"
	"trellis/style"
)

// bundleAsset is one file carried into the bundle next to the page.
type bundleAsset struct {
	// Name is the path inside the bundle, Path the file on disk.
	Name string
	Path string
}

// collectImages finds local image sources in the tree, repoints them at
// bundled copies under images/ and reports which files must be carried into
// the bundle. Remote sources and data URIs are left alone, as are files
// which cannot be found. A file referenced from several images is bundled
// once.
func collectImages(root *element.Element, srcDir string, log *zap.Logger) []bundleAsset {
	var assets []bundleAsset
	used := map[string]bool{}
	byPath := map[string]string{}

	var walk func(el *element.Element)
	walk = func(el *element.Element) {
		if el == nil {
			return
		}
		if el.Kind == element.KindImage {
			for i, a := range el.Attrs {
				raw, ok := a.(style.RawAttr)
				if !ok || raw.Key != "src" || !isLocalSource(raw.Value) {
					continue
				}

				path := raw.Value
				if !filepath.IsAbs(path) {
					path = filepath.Join(srcDir, path)
				}
				if name, ok := byPath[path]; ok {
					el.Attrs[i] = style.RawAttr{Key: "src", Value: name}
					continue
				}
				if _, err := os.Stat(path); err != nil {
					log.Warn("Unable to bundle image, keeping source as is", zap.String("src", raw.Value), zap.Error(err))
					continue
				}

				name := bundleName(filepath.Base(path), used)
				byPath[path] = name
				el.Attrs[i] = style.RawAttr{Key: "src", Value: name}
				assets = append(assets, bundleAsset{Name: name, Path: path})
			}
		}
		for _, a := range el.Attrs {
			if n, ok := a.(style.Nearby); ok {
				if child, ok := n.Child.(*element.Element); ok {
					walk(child)
				}
			}
		}
		for _, c := range el.Children {
			walk(c)
		}
	}
	walk(root)
	return assets
}

func isLocalSource(src string) bool {
	return len(src) > 0 && !strings.HasPrefix(src, "data:") && !strings.Contains(src, "://")
}

// bundleName picks a collision free name under images/ for a source file.
func bundleName(base string, used map[string]bool) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := "images/" + base
	for i := 2; used[name]; i++ {
		name = "images/" + stem + "-" + strconv.Itoa(i) + ext
	}
	used[name] = true
	return name
}
