package render

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"
	"go.uber.org/zap"
)

// inlineImage replaces a file image source with a data URI. Sources that are
// already data URIs or point at remote locations are left alone, as are
// files whose type cannot be detected from their content.
func (r *Renderer) inlineImage(node *etree.Element) error {
	src := node.SelectAttrValue("src", "")
	if src == "" || strings.HasPrefix(src, "data:") || strings.Contains(src, "://") {
		return nil
	}

	path := src
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.opts.SourceDir, src)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read image %q: %w", src, err)
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		r.log.Warn("Unable to detect image type, keeping source as is", zap.String("src", src))
		return nil
	}

	node.CreateAttr("src", "data:"+kind.MIME.Value+";base64,"+base64.StdEncoding.EncodeToString(data))
	return nil
}
