package publish

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"trellis/config"
	"trellis/state"
)

const samplePage = `title: Sample Page
language: en
body:
  kind: column
  spacing: [16]
  children:
    - kind: heading
      level: 1
      text: Welcome
    - text: Hello there
`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	// name results after source files - titles vary between tests
	cfg.Document.OutputNameTemplate = ""
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func readerForEncoding(t *testing.T, data []byte, enc srcEncoding) *bytes.Reader {
	t.Helper()
	var encoded []byte
	switch enc {
	case encUnknown:
		encoded = data
	case encUTF8:
		encoded = append([]byte{0xEF, 0xBB, 0xBF}, data...)
	case encUTF16BigEndian:
		encoded = encodeWithTransformer(t, data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder())
	case encUTF16LittleEndian:
		encoded = encodeWithTransformer(t, data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
	case encUTF32BigEndian:
		encoded = encodeWithTransformer(t, data, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder())
	case encUTF32LittleEndian:
		encoded = encodeWithTransformer(t, data, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder())
	default:
		t.Fatalf("unsupported encoding: %v", enc)
	}
	return bytes.NewReader(encoded)
}

func encodeWithTransformer(t *testing.T, data []byte, encoder transform.Transformer) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, encoder)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("finalize encoded sample: %v", err)
	}
	return buf.Bytes()
}

// TestProcess_NonExistentPath tests process with non-existent path
func TestProcess_NonExistentPath(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	err := process(ctx, "/nonexistent/path/file.yaml", "/tmp", config.OutputFmtHtml, logger)
	if err == nil {
		t.Fatal("Expected error for non-existent path, got nil")
	}
	expectedMsg := "input source was not found"
	if !strings.Contains(err.Error(), expectedMsg) {
		t.Errorf("Expected error containing '%s', got: %v", expectedMsg, err)
	}
}

// TestProcess_CancelledContext tests process with cancelled context
func TestProcess_CancelledContext(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	cancelCtx, cancel := context.WithCancel(ctx)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cancel() // Cancel immediately

	tmpDir := t.TempDir()
	err := process(cancelCtx, tmpDir, tmpDir, config.OutputFmtHtml, logger)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

// TestProcess_Directory tests process with a directory
func TestProcess_Directory(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	dstDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.yaml")
	if err := os.WriteFile(testFile, []byte(samplePage), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := process(ctx, tmpDir, dstDir, config.OutputFmtHtml, logger); err != nil {
		t.Errorf("process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "test.html")); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}

// TestProcess_DirectoryWithTail tests process with directory path that has a tail
func TestProcess_DirectoryWithTail(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	invalidPath := filepath.Join(tmpDir, "subdir")
	if err := os.MkdirAll(invalidPath, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Add a non-existent tail to the directory path
	pathWithTail := filepath.Join(invalidPath, "nonexistent.yaml")

	err := process(ctx, pathWithTail, tmpDir, config.OutputFmtHtml, logger)
	if err == nil {
		t.Fatal("Expected error for directory with tail, got nil")
	}
}

// TestProcess_SingleFile tests process with a single page document
func TestProcess_SingleFile(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	dstDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "landing.yaml")
	if err := os.WriteFile(testFile, []byte(samplePage), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := process(ctx, testFile, dstDir, config.OutputFmtHtml, logger); err != nil {
		t.Errorf("process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "landing.html")); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}

// TestProcess_Archive tests process with a ZIP archive
func TestProcess_Archive(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	dstDir := t.TempDir()

	zipPath := filepath.Join(tmpDir, "pages.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	f, err := w.CreateHeader(&zip.FileHeader{
		Name:   "page.yaml",
		Method: zip.Store,
	})
	if err != nil {
		t.Fatalf("Failed to create file in zip: %v", err)
	}
	if _, err := f.Write([]byte(samplePage)); err != nil {
		t.Fatalf("Failed to write to zip: %v", err)
	}
	w.Close()
	zipFile.Close()

	if err := process(ctx, zipPath, dstDir, config.OutputFmtHtml, logger); err != nil {
		t.Errorf("process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "page.html")); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
}

// TestProcess_ArchiveWithPath tests process with path inside archive
func TestProcess_ArchiveWithPath(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	dstDir := t.TempDir()

	zipPath := filepath.Join(tmpDir, "pages.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}

	w := zip.NewWriter(zipFile)
	for _, name := range []string{"subdir/page.yaml", "other/skipped.yaml"} {
		f, err := w.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Store,
		})
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		if _, err := f.Write([]byte(samplePage)); err != nil {
			t.Fatalf("Failed to write to zip: %v", err)
		}
	}
	w.Close()
	zipFile.Close()

	// Process with a path inside the archive
	pathInArchive := zipPath + string(filepath.Separator) + "subdir"
	if err := process(ctx, pathInArchive, dstDir, config.OutputFmtHtml, logger); err != nil {
		t.Errorf("process() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "subdir", "page.html")); err != nil {
		t.Errorf("Expected output file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "other", "skipped.html")); err == nil {
		t.Error("File outside requested archive path should not be processed")
	}
}

// TestProcess_NonPageFile tests process with an unrecognized file
func TestProcess_NonPageFile(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("not a page document"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	err := process(ctx, testFile, tmpDir, config.OutputFmtHtml, logger)
	if err == nil {
		t.Fatal("Expected error for unrecognized file, got nil")
	}
	expectedMsg := "input was not recognized as page document"
	if !strings.Contains(err.Error(), expectedMsg) {
		t.Errorf("Expected error containing '%s', got: %v", expectedMsg, err)
	}
}

// TestProcess_EmptyDirectory tests process with empty directory
func TestProcess_EmptyDirectory(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	dstDir := t.TempDir()

	if err := process(ctx, tmpDir, dstDir, config.OutputFmtHtml, logger); err != nil {
		t.Errorf("process() should handle empty directory, got error: %v", err)
	}
}

// TestProcess_DifferentFormats tests process with different output formats
func TestProcess_DifferentFormats(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "page.yaml")
	if err := os.WriteFile(testFile, []byte(samplePage), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	tests := []struct {
		format config.OutputFmt
		output string
	}{
		{config.OutputFmtHtml, "page.html"},
		{config.OutputFmtBundle, "page.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			dstDir := t.TempDir()
			if err := process(ctx, testFile, dstDir, tt.format, logger); err != nil {
				t.Errorf("process() with format %s error = %v", tt.format, err)
			}
			if _, err := os.Stat(filepath.Join(dstDir, tt.output)); err != nil {
				t.Errorf("Expected output file: %v", err)
			}
		})
	}
}

// TestProcessDir_EmptyDir tests processDir with empty directory
func TestProcessDir_EmptyDir(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()

	if err := processDir(ctx, tmpDir, tmpDir, config.OutputFmtHtml, logger); err != nil {
		t.Errorf("Expected no error for empty directory, got %v", err)
	}
}

// TestProcessDir_SkipsBrokenFiles tests that one broken page does not stop the walk
func TestProcessDir_SkipsBrokenFiles(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	dstDir := t.TempDir()

	// a file which sniffs as page but fails to parse
	broken := "title: Broken\nbody: [unclosed\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "broken.yaml"), []byte(broken), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "good.yaml"), []byte(samplePage), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := processDir(ctx, tmpDir, dstDir, config.OutputFmtHtml, logger); err != nil {
		t.Errorf("processDir() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dstDir, "good.html")); err != nil {
		t.Errorf("Expected output for good page: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "broken.html")); err == nil {
		t.Error("Broken page should not produce output")
	}
}

// TestProcessDir_WithCancelledContext tests processDir with cancelled context
func TestProcessDir_WithCancelledContext(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	cancelCtx, cancel := context.WithCancel(ctx)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.yaml")
	if err := os.WriteFile(testFile, []byte(samplePage), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	cancel() // Cancel context

	err := processDir(cancelCtx, tmpDir, tmpDir, config.OutputFmtHtml, logger)
	if err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

// TestProcessPage tests processPage with different source encodings
func TestProcessPage(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	srcDir := t.TempDir()

	// Basic UTF-8 without BOM
	dst := t.TempDir()
	err := processPage(ctx, selectReader(readerForEncoding(t, []byte(samplePage), encUnknown), encUnknown), "sample.yaml", srcDir, dst, config.OutputFmtHtml, logger)
	if err != nil {
		t.Errorf("processPage() error = %v", err)
	}

	// Test with different encodings
	encodings := []srcEncoding{encUTF8, encUTF16BigEndian, encUTF16LittleEndian, encUTF32BigEndian, encUTF32LittleEndian}
	for i, enc := range encodings {
		testName := "encoding_" + string(rune('0'+i))
		t.Run(testName, func(t *testing.T) {
			dst := t.TempDir()
			err := processPage(ctx, selectReader(readerForEncoding(t, []byte(samplePage), enc), enc), "sample.yaml", srcDir, dst, config.OutputFmtHtml, logger)
			if err != nil {
				t.Errorf("processPage() with encoding %v error = %v", enc, err)
			}
		})
	}
}

// TestProcessPage_Overwrite tests overwrite handling for existing output
func TestProcessPage_Overwrite(t *testing.T) {
	ctx, env := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	srcDir := t.TempDir()
	dst := t.TempDir()

	run := func() error {
		return processPage(ctx, selectReader(readerForEncoding(t, []byte(samplePage), encUnknown), encUnknown), "sample.yaml", srcDir, dst, config.OutputFmtHtml, logger)
	}

	if err := run(); err != nil {
		t.Fatalf("processPage() error = %v", err)
	}

	err := run()
	if err == nil {
		t.Fatal("Expected error for existing output, got nil")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected error containing 'already exists', got: %v", err)
	}

	env.Overwrite = true
	if err := run(); err != nil {
		t.Errorf("processPage() with overwrite error = %v", err)
	}
}

// TestProcessPage_UserStyle tests that user stylesheet ends up in the output
func TestProcessPage_UserStyle(t *testing.T) {
	ctx, env := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	srcDir := t.TempDir()
	dst := t.TempDir()

	env.UserStyle = []byte(".banner { min-height: 77px }")

	err := processPage(ctx, selectReader(readerForEncoding(t, []byte(samplePage), encUnknown), encUnknown), "sample.yaml", srcDir, dst, config.OutputFmtHtml, logger)
	if err != nil {
		t.Fatalf("processPage() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dst, "sample.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "min-height: 77px") {
		t.Error("Expected user style in rendered output")
	}
}

// TestProcessPage_BadDocument tests processPage with invalid document
func TestProcessPage_BadDocument(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	broken := []byte("title: Broken\nbody: [unclosed\n")
	err := processPage(ctx, bytes.NewReader(broken), "broken.yaml", t.TempDir(), t.TempDir(), config.OutputFmtHtml, logger)
	if err == nil {
		t.Fatal("Expected error for broken document, got nil")
	}
	if !strings.Contains(err.Error(), "unable to parse page document") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

// TestParseOutputFmt tests ParseOutputFmt function
func TestParseOutputFmt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    config.OutputFmt
		wantErr bool
	}{
		{"html", "html", config.OutputFmtHtml, false},
		{"HTML uppercase", "HTML", config.OutputFmtHtml, false},
		{"bundle", "bundle", config.OutputFmtBundle, false},
		{"BUNDLE uppercase", "BUNDLE", config.OutputFmtBundle, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := config.ParseOutputFmt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseOutputFmt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseOutputFmt() = %v, want %v", got, tt.want)
			}
		})
	}
}
