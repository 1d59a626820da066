package files

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/logging"
	"github.com/renato0307/alttext/internal/ports"
)

// MaxFileSize is the largest file the loader reads
const MaxFileSize = 20 << 20

// sniffLen is how many bytes http.DetectContentType looks at
const sniffLen = 512

// Loader reads user-selected files into memory
type Loader struct {
	maxSize int64
}

var _ ports.FileLoader = (*Loader)(nil)

// NewLoader creates a Loader with the default size limit
func NewLoader() *Loader {
	return &Loader{maxSize: MaxFileSize}
}

// Load reads path and determines its MIME type from the extension, falling
// back to content sniffing. Non-image files load fine; rejecting them is the
// workflow's job.
func (l *Loader) Load(path string) (domain.File, error) {
	path = CleanPath(path)

	f, err := os.Open(path)
	if err != nil {
		return domain.File{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return domain.File{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return domain.File{}, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > l.maxSize {
		return domain.File{}, fmt.Errorf("%w: %s is %d bytes (limit %d)", domain.ErrFileTooLarge, path, info.Size(), l.maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, l.maxSize+1))
	if err != nil {
		return domain.File{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if int64(len(data)) > l.maxSize {
		return domain.File{}, fmt.Errorf("%w: %s", domain.ErrFileTooLarge, path)
	}

	file := domain.File{
		Data: data,
		MIME: DetectMIME(path, data),
		Name: filepath.Base(path),
	}
	logging.Logger.Debug("File loaded", "path", path, "mime", file.MIME, "size", len(data))
	return file, nil
}

// IsFile reports whether raw names an existing regular file
func (l *Loader) IsFile(raw string) bool {
	return LooksLikePath(raw)
}

// DetectMIME returns the media type of a file, without parameters
func DetectMIME(path string, data []byte) string {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType
		}
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(head))
	if err != nil {
		return "application/octet-stream"
	}
	return mediaType
}

// CleanPath turns what a terminal pastes when a file is dropped on it into a
// plain path: surrounding quotes are removed, shell escapes undone and
// file:// URLs converted.
func CleanPath(raw string) string {
	p := strings.TrimSpace(raw)

	if len(p) >= 2 && (p[0] == '\'' || p[0] == '"') && p[len(p)-1] == p[0] {
		if p[0] == '"' {
			if unquoted, err := strconv.Unquote(p); err == nil {
				p = unquoted
			} else {
				p = p[1 : len(p)-1]
			}
		} else {
			p = p[1 : len(p)-1]
		}
	} else if strings.Contains(p, `\`) && filepath.Separator == '/' {
		p = unescapeShell(p)
	}

	if strings.HasPrefix(p, "file://") {
		p = strings.TrimPrefix(p, "file://")
		if unescaped, err := url.PathUnescape(p); err == nil {
			p = unescaped
		}
	}

	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// LooksLikePath reports whether pasted text is plausibly a single dropped file
func LooksLikePath(raw string) bool {
	p := strings.TrimSpace(raw)
	if p == "" || strings.ContainsAny(p, "\n\r") {
		return false
	}
	p = CleanPath(p)
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func unescapeShell(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
