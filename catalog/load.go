package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingTitle is returned when a catalog source defines an entry without a title.
	ErrMissingTitle = errors.New("entry has no title")
	// ErrUnsupportedSource is returned for catalog paths that are neither YAML files nor directories.
	ErrUnsupportedSource = errors.New("unsupported catalog source")
)

// Load reads the catalog definition at path. An empty path yields the
// built-in catalog. YAML files hold a list of entries; a directory holds
// one markdown file per entry with YAML front matter and the description
// as the document body.
func Load(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return loadMarkdownDir(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("catalog: %w: %s", ErrUnsupportedSource, path)
	}
}

func loadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var doc struct {
		Entries []Entry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	for i, entry := range doc.Entries {
		if strings.TrimSpace(entry.Title) == "" {
			return nil, fmt.Errorf("catalog: %s entry %d: %w", path, i, ErrMissingTitle)
		}
	}
	return New(doc.Entries...), nil
}

func loadMarkdownDir(dir string) (*Catalog, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("catalog: glob %s: %w", dir, err)
	}
	sort.Strings(files)

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	entries := make([]Entry, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", file, err)
		}
		entry, err := parseMarkdownEntry(md, data)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", filepath.Base(file), err)
		}
		entries = append(entries, entry)
	}
	return New(entries...), nil
}

func parseMarkdownEntry(md goldmark.Markdown, src []byte) (Entry, error) {
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(src), parser.WithContext(ctx))
	fields, err := meta.TryGet(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("front matter: %w", err)
	}

	entry := Entry{
		Title:        scalar(fields["title"]),
		Image:        scalar(fields["image"]),
		FileSize:     scalar(fields["fileSize"]),
		DownloadLink: scalar(fields["downloadLink"]),
		Tags:         stringList(fields["tags"]),
		Description:  strings.TrimSpace(string(stripFrontMatter(src))),
	}
	if strings.TrimSpace(entry.Title) == "" {
		return Entry{}, ErrMissingTitle
	}
	return entry, nil
}

func stripFrontMatter(src []byte) []byte {
	lines := bytes.SplitAfter(src, []byte("\n"))
	if len(lines) == 0 || strings.TrimSpace(string(lines[0])) != "---" {
		return src
	}
	offset := len(lines[0])
	for _, line := range lines[1:] {
		offset += len(line)
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "---" || trimmed == "..." {
			return src[offset:]
		}
	}
	return src
}

func scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func stringList(value any) []string {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := scalar(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return nil
}
