package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation file.
// A nil parser selects one from the file extension.
type FileAdapter struct {
	parser Parser
	path   string
}

func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	dir, name := filepath.Split(a.path)
	if dir == "" {
		dir = "."
	}

	result := make(map[string]map[string]any)
	if err := loadFile(ctx, os.DirFS(dir), name, a.parser, result); err != nil {
		return nil, err
	}
	return result, nil
}

// DirectoryAdapter loads every supported file of a directory, non-recursively.
// A nil parser accepts JSON, YAML and TOML files side by side.
type DirectoryAdapter struct {
	fs FSAdapter
}

func NewDirectoryAdapter(parser Parser, dir string) *DirectoryAdapter {
	return &DirectoryAdapter{fs: FSAdapter{parser: parser, fsys: os.DirFS(dir), dir: "."}}
}

func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	return a.fs.Load(ctx)
}

// FSAdapter loads every supported file of a directory inside an fs.FS,
// which makes it the adapter of choice for embed.FS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	result := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.supports(entry.Name()) {
			continue
		}
		if err := loadFile(ctx, a.fsys, path.Join(a.dir, entry.Name()), a.parser, result); err != nil {
			return nil, err
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return result, nil
}

func (a *FSAdapter) supports(name string) bool {
	if a.parser == nil {
		return NewParserForFile(name) != nil
	}
	return a.parser.SupportsFileExtension(filepath.Ext(name))
}

// MultiAdapter merges several adapters. Keys from later adapters override
// earlier ones at any nesting depth.
type MultiAdapter struct {
	adapters []TranslationAdapter
}

func NewMultiAdapter(adapters ...TranslationAdapter) *MultiAdapter {
	return &MultiAdapter{adapters: adapters}
}

func (a *MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, adapter := range a.adapters {
		if adapter == nil {
			continue
		}
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(result, translations)
	}
	return result, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, parser Parser, into map[string]map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingCancelled, err)
	}

	p := parserFor(parser, name)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrFailedToReadFile, name)
	}

	translations, err := p.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}

	merge(into, translations)
	return nil
}

func merge(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeTree(dst[lang], translations)
	}
}

func mergeTree(dst, src map[string]any) {
	for key, val := range src {
		nested, ok := val.(map[string]any)
		if !ok {
			dst[key] = val
			continue
		}
		existing, isMap := dst[key].(map[string]any)
		if !isMap {
			existing = make(map[string]any, len(nested))
			dst[key] = existing
		}
		mergeTree(existing, nested)
	}
}
