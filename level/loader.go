package level

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

var ErrNoLevels = errors.New("no level files found")

// Loader discovers level files at the root of a file system and loads them by
// index. Files are ordered lexically, so "01_intro.yaml" comes before
// "02_gap.yaml".
type Loader struct {
	fsys  fs.FS
	files []string
}

// NewLoader scans fsys for .yaml, .yml and .tmx files. It takes an fs.FS so
// callers can pass the embedded levels or an os.DirFS override.
func NewLoader(fsys fs.FS) (*Loader, error) {
	l := &Loader{fsys: fsys}
	if err := l.Refresh(); err != nil {
		return nil, err
	}
	return l, nil
}

// Refresh rescans the file system, picking up added or removed levels.
func (l *Loader) Refresh() error {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return fmt.Errorf("read level dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return ErrNoLevels
	}

	sort.Strings(files)
	l.files = files
	return nil
}

// Count is the number of levels; reaching it means every level is finished.
func (l *Loader) Count() int {
	return len(l.files)
}

func (l *Loader) Files() []string {
	return append([]string(nil), l.files...)
}

// Load parses the level at index.
func (l *Loader) Load(index int) (Description, error) {
	if index < 0 || index >= len(l.files) {
		return Description{}, fmt.Errorf("level %d out of range [0, %d)", index, len(l.files))
	}

	file := l.files[index]
	var (
		desc Description
		err  error
	)
	switch strings.ToLower(path.Ext(file)) {
	case ".tmx":
		desc, err = LoadTMX(l.fsys, file)
	default:
		var data []byte
		data, err = fs.ReadFile(l.fsys, file)
		if err == nil {
			desc, err = ParseYAML(data)
		}
	}
	if err != nil {
		return Description{}, fmt.Errorf("load level %d (%s): %w", index, file, err)
	}

	if desc.Name == "" {
		desc.Name = stem(file)
	}
	return desc, nil
}

// MustLoad is Load for build-time assets: a missing or broken level file is
// not recoverable, so it panics.
func (l *Loader) MustLoad(index int) Description {
	desc, err := l.Load(index)
	if err != nil {
		panic(err)
	}
	return desc
}

// Names returns the display name of every level, falling back to the file
// name for levels that fail to load.
func (l *Loader) Names() []string {
	names := make([]string, len(l.files))
	for i, file := range l.files {
		desc, err := l.Load(i)
		if err != nil {
			names[i] = stem(file)
			continue
		}
		names[i] = desc.Name
	}
	return names
}

// IsLevelFile reports whether the file name has a supported level extension.
func IsLevelFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".tmx":
		return true
	}
	return false
}

func stem(file string) string {
	return strings.TrimSuffix(path.Base(file), path.Ext(file))
}
