package codec

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/taskline/internal/collection"
	"github.com/sandeepkv93/taskline/internal/model"
)

// DefaultStorePath is the primary store, read at startup and rewritten after
// every mutation.
const DefaultStorePath = "tasks.txt"

// Load reads a line-format file. A missing file is an empty collection, not
// an error. Lines that fail to decode are dropped and the rest are kept.
func Load(path string) ([]model.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	var tasks []model.Task
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		if task, ok := DecodeLine(scanner.Text()); ok {
			tasks = append(tasks, task)
		}
	}
	if err := scanner.Err(); err != nil {
		return tasks, fmt.Errorf("codec: read %s: %w", path, err)
	}
	return tasks, nil
}

// Save writes the full task set in line format, via a temp file renamed over
// the target so a failed write never truncates the last good state.
func Save(path string, tasks []model.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(EncodeLine(t))
		b.WriteByte('\n')
	}
	return writeAtomic(path, []byte(b.String()))
}

// LoadJSON reads a JSON export. Missing file means empty, as with Load.
func LoadJSON(path string) ([]model.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	tasks, err := DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", path, err)
	}
	return tasks, nil
}

func SaveJSON(path string, tasks []model.Task) error {
	data, err := EncodeJSON(tasks)
	if err != nil {
		return fmt.Errorf("codec: encode json: %w", err)
	}
	return writeAtomic(path, append(data, '\n'))
}

// ArchiveCompleted writes every completed task to a JSON archive, then
// removes them from the live collection. The collection is only touched after
// the archive write succeeds, so either both happen or neither. Returns the
// number of tasks archived; zero completed tasks is a no-op.
func ArchiveCompleted(path string, src *collection.Collection) (int, error) {
	var completed []model.Task
	for _, t := range src.Tasks() {
		if t.Completed {
			completed = append(completed, t)
		}
	}
	if len(completed) == 0 {
		return 0, nil
	}
	if err := SaveJSON(path, completed); err != nil {
		return 0, err
	}
	src.RemoveCompleted()
	return len(completed), nil
}

// Migrate reads any supported source format, chosen by extension (.json =>
// JSON, .db => a taskline/taskd SQLite database, anything else => line
// format), and rewrites it at dest as current-format lines.
func Migrate(src, dest string) (int, error) {
	var (
		tasks []model.Task
		err   error
	)
	switch strings.ToLower(filepath.Ext(src)) {
	case ".json":
		tasks, err = LoadJSON(src)
	case ".db":
		tasks, err = LoadSQLite(src)
	default:
		tasks, err = Load(src)
	}
	if err != nil {
		return 0, err
	}
	if err := Save(dest, tasks); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("codec: create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("codec: write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("codec: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("codec: rename %s: %w", path, err)
	}
	return nil
}
