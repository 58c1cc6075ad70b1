package logging

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

const (
	mb             = 1000000
	defaultMaxSize = 2.5 * mb
	defaultMaxLogs = 2
)

// RollingFileWriter appends to dir/name.log. Once that file would grow past MaxSize it becomes
// name-1.log, older archives shift up by one, and archives past MaxLogs are removed.
type RollingFileWriter struct {
	FileDirectory string
	FileName      string
	MaxSize       int64
	// MaxLogs counts the live file together with its archives.
	MaxLogs int

	mu sync.Mutex
}

func NewRollingFileWriter(fileDir string, fileName string) (*RollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	return &RollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		MaxSize:       defaultMaxSize,
		MaxLogs:       defaultMaxLogs,
	}, nil
}

func (w *RollingFileWriter) mainPath() string {
	return filepath.Join(w.FileDirectory, w.FileName+".log")
}

func (w *RollingFileWriter) indexedPath(index int) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", w.FileName, index))
}

func (w *RollingFileWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if stats, err := os.Stat(w.mainPath()); err == nil && stats.Size() > 0 && stats.Size()+int64(len(b)) > w.MaxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	mainLogFile, err := os.OpenFile(w.mainPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()
	return mainLogFile.Write(b)
}

// archives lists the archive indices on disk, highest first. Files that do not parse are skipped.
func (w *RollingFileWriter) archives() ([]int, error) {
	matches, err := fs.Glob(os.DirFS(w.FileDirectory), w.FileName+"-*.log")
	if err != nil {
		return nil, err
	}

	indices := lo.FilterMap(matches, func(match string, _ int) (int, bool) {
		return archiveIndex(w.FileName, match)
	})
	slices.Sort(indices)
	slices.Reverse(indices)
	return indices, nil
}

func (w *RollingFileWriter) rotate() error {
	indices, err := w.archives()
	if err != nil {
		return err
	}

	// highest first so no rename lands on a file still waiting to move
	for _, index := range indices {
		if index+1 >= w.MaxLogs {
			if err := os.Remove(w.indexedPath(index)); err != nil {
				return err
			}
			continue
		}
		if err := os.Rename(w.indexedPath(index), w.indexedPath(index+1)); err != nil {
			return err
		}
	}

	if w.MaxLogs <= 1 {
		return os.Remove(w.mainPath())
	}
	return os.Rename(w.mainPath(), w.indexedPath(1))
}

func archiveIndex(baseFileName string, fileName string) (int, bool) {
	trimmed, _ := strings.CutSuffix(filepath.Base(fileName), ".log")
	indexStr, ok := strings.CutPrefix(trimmed, baseFileName+"-")
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 1 {
		return 0, false
	}
	return index, true
}
