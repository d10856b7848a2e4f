package output

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FileWriter saves exported documentation to disk without clobbering
// earlier exports unless overwriting was requested.
type FileWriter struct {
	fullPath string
}

func NewFileWriter(defaultName string, options *Options) *FileWriter {
	fullPath := options.OutputFile
	if fullPath == "" {
		fullPath = defaultName
	}
	if !options.Overwrite {
		fullPath = makeNonOverlappingFilename(fullPath)
	}
	return &FileWriter{
		fullPath: fullPath,
	}
}

func (f *FileWriter) Path() string {
	return f.fullPath
}

func (f *FileWriter) Write(content string) error {
	if err := os.WriteFile(f.fullPath, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", f.fullPath)
	}
	return nil
}

func makeNonOverlappingFilename(path string) string {
	_, err := os.Stat(path)
	if err == nil {
		re := regexp.MustCompile(`\.(\d+)$`)
		newPath := re.ReplaceAllStringFunc(path, func(index string) string {
			i, err := strconv.Atoi(strings.TrimPrefix(index, "."))
			if err != nil {
				panic(err)
			}
			i++
			return fmt.Sprintf(".%d", i)
		})
		if path == newPath {
			path = fmt.Sprintf("%s.%d", path, 1)
		} else {
			path = newPath
		}
		path = makeNonOverlappingFilename(path)
	}
	return path
}
