package filepersistence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/klauspost/compress/gzip"
)

var (
	ErrNoPath      = errors.New("data file path is not set")
	ErrReadFailed  = errors.New("failed to read data file")
	ErrWriteFailed = errors.New("failed to write data file")
)

type Config struct {
	Path     string `json:"path" usage:"data file path"`
	Compress bool   `json:"compress" usage:"gzip the data file"`
}

// JsonFilePersister loads and saves a whole collection as a JSON array file.
// The file is gzipped when Compress is set or the path ends with ".gz".
type JsonFilePersister[T any] struct {
	Path     string
	Compress bool
}

func NewJsonFilePersister[T any](path string) *JsonFilePersister[T] {
	return &JsonFilePersister[T]{
		Path: path,
	}
}

func (p *JsonFilePersister[T]) Configure(config *Config) error {
	if config == nil || config.Path == "" {
		return ErrNoPath
	}

	p.Path = config.Path
	p.Compress = config.Compress

	return nil
}

func (p *JsonFilePersister[T]) compressed() bool {
	return p.Compress || strings.HasSuffix(p.Path, ".gz")
}

// Load reads the data file. A missing file is an empty collection.
func (p *JsonFilePersister[T]) Load(correlationID string) ([]T, error) {
	if p.Path == "" {
		return nil, ErrNoPath
	}

	f, err := os.Open(p.Path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if p.compressed() {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrReadFailed, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	items := []T{}
	err = json.UnmarshalRead(r, &items)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrReadFailed, err)
	}

	return items, nil
}

// Save writes items to a temporary file next to Path and renames it over Path,
// so readers never see a half written file.
func (p *JsonFilePersister[T]) Save(correlationID string, items []T) error {
	if p.Path == "" {
		return ErrNoPath
	}

	err := p.save(items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}

func (p *JsonFilePersister[T]) save(items []T) error {

	dir := filepath.Dir(p.Path)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, filepath.Base(p.Path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName) // no-op once renamed

	err = p.write(f, items)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Sync()
	if err != nil {
		f.Close()
		return fmt.Errorf("sync: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return os.Rename(tmpName, p.Path)
}

func (p *JsonFilePersister[T]) write(w io.Writer, items []T) error {

	buffer := bufio.NewWriter(w)

	if !p.compressed() {
		err := json.MarshalWrite(buffer, items)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return buffer.Flush()
	}

	gzipWriter := gzip.NewWriter(buffer)
	err := json.MarshalWrite(gzipWriter, items)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	err = gzipWriter.Close()
	if err != nil {
		return fmt.Errorf("gzip: %w", err)
	}

	return buffer.Flush()
}
