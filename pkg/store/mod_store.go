package store

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ssargent/kenshimod/pkg/codec"
)

const (
	opLoad      = "load"
	opLoadInfo  = "load_info"
	opReadRaw   = "read_raw"
	opSummarize = "summarize"
	opSave      = "save"
	opUpdate    = "update"
)

// ModStore loads and saves mod files on disk. Operations on the same path
// are serialized; different paths proceed independently.
type ModStore struct {
	config  ModStoreConfig
	codec   *codec.ModCodec
	logger  *slog.Logger
	metrics *Metrics

	mutex sync.Mutex
	locks map[string]*pathLock
}

// pathLock is dropped from the lock table once no caller holds or waits on it
type pathLock struct {
	mu   sync.Mutex
	refs int
}

// NewModStore creates a new mod store
func NewModStore(config ModStoreConfig) *ModStore {
	if config.SummaryChars <= 0 {
		config.SummaryChars = codec.DefaultSummaryBudget
	}
	if config.SampleRecords < 0 {
		config.SampleRecords = 0
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ModStore{
		config:  config,
		codec:   codec.NewModCodec(codec.WithLogger(logger)),
		logger:  logger,
		metrics: NewMetrics(config.Registerer),
		locks:   make(map[string]*pathLock),
	}
}

// Codec returns the codec the store decodes and encodes with
func (s *ModStore) Codec() *codec.ModCodec {
	return s.codec
}

// Load decodes every record of the file at path
func (s *ModStore) Load(ctx context.Context, path string) (*codec.ModFile, error) {
	return s.LoadLimit(ctx, path, codec.NoLimit)
}

// LoadLimit decodes at most maxRecords records of the file at path. The
// result is partial, and cannot be saved, when records were cut off.
func (s *ModStore) LoadLimit(ctx context.Context, path string, maxRecords int) (mf *codec.ModFile, err error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperation(opLoad, start, err) }()

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.read(path, maxRecords)
}

// LoadInfo decodes only the header of the file at path
func (s *ModStore) LoadInfo(ctx context.Context, path string) (info codec.Info, err error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperation(opLoadInfo, start, err) }()

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return codec.Info{}, err
	}
	defer unlock()

	mf, err := s.read(path, 0)
	if err != nil {
		return codec.Info{}, err
	}
	return mf.Info(), nil
}

// ReadRaw loads the file at path in full and returns its bytes together with
// the decoded tree, both read under the path lock
func (s *ModStore) ReadRaw(ctx context.Context, path string) (data []byte, mf *codec.ModFile, err error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperation(opReadRaw, start, err) }()

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	defer unlock()

	reader := NewModReader(ModReaderConfig{FilePath: path, MaxRecords: codec.NoLimit}, s.codec)
	data, mf, err = reader.ReadRaw()
	if err != nil {
		s.logger.Error("failed to load mod file", "path", path, "error", err)
		return nil, nil, err
	}
	s.metrics.RecordDecode(len(mf.Records), len(mf.Leftover))
	return data, mf, nil
}

// Summarize decodes the configured sample of records and returns their
// language detection samples
func (s *ModStore) Summarize(ctx context.Context, path string) (text, symbols string, err error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperation(opSummarize, start, err) }()

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return "", "", err
	}
	defer unlock()

	mf, err := s.read(path, s.config.SampleRecords)
	if err != nil {
		return "", "", err
	}
	text, symbols = codec.Summarize(mf, s.config.SummaryChars)
	return text, symbols, nil
}

// Save encodes mf and replaces the file at path
func (s *ModStore) Save(ctx context.Context, path string, mf *codec.ModFile) (err error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperation(opSave, start, err) }()

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	return s.write(path, mf)
}

// Update loads the file at path, applies fn and saves the result, holding
// the path lock throughout. Nothing is written when fn fails.
func (s *ModStore) Update(ctx context.Context, path string, fn func(*codec.ModFile) error) (err error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperation(opUpdate, start, err) }()

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	mf, err := s.read(path, codec.NoLimit)
	if err != nil {
		return err
	}
	if err := fn(mf); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.write(path, mf)
}

// HasBackup reports whether a backup of the file at path exists
func (s *ModStore) HasBackup(path string) bool {
	_, err := os.Stat(BackupPath(path))
	return err == nil
}

func (s *ModStore) read(path string, maxRecords int) (*codec.ModFile, error) {
	reader := NewModReader(ModReaderConfig{FilePath: path, MaxRecords: maxRecords}, s.codec)
	mf, err := reader.Read()
	if err != nil {
		s.logger.Error("failed to load mod file", "path", path, "error", err)
		return nil, err
	}
	s.metrics.RecordDecode(len(mf.Records), len(mf.Leftover))
	s.logger.Debug("loaded mod file",
		"path", path,
		"records", len(mf.Records),
		"declared", mf.Info().RecordCount,
		"partial", mf.Partial(),
	)
	return mf, nil
}

func (s *ModStore) write(path string, mf *codec.ModFile) error {
	writer := NewModWriter(ModWriterConfig{
		FilePath: path,
		Fsync:    s.config.Fsync,
		Backup:   s.config.Backup,
	}, s.codec)
	backedUp, err := writer.Write(mf)
	if backedUp {
		s.metrics.RecordBackup()
		s.logger.Info("created backup", "path", path, "backup", BackupPath(path))
	}
	if err != nil {
		s.logger.Error("failed to save mod file", "path", path, "error", err)
		return err
	}
	s.logger.Debug("saved mod file", "path", path, "records", len(mf.Records))
	return nil
}

// lock acquires the mutex of path, keyed by its absolute form, and returns
// the function that releases it
func (s *ModStore) lock(ctx context.Context, path string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}

	s.mutex.Lock()
	pl, ok := s.locks[key]
	if !ok {
		pl = &pathLock{}
		s.locks[key] = pl
	}
	pl.refs++
	s.mutex.Unlock()

	pl.mu.Lock()
	unlock := func() {
		pl.mu.Unlock()
		s.mutex.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(s.locks, key)
		}
		s.mutex.Unlock()
	}
	if err := ctx.Err(); err != nil {
		unlock()
		return nil, err
	}
	return unlock, nil
}
