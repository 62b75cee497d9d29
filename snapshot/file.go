package snapshot

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"github.com/katalvlaran/roadledger/core"
	log "github.com/sirupsen/logrus"
)

// FileSink rewrites cities.txt and roads.txt in one directory on every Save.
// Files are truncated and rewritten in place; there is no temp-file rename.
type FileSink struct {
	dir    string
	logger log.FieldLogger
}

// FileOption configures a FileSink.
type FileOption func(*FileSink)

// WithFileLogger sets the logger used for write notices.
func WithFileLogger(l log.FieldLogger) FileOption {
	return func(s *FileSink) { s.logger = l }
}

// NewFileSink resolves dir to an absolute path and returns a sink writing there.
// The directory must already exist when Save runs.
func NewFileSink(dir string, opts ...FileOption) (*FileSink, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Annotatef(err, "unable to resolve snapshot directory %q", dir)
	}
	s := &FileSink{dir: abs, logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Dir returns the absolute directory the sink writes to.
func (s *FileSink) Dir() string { return s.dir }

// CitiesPath returns the absolute path of the city table.
func (s *FileSink) CitiesPath() string { return filepath.Join(s.dir, CitiesFile) }

// RoadsPath returns the absolute path of the road table.
func (s *FileSink) RoadsPath() string { return filepath.Join(s.dir, RoadsFile) }

// Save writes both tables. A failure on the city table stops before the road
// table is touched.
func (s *FileSink) Save(ctx context.Context, v *core.View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := writeFile(s.CitiesPath(), v, WriteCities); err != nil {
		return err
	}
	if err := writeFile(s.RoadsPath(), v, WriteRoads); err != nil {
		return err
	}
	s.logger.WithFields(log.Fields{
		"dir":    s.dir,
		"cities": v.CityCount(),
	}).Debug("snapshot written")

	return nil
}

func writeFile(path string, v *core.View, render func(io.Writer, *core.View) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "could not open %s for writing", path)
	}
	if err := render(f, v); err != nil {
		f.Close()
		return errors.Annotatef(err, "could not write %s", path)
	}

	return errors.Annotatef(f.Close(), "could not close %s", path)
}
