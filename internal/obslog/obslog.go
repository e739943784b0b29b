package obslog

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New builds a zerolog.Logger for nodeID at the given level name (parsed
// with zerolog.ParseLevel, falling back to Info on an unrecognized value),
// writing to both stdout and logPath. The returned io.Closer closes the
// underlying log file; callers should defer it.
func New(nodeID int, level, logPath string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return zerolog.Logger{}, nil, err
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	writer := zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stdout}, file)
	logger := zerolog.New(writer).Level(lvl).With().
		Timestamp().
		Int("node_id", nodeID).
		Logger()

	return logger, file, nil
}
