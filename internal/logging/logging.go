package logging

import (
	"fmt"
	"os"

	"ofd_import/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// An import run happens in a console session, but failed imports get
// investigated later, so diagnostics are additionally teed into a JSON
// log file.

func OpenLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}

func TeeToFile(base *zap.Logger, file *os.File, cfg config.Config) *zap.Logger {
	if file == nil {
		return base
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(file),
		cfg.FileLogLevel(),
	)
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	}))
}
