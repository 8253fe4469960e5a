package cli

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger writes console formatted logs at level and above to w.
func NewLogger(level string, w io.Writer) (*zap.Logger, error) {
	zapLevel := zapcore.WarnLevel
	if level != "" {
		if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, errors.Wrapf(err, `cli.NewLogger error: level "%s"`, level)
		}
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zapLevel,
	)
	return zap.New(core), nil
}
