package logging

import "go.uber.org/zap"

// New builds a logger writing to stderr, so it never mixes with game or protocol output.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	var logger, err = cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
