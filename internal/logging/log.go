package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// New builds a logr.Logger backed by zap, writing to stdout. Development
// mode gets the human-readable encoder.
func New(env string) logr.Logger {
	zc := zap.NewProductionConfig()
	if env == "development" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stdout"}

	z, err := zc.Build()
	if err != nil {
		panic(err)
	}
	return zapr.NewLogger(z)
}
