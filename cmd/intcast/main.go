// Package main provides the CLI entrypoint for intcast.
//
// intcast exposes the checked integer cast engine from the command line:
//   - check: convert a value between integer types, or fail
//   - bounds: print the range of integer types on this platform
//   - pairs: list conversions that can never fail
//   - gen: regenerate the per-target cast functions
package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"intcast/internal/cli"
)

func main() {
	logAtomic := zap.NewAtomicLevel()
	logCfg := zap.NewProductionConfig()
	logCfg.Level = logAtomic
	logCfg.Encoding = "console"
	logCfg.DisableStacktrace = true
	logger, err := logCfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	c := cli.CLI{}
	parser, err := cli.NewParser(&c)
	if err != nil {
		logger.Fatal("building parser", zap.Error(err))
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	var ll zapcore.Level
	if err := ll.Set(c.Globals.LogLevel); err != nil {
		logger.Fatal("log level", zap.Error(err))
	}
	logAtomic.SetLevel(ll)

	if err := ctx.Run(&cli.Env{Stdout: os.Stdout, Logger: logger}); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
