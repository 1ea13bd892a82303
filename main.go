package main

import (
	"os"

	"assistant-report/cmd"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cmd.NewRootCommand().Execute(); err != nil {
		zap.S().Error(err.Error())
		os.Exit(1)
	}
}
