package main

import (
	"comments-ingest/cmd"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := cmd.NewRootCommand().Execute(); err != nil {
		zap.S().Fatalf("命令执行失败:%s", err.Error())
	}
}
