package main

import (
	"CoBag/internal/repository"
	"CoBag/pkg/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	repository.RunGenerate()
}
