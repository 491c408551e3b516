package main

import (
	"wedding-api/core/logger"
	"wedding-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Fatal("run server error", err)
	}
}
