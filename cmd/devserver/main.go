package main

import (
	"os"

	"github.com/akhmedov/repsync/internal/devserver"
	"github.com/akhmedov/repsync/internal/logger"
	"github.com/akhmedov/repsync/internal/server"
)

func main() {
	log := logger.NewLogger("repsync-devserver")

	address := os.Getenv("DEVSERVER_ADDRESS")
	if address == "" {
		address = "localhost:8080"
	}

	handler := devserver.NewHandler(devserver.SamplePlan(), log)

	srv, err := server.NewServer(handler.Init(), address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating devserver")
	}

	log.Info().Str("address", address).Msg("devserver listening")
	srv.RunServer()
}
