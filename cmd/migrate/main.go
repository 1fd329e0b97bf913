// migrate aplica o revierte las migraciones embebidas del esquema.
//
// Uso:
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
//	go run ./cmd/migrate steps -1
//	go run ./cmd/migrate version
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/patrimonio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/patrimonio-api/pkg/config"
	"github.com/jhoicas/patrimonio-api/pkg/logger"
)

const usage = "uso: migrate up | down | steps N | version"

type command struct {
	name  string
	steps int
}

var errUsage = errors.New(usage)

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}
	switch args[0] {
	case "up", "down", "version":
		if len(args) != 1 {
			return command{}, errUsage
		}
		return command{name: args[0]}, nil
	case "steps":
		if len(args) != 2 {
			return command{}, errUsage
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n == 0 {
			return command{}, fmt.Errorf("steps: N debe ser un entero distinto de cero: %w", errUsage)
		}
		return command{name: "steps", steps: n}, nil
	}
	return command{}, errUsage
}

// migrator es el subconjunto de *postgres.Migrator que usa el comando.
type migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (uint, bool, error)
}

func run(m migrator, cmd command, log *logger.Logger) error {
	switch cmd.name {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "steps":
		return m.Steps(cmd.steps)
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión del esquema")
		return nil
	}
	return errUsage
}

func main() {
	cmd, err := parseCommand(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "migrate",
	})

	m, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migraciones")
	}
	runErr := run(m, cmd, log)
	if err := m.Close(); err != nil {
		log.Warn().Err(err).Msg("cerrar migrador")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Str("command", cmd.name).Msg("migración fallida")
	}
}
