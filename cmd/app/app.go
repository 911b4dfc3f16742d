package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/vetbase/backend/cmd/app/server"
	"github.com/vetbase/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "vetbase",
		Description: "The Vetbase clinic management backend. Built with Go, fiber, bun and go.uber.org/fx. Uses NATS as the audit event stream and Redis for shared caches.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
