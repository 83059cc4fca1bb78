package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/dirtlot-lab/dirtlot/pkg/cli/config"
	"github.com/dirtlot-lab/dirtlot/pkg/service/ingest"
	"github.com/dirtlot-lab/dirtlot/pkg/utils/logging"
)

func cmdIngest() *cli.Command {
	var sourcePath string
	var bypassCache bool
	var repoCfg config.Repository
	var slackCfg config.Slack
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "source",
			Usage:       "Path to the bulk car source JSON file",
			Required:    true,
			Sources:     cli.EnvVars("DIRTLOT_INGEST_SOURCE"),
			Destination: &sourcePath,
		},
		&cli.BoolFlag{
			Name:        "bypass-cache",
			Usage:       "Ignore a cached result and always read the source",
			Destination: &bypassCache,
		},
	}

	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Ingest cars from a bulk source file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			generator, _, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			notifier, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure slack service")
			}

			ingestor := ingest.New(repo,
				ingest.WithGenerator(generator),
				ingest.WithNotifier(notifier),
			)

			result, err := ingestor.Ingest(ctx, ingest.NewFileSource(sourcePath), bypassCache)
			if err != nil {
				return goerr.Wrap(err, "ingestion failed", goerr.V("source", sourcePath))
			}

			bold := color.New(color.Bold)
			_, _ = bold.Fprintln(os.Stdout, "Ingestion completed")
			_, _ = color.New(color.FgGreen).Fprintf(os.Stdout, "  processed: %d\n", result.Processed)
			_, _ = color.New(color.FgYellow).Fprintf(os.Stdout, "  skipped:   %d\n", result.Skipped)

			return nil
		},
	}
}
