package cli

import (
	"context"
	"sync/atomic"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/cli/config"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/usecase"
	"github.com/secmon-lab/riskboard/pkg/utils/logging"
	"github.com/secmon-lab/riskboard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdSeed() *cli.Command {
	var repoCfg config.Repository
	var path string
	var concurrency int

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "Path to the TOML catalog of risk scenarios",
			Required:    true,
			Sources:     cli.EnvVars("RISKBOARD_SEED_FILE"),
			Destination: &path,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of scenarios inserted in parallel",
			Value:       4,
			Destination: &concurrency,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "seed",
		Usage: "Insert risk scenarios from a catalog file",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := config.LoadCatalog(path)
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)
			created, skipped, err := seedScenarios(ctx, uc.RiskScenario, catalog.ToModels(), concurrency)
			if err != nil {
				return err
			}

			logging.Default().Info("Seed completed", "created", created, "skipped", skipped)
			return nil
		},
	}
}

// seedScenarios inserts scenarios whose name is not in the catalog yet.
// Insertion order among new scenarios is not preserved.
func seedScenarios(ctx context.Context, uc *usecase.RiskScenarioUseCase, scenarios []*model.RiskScenario, concurrency int) (int, int, error) {
	existing, err := uc.List(ctx)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to list existing scenarios")
	}
	known := make(map[string]bool, len(existing))
	for _, s := range existing {
		known[s.Name] = true
	}

	if concurrency < 1 {
		concurrency = 1
	}

	var created, skipped atomic.Int64
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for _, s := range scenarios {
		if known[s.Name] {
			skipped.Add(1)
			continue
		}

		eg.Go(func() error {
			if _, err := uc.Create(ctx, s); err != nil {
				return goerr.Wrap(err, "failed to create scenario", goerr.V("name", s.Name))
			}
			created.Add(1)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return int(created.Load()), int(skipped.Load()), err
	}
	return int(created.Load()), int(skipped.Load()), nil
}
