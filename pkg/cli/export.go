package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/promptdeck/promptdeck/pkg/cli/config"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/usecase"
	"github.com/promptdeck/promptdeck/pkg/utils/logging"
	"github.com/promptdeck/promptdeck/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdExport() *cli.Command {
	var output string
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (- for stdout)",
			Value:       "-",
			Destination: &output,
		},
	}
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export agents and execution logs as a JSON document",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close()

			uc := usecase.New(repo)
			doc, err := uc.Export(ctx)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode export document")
			}
			data = append(data, '\n')

			if output == "-" {
				safe.Write(ctx, os.Stdout, data)
				return nil
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write export file", goerr.V("path", output))
			}
			logging.Default().Info("Exported data",
				"path", output, "agents", len(doc.Agents), "logs", len(doc.Logs))
			return nil
		},
	}
}

func cmdImport() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:      "import",
		Usage:     "Replace agents and execution logs from a JSON document",
		ArgsUsage: "<file>",
		Flags:     repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return goerr.New("import file path is required")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read import file", goerr.V("path", path))
			}

			var doc model.ExportDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return goerr.Wrap(err, "failed to decode import document", goerr.V("path", path))
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close()

			uc := usecase.New(repo)
			if err := uc.Import(ctx, &doc); err != nil {
				return err
			}

			logging.Default().Info("Imported data",
				"path", path, "agents", len(doc.Agents), "logs", len(doc.Logs))
			return nil
		},
	}
}
