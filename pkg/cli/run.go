package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/promptdeck/promptdeck/pkg/cli/config"
	"github.com/promptdeck/promptdeck/pkg/domain/model"
	"github.com/promptdeck/promptdeck/pkg/domain/types"
	"github.com/promptdeck/promptdeck/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var input string
	var runAll bool
	var repoCfg config.Repository
	var llmCfg config.LLM

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "User input passed to the agent",
			Destination: &input,
		},
		&cli.BoolFlag{
			Name:        "all",
			Usage:       "Run every agent sequentially",
			Destination: &runAll,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:      "run",
		Usage:     "Execute an agent from the command line",
		ArgsUsage: "[agent ID or name]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer repo.Close()

			uc := usecase.New(repo,
				usecase.WithDefaultSettings(llmCfg.DefaultSettings()),
			)

			if runAll {
				results, err := uc.RunAll(ctx, input)
				if err != nil {
					return err
				}
				for _, result := range results {
					printResult(result)
				}
				return nil
			}

			ref := c.Args().First()
			if ref == "" {
				return goerr.New("agent ID or name is required (or pass --all)")
			}

			agent, err := resolveAgent(ctx, uc, ref)
			if err != nil {
				return err
			}

			result, err := uc.RunAgent(ctx, agent.ID, input)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}
}

// resolveAgent finds an agent by ID, then by case-insensitive name
func resolveAgent(ctx context.Context, uc *usecase.UseCases, ref string) (*model.Agent, error) {
	agent, err := uc.GetAgent(ctx, types.AgentID(ref))
	if err == nil {
		return agent, nil
	}

	agents, err := uc.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range agents {
		if strings.EqualFold(a.Name, ref) {
			return a, nil
		}
	}
	return nil, goerr.New("no agent matches the given ID or name", goerr.V("ref", ref))
}

func printResult(result *model.ExecutionResult) {
	header := color.New(color.Bold, color.FgCyan)
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)
	dim := color.New(color.Faint)

	header.Printf("%s\n", result.AgentName)
	if result.Succeeded() {
		success.Println("status: success")
	} else {
		failure.Println("status: error")
	}

	fmt.Println(result.Response.Content)
	dim.Printf("tokens=%d cost=$%.4f duration=%s\n\n",
		result.Response.TokensUsed, result.Response.Cost, result.Duration.Round(time.Millisecond))
}
