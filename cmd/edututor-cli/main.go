package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "edututor-cli",
		Usage: "Explain concepts and build quizzes from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Value: "local",
				Usage: "environment name, selects the .env.<env> file",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "access gate username",
				Sources: cli.EnvVars("EDUTUTOR_USERNAME"),
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "access gate password",
				Sources: cli.EnvVars("EDUTUTOR_PASSWORD"),
			},
		},
		Commands: []*cli.Command{
			explainCommand(),
			quizCommand(),
			loginCommand(),
		},
	}
}
