package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/futig/edututor/internal/builder"
	"github.com/futig/edututor/internal/entity"
	"github.com/urfave/cli/v3"
)

var errLoginFailed = errors.New(entity.MsgLoginFailed)

func explainCommand() *cli.Command {
	return &cli.Command{
		Name:  "explain",
		Usage: "Explain a concept for a 15-year-old",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "concept", Aliases: []string{"c"}, Usage: "concept to explain"},
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Value: string(entity.DefaultLanguage), Usage: "English or Hindi"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lang, err := entity.ParseLanguage(cmd.String("language"))
			if err != nil {
				return err
			}

			tutor, err := unlockedTutor(ctx, cmd)
			if err != nil {
				return err
			}
			defer tutor.Close()

			return printResult(cmd.Root().Writer, tutor.Explainer.Explain(ctx, cmd.String("concept"), lang))
		},
	}
}

func quizCommand() *cli.Command {
	return &cli.Command{
		Name:  "quiz",
		Usage: "Generate five multiple-choice questions from a PDF",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "path to the PDF"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tutor, err := unlockedTutor(ctx, cmd)
			if err != nil {
				return err
			}
			defer tutor.Close()

			path := cmd.String("file")
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			if err := tutor.Validator.ValidateDocument(info.Name(), "", info.Size()); err != nil {
				return err
			}

			return printResult(cmd.Root().Writer, tutor.Quiz.FromPDF(ctx, f, info.Size()))
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Check --username/--password against the access gate",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tutor, err := builder.BuildTutor(ctx, cmd.String("env"))
			if err != nil {
				return err
			}
			defer tutor.Close()

			result := tutor.Gate.Login(ctx, cmd.String("username"), cmd.String("password"))
			if err := printResult(cmd.Root().Writer, result.Status); err != nil {
				return err
			}
			if !result.Visible {
				return entity.ErrUnauthorized
			}
			return nil
		},
	}
}

// unlockedTutor builds the tutor and passes the root credentials through the
// access gate before anything else runs.
func unlockedTutor(ctx context.Context, cmd *cli.Command) (*builder.Tutor, error) {
	tutor, err := builder.BuildTutor(ctx, cmd.String("env"))
	if err != nil {
		return nil, err
	}

	if !tutor.Gate.Check(cmd.String("username"), cmd.String("password")) {
		tutor.Close()
		return nil, errLoginFailed
	}

	return tutor, nil
}

func printResult(w io.Writer, out string) error {
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
