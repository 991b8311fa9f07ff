package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/allisson/crowdfund/cmd/app/commands"
	"github.com/allisson/crowdfund/internal/app"
	"github.com/allisson/crowdfund/internal/config"
	projectDomain "github.com/allisson/crowdfund/internal/project/domain"
)

func projectIDFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "id",
		Aliases:  []string{"i"},
		Required: true,
		Usage:    "Project ID (UUID)",
	}
}

func credentials(cmd *cli.Command) commands.Credentials {
	return commands.Credentials{
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}
}

// editInput builds an edit containing only the flags given on the command line.
func editInput(cmd *cli.Command) (projectDomain.EditProjectInput, error) {
	var input projectDomain.EditProjectInput
	if cmd.IsSet("title") {
		title := cmd.String("title")
		input.Title = &title
	}
	if cmd.IsSet("details") {
		details := cmd.String("details")
		input.Details = &details
	}
	if cmd.IsSet("target-amount") {
		target := cmd.Float("target-amount")
		input.TargetAmount = &target
	}
	if cmd.IsSet("end-date") {
		endDate := cmd.String("end-date")
		input.EndDate = &endDate
	}
	if cmd.IsSet("expected-revision") {
		revision, err := strconv.ParseUint(cmd.String("expected-revision"), 10, 64)
		if err != nil {
			return input, fmt.Errorf("invalid expected revision: %w", err)
		}
		input.ExpectedRevision = &revision
	}
	return input, nil
}

func getProjectCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-project",
			Usage: "Create a project owned by the authenticated user",
			Flags: append(credentialFlags(),
				&cli.StringFlag{
					Name:     "title",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Project title",
				},
				&cli.StringFlag{
					Name:    "details",
					Aliases: []string{"d"},
					Usage:   "Project description",
				},
				&cli.FloatFlag{
					Name:     "target-amount",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Funding goal, zero or more",
				},
				&cli.StringFlag{
					Name:     "end-date",
					Required: true,
					Usage:    "Campaign end date in YYYY-MM-DD format, not before today",
				},
				formatFlag(),
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}
				ledgerUseCase, err := container.LedgerUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunCreateProject(
					ctx,
					userUseCase,
					ledgerUseCase,
					container.Logger(),
					commands.DefaultIO(),
					credentials(cmd),
					projectDomain.CreateProjectInput{
						Title:        cmd.String("title"),
						Details:      cmd.String("details"),
						TargetAmount: cmd.Float("target-amount"),
						EndDate:      cmd.String("end-date"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-projects",
			Usage: "List projects in stored order",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "owner",
					Aliases: []string{"o"},
					Usage:   "Only projects created by this email",
				},
				&cli.BoolFlag{
					Name:  "open-only",
					Value: false,
					Usage: "Hide closed projects",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}
				ledgerUseCase, err := container.LedgerUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunListProjects(
					ctx,
					userUseCase,
					ledgerUseCase,
					commands.DefaultIO(),
					projectDomain.ListFilter{
						Owner:    cmd.String("owner"),
						OpenOnly: cmd.Bool("open-only"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "edit-project",
			Usage: "Change fields of an open project owned by the authenticated user",
			Flags: append(credentialFlags(),
				projectIDFlag(),
				&cli.StringFlag{
					Name:    "title",
					Aliases: []string{"t"},
					Usage:   "New title",
				},
				&cli.StringFlag{
					Name:    "details",
					Aliases: []string{"d"},
					Usage:   "New description",
				},
				&cli.FloatFlag{
					Name:    "target-amount",
					Aliases: []string{"a"},
					Usage:   "New funding goal",
				},
				&cli.StringFlag{
					Name:  "end-date",
					Usage: "New end date in YYYY-MM-DD format, not before today",
				},
				&cli.StringFlag{
					Name:    "expected-revision",
					Aliases: []string{"r"},
					Usage:   "Fail if the project revision differs from this value",
				},
				formatFlag(),
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				input, err := editInput(cmd)
				if err != nil {
					return err
				}

				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}
				ledgerUseCase, err := container.LedgerUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunEditProject(
					ctx,
					userUseCase,
					ledgerUseCase,
					container.Logger(),
					commands.DefaultIO(),
					credentials(cmd),
					cmd.String("id"),
					input,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "delete-project",
			Usage: "Delete a project owned by the authenticated user",
			Flags: append(credentialFlags(), projectIDFlag(), formatFlag()),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}
				ledgerUseCase, err := container.LedgerUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunDeleteProject(
					ctx,
					userUseCase,
					ledgerUseCase,
					container.Logger(),
					commands.DefaultIO(),
					credentials(cmd),
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "close-project",
			Usage: "Close a project owned by the authenticated user to further donations",
			Flags: append(credentialFlags(), projectIDFlag(), formatFlag()),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}
				ledgerUseCase, err := container.LedgerUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunCloseProject(
					ctx,
					userUseCase,
					ledgerUseCase,
					container.Logger(),
					commands.DefaultIO(),
					credentials(cmd),
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "donate",
			Usage: "Donate to an open project as the authenticated user",
			Flags: append(credentialFlags(),
				projectIDFlag(),
				&cli.FloatFlag{
					Name:     "amount",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Donation amount, greater than zero",
				},
				formatFlag(),
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}
				ledgerUseCase, err := container.LedgerUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunDonate(
					ctx,
					userUseCase,
					ledgerUseCase,
					container.Logger(),
					commands.DefaultIO(),
					credentials(cmd),
					cmd.String("id"),
					cmd.Float("amount"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "search-projects",
			Usage: "Search projects by title, start date, owner or status",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "title",
					Aliases: []string{"t"},
					Usage:   "Case-insensitive title substring",
				},
				&cli.StringFlag{
					Name:  "start-date",
					Usage: "Exact start date in YYYY-MM-DD format",
				},
				&cli.StringFlag{
					Name:    "owner",
					Aliases: []string{"o"},
					Usage:   "Creator email",
				},
				&cli.StringFlag{
					Name:    "status",
					Aliases: []string{"s"},
					Usage:   "Project status: 'open' or 'closed'",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}
				queryUseCase, err := container.QueryUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunSearchProjects(
					ctx,
					userUseCase,
					queryUseCase,
					commands.DefaultIO(),
					commands.SearchOptions{
						Title:     cmd.String("title"),
						StartDate: cmd.String("start-date"),
						Owner:     cmd.String("owner"),
						Status:    cmd.String("status"),
					},
					cmd.String("format"),
				)
			},
		},
	}
}
