package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/crowdfund/cmd/app/commands"
	"github.com/allisson/crowdfund/internal/app"
	"github.com/allisson/crowdfund/internal/config"
	userDomain "github.com/allisson/crowdfund/internal/user/domain"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "register",
			Usage: "Register a new user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "first-name",
					Required: true,
					Usage:    "First name",
				},
				&cli.StringFlag{
					Name:     "last-name",
					Required: true,
					Usage:    "Last name",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email address, unique ignoring case",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password",
				},
				&cli.StringFlag{
					Name:     "mobile-phone",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Egyptian mobile number (e.g., +201012345678)",
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

				return commands.RunRegister(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO(),
					userDomain.RegisterUserInput{
						FirstName:   cmd.String("first-name"),
						LastName:    cmd.String("last-name"),
						Email:       cmd.String("email"),
						Password:    cmd.String("password"),
						MobilePhone: cmd.String("mobile-phone"),
					},
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "login",
			Usage: "Check user credentials and show the profile",
			Flags: append(credentialFlags(), formatFlag()),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				userUseCase, err := container.UserUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunLogin(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
	}
}
