package users

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/auth"
	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/validation"
)

type RegisterCmd struct {
	Name     string `help:"First name."`
	Surname  string `help:"Surname."`
	Username string `help:"Username to register."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	in := validation.RegistrationInput{
		Name:     c.Name,
		Surname:  c.Surname,
		Username: c.Username,
	}

	// Missing fields are collected interactively; the password always is.
	var fields []huh.Field
	if in.Name == "" {
		fields = append(fields, huh.NewInput().Title("First name").Value(&in.Name))
	}
	if in.Surname == "" {
		fields = append(fields, huh.NewInput().Title("Surname").Value(&in.Surname))
	}
	if in.Username == "" {
		fields = append(fields, huh.NewInput().Title("Username").Value(&in.Username))
	}
	fields = append(fields,
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&in.Password),
		huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&in.ConfirmPassword),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	user, err := auth.NewService(ctx.Store).Register(in)
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s. You can now log in.\n", user.Username)
	return nil
}
