package cli

import (
	"fmt"

	"github.com/Lanqingsong/DailyFlow/internal/keyring"
	"github.com/Lanqingsong/DailyFlow/internal/logger"
)

type AccountCreateCmd struct {
	Name        string `arg:"" help:"Display name for the new account."`
	NewPin      string `help:"Optional 4-digit PIN." name:"new-pin"`
	Language    string `help:"Language tag (en|zh)." default:"zh"`
	RememberPin bool   `help:"Store the PIN in the OS keyring." name:"remember-pin"`
}

func (c *AccountCreateCmd) Run(ctx *Context) error {
	summary, err := ctx.Session.CreateAccount(c.Name, c.Language, c.NewPin)
	if err != nil {
		return err
	}
	if c.RememberPin && c.NewPin != "" {
		if err := keyring.SetPIN(summary.ID, c.NewPin); err != nil {
			logger.Warn("could not remember PIN", "error", err)
		}
	}
	fmt.Printf("Created account: %s (ID: %s)\n", summary.Name, summary.ID)
	return nil
}

type AccountListCmd struct{}

func (c *AccountListCmd) Run(ctx *Context) error {
	registry := ctx.Session.Registry()
	if len(registry) == 0 {
		fmt.Println("No accounts yet")
		return nil
	}

	last := ctx.Session.LastActiveID()
	for _, u := range registry {
		marker := " "
		if u.ID == last {
			marker = "*"
		}
		lock := ""
		if u.HasPin {
			lock = "[pin]"
		}
		fmt.Printf("%s %-20s %-42s %s\n", marker, u.Name, u.ID, lock)
	}
	return nil
}

type AccountSwitchCmd struct {
	Ref string `arg:"" help:"Account id or name."`
}

func (c *AccountSwitchCmd) Run(ctx *Context) error {
	id, err := ctx.resolveAccount(c.Ref)
	if err != nil {
		return err
	}
	if err := ctx.Session.SwitchAccount(id); err != nil {
		return err
	}
	if ctx.Session.Authenticated() {
		fmt.Printf("Switched to account %s\n", c.Ref)
		return nil
	}
	if ctx.Session.Login(ctx.Pin) {
		fmt.Printf("Switched to account %s\n", c.Ref)
		return nil
	}
	fmt.Printf("Switched to account %s (locked, PIN required)\n", c.Ref)
	return nil
}

type AccountDeleteCmd struct {
	Ref   string `arg:"" help:"Account id or name."`
	Force bool   `short:"f" help:"Delete without confirmation."`
}

func (c *AccountDeleteCmd) Run(ctx *Context) error {
	id, err := ctx.resolveAccount(c.Ref)
	if err != nil {
		return err
	}
	if !c.Force {
		return fmt.Errorf("deleting an account erases all of its data; re-run with --force to confirm")
	}
	if err := ctx.Session.DeleteAccount(id); err != nil {
		return err
	}
	if err := keyring.DeletePIN(id); err != nil {
		logger.Warn("could not remove remembered PIN", "error", err)
	}
	fmt.Printf("Deleted account %s\n", c.Ref)
	return nil
}
