package cli

import (
	"fmt"

	"github.com/Lanqingsong/DailyFlow/internal/journal"
	"github.com/Lanqingsong/DailyFlow/internal/keyring"
	"github.com/Lanqingsong/DailyFlow/internal/logger"
	"github.com/Lanqingsong/DailyFlow/internal/validation"
)

type ProfileCmd struct {
	Name        *string `help:"New display name."`
	Avatar      *string `help:"New avatar reference (URL or embedded image)."`
	NewPin      *string `help:"New 4-digit PIN (empty string removes it)." name:"new-pin"`
	Language    *string `help:"Language tag (en|zh)."`
	RememberPin bool    `help:"Store the new PIN in the OS keyring." name:"remember-pin"`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	upd := journal.ProfileUpdate{
		Name:     c.Name,
		Avatar:   c.Avatar,
		PIN:      c.NewPin,
		Language: c.Language,
	}
	if upd.Name == nil && upd.Avatar == nil && upd.PIN == nil && upd.Language == nil {
		user := ctx.Session.Current().User
		pin := "none"
		if user.PIN != "" {
			pin = "set"
		}
		fmt.Printf("Name:     %s\nID:       %s\nLanguage: %s\nPIN:      %s\nAvatar:   %s\n",
			user.Name, user.ID, user.Language, pin, user.Avatar)
		return nil
	}

	if err := ctx.Session.UpdateProfile(upd); err != nil {
		return err
	}
	if c.NewPin != nil {
		// A remembered PIN would be stale after any change.
		if err := keyring.DeletePIN(ctx.Session.CurrentID()); err != nil {
			logger.Warn("could not remove remembered PIN", "error", err)
		}
		if c.RememberPin && *c.NewPin != "" {
			if err := keyring.SetPIN(ctx.Session.CurrentID(), *c.NewPin); err != nil {
				logger.Warn("could not remember PIN", "error", err)
			}
		}
	}
	fmt.Println("Profile updated")
	return nil
}

type SubCategoryAddCmd struct {
	Category string `arg:"" help:"Parent category (exercise|health|study|work)."`
	Name     string `arg:"" help:"Subcategory display name."`
}

func (c *SubCategoryAddCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	categoryID, err := validation.ParseCategory(c.Category)
	if err != nil {
		return err
	}
	sub, err := ctx.Session.AddSubCategory(categoryID, c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Added subcategory %s under %s (ID: %s)\n", sub.Name, sub.CategoryID, sub.ID)
	return nil
}
