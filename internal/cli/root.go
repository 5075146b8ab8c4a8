package cli

import (
	"fmt"
	"strings"

	"github.com/Lanqingsong/DailyFlow/internal/keyring"
	"github.com/Lanqingsong/DailyFlow/internal/models"
	"github.com/Lanqingsong/DailyFlow/internal/session"
	"github.com/Lanqingsong/DailyFlow/internal/validation"
)

type Context struct {
	Session *session.Session
	Account string // account id or name from the global flag
	Pin     string // PIN from the global flag
}

// resolveAccount maps an account reference (id or display name) to an
// account id via the registry.
func (ctx *Context) resolveAccount(ref string) (string, error) {
	registry := ctx.Session.Registry()
	for _, u := range registry {
		if u.ID == ref {
			return u.ID, nil
		}
	}
	match := ""
	for _, u := range registry {
		if strings.EqualFold(u.Name, ref) {
			if match != "" {
				return "", fmt.Errorf("account name %q is ambiguous, use the id", ref)
			}
			match = u.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("unknown account: %s", ref)
	}
	return match, nil
}

// activate switches to the selected account (the --account flag, or
// the last active one) and unlocks it, using --pin when the account is
// PIN-protected. Without --pin, a PIN remembered in the OS keyring is
// tried before giving up.
func (ctx *Context) activate() error {
	ref := ctx.Account
	if ref == "" {
		ref = ctx.Session.LastActiveID()
	}
	if ref == "" {
		return fmt.Errorf("no account selected: create one with 'dailyflow account create' or pass --account")
	}

	id, err := ctx.resolveAccount(ref)
	if err != nil {
		return err
	}
	if err := ctx.Session.SwitchAccount(id); err != nil {
		return err
	}
	if !ctx.Session.Authenticated() {
		pin := ctx.Pin
		if pin == "" {
			if remembered, err := keyring.GetPIN(id); err == nil {
				pin = remembered
			}
		}
		if !ctx.Session.Login(pin) {
			return fmt.Errorf("account is locked: wrong or missing PIN (use --pin)")
		}
	}
	return nil
}

// parseDay accepts "today", "", or a YYYY-MM-DD day.
func parseDay(s string) (models.Day, error) {
	if s == "" || s == "today" {
		return models.Today(), nil
	}
	day := models.Day(s)
	if err := validation.ValidateDay(day); err != nil {
		return "", err
	}
	return day, nil
}

// resolveSubCategory maps a subcategory reference (id or display name)
// against the current document.
func resolveSubCategory(doc *models.AppData, ref string) (models.SubCategory, error) {
	if sc, ok := doc.SubCategoryByID(ref); ok {
		return sc, nil
	}
	for _, sc := range doc.SubCategories {
		if strings.EqualFold(sc.Name, ref) {
			return sc, nil
		}
	}
	return models.SubCategory{}, fmt.Errorf("unknown subcategory: %s", ref)
}

// subCategoryLabel falls back to an "unknown" label when a plan or
// record references a subcategory that no longer resolves.
func subCategoryLabel(doc *models.AppData, id string) string {
	if sc, ok := doc.SubCategoryByID(id); ok {
		return sc.Name
	}
	return fmt.Sprintf("unknown (%s)", id)
}
