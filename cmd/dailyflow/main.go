package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Lanqingsong/DailyFlow/internal/cli"
	"github.com/Lanqingsong/DailyFlow/internal/errors"
	"github.com/Lanqingsong/DailyFlow/internal/logger"
	"github.com/Lanqingsong/DailyFlow/internal/session"
	"github.com/Lanqingsong/DailyFlow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data path: a directory, a .db file for sqlite storage, or a postgres:// URL." default:"~/.local/share/dailyflow"`
	Debug   bool   `help:"Enable debug logging."`
	Account string `short:"a" help:"Account id or name (defaults to the last active account)."`
	Pin     string `short:"p" help:"PIN for locked accounts."`

	Accounts struct {
		Create cli.AccountCreateCmd `cmd:"" help:"Create a new account."`
		List   cli.AccountListCmd   `cmd:"" help:"List accounts."`
		Switch cli.AccountSwitchCmd `cmd:"" help:"Make an account the active one."`
		Delete cli.AccountDeleteCmd `cmd:"" help:"Delete an account and all of its data."`
	} `cmd:"" name:"account" help:"Manage accounts."`

	Day    cli.DayCmd `cmd:"" help:"Show plans, records, and mood for a day."`
	Record struct {
		Add    cli.RecordAddCmd    `cmd:"" help:"Log an activity record."`
		Delete cli.RecordDeleteCmd `cmd:"" help:"Delete a record."`
	} `cmd:"" help:"Manage activity records."`
	Plan struct {
		Add    cli.PlanAddCmd    `cmd:"" help:"Add a one-off plan."`
		Cancel cli.PlanCancelCmd `cmd:"" help:"Cancel a one-off plan."`
	} `cmd:"" help:"Manage one-off plans."`
	Recurring struct {
		Add    cli.RecurringAddCmd    `cmd:"" help:"Add a weekly recurring plan."`
		Delete cli.RecurringDeleteCmd `cmd:"" help:"Delete a recurring plan."`
	} `cmd:"" help:"Manage recurring plans."`
	Mood        cli.MoodCmd           `cmd:"" help:"Set the mood for a day."`
	Subcategory cli.SubCategoryAddCmd `cmd:"" help:"Add a custom subcategory."`
	Profile     cli.ProfileCmd        `cmd:"" help:"Show or update the account profile."`
	Export      cli.ExportCmd         `cmd:"" help:"Export the account document as JSON."`
	Import      cli.ImportCmd         `cmd:"" help:"Import a JSON document, replacing the account's data."`
	Reset       cli.ResetCmd          `cmd:"" help:"Erase all data for the account, keeping the profile."`
	Doctor      cli.DoctorCmd         `cmd:"" help:"Check storage consistency."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dailyflow"),
		kong.Description("Personal activity logging and planning"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.3.0"},
	)

	dataPath := expandHome(CLI.Data)
	isPostgres := strings.HasPrefix(dataPath, "postgres://") || strings.HasPrefix(dataPath, "postgresql://")

	logDir := dataPath
	switch {
	case isPostgres:
		home, err := os.UserHomeDir()
		if err != nil {
			errors.Fatal(err)
		}
		logDir = filepath.Join(home, ".local", "share", "dailyflow")
	case strings.HasSuffix(dataPath, ".db"):
		logDir = filepath.Dir(dataPath)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: logDir}); err != nil {
		errors.Fatal(err)
	}

	// Storage backend is chosen by the data path: a postgres URL
	// selects postgres, a .db file sqlite, anything else is a diskv
	// directory.
	var gw storage.Gateway
	switch {
	case isPostgres:
		var err error
		gw, err = storage.NewPostgresStore(dataPath)
		if err != nil {
			errors.Fatal(err)
		}
	case strings.HasSuffix(dataPath, ".db"):
		var err error
		gw, err = storage.NewSQLiteStore(dataPath)
		if err != nil {
			errors.Fatal(err)
		}
	default:
		gw = storage.NewDiskvStore(dataPath)
	}
	defer gw.Close()

	sess, err := session.New(gw)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Session: sess,
		Account: CLI.Account,
		Pin:     CLI.Pin,
	}
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// expandHome resolves a leading ~/ against the user's home directory.
// Connection URLs and absolute paths pass through unchanged.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
