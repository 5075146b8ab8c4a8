package cli

import (
	"fmt"
	"os"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	data, err := ctx.Session.ExportData()
	if err != nil {
		return err
	}
	if c.Output == "" {
		fmt.Println(data)
		return nil
	}
	if err := os.WriteFile(c.Output, []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Exported to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"JSON document to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}

	ctx.Session.BeginExternalPicker()
	data, err := os.ReadFile(c.File)
	ctx.Session.EndExternalPicker()
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	if !ctx.Session.ImportData(string(data)) {
		return fmt.Errorf("import failed: %s is not a valid document", c.File)
	}
	fmt.Println("Import complete")
	return nil
}

type ResetCmd struct {
	Force bool `short:"f" help:"Reset without confirmation."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if err := ctx.activate(); err != nil {
		return err
	}
	if !c.Force {
		return fmt.Errorf("resetting erases all records, plans, and moods (the profile is kept); re-run with --force to confirm")
	}
	if err := ctx.Session.Reset(); err != nil {
		return err
	}
	fmt.Println("Data reset, profile kept")
	return nil
}
