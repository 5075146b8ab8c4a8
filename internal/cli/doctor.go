package cli

import (
	"fmt"
)

// DoctorCmd checks the store for consistency between the account
// registry and the per-account documents.
type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	registry := ctx.Session.Registry()
	fmt.Printf("Accounts in registry: %d\n", len(registry))

	orphans, err := ctx.Session.OrphanedDocuments()
	if err != nil {
		return err
	}
	if len(orphans) == 0 {
		fmt.Println("No orphaned documents")
		return nil
	}

	fmt.Printf("Orphaned documents (%d):\n", len(orphans))
	for _, key := range orphans {
		fmt.Printf("  %s\n", key)
	}
	fmt.Println("These keys have no registry entry; they are left untouched.")
	return nil
}
