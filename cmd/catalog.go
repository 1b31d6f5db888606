package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"furnishing-helper/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	purgeCatalog  bool
	syncCatalog   bool
	dryRunCatalog bool
	yesConfirm    bool
)

// catalogCmd is the parent command for catalog maintenance.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain the gift set catalog",
	Long: `Reconcile the database catalog against the catalog document in object storage,
or export the database catalog back to it.`,
}

// catalogSyncCmd reconciles the database against the catalog document.
var catalogSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the database catalog with the catalog document (report + optionally purge/sync)",
	Long: `Reconcile characters, materials, furnishings and gift sets between the
catalog document and the database.

Reports entries missing on either side and gift sets whose fields differ.
Optionally purge (delete) database entries missing from the document, or
sync (insert and update) entries from the document.

Examples:
  # Report only
  catalog sync

  # Purge with interactive confirmation
  catalog sync --purge

  # Insert and update from the document, auto-confirmed
  catalog sync --sync --yes

  # Both purge and sync
  catalog sync --purge --sync --yes`,
	RunE: runCatalogSync,
}

// catalogExportCmd writes the database catalog to object storage.
var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the database catalog to the catalog document",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		if err := svc.catalog.Export(cmd.Context()); err != nil {
			return fmt.Errorf("failed to export catalog: %w", err)
		}
		svc.logger.Info("Catalog exported",
			zap.String("bucket", svc.cfg.Storage.Bucket),
			zap.String("object", svc.catalog.ObjectName()),
		)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogSyncCmd, catalogExportCmd)

	catalogSyncCmd.Flags().BoolVar(&purgeCatalog, "purge", false, "Enable purge (delete database entries missing from the document)")
	catalogSyncCmd.Flags().BoolVar(&syncCatalog, "sync", false, "Enable sync (insert and update database entries from the document)")
	catalogSyncCmd.Flags().BoolVar(&dryRunCatalog, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	catalogSyncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(catalogCmd)
}

func runCatalogSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	svc, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer svc.Close()
	l := svc.logger

	opts := reconcile.Options{
		DoPurge: purgeCatalog,
		DoSync:  syncCatalog,
		DryRun:  true,
	}

	l.Info("Planning catalog sync...")
	report, err := svc.catalog.Sync(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to plan catalog sync: %w", err)
	}
	printSyncReport(l, report.Plan, report.Invalid)

	if !purgeCatalog && !syncCatalog {
		l.Info("No actions requested. Use --purge to delete stale entries or --sync to apply the document.")
		return nil
	}
	if dryRunCatalog {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if len(report.Plan.Actions) == 0 {
		l.Info("No actions required based on current flags.")
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	opts.DryRun = false
	opts.Confirmed = true

	l.Info("Applying actions...")
	report, err = svc.catalog.Sync(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to apply catalog sync: %w", err)
	}

	l.Info("Successfully executed actions", zap.Int("count", report.Executed))
	return nil
}

// printSyncReport logs the plan summary and a sample of planned actions.
func printSyncReport(l *zap.Logger, plan *reconcile.Plan, invalid []string) {
	s := plan.Summary

	l.Info("Catalog sync report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("missing_db", s.MissingDB),
		zap.Int("missing_document", s.MissingDocument),
		zap.Int("mismatches", s.Mismatches),
	)
	for _, problem := range invalid {
		l.Warn("Skipped invalid document entry", zap.String("problem", problem))
	}

	if len(plan.Actions) == 0 {
		return
	}
	l.Info("Planned actions",
		zap.Int("insert_actions", s.InsertActions),
		zap.Int("purge_actions", s.PurgeActions),
		zap.Int("sync_actions", s.SyncActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	maxShow := min(len(plan.Actions), 5)
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
