package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag  bool
	jsonFlag bool
)

// integrityCmd runs every integrity check.
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, catalog document and database",
	Long:  `Checks that the catalog bucket exists, that the catalog document parses and holds only valid gift sets, and that the database schema matches the models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		report := svc.integrity.CheckAll(cmd.Context())
		if jsonFlag {
			filename := fmt.Sprintf("integrity_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			svc.logger.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		for name, section := range map[string]map[string]any{
			"bucket":  report.Bucket,
			"catalog": report.Catalog,
			"server":  report.Server,
		} {
			svc.logger.Info("Integrity check", zap.String("check", name), zap.Any("status", section["status"]))
		}
		if !report.Healthy {
			return fmt.Errorf("integrity checks found problems")
		}
		svc.logger.Info("All integrity checks passed.")
		return nil
	},
}

// bucketCmd checks and optionally creates the catalog bucket.
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check and fix the catalog bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		check := svc.integrity.CheckBucket
		if fixFlag {
			check = svc.integrity.FixBucket
		}
		report, err := check(cmd.Context())
		if err != nil {
			return fmt.Errorf("bucket check failed: %w", err)
		}

		switch {
		case report.Fixed:
			svc.logger.Info("Bucket created.", zap.String("bucket", report.Bucket))
		case report.Exists:
			svc.logger.Info("Bucket is present.", zap.String("bucket", report.Bucket))
		default:
			svc.logger.Warn("Bucket is missing. Run with --fix to create it.", zap.String("bucket", report.Bucket))
		}
		return nil
	},
}

// catalogCheckCmd inspects the catalog document.
var catalogCheckCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Check the catalog document",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()

		report, err := svc.integrity.CheckCatalog(cmd.Context())
		if err != nil {
			return fmt.Errorf("catalog check failed: %w", err)
		}

		l := svc.logger.With(zap.String("object", report.Object))
		switch {
		case !report.Present:
			l.Warn("Catalog document is missing.")
		case report.ParseError != "":
			l.Error("Catalog document cannot be parsed", zap.String("error", report.ParseError))
		default:
			l.Info("Catalog document parsed",
				zap.Int("characters", report.Counts.Characters),
				zap.Int("materials", report.Counts.Materials),
				zap.Int("furnishings", report.Counts.Furnishings),
				zap.Int("gift_sets", report.Counts.GiftSets),
			)
			for _, problem := range report.Invalid {
				l.Warn("Invalid gift set", zap.String("problem", problem))
			}
		}
		return nil
	},
}

// serverCmd checks the database schema.
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check integrity of the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.Close()
		logg := svc.logger

		logg.Info("Checking server schema integrity...")
		report, err := svc.integrity.CheckServer()
		if err != nil {
			return fmt.Errorf("server schema check failed: %w", err)
		}

		if report.Matched {
			logg.Info("Server schema matches expected definition.", zap.String("driver", report.Driver))
			return nil
		}

		logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if tblReport.Status == "missing" {
				logg.Warn("Missing Table", zap.String("table", table))
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(bucketCmd, catalogCheckCmd, serverCmd)

	integrityCmd.Flags().BoolVar(&jsonFlag, "json", false, "Save the combined report as JSON")
	bucketCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the bucket when missing")
}
