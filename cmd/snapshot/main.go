package main

import (
	"fmt"
	"os"
	"processos/cmd/internal/domain/sqlite"
	"processos/cmd/internal/domain/sqlite/repository"
	"processos/cmd/internal/infrastructure/aws/storage"
	"processos/cmd/internal/infrastructure/snapshot"
	"processos/cmd/internal/utils"
	"processos/cmd/internal/utils/validators"

	"github.com/spf13/cobra"
)

const defaultRegion = "us-east-2"

func main() {
	rootCmd := &cobra.Command{
		Use:   "processos-snapshot",
		Short: "Manage the processos snapshots stored in sqlite",
		Long: `Imports processos JSON documents into a sqlite database, which the API
can serve with SNAPSHOT_SOURCE=sqlite.

Documents are validated before being stored.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(latestCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func importCmd() *cobra.Command {
	var (
		dbPath   string
		name     string
		file     string
		bucket   string
		key      string
		s3Region string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Validate a snapshot document and store it",
		Long: `Reads a snapshot either from a local file or from S3 and stores it under the given name.

Example:
  processos-snapshot import --db data/processos.db --file data/processos.json
  processos-snapshot import --db data/processos.db --s3-bucket processos-data --s3-key processos.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (bucket == "") {
				return fmt.Errorf("exactly one of --file or --s3-bucket is required")
			}

			var src snapshot.Source = &snapshot.FileSource{Path: file}
			if bucket != "" {
				client, err := storage.NewStorageClient(cmd.Context(), s3Region, bucket)
				if err != nil {
					return fmt.Errorf("failed to create s3 client: %w", err)
				}
				src = &snapshot.S3Source{Client: client, Bucket: bucket, Key: key}
			}

			db, err := sqlite.Init(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", dbPath, err)
			}
			defer sqlite.Close(db)

			importer := snapshot.NewImporter(repository.NewSnapshotRepository(db), validators.New())
			stored, count, err := importer.Import(cmd.Context(), src, name)
			if err != nil {
				return err
			}

			fmt.Printf("Stored snapshot %q #%d with %d processos at %s\n",
				stored.Name, stored.ID, count, utils.FormatEpoch(stored.CreatedAt))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "data/processos.db", "sqlite database path")
	cmd.Flags().StringVar(&name, "name", "processos", "snapshot name")
	cmd.Flags().StringVar(&file, "file", "", "snapshot JSON file")
	cmd.Flags().StringVar(&bucket, "s3-bucket", "", "S3 bucket holding the snapshot")
	cmd.Flags().StringVar(&key, "s3-key", "processos.json", "S3 object key")
	cmd.Flags().StringVar(&s3Region, "s3-region", defaultRegion, "S3 bucket region")

	return cmd
}

func latestCmd() *cobra.Command {
	var (
		dbPath string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the snapshot the API would serve",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := sqlite.Init(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", dbPath, err)
			}
			defer sqlite.Close(db)

			latest, err := repository.NewSnapshotRepository(db).FindLatest(name)
			if err != nil {
				return err
			}

			if latest == nil {
				return fmt.Errorf("no snapshot named %q in %s", name, dbPath)
			}

			fmt.Printf("Snapshot %q #%d\n", latest.Name, latest.ID)
			fmt.Printf("  Created: %s\n", utils.FormatEpoch(latest.CreatedAt))
			fmt.Printf("  Size:    %d bytes\n", len(latest.Content))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "data/processos.db", "sqlite database path")
	cmd.Flags().StringVar(&name, "name", "processos", "snapshot name")

	return cmd
}
