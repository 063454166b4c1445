package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stockyard/stockyard/pkg/catalogs"
	"github.com/stockyard/stockyard/pkg/errors"
)

// NewExportCommand creates the export command.
func (a *App) NewExportCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a YAML snapshot",
		Long: `Export writes every product as a YAML snapshot, products in id order.
Snapshots are the structured alternative to the line store: use them
for backups or to move a catalog between machines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			if outFile == "" {
				return catalogs.Export(cmd.OutOrStdout(), catalog)
			}

			file, err := os.Create(outFile)
			if err != nil {
				return errors.WrapIO("create", outFile, err)
			}
			defer file.Close()
			if err := catalogs.Export(file, catalog); err != nil {
				return err
			}
			cmd.Printf("exported %d products to %s\n", catalog.Len(), outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "O", "", "write the snapshot to a file instead of stdout")

	return cmd
}

// NewImportCommand creates the import command.
func (a *App) NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <snapshot.yaml>",
		Short: "Add every product from a YAML snapshot",
		Long: `Import reads a YAML snapshot and adds every product to the catalog.
Import is strict: any invalid record or id collision fails the whole
import. Use - to read the snapshot from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.Catalog()
			if err != nil {
				return err
			}

			reader := cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.WrapIO("read", args[0], err)
				}
				defer file.Close()
				reader = file
			}

			before := catalog.Len()
			if err := catalogs.Import(reader, catalog); err != nil {
				return err
			}
			cmd.Printf("imported %d products\n", catalog.Len()-before)
			return nil
		},
	}
}
