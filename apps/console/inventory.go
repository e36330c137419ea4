package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"

	"github.com/schoolmed/console/core/inventory"
)

func newInventoryCmd(app *application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage the medical supply inventory",
	}
	cmd.AddCommand(
		newInventoryListCmd(app),
		newInventoryAddCmd(app),
		newInventoryQuantityCmd(app),
		newInventoryCatalogCmd(app),
		newInventoryDeductCmd(app),
		newInventoryDeleteCmd(app),
	)
	return cmd
}

func newInventoryListCmd(app *application) *cobra.Command {
	var keyword string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory with stock status",
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []inventory.Item
			if keyword != "" {
				items = app.inventory.Search(cmd.Context(), keyword)
			} else {
				items = app.inventory.QueryAll(cmd.Context())
			}
			renderInventory(app, cmd, items)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyword, "search", "", "keyword filter")
	return cmd
}

func renderInventory(app *application, cmd *cobra.Command, items []inventory.Item) {
	th := app.stockThresholds()
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ID, it.MedicalItem.Name, it.MedicalItem.Category,
			strconv.Itoa(it.TotalQuantity), it.MedicalItem.Unit,
			it.MedicalItem.ExpiryDate, it.Status(th),
		})
	}
	printTable(cmd.OutOrStdout(),
		[]string{"ID", "NAME", "CATEGORY", "QTY", "UNIT", "EXPIRES", "STOCK"}, rows)
}

func newInventoryAddCmd(app *application) *cobra.Command {
	var ni inventory.NewItem
	var manufacturer, storage string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item (creates the catalog entry, then the inventory record)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if manufacturer != "" {
				ni.Manufacturer = null.StringFrom(manufacturer)
			}
			if storage != "" {
				ni.StorageInstructions = null.StringFrom(storage)
			}
			created, err := app.inventory.Add(cmd.Context(), ni)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s), stock %s\n",
				created.MedicalItem.Name, created.ID, created.Status(app.stockThresholds()))
			return nil
		},
	}
	cmd.Flags().StringVar(&ni.Name, "name", "", "item name")
	cmd.Flags().StringVar(&ni.Category, "category", "", "category")
	cmd.Flags().StringVar(&ni.ExpiryDate, "expires", "", "expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ni.Unit, "unit", "", "unit, e.g. tablet")
	cmd.Flags().IntVar(&ni.TotalQuantity, "quantity", 0, "initial quantity")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "manufacturer")
	cmd.Flags().StringVar(&storage, "storage", "", "storage instructions")
	return cmd
}

func newInventoryQuantityCmd(app *application) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "set-quantity ID",
		Short: "Set an item's tracked quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.inventory.Update(cmd.Context(), args[0],
				inventory.UpdateItem{TotalQuantity: null.IntFrom(qty)})
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "quantity now %d (%s)\n",
				updated.TotalQuantity, updated.Status(app.stockThresholds()))
			return nil
		},
	}
	cmd.Flags().IntVar(&qty, "quantity", 0, "new quantity")
	return cmd
}

func newInventoryCatalogCmd(app *application) *cobra.Command {
	var um inventory.UpdateMedicalItem
	var manufacturer, storage string
	cmd := &cobra.Command{
		Use:   "update-catalog MEDICAL_ITEM_ID",
		Short: "Edit an item's catalog entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if manufacturer != "" {
				um.Manufacturer = null.StringFrom(manufacturer)
			}
			if storage != "" {
				um.StorageInstructions = null.StringFrom(storage)
			}
			updated, err := app.inventory.UpdateCatalog(cmd.Context(), args[0], um)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated catalog entry %s\n", updated.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&um.Name, "name", "", "item name")
	cmd.Flags().StringVar(&um.Category, "category", "", "category")
	cmd.Flags().StringVar(&um.ExpiryDate, "expires", "", "expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&um.Unit, "unit", "", "unit")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "manufacturer")
	cmd.Flags().StringVar(&storage, "storage", "", "storage instructions")
	return cmd
}

func newInventoryDeductCmd(app *application) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "deduct ID",
		Short: "Deduct from an item's quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.inventory.Deduct(cmd.Context(), args[0], qty)
			if err != nil {
				return renderError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "quantity now %d (%s)\n",
				updated.TotalQuantity, updated.Status(app.stockThresholds()))
			return nil
		},
	}
	cmd.Flags().IntVar(&qty, "quantity", 1, "quantity to deduct")
	return cmd
}

func newInventoryDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an inventory record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.inventory.Delete(cmd.Context(), args[0]); err != nil {
				return renderError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
