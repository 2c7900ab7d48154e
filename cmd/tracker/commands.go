package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-tracker/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-tracker/internal/services/tracker"
	"github.com/KirkDiggler/dnd-tracker/internal/ui"
)

// mutation runs fn against the loaded service and re-renders the sheet
func mutation(a *app, fn func(cmd *cobra.Command, svc tracker.Service, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := a.mutable()
		if err != nil {
			return err
		}
		if err := fn(cmd, svc, args); err != nil {
			return err
		}
		a.render(cmd.OutOrStdout())
		return nil
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the character sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.loadErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorText(a.loadErr))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderHome(a.svc.Sheet()))
			fmt.Fprintln(cmd.OutOrStdout())
			a.render(cmd.OutOrStdout())
			return nil
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	fields := make([]string, 0, len(character.Fields()))
	for _, f := range character.Fields() {
		fields = append(fields, string(f))
	}

	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a field on the sheet",
		Long: "Set a field on the sheet. Numbers that cannot be read fall back to the field default.\n\nFields: " +
			strings.Join(fields, ", "),
		Args: cobra.MinimumNArgs(2),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			return svc.SetField(cmd.Context(), character.Field(args[0]), strings.Join(args[1:], " "))
		}),
	}
}

func newCurrencyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "currency <gold|silver|copper> <add|sub> [amount]",
		Short:     "Add or spend coins",
		Args:      cobra.RangeArgs(2, 3),
		ValidArgs: []string{string(character.Gold), string(character.Silver), string(character.Copper)},
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			d := character.Denomination(args[0])
			switch d {
			case character.Gold, character.Silver, character.Copper:
			default:
				return dnderr.InvalidArgumentf("unknown coin %q", args[0])
			}

			amount := 1
			if len(args) == 3 {
				amount = character.ParseQuantity(args[2])
			}

			switch args[1] {
			case "add", "+":
			case "sub", "-":
				amount = -amount
			default:
				return dnderr.InvalidArgumentf("expected add or sub, got %q", args[1])
			}

			return svc.AdjustCurrency(cmd.Context(), d, amount)
		}),
	}
}

func newInventoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Manage carried items",
	}

	var qty string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item, or more of one already carried",
		Args:  cobra.MinimumNArgs(1),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			return svc.AddInventoryItem(cmd.Context(), strings.Join(args, " "), character.ParseQuantity(qty))
		}),
	}
	add.Flags().StringVarP(&qty, "qty", "q", "1", "Quantity")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.RemoveInventoryItem(cmd.Context(), id)
		}),
	}

	cmd.AddCommand(add, remove)
	return cmd
}

func newWeaponCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weapon",
		Short: "Manage weapons",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a weapon from the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			return svc.AddWeapon(cmd.Context(), strings.Join(args, " "))
		}),
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a weapon",
		Args:  cobra.ExactArgs(1),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.RemoveWeapon(cmd.Context(), id)
		}),
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the weapon catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderWeaponCatalog(a.svc.Catalog()))
			return nil
		},
	}

	cmd.AddCommand(add, remove, list)
	return cmd
}

func newLocationCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Manage visited locations",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a location",
		Args:  cobra.MinimumNArgs(1),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			return svc.AddLocation(cmd.Context(), strings.Join(args, " "))
		}),
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a location",
		Args:  cobra.ExactArgs(1),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.RemoveLocation(cmd.Context(), id)
		}),
	}

	notes := &cobra.Command{
		Use:   "notes <id> [text]",
		Short: "Replace the notes of a location",
		Args:  cobra.MinimumNArgs(1),
		RunE: mutation(a, func(cmd *cobra.Command, svc tracker.Service, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return svc.SetLocationNotes(cmd.Context(), id, strings.Join(args[1:], " "))
		}),
	}

	cmd.AddCommand(add, remove, notes)
	return cmd
}

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the sheet now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.mutable()
			if err != nil {
				return err
			}
			return svc.Save(cmd.Context())
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved sheet and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return dnderr.InvalidArgument("clear deletes all data, pass --yes to confirm")
			}
			if a.storeErr != nil {
				return a.storeErr
			}
			// Clearing also works when the saved data could not be loaded
			return a.svc.Clear(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deleting all data")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, dnderr.InvalidArgumentf("invalid id %q", s)
	}
	return id, nil
}
