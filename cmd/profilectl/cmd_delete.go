package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name...]",
	Short: "Delete profiles",
	Long: "Delete the named profiles right away; there is no confirmation. " +
		"Without names on a terminal, a picker lists the profiles to choose from.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.load(cmd.Context()); err != nil {
			return err
		}

		names := args
		if len(names) == 0 {
			if !isInteractive() {
				return errors.New("at least one profile name is required")
			}
			names, err = runPicker("Delete profiles", a.ctrl.Snapshot().Profiles)
			if err != nil {
				return a.cancelled(err)
			}
		}

		for _, name := range names {
			if err := a.ctrl.Delete(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(a.errOut, "Deleted profile %q\n", name)
		}
		a.printList()
		return nil
	},
}

var duplicateCmd = &cobra.Command{
	Use:     "duplicate [name]",
	Aliases: []string{"copy"},
	Short:   `Copy a profile as "<name>-copy"`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.load(cmd.Context()); err != nil {
			return err
		}

		name, err := a.profileArg(args, "Duplicate which profile?")
		if err != nil {
			return a.cancelled(err)
		}
		if err := a.ctrl.Duplicate(cmd.Context(), name); err != nil {
			return err
		}

		fmt.Fprintf(a.errOut, "Duplicated profile %q\n", name)
		a.printList()
		return nil
	},
}
