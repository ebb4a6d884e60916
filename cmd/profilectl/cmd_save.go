package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createFlags, editFlags fieldFlags

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a profile",
	Long: "Create a profile from flags. Without field flags on a terminal, an " +
		"interactive form is shown with the server defaults as placeholders.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.load(cmd.Context()); err != nil {
			return err
		}

		a.ctrl.OpenNew()
		if err := fillForm(cmd, &createFlags, a.ctrl); err != nil {
			return a.cancelled(err)
		}
		name := a.ctrl.Form().Name
		if err := a.ctrl.Submit(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(a.errOut, "Created profile %q\n", name)
		a.printList()
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [name]",
	Short: "Edit a profile",
	Long: "Edit the named profile. Only the fields given as flags change; renaming " +
		"with --name keeps everything else. Without field flags on a terminal, an " +
		"interactive form is shown.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if err := a.load(cmd.Context()); err != nil {
			return err
		}

		name, err := a.profileArg(args, "Edit which profile?")
		if err != nil {
			return a.cancelled(err)
		}
		if err := a.ctrl.OpenEdit(name); err != nil {
			return err
		}
		if err := fillForm(cmd, &editFlags, a.ctrl); err != nil {
			return a.cancelled(err)
		}
		if err := a.ctrl.Submit(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(a.errOut, "Updated profile %q\n", name)
		a.printList()
		return nil
	},
}

func init() {
	createFlags.register(createCmd)
	editFlags.register(editCmd)
}
