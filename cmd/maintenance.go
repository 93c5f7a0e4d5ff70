package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	oldPassword string
	newPassword string
)

//nolint:gochecknoglobals // Cobra boilerplate
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard every content edit and restore the built-in document",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.contentStore(ctx).ResetToDefault(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "content reset to default")
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the admin password",
	Long: `passwd replaces the admin password. The current password is required,
exactly as on the dashboard. The password is stored in plain text.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if newPassword == "" {
			return errors.New("--new must not be empty")
		}
		ctx := cmd.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		ok, err := a.gate().ChangePassword(ctx, oldPassword, newPassword)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("current password is incorrect")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "password changed")
		return nil
	},
}

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the effective content document as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := bootstrap(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.Close()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(a.contentStore(ctx).Data())
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	passwdCmd.Flags().StringVar(&oldPassword, "old", "", "current admin password")
	passwdCmd.Flags().StringVar(&newPassword, "new", "", "new admin password")
	_ = passwdCmd.MarkFlagRequired("old")
	_ = passwdCmd.MarkFlagRequired("new")
}
