package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext/internal/model"
)

var (
	updateUsername  string
	updateEmail     string
	currentPassword string
	newPassword     string
	deleteConfirmed bool
)

// accountCmd represents the account command
var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the logged-in account",
}

var accountUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update username or email",
	Long: `Update profile fields on the logged-in account. Only the flags you
pass are changed.

Example:
  veritext account update --email new@example.com`,
	RunE: runAccountUpdate,
}

var accountChangePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Rotate the account password",
	RunE:  runChangePassword,
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the account and log out",
	Long: `Permanently delete the logged-in account on the backend. The stored
session is discarded afterwards. Requires --yes.`,
	RunE: runAccountDelete,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountUpdateCmd)
	accountCmd.AddCommand(accountChangePasswordCmd)
	accountCmd.AddCommand(accountDeleteCmd)

	accountUpdateCmd.Flags().StringVar(&updateUsername, "username", "", "new username")
	accountUpdateCmd.Flags().StringVar(&updateEmail, "email", "", "new email")

	accountChangePasswordCmd.Flags().StringVar(&currentPassword, "current", "", "current password")
	accountChangePasswordCmd.Flags().StringVar(&newPassword, "new", "", "new password")

	accountDeleteCmd.Flags().BoolVar(&deleteConfirmed, "yes", false, "confirm deletion")
}

func runAccountUpdate(cmd *cobra.Command, args []string) error {
	if updateUsername == "" && updateEmail == "" {
		return fmt.Errorf("nothing to update: pass --username and/or --email")
	}

	user, cache, err := requireUser()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	updated, err := client.UpdateUser(ctx, user.UserID, model.UpdateUserRequest{
		Username: updateUsername,
		Email:    updateEmail,
	})
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	// Keep the stored session in step with the backend record.
	if err := cache.Set(updated); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Printf("Account updated: %s <%s>\n", updated.Username, updated.Email)
	return nil
}

func runChangePassword(cmd *cobra.Command, args []string) error {
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("--current and --new are required")
	}

	user, _, err := requireUser()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	if err := client.ChangePassword(ctx, user.UserID, model.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}); err != nil {
		return fmt.Errorf("change password failed: %w", err)
	}

	fmt.Println("Password changed.")
	return nil
}

func runAccountDelete(cmd *cobra.Command, args []string) error {
	if !deleteConfirmed {
		return fmt.Errorf("account deletion is permanent: re-run with --yes to confirm")
	}

	user, cache, err := requireUser()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	if err := client.DeleteAccount(ctx, user.UserID); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if err := cache.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	fmt.Println("Account deleted.")
	return nil
}
