package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext/internal/model"
)

var (
	registerUsername string
	registerEmail    string
	loginIdentifier  string
	authPassword     string
)

// registerCmd represents the register command
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Veritext account",
	Long: `Create a new account on the configured backend and log in as it.

Example:
  veritext register --username ada --email ada@example.com --password s3cret`,
	RunE: runRegister,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the configured backend",
	Long: `Authenticate against the backend and store the session locally.

The identifier may be a username or an email address.

Example:
  veritext login --identifier ada --password s3cret`,
	RunE: runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := openSession()
		if err != nil {
			return err
		}
		if cache.Current() == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _, err := requireUser()
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> (id %d)\n", user.Username, user.Email, user.UserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	registerCmd.Flags().StringVar(&registerUsername, "username", "", "account username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "account password (prompted when omitted)")

	loginCmd.Flags().StringVar(&loginIdentifier, "identifier", "", "username or email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "account password (prompted when omitted)")
}

func runRegister(cmd *cobra.Command, args []string) error {
	if registerUsername == "" || registerEmail == "" {
		return fmt.Errorf("--username and --email are required")
	}
	password, err := resolvePassword()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	user, err := client.Register(ctx, model.RegisterRequest{
		Username: registerUsername,
		Email:    registerEmail,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("register failed: %w", err)
	}

	cache, err := openSession()
	if err != nil {
		return err
	}
	if err := cache.Set(user); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Printf("Welcome, %s. You are logged in.\n", user.Username)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	if loginIdentifier == "" {
		return fmt.Errorf("--identifier is required")
	}
	password, err := resolvePassword()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	client := newClient(cfg)
	ctx, cancel := commandContext(cfg)
	defer cancel()

	user, err := client.Login(ctx, model.LoginRequest{
		Identifier: loginIdentifier,
		Password:   password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cache, err := openSession()
	if err != nil {
		return err
	}
	if err := cache.Set(user); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	fmt.Printf("Logged in as %s.\n", user.Username)
	return nil
}

// resolvePassword uses the --password flag when set, otherwise prompts on
// stdin.
func resolvePassword() (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
