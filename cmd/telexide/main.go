// Package main is a maintenance CLI for telexide bots: token storage,
// webhook management, and connectivity checks.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rmrfus/telexide/api"
	"github.com/rmrfus/telexide/internal/keychain"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultAccount = "default"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "telexide",
		Short:         "Maintenance CLI for Telegram bots built with telexide",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("token", "", "Bot token (overrides keychain and $TELEGRAM_BOT_TOKEN)")
	root.PersistentFlags().String("account", defaultAccount, "Keychain account name")
	root.PersistentFlags().String("api-url", "", "Bot API base URL (defaults to the official endpoint)")
	root.AddCommand(versionCmd(), getMeCmd(), webhookCmd(), tokenCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("telexide %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func getMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getme",
		Short: "Validate the bot token and print the bot's identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			user, err := client.GetMe(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("id:       %d\nusername: %s\nname:     %s\n", user.ID, user.Username, user.DisplayName())
			return nil
		},
	}
}

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Webhook management",
	}

	set := &cobra.Command{
		Use:   "set <url>",
		Short: "Register a webhook URL with the Bot API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			secret, _ := cmd.Flags().GetString("secret")
			if gen, _ := cmd.Flags().GetBool("gen-secret"); gen {
				secret = uuid.NewString()
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := client.SetWebhook(ctx, api.SetWebhookRequest{
				URL:         args[0],
				SecretToken: secret,
			}); err != nil {
				return err
			}

			fmt.Println("webhook registered:", args[0])
			if secret != "" {
				fmt.Println("secret token:", secret)
			}
			return nil
		},
	}
	set.Flags().String("secret", "", "Secret token sent back by the Bot API with every update")
	set.Flags().Bool("gen-secret", false, "Generate a random secret token")

	del := &cobra.Command{
		Use:   "delete",
		Short: "Remove the current webhook registration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			drop, _ := cmd.Flags().GetBool("drop-pending")

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := client.DeleteWebhook(ctx, api.DeleteWebhookRequest{
				DropPendingUpdates: drop,
			}); err != nil {
				return err
			}
			fmt.Println("webhook deleted")
			return nil
		},
	}
	del.Flags().Bool("drop-pending", false, "Drop pending updates")

	cmd.AddCommand(set, del)
	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Bot token storage in the system keychain",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Store a bot token (read from stdin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, _ := cmd.Flags().GetString("account")

			var token string
			if _, err := fmt.Fscanln(cmd.InOrStdin(), &token); err != nil {
				return fmt.Errorf("read token from stdin: %w", err)
			}
			if err := keychain.Set(account, token); err != nil {
				return err
			}
			fmt.Println("token stored for account:", account)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored bot token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, _ := cmd.Flags().GetString("account")
			token, err := keychain.Get(account)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove the stored bot token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, _ := cmd.Flags().GetString("account")
			if err := keychain.Delete(account); err != nil {
				return err
			}
			fmt.Println("token deleted for account:", account)
			return nil
		},
	})

	return cmd
}

// newClient builds an API client from the token resolution chain:
// --token flag, then $TELEGRAM_BOT_TOKEN, then the system keychain.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	if token == "" {
		account, _ := cmd.Flags().GetString("account")
		stored, err := keychain.Get(account)
		if err == nil {
			token = stored
		}
	}
	if token == "" {
		return nil, errors.New("no bot token: pass --token, set $TELEGRAM_BOT_TOKEN, or store one with \"telexide token set\"")
	}

	apiURL, _ := cmd.Flags().GetString("api-url")
	return api.NewClient(token, apiURL), nil
}
