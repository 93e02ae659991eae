package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"strmsync/config"
	"strmsync/pkg/logger"
	"strmsync/pkg/manager"
)

// accountsCmd represents the accounts command
var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "list the remote VOD accounts and whether the selector matches them",
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		ctx := logger.WithCtx(cmd.Context(), log)

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		m, store, err := newManager(cfg)
		if err != nil {
			log.Fatal("failed to set up client", zap.Error(err))
		}
		defer store.Close()

		accounts, err := m.Accounts(ctx)
		if err != nil {
			log.Fatal("failed to list accounts", zap.Error(err))
		}

		for _, account := range accounts {
			matched := "-"
			if manager.Matches(account, cfg.Export.Accounts) {
				matched = "matched"
			}
			fmt.Printf("%d\t%s\t%s\t%s\n", account.ID, account.DisplayName(), account.ServerURL, matched)
		}
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
