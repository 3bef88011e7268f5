package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLedgerLimit int

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Show the pet's wallet and recent earnings",
	Long: `Display the balance of a wallet and its newest ledger entries.

Examples:
  petarcade wallet
  petarcade wallet --owner rex --limit 5`,
	Args: cobra.NoArgs,
	RunE: runWallet,
}

func init() {
	walletCmd.Flags().IntVar(&flagLedgerLimit, "limit", 20, "Number of ledger entries to show")
}

func runWallet(_ *cobra.Command, _ []string) error {
	store, err := openStore(true)
	if err != nil {
		return err
	}
	defer store.Close()

	balance, ok, err := store.LoadBalance(host.Owner)
	if err != nil {
		return fmt.Errorf("load balance: %w", err)
	}
	if !ok {
		fmt.Printf("No wallet for %q yet. Play a minigame to start earning!\n", host.Owner)
		return nil
	}

	fmt.Printf("Wallet - %s\n", host.Owner)
	fmt.Printf("Balance: $%d\n", balance)
	fmt.Println()

	entries, err := store.Ledger(host.Owner, flagLedgerLimit)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No earnings recorded.")
		return nil
	}

	fmt.Printf("  %-8s  %-40s  %s\n", "Amount", "Activity", "Date")
	fmt.Printf("  %-8s  %-40s  %s\n", "------", "--------", "----")
	for _, e := range entries {
		fmt.Printf("  $%-7d  %-40s  %s\n", e.Amount, e.Reason, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	recent, err := store.RecentResults(host.Owner, 5)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	if len(recent) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent sessions:")
	for _, r := range recent {
		fmt.Printf("  %-8s  score %-5d  $%-5d  %-13s  %ds\n", r.Mode, r.Score, r.Reward, r.Reason, r.Elapsed)
	}
	return nil
}
