package cli

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/flash-chain/flash/x/campaign/types"
)

// GetQueryCmd returns the cli query commands for the campaign module
func GetQueryCmd() *cobra.Command {
	campaignQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the campaign module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	campaignQueryCmd.AddCommand(
		GetCmdQueryCampaign(),
		GetCmdQueryConfig(),
	)

	return campaignQueryCmd
}

// GetCmdQueryCampaign returns the command to query a campaign by ID
func GetCmdQueryCampaign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign [campaign-id]",
		Short: "Query a campaign by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}

			key := make([]byte, 5)
			key[0] = types.CampaignKeyPrefix[0]
			binary.BigEndian.PutUint32(key[1:], campaignID)

			bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("campaign %d not found", campaignID)
			}

			var campaign types.Campaign
			if err := json.Unmarshal(bz, &campaign); err != nil {
				return fmt.Errorf("failed to decode campaign: %w", err)
			}

			out, err := json.MarshalIndent(campaign, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryConfig returns the command to query the engine configuration
func GetCmdQueryConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Query the engine's core configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.CoreConfigKey, types.StoreKey)
			if err != nil {
				return err
			}
			if bz == nil {
				return fmt.Errorf("core configuration not initialized")
			}

			var cfg types.CoreConfig
			if err := json.Unmarshal(bz, &cfg); err != nil {
				return fmt.Errorf("failed to decode config: %w", err)
			}

			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
