package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/flash-chain/flash/x/campaign/types"
)

// GetTxCmd returns the transaction commands for the campaign module
func GetTxCmd() *cobra.Command {
	campaignTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Campaign transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	campaignTxCmd.AddCommand(
		CmdInitCoreConfig(),
		CmdCreateCampaign(),
		CmdJoinCampaign(),
		CmdCompound(),
		CmdClaim(),
		CmdSetSurplusBps(),
		CmdSetGamma(),
	)

	return campaignTxCmd
}

func parseCampaignID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid campaign id: %s", arg)
	}
	return uint32(id), nil
}

// CmdInitCoreConfig returns a CLI command handler for bootstrapping the engine
func CmdInitCoreConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [reward-denom] [stable-denom] [seed-pool-id] [surplus-bps] [gamma]",
		Short: "Initialize the campaign engine configuration",
		Long: `Initialize the engine's one-time configuration. The signer becomes
the admin and their reward-asset balance is swept into the module treasury.

Example:
  $ flashd tx campaign init-config uflash uusdc 1 500 2 --from admin`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			seedPoolID, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed pool id: %s", args[2])
			}
			surplusBps, err := strconv.ParseUint(args[3], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid surplus bps: %s", args[3])
			}
			gamma, err := strconv.ParseUint(args[4], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid gamma: %s", args[4])
			}

			msg := &types.MsgInitCoreConfig{
				Admin:       clientCtx.GetFromAddress().String(),
				RewardDenom: args[0],
				StableDenom: args[1],
				SeedPoolId:  seedPoolID,
				SurplusBps:  uint32(surplusBps),
				Gamma:       uint32(gamma),
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateCampaign returns a CLI command handler for opening a campaign
func CmdCreateCampaign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [fee] [pool-id] [unlock-duration] [target-liquidity] [bonus-pool]",
		Short: "Create a liquidity-mining campaign on a pool",
		Long: `Create a campaign funded by a stable-asset fee. The fee is zapped
into the seed pool and the over-swapped reward asset, capped by the
price-impact bound, becomes the campaign's reward pool.

Example:
  $ flashd tx campaign create 1000000 2 10000 500000 100000 --from sponsor`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			fee, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid fee: %s", args[0])
			}
			poolID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool id: %s", args[1])
			}
			duration, err := strconv.ParseUint(args[2], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid unlock duration: %s", args[2])
			}
			target, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid target liquidity: %s", args[3])
			}
			bonus, ok := math.NewIntFromString(args[4])
			if !ok {
				return fmt.Errorf("invalid bonus pool: %s", args[4])
			}

			msg := &types.MsgCreateCampaign{
				Creator:         clientCtx.GetFromAddress().String(),
				FeeAmount:       fee,
				PoolId:          poolID,
				UnlockDuration:  uint32(duration),
				TargetLiquidity: target,
				BonusPool:       bonus,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdJoinCampaign returns a CLI command handler for joining a campaign
func CmdJoinCampaign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [campaign-id] [stable-amount]",
		Short: "Stake a stable-asset amount into a campaign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s", args[1])
			}

			msg := &types.MsgJoinCampaign{
				Depositor:    clientCtx.GetFromAddress().String(),
				CampaignId:   campaignID,
				StableAmount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCompound returns a CLI command handler for compounding accrued fees
func CmdCompound() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compound [campaign-id]",
		Short: "Reinvest accrued trading fees into a campaign's reward pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgCompound{
				Caller:     clientCtx.GetFromAddress().String(),
				CampaignId: campaignID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaim returns a CLI command handler for claiming a matured position
func CmdClaim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim [campaign-id]",
		Short: "Claim rewards and staked liquidity from an unlocked campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			campaignID, err := parseCampaignID(args[0])
			if err != nil {
				return err
			}

			msg := &types.MsgClaim{
				Depositor:  clientCtx.GetFromAddress().String(),
				CampaignId: campaignID,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetSurplusBps returns a CLI command handler for the surplus setter
func CmdSetSurplusBps() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-surplus-bps [surplus-bps]",
		Short: "Update the zap over-swap parameter (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			surplusBps, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid surplus bps: %s", args[0])
			}

			msg := &types.MsgSetSurplusBps{
				Admin:      clientCtx.GetFromAddress().String(),
				SurplusBps: uint32(surplusBps),
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetGamma returns a CLI command handler for the rank decay setter
func CmdSetGamma() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-gamma [gamma]",
		Short: "Update the rank decay exponent (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			gamma, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid gamma: %s", args[0])
			}

			msg := &types.MsgSetGamma{
				Admin: clientCtx.GetFromAddress().String(),
				Gamma: uint32(gamma),
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
