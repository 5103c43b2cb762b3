package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/flash-chain/flash/x/campaign/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the campaign MsgServer
// interface for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) InitCoreConfig(goCtx context.Context, msg *types.MsgInitCoreConfig) (*types.MsgInitCoreConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}

	swept, err := k.Keeper.InitCoreConfig(goCtx, admin, types.CoreConfig{
		Admin:       msg.Admin,
		RewardDenom: msg.RewardDenom,
		StableDenom: msg.StableDenom,
		SeedPoolId:  msg.SeedPoolId,
		SurplusBps:  msg.SurplusBps,
		Gamma:       msg.Gamma,
	})
	if err != nil {
		return nil, err
	}

	return &types.MsgInitCoreConfigResponse{TreasurySwept: swept}, nil
}

func (k msgServer) CreateCampaign(goCtx context.Context, msg *types.MsgCreateCampaign) (*types.MsgCreateCampaignResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid creator address: %v", err)
	}

	campaign, err := k.Keeper.CreateCampaign(
		goCtx, creator, msg.FeeAmount, msg.PoolId,
		msg.UnlockDuration, msg.TargetLiquidity, msg.BonusPool,
	)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreateCampaignResponse{
		CampaignId: campaign.Id,
		RewardPool: campaign.RewardPool,
		EndHeight:  campaign.EndHeight,
	}, nil
}

func (k msgServer) JoinCampaign(goCtx context.Context, msg *types.MsgJoinCampaign) (*types.MsgJoinCampaignResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid depositor address: %v", err)
	}

	pos, err := k.Keeper.JoinCampaign(goCtx, depositor, msg.CampaignId, msg.StableAmount)
	if err != nil {
		return nil, err
	}

	return &types.MsgJoinCampaignResponse{
		Liquidity: pos.Liquidity,
		Weight:    pos.Weight,
		Rank:      pos.Rank,
	}, nil
}

func (k msgServer) Compound(goCtx context.Context, msg *types.MsgCompound) (*types.MsgCompoundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	harvested, err := k.Keeper.Compound(goCtx, msg.CampaignId)
	if err != nil {
		return nil, err
	}

	return &types.MsgCompoundResponse{Harvested: harvested}, nil
}

func (k msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid depositor address: %v", err)
	}

	reward, bonus, liquidity, err := k.Keeper.Claim(goCtx, depositor, msg.CampaignId)
	if err != nil {
		return nil, err
	}

	return &types.MsgClaimResponse{
		Reward:    reward,
		Bonus:     bonus,
		Liquidity: liquidity,
	}, nil
}

func (k msgServer) SetSurplusBps(goCtx context.Context, msg *types.MsgSetSurplusBps) (*types.MsgSetSurplusBpsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}

	if err := k.Keeper.SetSurplusBps(goCtx, admin, msg.SurplusBps); err != nil {
		return nil, err
	}
	return &types.MsgSetSurplusBpsResponse{}, nil
}

func (k msgServer) SetGamma(goCtx context.Context, msg *types.MsgSetGamma) (*types.MsgSetGammaResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}

	if err := k.Keeper.SetGamma(goCtx, admin, msg.Gamma); err != nil {
		return nil, err
	}
	return &types.MsgSetGammaResponse{}, nil
}
