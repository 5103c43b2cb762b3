package types

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgInitCoreConfig = "init_core_config"
	TypeMsgCreateCampaign = "create_campaign"
	TypeMsgJoinCampaign   = "join_campaign"
	TypeMsgCompound       = "compound"
	TypeMsgClaim          = "claim"
	TypeMsgSetSurplusBps  = "set_surplus_bps"
	TypeMsgSetGamma       = "set_gamma"
)

var (
	_ sdk.Msg = &MsgInitCoreConfig{}
	_ sdk.Msg = &MsgCreateCampaign{}
	_ sdk.Msg = &MsgJoinCampaign{}
	_ sdk.Msg = &MsgCompound{}
	_ sdk.Msg = &MsgClaim{}
	_ sdk.Msg = &MsgSetSurplusBps{}
	_ sdk.Msg = &MsgSetGamma{}
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitCoreConfig(context.Context, *MsgInitCoreConfig) (*MsgInitCoreConfigResponse, error)
	CreateCampaign(context.Context, *MsgCreateCampaign) (*MsgCreateCampaignResponse, error)
	JoinCampaign(context.Context, *MsgJoinCampaign) (*MsgJoinCampaignResponse, error)
	Compound(context.Context, *MsgCompound) (*MsgCompoundResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	SetSurplusBps(context.Context, *MsgSetSurplusBps) (*MsgSetSurplusBpsResponse, error)
	SetGamma(context.Context, *MsgSetGamma) (*MsgSetGammaResponse, error)
}

// MsgInitCoreConfig bootstraps the engine's configuration record. The
// signer becomes the admin; their reward-asset balance is swept into the
// module account as the initial emission treasury.
type MsgInitCoreConfig struct {
	Admin       string `json:"admin"`
	RewardDenom string `json:"reward_denom"`
	StableDenom string `json:"stable_denom"`
	SeedPoolId  uint64 `json:"seed_pool_id"`
	SurplusBps  uint32 `json:"surplus_bps"`
	Gamma       uint32 `json:"gamma"`
}

func (m *MsgInitCoreConfig) Reset()         { *m = MsgInitCoreConfig{} }
func (m *MsgInitCoreConfig) String() string { return fmt.Sprintf("MsgInitCoreConfig{%s}", m.Admin) }
func (*MsgInitCoreConfig) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgInitCoreConfig) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgInitCoreConfig) Type() string { return TypeMsgInitCoreConfig }

// GetSigners returns the expected signers for MsgInitCoreConfig
func (m *MsgInitCoreConfig) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// ValidateBasic performs basic validation of MsgInitCoreConfig
func (m *MsgInitCoreConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}
	if err := sdk.ValidateDenom(m.RewardDenom); err != nil {
		return ErrInvalidAsset.Wrapf("reward_denom: %v", err)
	}
	if err := sdk.ValidateDenom(m.StableDenom); err != nil {
		return ErrInvalidAsset.Wrapf("stable_denom: %v", err)
	}
	if m.RewardDenom == m.StableDenom {
		return ErrInvalidAsset.Wrap("reward and stable denoms must be different")
	}
	if m.SeedPoolId == 0 {
		return ErrParamOutOfRange.Wrap("seed pool id cannot be zero")
	}
	if m.SurplusBps >= WeightScale {
		return ErrParamOutOfRange.Wrapf("surplus_bps must be below %d: %d", WeightScale, m.SurplusBps)
	}
	if m.Gamma == 0 {
		return ErrParamOutOfRange.Wrap("gamma must be positive")
	}
	return nil
}

// MsgCreateCampaign opens a new campaign on a pool, funded by the
// sponsor's fee in the stable asset.
type MsgCreateCampaign struct {
	Creator         string   `json:"creator"`
	FeeAmount       math.Int `json:"fee_amount"`
	PoolId          uint64   `json:"pool_id"`
	UnlockDuration  uint32   `json:"unlock_duration"`
	TargetLiquidity math.Int `json:"target_liquidity"`
	BonusPool       math.Int `json:"bonus_pool"`
}

func (m *MsgCreateCampaign) Reset()         { *m = MsgCreateCampaign{} }
func (m *MsgCreateCampaign) String() string { return fmt.Sprintf("MsgCreateCampaign{pool %d}", m.PoolId) }
func (*MsgCreateCampaign) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgCreateCampaign) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgCreateCampaign) Type() string { return TypeMsgCreateCampaign }

// GetSigners returns the expected signers for MsgCreateCampaign
func (m *MsgCreateCampaign) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(m.Creator)
	return []sdk.AccAddress{creator}
}

// ValidateBasic performs basic validation of MsgCreateCampaign
func (m *MsgCreateCampaign) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("invalid creator address: %v", err)
	}
	if m.FeeAmount.IsNil() || !m.FeeAmount.IsPositive() {
		return ErrInvalidAmount.Wrap("fee amount must be positive")
	}
	if m.PoolId == 0 {
		return ErrParamOutOfRange.Wrap("pool id cannot be zero")
	}
	if m.UnlockDuration == 0 {
		return ErrParamOutOfRange.Wrap("unlock duration must be positive")
	}
	if m.TargetLiquidity.IsNil() || !m.TargetLiquidity.IsPositive() {
		return ErrInvalidAmount.Wrap("target liquidity must be positive")
	}
	if m.BonusPool.IsNil() || m.BonusPool.IsNegative() {
		return ErrInvalidAmount.Wrap("bonus pool cannot be negative")
	}
	return nil
}

// MsgJoinCampaign stakes a stable-asset amount into a campaign's pool.
type MsgJoinCampaign struct {
	Depositor    string   `json:"depositor"`
	CampaignId   uint32   `json:"campaign_id"`
	StableAmount math.Int `json:"stable_amount"`
}

func (m *MsgJoinCampaign) Reset()         { *m = MsgJoinCampaign{} }
func (m *MsgJoinCampaign) String() string { return fmt.Sprintf("MsgJoinCampaign{%d}", m.CampaignId) }
func (*MsgJoinCampaign) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgJoinCampaign) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgJoinCampaign) Type() string { return TypeMsgJoinCampaign }

// GetSigners returns the expected signers for MsgJoinCampaign
func (m *MsgJoinCampaign) GetSigners() []sdk.AccAddress {
	depositor, _ := sdk.AccAddressFromBech32(m.Depositor)
	return []sdk.AccAddress{depositor}
}

// ValidateBasic performs basic validation of MsgJoinCampaign
func (m *MsgJoinCampaign) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return ErrInvalidAddress.Wrapf("invalid depositor address: %v", err)
	}
	if m.CampaignId == 0 {
		return ErrParamOutOfRange.Wrap("campaign id cannot be zero")
	}
	if m.StableAmount.IsNil() || !m.StableAmount.IsPositive() {
		return ErrInvalidAmount.Wrap("stable amount must be positive")
	}
	return nil
}

// MsgCompound reinvests accrued trading fees into a campaign's reward
// pool. Permissionless.
type MsgCompound struct {
	Caller     string `json:"caller"`
	CampaignId uint32 `json:"campaign_id"`
}

func (m *MsgCompound) Reset()         { *m = MsgCompound{} }
func (m *MsgCompound) String() string { return fmt.Sprintf("MsgCompound{%d}", m.CampaignId) }
func (*MsgCompound) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgCompound) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgCompound) Type() string { return TypeMsgCompound }

// GetSigners returns the expected signers for MsgCompound
func (m *MsgCompound) GetSigners() []sdk.AccAddress {
	caller, _ := sdk.AccAddressFromBech32(m.Caller)
	return []sdk.AccAddress{caller}
}

// ValidateBasic performs basic validation of MsgCompound
func (m *MsgCompound) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Caller); err != nil {
		return ErrInvalidAddress.Wrapf("invalid caller address: %v", err)
	}
	if m.CampaignId == 0 {
		return ErrParamOutOfRange.Wrap("campaign id cannot be zero")
	}
	return nil
}

// MsgClaim pays out a depositor's reward share and returns their LP units.
type MsgClaim struct {
	Depositor  string `json:"depositor"`
	CampaignId uint32 `json:"campaign_id"`
}

func (m *MsgClaim) Reset()         { *m = MsgClaim{} }
func (m *MsgClaim) String() string { return fmt.Sprintf("MsgClaim{%d}", m.CampaignId) }
func (*MsgClaim) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgClaim) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgClaim) Type() string { return TypeMsgClaim }

// GetSigners returns the expected signers for MsgClaim
func (m *MsgClaim) GetSigners() []sdk.AccAddress {
	depositor, _ := sdk.AccAddressFromBech32(m.Depositor)
	return []sdk.AccAddress{depositor}
}

// ValidateBasic performs basic validation of MsgClaim
func (m *MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return ErrInvalidAddress.Wrapf("invalid depositor address: %v", err)
	}
	if m.CampaignId == 0 {
		return ErrParamOutOfRange.Wrap("campaign id cannot be zero")
	}
	return nil
}

// MsgSetSurplusBps updates the zap over-swap parameter. Admin only.
type MsgSetSurplusBps struct {
	Admin      string `json:"admin"`
	SurplusBps uint32 `json:"surplus_bps"`
}

func (m *MsgSetSurplusBps) Reset()         { *m = MsgSetSurplusBps{} }
func (m *MsgSetSurplusBps) String() string { return fmt.Sprintf("MsgSetSurplusBps{%d}", m.SurplusBps) }
func (*MsgSetSurplusBps) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgSetSurplusBps) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgSetSurplusBps) Type() string { return TypeMsgSetSurplusBps }

// GetSigners returns the expected signers for MsgSetSurplusBps
func (m *MsgSetSurplusBps) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// ValidateBasic performs basic validation of MsgSetSurplusBps
func (m *MsgSetSurplusBps) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}
	if m.SurplusBps >= WeightScale {
		return ErrParamOutOfRange.Wrapf("surplus_bps must be below %d: %d", WeightScale, m.SurplusBps)
	}
	return nil
}

// MsgSetGamma updates the rank decay exponent. Admin only.
type MsgSetGamma struct {
	Admin string `json:"admin"`
	Gamma uint32 `json:"gamma"`
}

func (m *MsgSetGamma) Reset()         { *m = MsgSetGamma{} }
func (m *MsgSetGamma) String() string { return fmt.Sprintf("MsgSetGamma{%d}", m.Gamma) }
func (*MsgSetGamma) ProtoMessage()    {}

// Route implements the sdk.Msg interface
func (m MsgSetGamma) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgSetGamma) Type() string { return TypeMsgSetGamma }

// GetSigners returns the expected signers for MsgSetGamma
func (m *MsgSetGamma) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(m.Admin)
	return []sdk.AccAddress{admin}
}

// ValidateBasic performs basic validation of MsgSetGamma
func (m *MsgSetGamma) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Admin); err != nil {
		return ErrInvalidAddress.Wrapf("invalid admin address: %v", err)
	}
	if m.Gamma == 0 {
		return ErrParamOutOfRange.Wrap("gamma must be positive")
	}
	return nil
}

// Response types

// MsgInitCoreConfigResponse defines the response for InitCoreConfig
type MsgInitCoreConfigResponse struct {
	TreasurySwept math.Int `json:"treasury_swept"`
}

// MsgCreateCampaignResponse defines the response for CreateCampaign
type MsgCreateCampaignResponse struct {
	CampaignId uint32   `json:"campaign_id"`
	RewardPool math.Int `json:"reward_pool"`
	EndHeight  uint32   `json:"end_height"`
}

// MsgJoinCampaignResponse defines the response for JoinCampaign
type MsgJoinCampaignResponse struct {
	Liquidity math.Int `json:"liquidity"`
	Weight    math.Int `json:"weight"`
	Rank      uint64   `json:"rank"`
}

// MsgCompoundResponse defines the response for Compound
type MsgCompoundResponse struct {
	Harvested math.Int `json:"harvested"`
}

// MsgClaimResponse defines the response for Claim
type MsgClaimResponse struct {
	Reward    math.Int `json:"reward"`
	Bonus     math.Int `json:"bonus"`
	Liquidity math.Int `json:"liquidity"`
}

// MsgSetSurplusBpsResponse defines the response for SetSurplusBps
type MsgSetSurplusBpsResponse struct{}

// MsgSetGammaResponse defines the response for SetGamma
type MsgSetGammaResponse struct{}
