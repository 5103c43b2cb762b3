package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// RegisterCodec registers the module's concrete message types on the
// legacy amino codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitCoreConfig{}, "campaign/MsgInitCoreConfig", nil)
	cdc.RegisterConcrete(&MsgCreateCampaign{}, "campaign/MsgCreateCampaign", nil)
	cdc.RegisterConcrete(&MsgJoinCampaign{}, "campaign/MsgJoinCampaign", nil)
	cdc.RegisterConcrete(&MsgCompound{}, "campaign/MsgCompound", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "campaign/MsgClaim", nil)
	cdc.RegisterConcrete(&MsgSetSurplusBps{}, "campaign/MsgSetSurplusBps", nil)
	cdc.RegisterConcrete(&MsgSetGamma{}, "campaign/MsgSetGamma", nil)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
