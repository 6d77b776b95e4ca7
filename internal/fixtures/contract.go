package fixtures

import "github.com/rickgao/etherex-fixtures/internal/model"

func u256(name string) model.Param { return model.Param{Name: name, Type: model.TypeUint256} }
func h256(name string) model.Param { return model.Param{Name: name, Type: model.TypeHash256} }

func params(ps ...model.Param) []model.Param {
	if ps == nil {
		return []model.Param{}
	}
	return ps
}

var result = params(u256("result"))

// contractDesc is the exchange contract's function table.
var contractDesc = []model.Function{
	{
		Name:    "price",
		Inputs:  params(u256("id")),
		Outputs: params(u256("price")),
	},
	{
		Name:    "buy",
		Inputs:  params(u256("amount"), u256("price"), u256("market_id")),
		Outputs: result,
	},
	{
		Name:    "sell",
		Inputs:  params(u256("amount"), u256("price"), u256("market_id")),
		Outputs: result,
	},
	{
		Name:    "trade",
		Inputs:  params(u256("trade_ids"), u256("size")),
		Outputs: result,
	},
	{
		// serpentbug pads the first argument slot
		Name:    "deposit",
		Inputs:  params(u256("serpentbug"), h256("address"), u256("amount"), u256("market_id")),
		Outputs: result,
	},
	{
		Name:    "withdraw",
		Inputs:  params(h256("address"), u256("amount"), u256("market_id")),
		Outputs: result,
	},
	{
		Name:    "cancel",
		Inputs:  params(u256("id")),
		Outputs: result,
	},
	{
		Name:    "add_market",
		Inputs:  params(u256("name"), h256("contract"), u256("decimals"), u256("precision"), u256("minimum")),
		Outputs: result,
	},
	{
		Name:    "change_ownership",
		Inputs:  params(h256("new_owner")),
		Outputs: result,
	},
	{
		Name:   "get_market",
		Inputs: params(u256("id")),
		Outputs: params(
			u256("id"),
			h256("name"),
			h256("contract"),
			u256("decimals"),
			u256("precision"),
			u256("minimum"),
			u256("last_price"),
			h256("owner"),
			u256("block"),
			u256("total_trades"),
		),
	},
	{
		Name:    "get_trade_ids",
		Inputs:  params(u256("market_id")),
		Outputs: params(),
	},
	{
		Name:   "get_trade",
		Inputs: params(u256("id")),
		Outputs: params(
			h256("id"),
			u256("type"),
			u256("market"),
			u256("amount"),
			u256("price"),
			h256("owner"),
			u256("block"),
		),
	},
	{
		Name:    "get_sub_balance",
		Inputs:  params(h256("address"), u256("market_id")),
		Outputs: params(u256("balance")),
	},
}
