package fixtures

import "github.com/rickgao/etherex-fixtures/internal/model"

// Denomination units.
const (
	Ether     model.Unit = "1000000000000000000"
	TenEther  model.Unit = "10000000000000000000"
	Precision model.Unit = "100000000"
)

// Record widths returned by the exchange contract.
const (
	TradeFields  = 7
	MarketFields = 9
)

var table = model.Table{
	Ether:     Ether,
	TenEther:  TenEther,
	Precision: Precision,
	Addresses: model.Addresses{
		Nameregs: []string{
			"0x72ba7d8e73fe8eb666ea66babc8116a41bfb10e2",
			"0x3f2af2a311132b3730328a7b30db1025cd8579c3",
		},
		Etherex: "0xf298931b974dfb01b13e44eae9e4428afa3ba7f4",
	},
	TradeFields:  TradeFields,
	MarketFields: MarketFields,
	ContractDesc: contractDesc,
}

// Get returns the fixture table.
func Get() model.Table {
	return table.Clone()
}

// Lookup returns the descriptor for the named function.
func Lookup(name string) (model.Function, bool) {
	for _, f := range table.ContractDesc {
		if f.Name == name {
			return f.Clone(), true
		}
	}
	return model.Function{}, false
}

// Names returns the descriptor names in declaration order.
func Names() []string {
	names := make([]string, len(table.ContractDesc))
	for i, f := range table.ContractDesc {
		names[i] = f.Name
	}
	return names
}
