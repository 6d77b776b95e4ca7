package model

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Parameter type vocabulary used by the exchange contract description.
const (
	TypeUint256 = "uint256"
	TypeHash256 = "hash256"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

// Unit is a large decimal magnitude stored as text.
type Unit string

// Decimal parses the unit as an arbitrary-precision decimal.
func (u Unit) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(u))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse unit %q: %w", string(u), err)
	}
	return d, nil
}

// String returns the literal text.
func (u Unit) String() string {
	return string(u)
}

// Addresses groups the chain addresses the front end talks to.
type Addresses struct {
	Nameregs []string `json:"nameregs" yaml:"nameregs"` // Name registries, in lookup order
	Etherex  string   `json:"etherex" yaml:"etherex"`   // Exchange contract
}

// EtherexAddress returns the exchange contract address.
func (a Addresses) EtherexAddress() common.Address {
	return common.HexToAddress(a.Etherex)
}

// NameregAddresses returns the name registry addresses in order.
func (a Addresses) NameregAddresses() []common.Address {
	out := make([]common.Address, len(a.Nameregs))
	for i, s := range a.Nameregs {
		out[i] = common.HexToAddress(s)
	}
	return out
}

// -----------------------------------------------------------------------------
// Contract Description
// -----------------------------------------------------------------------------

// Param describes one positional input or output of a contract function.
type Param struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"` // TypeUint256 or TypeHash256
}

// Function describes a callable contract function.
type Function struct {
	Name    string  `json:"name" yaml:"name"`
	Inputs  []Param `json:"inputs" yaml:"inputs"`
	Outputs []Param `json:"outputs" yaml:"outputs"` // May be empty, never nil
}

// Clone returns a copy that shares no backing arrays with f.
func (f Function) Clone() Function {
	return Function{
		Name:    f.Name,
		Inputs:  cloneParams(f.Inputs),
		Outputs: cloneParams(f.Outputs),
	}
}

func cloneParams(ps []Param) []Param {
	out := make([]Param, len(ps))
	copy(out, ps)
	return out
}

// -----------------------------------------------------------------------------
// Table
// -----------------------------------------------------------------------------

// Table is the full fixture set consumed by the front end.
type Table struct {
	Ether        Unit       `json:"ether" yaml:"ether"`
	TenEther     Unit       `json:"tenEther" yaml:"tenEther"`
	Precision    Unit       `json:"precision" yaml:"precision"`
	Addresses    Addresses  `json:"addresses" yaml:"addresses"`
	TradeFields  int        `json:"trade_fields" yaml:"trade_fields"`   // Width of a trade record
	MarketFields int        `json:"market_fields" yaml:"market_fields"` // Width of a market record
	ContractDesc []Function `json:"contract_desc" yaml:"contract_desc"`
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	out := t
	out.Addresses.Nameregs = append([]string(nil), t.Addresses.Nameregs...)
	out.ContractDesc = make([]Function, len(t.ContractDesc))
	for i, f := range t.ContractDesc {
		out.ContractDesc[i] = f.Clone()
	}
	return out
}
