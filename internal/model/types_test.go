package model

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
)

func TestUnitDecimal(t *testing.T) {
	tests := []struct {
		name    string
		unit    Unit
		want    decimal.Decimal
		wantErr bool
	}{
		{"ether", "1000000000000000000", decimal.NewFromBigInt(big.NewInt(params.Ether), 0), false},
		{"beyond int64", "10000000000000000000", decimal.RequireFromString("10000000000000000000"), false},
		{"small", "100000000", decimal.NewFromInt(100000000), false},
		{"malformed", "0xff", decimal.Decimal{}, true},
		{"empty", "", decimal.Decimal{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.unit.Decimal()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Decimal() = %s, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decimal() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Decimal() = %s, want %s", got, tt.want)
			}
			if tt.unit.String() != string(tt.unit) {
				t.Errorf("String() = %q, want %q", tt.unit.String(), string(tt.unit))
			}
		})
	}
}

func TestAddresses(t *testing.T) {
	a := Addresses{
		Nameregs: []string{
			"0x72ba7d8e73fe8eb666ea66babc8116a41bfb10e2",
			"0x3f2af2a311132b3730328a7b30db1025cd8579c3",
		},
		Etherex: "0xf298931b974dfb01b13e44eae9e4428afa3ba7f4",
	}

	t.Run("EtherexAddress", func(t *testing.T) {
		want := common.HexToAddress("0xF298931B974DFB01B13E44EAE9E4428AFA3BA7F4")
		if got := a.EtherexAddress(); got != want {
			t.Errorf("EtherexAddress() = %s, want %s", got.Hex(), want.Hex())
		}
	})

	t.Run("NameregAddresses", func(t *testing.T) {
		got := a.NameregAddresses()
		if len(got) != 2 {
			t.Fatalf("len(NameregAddresses()) = %d, want 2", len(got))
		}
		for i, s := range a.Nameregs {
			if got[i] != common.HexToAddress(s) {
				t.Errorf("NameregAddresses()[%d] = %s, want %s", i, got[i].Hex(), s)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		var z Addresses
		if got := z.NameregAddresses(); len(got) != 0 {
			t.Errorf("len(NameregAddresses()) = %d, want 0", len(got))
		}
		if got := z.EtherexAddress(); got != (common.Address{}) {
			t.Errorf("EtherexAddress() = %s, want zero address", got.Hex())
		}
	})
}

func TestTableClone(t *testing.T) {
	orig := Table{
		Ether:     "1000000000000000000",
		Addresses: Addresses{Nameregs: []string{"0x01", "0x02"}, Etherex: "0x03"},
		ContractDesc: []Function{
			{
				Name:    "cancel",
				Inputs:  []Param{{Name: "id", Type: TypeUint256}},
				Outputs: []Param{{Name: "result", Type: TypeUint256}},
			},
			{
				Name:    "get_trade_ids",
				Inputs:  []Param{{Name: "market_id", Type: TypeUint256}},
				Outputs: []Param{},
			},
		},
	}

	c := orig.Clone()
	c.Addresses.Nameregs[0] = "0xff"
	c.ContractDesc[0].Name = "mutated"
	c.ContractDesc[0].Inputs[0].Type = TypeHash256

	if orig.Addresses.Nameregs[0] != "0x01" {
		t.Errorf("Nameregs[0] = %q after clone mutation, want %q", orig.Addresses.Nameregs[0], "0x01")
	}
	if orig.ContractDesc[0].Name != "cancel" {
		t.Errorf("ContractDesc[0].Name = %q after clone mutation, want %q", orig.ContractDesc[0].Name, "cancel")
	}
	if orig.ContractDesc[0].Inputs[0].Type != TypeUint256 {
		t.Errorf("Inputs[0].Type = %q after clone mutation, want %q", orig.ContractDesc[0].Inputs[0].Type, TypeUint256)
	}
	if c.ContractDesc[1].Outputs == nil {
		t.Error("cloned empty Outputs = nil, want empty slice")
	}
}
