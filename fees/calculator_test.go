// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHopCostExact(t *testing.T) {
	tests := []struct {
		name string
		hop  HopGas
		want *big.Int
	}{
		{
			name: "zero hop",
			hop:  HopGas{},
			want: big.NewInt(0),
		},
		{
			name: "submission only",
			hop:  HopGas{MaxSubmissionCost: big.NewInt(1)},
			want: big.NewInt(1),
		},
		{
			name: "execution only",
			hop:  HopGas{GasLimit: 100000, GasPriceBid: big.NewInt(2_000_000_000)},
			want: big.NewInt(200_000_000_000_000),
		},
		{
			name: "submission plus execution",
			hop: HopGas{
				GasLimit:          21000,
				GasPriceBid:       big.NewInt(3),
				MaxSubmissionCost: big.NewInt(7),
			},
			want: big.NewInt(21000*3 + 7),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HopCost(tc.hop)
			require.NoError(t, err)
			require.Zero(t, tc.want.Cmp(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestHopCostOverflow(t *testing.T) {
	maxU256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

	// gasLimit * gasPriceBid overflows
	_, err := HopCost(HopGas{GasLimit: 2, GasPriceBid: maxU256})
	require.ErrorIs(t, err, ErrCostOverflow)

	// submission + execution overflows
	_, err = HopCost(HopGas{
		GasLimit:          1,
		GasPriceBid:       maxU256,
		MaxSubmissionCost: big.NewInt(1),
	})
	require.ErrorIs(t, err, ErrCostOverflow)

	// a parameter that does not even fit uint256 is rejected
	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = HopCost(HopGas{MaxSubmissionCost: tooBig})
	require.ErrorIs(t, err, ErrCostOverflow)

	// negative inputs are a hard error too
	_, err = HopCost(HopGas{GasPriceBid: big.NewInt(-1), GasLimit: 1})
	require.ErrorIs(t, err, ErrCostOverflow)
}

func TestCalculateCostsPerHopIndependence(t *testing.T) {
	p := GasParams{
		RootToMidTokenBridge:    HopGas{GasLimit: 1, GasPriceBid: big.NewInt(10), MaxSubmissionCost: big.NewInt(1)},
		RootToMidFeeTokenBridge: HopGas{GasLimit: 2, GasPriceBid: big.NewInt(10), MaxSubmissionCost: big.NewInt(2)},
		MidInvoke:               HopGas{GasLimit: 3, GasPriceBid: big.NewInt(10), MaxSubmissionCost: big.NewInt(3)},
		MidToFinalTokenBridge:   HopGas{GasLimit: 4, GasPriceBid: big.NewInt(10), MaxSubmissionCost: big.NewInt(4)},
	}

	costs, err := CalculateCosts(p)
	require.NoError(t, err)
	require.Equal(t, int64(11), costs.RootToMidTokenBridge.Int64())
	require.Equal(t, int64(22), costs.RootToMidFeeTokenBridge.Int64())
	require.Equal(t, int64(33), costs.MidInvoke.Int64())
	require.Equal(t, int64(44), costs.MidToFinalTokenBridge.Int64())
}

func TestCalculateCostsPropagatesOverflow(t *testing.T) {
	maxU256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	p := GasParams{
		MidToFinalTokenBridge: HopGas{GasLimit: 2, GasPriceBid: maxU256},
	}
	_, err := CalculateCosts(p)
	require.ErrorIs(t, err, ErrCostOverflow)
}
