// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"math/big"

	"github.com/holiman/uint256"
)

// HopCost computes the cost of a single hop:
// MaxSubmissionCost + GasLimit*GasPriceBid. The product and sum run in
// uint256; any overflow is a hard error, never a silent wrap. Nil big.Int
// fields read as zero.
func HopCost(h HopGas) (*big.Int, error) {
	price, err := toUint256(h.GasPriceBid)
	if err != nil {
		return nil, err
	}
	submission, err := toUint256(h.MaxSubmissionCost)
	if err != nil {
		return nil, err
	}

	execution, overflow := new(uint256.Int).MulOverflow(price, uint256.NewInt(h.GasLimit))
	if overflow {
		return nil, ErrCostOverflow
	}
	total, overflow := new(uint256.Int).AddOverflow(submission, execution)
	if overflow {
		return nil, ErrCostOverflow
	}
	return total.ToBig(), nil
}

// CalculateCosts derives the per-hop cost breakdown for a request. Each hop
// is priced independently; there is no shared submission budget.
func CalculateCosts(p GasParams) (GasCostBreakdown, error) {
	var (
		costs GasCostBreakdown
		err   error
	)
	if costs.RootToMidTokenBridge, err = HopCost(p.RootToMidTokenBridge); err != nil {
		return GasCostBreakdown{}, err
	}
	if costs.RootToMidFeeTokenBridge, err = HopCost(p.RootToMidFeeTokenBridge); err != nil {
		return GasCostBreakdown{}, err
	}
	if costs.MidInvoke, err = HopCost(p.MidInvoke); err != nil {
		return GasCostBreakdown{}, err
	}
	if costs.MidToFinalTokenBridge, err = HopCost(p.MidToFinalTokenBridge); err != nil {
		return GasCostBreakdown{}, err
	}
	return costs, nil
}

func toUint256(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return uint256.NewInt(0), nil
	}
	u, overflow := uint256.FromBig(v)
	if overflow || v.Sign() < 0 {
		return nil, ErrCostOverflow
	}
	return u, nil
}
