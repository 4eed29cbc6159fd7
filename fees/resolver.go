// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"fmt"
	"math/big"

	"github.com/luxfi/geth/common"
)

// Resolve computes the exact native-currency and fee-token amounts a caller
// must supply to teleport amount of token with the given gas budgets. It is
// pure: callable for quoting without committing anything.
//
// Per mode:
//   - standard: native pays all three hops, no fee token needed.
//   - fee-token-is-principal: the moved amount must itself cover the
//     mid->final hop, so that hop is charged against the amount, not native.
//   - distinct-fee-token: native additionally pays the fee-token bridge hop;
//     the fee-token requirement is the principal's final hop only, because
//     the fee token is consumed as destination gas, never bridged onward.
func Resolve(token, feeToken common.Address, amount *big.Int, p GasParams) (Requirements, error) {
	if amount == nil || amount.Sign() <= 0 {
		return Requirements{}, ErrZeroAmount
	}

	costs, err := CalculateCosts(p)
	if err != nil {
		return Requirements{}, err
	}

	req := Requirements{
		Mode:  Classify(token, feeToken),
		Costs: costs,
	}

	switch req.Mode {
	case ModeStandard:
		req.Native = sum(costs.RootToMidTokenBridge, costs.MidInvoke, costs.MidToFinalTokenBridge)
		req.FeeToken = big.NewInt(0)

	case ModeFeeTokenIsPrincipal:
		req.Native = sum(costs.RootToMidTokenBridge, costs.MidInvoke)
		req.FeeToken = new(big.Int).Set(costs.MidToFinalTokenBridge)
		if amount.Cmp(req.FeeToken) < 0 {
			return Requirements{}, fmt.Errorf("%w: required %s, supplied %s",
				ErrInsufficientFeeToken, req.FeeToken, amount)
		}

	case ModeDistinctFeeToken:
		req.Native = sum(costs.RootToMidTokenBridge, costs.RootToMidFeeTokenBridge, costs.MidInvoke)
		req.FeeToken = new(big.Int).Set(costs.MidToFinalTokenBridge)
	}

	return req, nil
}

func sum(vs ...*big.Int) *big.Int {
	total := big.NewInt(0)
	for _, v := range vs {
		total.Add(total, v)
	}
	return total
}
