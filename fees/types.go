// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fees computes the exact native-currency and fee-token amounts a
// three-domain teleport must supply up front. All arithmetic is exact wei
// math; gas cost products are overflow-checked.
package fees

import (
	"errors"
	"math/big"

	"github.com/luxfi/geth/common"
)

// NativeFeeToken is the sentinel fee-token identity meaning the final domain
// pays gas in the root chain's native currency.
var NativeFeeToken = common.Address{}

// Errors
var (
	ErrCostOverflow         = errors.New("gas cost computation overflows uint256")
	ErrInsufficientFeeToken = errors.New("amount cannot cover destination gas")
	ErrZeroAmount           = errors.New("amount must be positive")
)

// TransferMode classifies a teleport by which assets are native vs custom on
// the final domain. The set is closed; every consumer switches exhaustively
// so a new mode forces a compile-time audit.
type TransferMode uint8

const (
	// ModeStandard: the final domain uses its own native currency for gas.
	ModeStandard TransferMode = iota
	// ModeFeeTokenIsPrincipal: the moved token is itself the final domain's
	// custom fee token and must cover that domain's gas out of the moved
	// amount.
	ModeFeeTokenIsPrincipal
	// ModeDistinctFeeToken: the final domain uses a custom fee token
	// different from the principal; both must be bridged.
	ModeDistinctFeeToken
)

func (m TransferMode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeFeeTokenIsPrincipal:
		return "fee-token-is-principal"
	case ModeDistinctFeeToken:
		return "distinct-fee-token"
	default:
		return "unknown"
	}
}

// HopGas is the gas budget for one cross-domain hop.
type HopGas struct {
	GasLimit          uint64
	GasPriceBid       *big.Int
	MaxSubmissionCost *big.Int
}

// GasParams bundles the per-hop gas budgets for the up to four messages a
// teleport issues: root->mid principal bridge, root->mid fee-token bridge,
// mid-domain relay invocation, mid->final bridge.
type GasParams struct {
	RootToMidTokenBridge    HopGas
	RootToMidFeeTokenBridge HopGas
	MidInvoke               HopGas
	MidToFinalTokenBridge   HopGas
}

// GasCostBreakdown is the derived cost per hop, each equal to
// MaxSubmissionCost + GasLimit*GasPriceBid. Recomputed per request, never
// stored.
type GasCostBreakdown struct {
	RootToMidTokenBridge    *big.Int
	RootToMidFeeTokenBridge *big.Int
	MidInvoke               *big.Int
	MidToFinalTokenBridge   *big.Int
}

// Requirements is the resolver output: the exact amounts the caller must
// supply, the classified mode, and the cost breakdown the amounts were
// derived from.
type Requirements struct {
	Native   *big.Int
	FeeToken *big.Int
	Mode     TransferMode
	Costs    GasCostBreakdown
}
