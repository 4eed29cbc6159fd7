// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gateway declares the external collaborators the teleport core
// drives: token contracts, bridge routers, the cross-domain message inbox and
// the relay-address predictor. The core only ever sees these interfaces; the
// adapters behind them own delivery, refunds and retries.
package gateway

import (
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/teleporter/fees"
)

// Token is the standard fungible-token pull/allowance surface the core
// requires. Tokens with different transfer semantics are unsupported.
type Token interface {
	BalanceOf(owner common.Address) (*big.Int, error)
	Allowance(owner, spender common.Address) (*big.Int, error)
	Approve(owner, spender common.Address, amount *big.Int) error
	TransferFrom(from, to common.Address, amount *big.Int) error
}

// BridgeRouter moves a token from the root domain to the intermediate domain
// and refunds unused fee budget.
type BridgeRouter interface {
	// MapTokenIdentity returns the intermediate-domain identity of a
	// root-domain token without deploying anything.
	MapTokenIdentity(rootToken common.Address) (common.Address, error)

	// ResolveGateway returns the escrow gateway that will pull the token when
	// it is bridged; approvals are granted to this address.
	ResolveGateway(rootToken common.Address) (common.Address, error)

	// BridgeTokenWithRefund escrows amount of token on the root domain and
	// submits the cross-domain transfer to `to`. cost is the exact native
	// budget charged for the hop; any unused portion refunds to refundTo on
	// the intermediate domain.
	BridgeTokenWithRefund(token, refundTo, to common.Address, amount *big.Int, hop fees.HopGas, cost *big.Int) error
}

// RetryableMessage is a value-bearing cross-domain call request. Execution on
// the target domain is best effort; anyone may resubmit it with more gas if
// it fails.
type RetryableMessage struct {
	Target            common.Address
	Deposit           *big.Int // total native value carried by the message
	CallValue         *big.Int // value delivered to Target
	MaxSubmissionCost *big.Int
	GasLimit          uint64
	GasPriceBid       *big.Int
	ExcessFeeRefund   common.Address
	CallValueRefund   common.Address
	Data              []byte
}

// MessageInbox accepts cross-domain call requests for eventual execution on
// the intermediate domain. The core's contract ends at submission: it never
// learns whether the message executed.
type MessageInbox interface {
	// SubmissionFee quotes the fee to have a message of the given payload
	// size accepted, independent of the gas consumed executing it.
	SubmissionFee(dataLen int, baseFee *big.Int) *big.Int

	// SubmitMessage enqueues the message and returns its sequence number.
	SubmitMessage(msg RetryableMessage) (uint64, error)
}

// RelayPredictor computes the counterfactual relay address for an owner and
// exposes the factory the relay-invocation hop targets.
type RelayPredictor interface {
	Predict(owner common.Address) common.Address
	Factory() common.Address
}
