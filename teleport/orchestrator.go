// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package teleport

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/luxfi/geth/common"
	log "github.com/luxfi/log"

	"github.com/luxfi/teleporter/fees"
	"github.com/luxfi/teleporter/gateway"
	"github.com/luxfi/teleporter/relay"
)

// Teleporter is the entry point for three-domain teleports. It holds no token
// or native balance between calls: everything pulled within a call is fully
// forwarded before the call returns.
type Teleporter struct {
	// Address is the escrow identity tokens are pulled into before bridging.
	Address common.Address

	predictor gateway.RelayPredictor
	inbox     gateway.MessageInbox
	registry  *gateway.Registry
	approvals *ApprovalCache
	recorder  Recorder
	log       log.Logger

	paused bool
	nonce  uint64
	mu     sync.Mutex
}

// NewTeleporter creates an orchestrator. A nil logger falls back to a test
// logger at info level.
func NewTeleporter(
	address common.Address,
	predictor gateway.RelayPredictor,
	inbox gateway.MessageInbox,
	registry *gateway.Registry,
	logger log.Logger,
) *Teleporter {
	if logger == nil {
		logger = log.NewTestLogger(log.InfoLevel)
	}
	return &Teleporter{
		Address:   address,
		predictor: predictor,
		inbox:     inbox,
		registry:  registry,
		approvals: NewApprovalCache(),
		log:       logger,
	}
}

// SetRecorder attaches a completion-record sink.
func (t *Teleporter) SetRecorder(r Recorder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recorder = r
}

// Pause rejects all subsequent teleports until Unpause.
func (t *Teleporter) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paused = true
}

// Unpause resumes teleports.
func (t *Teleporter) Unpause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paused = false
}

// DetermineTypeAndFees quotes a request without committing anything: the
// exact native and fee-token amounts required, the transfer mode and the cost
// breakdown. Calling Teleport with value equal to the returned native amount
// never fails the value check.
func (t *Teleporter) DetermineTypeAndFees(req *TeleportRequest) (fees.Requirements, error) {
	if err := req.Validate(); err != nil {
		return fees.Requirements{}, err
	}
	return fees.Resolve(req.Token, req.FeeToken, req.Amount, req.Gas)
}

// BuildRelayParams constructs the payload the relay factory will be invoked
// with, for off-chain prediction of downstream behavior.
func (t *Teleporter) BuildRelayParams(req *TeleportRequest, owner common.Address) (relay.Params, error) {
	if err := req.Validate(); err != nil {
		return relay.Params{}, err
	}
	router, err := t.registry.Router(req.RootRouter)
	if err != nil {
		return relay.Params{}, err
	}
	mode := fees.Classify(req.Token, req.FeeToken)
	return relay.BuildParams(router, owner, mode,
		req.Token, req.FeeToken, req.MidRouter, req.To, req.Amount,
		req.Gas.MidToFinalTokenBridge)
}

// QuoteFactorySubmissionFee quotes the inbox's current submission fee for the
// factory invocation payload of req, at the given base fee.
func (t *Teleporter) QuoteFactorySubmissionFee(req *TeleportRequest, baseFee *big.Int) (*big.Int, error) {
	params, err := t.BuildRelayParams(req, relay.ApplyAlias(t.Address))
	if err != nil {
		return nil, err
	}
	return t.inbox.SubmissionFee(len(params.Encode()), baseFee), nil
}

// Teleport executes one teleport for sender, funded with exactly value native
// currency. It pulls the principal (and, in distinct-fee-token mode, the fee
// token) from sender, bridges both to the counterfactual relay address, and
// submits the relay-factory invocation carrying the entire remaining escrow.
//
// value must equal the quoted native requirement exactly; overpayment is
// rejected, not refunded. All validation happens before any custody transfer.
func (t *Teleporter) Teleport(sender common.Address, req *TeleportRequest, value *big.Int) (*Event, error) {
	t.mu.Lock()
	if t.paused {
		t.mu.Unlock()
		return nil, ErrPaused
	}
	t.nonce++
	nonce := t.nonce
	recorder := t.recorder
	t.mu.Unlock()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	router, err := t.registry.Router(req.RootRouter)
	if err != nil {
		return nil, err
	}

	reqs, err := fees.Resolve(req.Token, req.FeeToken, req.Amount, req.Gas)
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = big.NewInt(0)
	}
	if value.Cmp(reqs.Native) != 0 {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrIncorrectValue, reqs.Native, value)
	}

	owner := relay.ApplyAlias(sender)
	relayAddr := t.predictor.Predict(owner)

	// Resolve checks this already; kept as a guard in front of any custody
	// transfer.
	if reqs.Mode == fees.ModeFeeTokenIsPrincipal && req.Amount.Cmp(reqs.FeeToken) < 0 {
		return nil, fmt.Errorf("%w: required %s, supplied %s",
			fees.ErrInsufficientFeeToken, reqs.FeeToken, req.Amount)
	}

	// remaining is the orchestrator's native escrow, threaded explicitly
	// through the hop sequence. It must be fully committed by the time the
	// factory invocation is submitted.
	remaining := new(big.Int).Set(value)

	if reqs.Mode == fees.ModeDistinctFeeToken {
		feeTok, err := t.registry.Token(req.FeeToken)
		if err != nil {
			return nil, err
		}
		if err := feeTok.TransferFrom(sender, t.Address, reqs.FeeToken); err != nil {
			return nil, err
		}
		if err := t.bridgeToken(router, feeTok, req.FeeToken, relayAddr, reqs.FeeToken,
			req.Gas.RootToMidFeeTokenBridge, reqs.Costs.RootToMidFeeTokenBridge); err != nil {
			return nil, err
		}
		remaining.Sub(remaining, reqs.Costs.RootToMidFeeTokenBridge)
	}

	tok, err := t.registry.Token(req.Token)
	if err != nil {
		return nil, err
	}
	if err := tok.TransferFrom(sender, t.Address, req.Amount); err != nil {
		return nil, err
	}
	if err := t.bridgeToken(router, tok, req.Token, relayAddr, req.Amount,
		req.Gas.RootToMidTokenBridge, reqs.Costs.RootToMidTokenBridge); err != nil {
		return nil, err
	}
	remaining.Sub(remaining, reqs.Costs.RootToMidTokenBridge)

	params, err := relay.BuildParams(router, owner, reqs.Mode,
		req.Token, req.FeeToken, req.MidRouter, req.To, req.Amount,
		req.Gas.MidToFinalTokenBridge)
	if err != nil {
		return nil, err
	}
	payload := params.Encode()

	// The deposit is whatever escrow is left, not a recomputed figure, so any
	// rounding slack rides into the last hop. The declared call value is that
	// balance minus the invocation cost itself.
	callValue := new(big.Int).Sub(remaining, reqs.Costs.MidInvoke)
	seq, err := t.inbox.SubmitMessage(gateway.RetryableMessage{
		Target:            t.predictor.Factory(),
		Deposit:           remaining,
		CallValue:         callValue,
		MaxSubmissionCost: hopSubmissionCost(req.Gas.MidInvoke),
		GasLimit:          req.Gas.MidInvoke.GasLimit,
		GasPriceBid:       hopGasPrice(req.Gas.MidInvoke),
		ExcessFeeRefund:   relayAddr,
		CallValueRefund:   relayAddr,
		Data:              payload,
	})
	if err != nil {
		return nil, err
	}

	ev := newEvent(nonce, sender, req)
	t.log.Info("teleport submitted",
		"id", common.Hash(ev.ID),
		"sender", sender,
		"token", req.Token,
		"feeToken", req.FeeToken,
		"mode", reqs.Mode,
		"relay", relayAddr,
		"amount", req.Amount,
		"seq", seq,
	)
	if recorder != nil {
		if err := recorder.Record(ev); err != nil {
			return nil, err
		}
	}
	return ev, nil
}

// bridgeToken grants the token's escrow gateway an allowance once, then
// bridges amount to the relay address, refunding unused budget there too.
func (t *Teleporter) bridgeToken(
	router gateway.BridgeRouter,
	tok gateway.Token,
	token common.Address,
	relayAddr common.Address,
	amount *big.Int,
	hop fees.HopGas,
	cost *big.Int,
) error {
	gw, err := router.ResolveGateway(token)
	if err != nil {
		return err
	}
	if err := t.approvals.Ensure(tok, t.Address, token, gw); err != nil {
		return err
	}
	return router.BridgeTokenWithRefund(token, relayAddr, relayAddr, amount, hop, cost)
}

func hopSubmissionCost(h fees.HopGas) *big.Int {
	if h.MaxSubmissionCost == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(h.MaxSubmissionCost)
}

func hopGasPrice(h fees.HopGas) *big.Int {
	if h.GasPriceBid == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(h.GasPriceBid)
}
