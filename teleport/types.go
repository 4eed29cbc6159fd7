// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package teleport orchestrates three-domain value teleportation: it resolves
// the exact amounts a caller must supply, escrows and bridges the assets to a
// counterfactual relay address on the intermediate domain, and funds the
// relay-factory invocation entirely out of the value left over from the first
// hop.
package teleport

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/luxfi/geth/common"
	"github.com/zeebo/blake3"

	"github.com/luxfi/teleporter/fees"
)

// Errors
var (
	ErrPaused            = errors.New("teleporter is paused")
	ErrIncorrectValue    = errors.New("supplied value does not match required native amount")
	ErrZeroToken         = errors.New("token address cannot be zero")
	ErrZeroRecipient     = errors.New("recipient address cannot be zero")
	ErrZeroRoutingTarget = errors.New("routing target cannot be zero")
	ErrInvalidRecord     = errors.New("malformed teleport record")
)

// TeleportRequest is the immutable input to one teleport operation. Token
// identities are root-domain identities; Amount is in destination-domain
// units. FeeToken equal to the zero address means the final domain pays gas
// in the root chain's native currency.
type TeleportRequest struct {
	Token      common.Address // principal, root-domain identity
	FeeToken   common.Address // final domain's fee token, or zero for native
	RootRouter common.Address // root->intermediate routing target
	MidRouter  common.Address // intermediate->final routing target
	To         common.Address // recipient of the principal on the final domain
	Amount     *big.Int
	Gas        fees.GasParams
}

// Validate checks the request's local invariants. Routing-target liveness is
// checked against the registry at teleport time.
func (r *TeleportRequest) Validate() error {
	if r.Amount == nil || r.Amount.Sign() <= 0 {
		return fees.ErrZeroAmount
	}
	if r.Token == (common.Address{}) {
		return ErrZeroToken
	}
	if r.To == (common.Address{}) {
		return ErrZeroRecipient
	}
	if r.RootRouter == (common.Address{}) || r.MidRouter == (common.Address{}) {
		return ErrZeroRoutingTarget
	}
	return nil
}

// Event is the completion record emitted after the factory invocation has
// been submitted.
type Event struct {
	ID         [32]byte
	Nonce      uint64
	Sender     common.Address
	Token      common.Address
	FeeToken   common.Address
	RootRouter common.Address
	MidRouter  common.Address
	To         common.Address
	Amount     *big.Int
}

func newEvent(nonce uint64, sender common.Address, req *TeleportRequest) *Event {
	ev := &Event{
		Nonce:      nonce,
		Sender:     sender,
		Token:      req.Token,
		FeeToken:   req.FeeToken,
		RootRouter: req.RootRouter,
		MidRouter:  req.MidRouter,
		To:         req.To,
		Amount:     new(big.Int).Set(req.Amount),
	}
	ev.ID = ev.hash()
	return ev
}

func (ev *Event) hash() [32]byte {
	hasher := blake3.New()
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], ev.Nonce)
	hasher.Write(nonce[:])
	hasher.Write(ev.Sender[:])
	hasher.Write(ev.Token[:])
	hasher.Write(ev.FeeToken[:])
	hasher.Write(ev.RootRouter[:])
	hasher.Write(ev.MidRouter[:])
	hasher.Write(ev.To[:])
	hasher.Write(ev.Amount.Bytes())

	var id [32]byte
	copy(id[:], hasher.Sum(nil))
	return id
}

// record wire layout: 32-byte ID, 8-byte nonce, six 20-byte addresses,
// 32-byte amount.
const encodedEventLen = 32 + 8 + 6*common.AddressLength + 32

// Encode serializes the record for journaling.
func (ev *Event) Encode() []byte {
	out := make([]byte, 0, encodedEventLen)
	out = append(out, ev.ID[:]...)
	out = binary.BigEndian.AppendUint64(out, ev.Nonce)
	out = append(out, ev.Sender.Bytes()...)
	out = append(out, ev.Token.Bytes()...)
	out = append(out, ev.FeeToken.Bytes()...)
	out = append(out, ev.RootRouter.Bytes()...)
	out = append(out, ev.MidRouter.Bytes()...)
	out = append(out, ev.To.Bytes()...)
	out = append(out, common.BigToHash(ev.Amount).Bytes()...)
	return out
}

// DecodeEvent inverts Encode.
func DecodeEvent(data []byte) (*Event, error) {
	if len(data) != encodedEventLen {
		return nil, ErrInvalidRecord
	}
	ev := &Event{}
	copy(ev.ID[:], data[:32])
	off := 32
	ev.Nonce = binary.BigEndian.Uint64(data[off : off+8])
	off += 8
	next := func() common.Address {
		addr := common.BytesToAddress(data[off : off+common.AddressLength])
		off += common.AddressLength
		return addr
	}
	ev.Sender = next()
	ev.Token = next()
	ev.FeeToken = next()
	ev.RootRouter = next()
	ev.MidRouter = next()
	ev.To = next()
	ev.Amount = new(big.Int).SetBytes(data[off : off+32])
	return ev, nil
}

// Recorder persists completion records. Implemented by history.Journal; a nil
// recorder disables journaling.
type Recorder interface {
	Record(ev *Event) error
}
