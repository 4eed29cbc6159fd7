// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/teleporter/fees"
)

// TokenMapper deterministically maps a root-domain token identity to its
// intermediate-domain identity. Satisfied by the bridge router.
type TokenMapper interface {
	MapTokenIdentity(rootToken common.Address) (common.Address, error)
}

// Params is the payload the relay factory is invoked with on the
// intermediate domain. All token identities are intermediate-domain
// identities, already mapped through the bridge router.
type Params struct {
	Owner         common.Address // aliased root-domain caller
	Token         common.Address // principal, mapped
	FeeToken      common.Address // zero / mapped principal / mapped fee token, by mode
	RoutingTarget common.Address // mid->final routing target
	To            common.Address // final recipient
	Amount        *big.Int
	GasLimit      uint64   // mid->final hop
	GasPriceBid   *big.Int // mid->final hop
}

// payload wire layout: version byte, five 20-byte addresses, 32-byte amount,
// 8-byte gas limit, 32-byte gas price.
const (
	paramsVersion = uint8(1)
	encodedLen    = 1 + 5*common.AddressLength + 32 + 8 + 32
)

var ErrInvalidPayload = errors.New("malformed relay params payload")

// BuildParams derives the relay-factory payload for one teleport. The
// fee-token identity follows the mode: the zero sentinel when the final
// domain pays gas natively, the mapped principal when the principal funds its
// own gas, and the mapped fee token otherwise.
func BuildParams(
	mapper TokenMapper,
	owner common.Address,
	mode fees.TransferMode,
	token common.Address,
	feeToken common.Address,
	routingTarget common.Address,
	to common.Address,
	amount *big.Int,
	finalHop fees.HopGas,
) (Params, error) {
	mappedToken, err := mapper.MapTokenIdentity(token)
	if err != nil {
		return Params{}, err
	}

	var mappedFeeToken common.Address
	switch mode {
	case fees.ModeStandard:
		mappedFeeToken = common.Address{}
	case fees.ModeFeeTokenIsPrincipal:
		mappedFeeToken = mappedToken
	case fees.ModeDistinctFeeToken:
		if mappedFeeToken, err = mapper.MapTokenIdentity(feeToken); err != nil {
			return Params{}, err
		}
	}

	return Params{
		Owner:         owner,
		Token:         mappedToken,
		FeeToken:      mappedFeeToken,
		RoutingTarget: routingTarget,
		To:            to,
		Amount:        new(big.Int).Set(amount),
		GasLimit:      finalHop.GasLimit,
		GasPriceBid:   bigOrZero(finalHop.GasPriceBid),
	}, nil
}

// Encode serializes the params into the deterministic byte payload carried by
// the factory invocation message.
func (p Params) Encode() []byte {
	out := make([]byte, 0, encodedLen)
	out = append(out, paramsVersion)
	out = append(out, p.Owner.Bytes()...)
	out = append(out, p.Token.Bytes()...)
	out = append(out, p.FeeToken.Bytes()...)
	out = append(out, p.RoutingTarget.Bytes()...)
	out = append(out, p.To.Bytes()...)
	out = append(out, common.BigToHash(p.Amount).Bytes()...)
	out = binary.BigEndian.AppendUint64(out, p.GasLimit)
	out = append(out, common.BigToHash(p.GasPriceBid).Bytes()...)
	return out
}

// DecodeParams inverts Encode.
func DecodeParams(data []byte) (Params, error) {
	if len(data) != encodedLen || data[0] != paramsVersion {
		return Params{}, ErrInvalidPayload
	}
	var p Params
	off := 1
	next := func() common.Address {
		addr := common.BytesToAddress(data[off : off+common.AddressLength])
		off += common.AddressLength
		return addr
	}
	p.Owner = next()
	p.Token = next()
	p.FeeToken = next()
	p.RoutingTarget = next()
	p.To = next()
	p.Amount = new(big.Int).SetBytes(data[off : off+32])
	off += 32
	p.GasLimit = binary.BigEndian.Uint64(data[off : off+8])
	off += 8
	p.GasPriceBid = new(big.Int).SetBytes(data[off : off+32])
	return p, nil
}

func bigOrZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(v)
}
