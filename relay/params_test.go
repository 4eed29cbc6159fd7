// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"math/big"
	"testing"

	"github.com/luxfi/geth/common"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/teleporter/fees"
)

// offsetMapper maps every root token by flipping the first byte, a stand-in
// for the router's deterministic identity mapping.
type offsetMapper struct{}

func (offsetMapper) MapTokenIdentity(rootToken common.Address) (common.Address, error) {
	mapped := rootToken
	mapped[0] ^= 0xff
	return mapped, nil
}

var (
	owner     = common.HexToAddress("0x2111000000000000000000000000000000001111")
	principal = common.HexToAddress("0x0a00000000000000000000000000000000000001")
	feeToken  = common.HexToAddress("0x0b00000000000000000000000000000000000002")
	midRouter = common.HexToAddress("0x0c00000000000000000000000000000000000003")
	recipient = common.HexToAddress("0x0d00000000000000000000000000000000000004")
)

func mapped(addr common.Address) common.Address {
	m, _ := offsetMapper{}.MapTokenIdentity(addr)
	return m
}

func TestBuildParamsFeeTokenByMode(t *testing.T) {
	hop := fees.HopGas{GasLimit: 300000, GasPriceBid: big.NewInt(100)}

	tests := []struct {
		name       string
		mode       fees.TransferMode
		wantFeeTok common.Address
	}{
		{"standard zeroes the fee token", fees.ModeStandard, common.Address{}},
		{"principal funds its own gas", fees.ModeFeeTokenIsPrincipal, mapped(principal)},
		{"distinct fee token is mapped", fees.ModeDistinctFeeToken, mapped(feeToken)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := BuildParams(offsetMapper{}, owner, tc.mode,
				principal, feeToken, midRouter, recipient, big.NewInt(777), hop)
			require.NoError(t, err)

			require.Equal(t, owner, p.Owner)
			require.Equal(t, mapped(principal), p.Token)
			require.Equal(t, tc.wantFeeTok, p.FeeToken)
			require.Equal(t, midRouter, p.RoutingTarget)
			require.Equal(t, recipient, p.To)
			require.Equal(t, int64(777), p.Amount.Int64())
			require.Equal(t, uint64(300000), p.GasLimit)
			require.Equal(t, int64(100), p.GasPriceBid.Int64())
		})
	}
}

func TestParamsEncodeRoundtrip(t *testing.T) {
	p, err := BuildParams(offsetMapper{}, owner, fees.ModeDistinctFeeToken,
		principal, feeToken, midRouter, recipient, big.NewInt(123456789), fees.HopGas{
			GasLimit:    42,
			GasPriceBid: big.NewInt(99),
		})
	require.NoError(t, err)

	data := p.Encode()
	require.Len(t, data, encodedLen)

	// deterministic
	require.Equal(t, data, p.Encode())

	decoded, err := DecodeParams(data)
	require.NoError(t, err)
	require.Equal(t, p.Owner, decoded.Owner)
	require.Equal(t, p.Token, decoded.Token)
	require.Equal(t, p.FeeToken, decoded.FeeToken)
	require.Equal(t, p.RoutingTarget, decoded.RoutingTarget)
	require.Equal(t, p.To, decoded.To)
	require.Zero(t, p.Amount.Cmp(decoded.Amount))
	require.Equal(t, p.GasLimit, decoded.GasLimit)
	require.Zero(t, p.GasPriceBid.Cmp(decoded.GasPriceBid))
}

func TestDecodeParamsRejectsMalformed(t *testing.T) {
	_, err := DecodeParams(nil)
	require.ErrorIs(t, err, ErrInvalidPayload)

	_, err = DecodeParams(make([]byte, encodedLen-1))
	require.ErrorIs(t, err, ErrInvalidPayload)

	bad := make([]byte, encodedLen)
	bad[0] = 0xff // unknown version
	_, err = DecodeParams(bad)
	require.ErrorIs(t, err, ErrInvalidPayload)
}
