// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package relay derives everything the intermediate-domain relay needs before
// it exists: the translated owner identity, the counterfactual address the
// relay will be deployed at, and the parameter payload the relay factory is
// invoked with.
package relay

import (
	"github.com/holiman/uint256"
	"github.com/luxfi/geth/common"
)

// aliasOffset is the fixed offset added to a root-domain address to obtain
// its intermediate-domain identity, modulo 2^160.
var aliasOffset = uint256.MustFromHex("0x1111000000000000000000000000000000001111")

// ApplyAlias translates a root-domain caller address into the identity it
// carries on the intermediate domain.
func ApplyAlias(addr common.Address) common.Address {
	v := new(uint256.Int).SetBytes(addr.Bytes())
	v.Add(v, aliasOffset)
	return common.Address(v.Bytes20())
}

// UndoAlias inverts ApplyAlias.
func UndoAlias(addr common.Address) common.Address {
	v := new(uint256.Int).SetBytes(addr.Bytes())
	v.Sub(v, aliasOffset)
	return common.Address(v.Bytes20())
}
