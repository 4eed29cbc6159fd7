// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package relay

import (
	"github.com/luxfi/geth/common"
)

// AddressPredictor computes the counterfactual address a relay will be
// deployed at, before deployment. The factory address and the deployment
// template fingerprint are fixed at construction; the prediction is a pure
// function of the owner identity and is stable for a given owner.
type AddressPredictor struct {
	factory      common.Address
	templateHash common.Hash
}

// NewAddressPredictor creates a predictor for relays deployed by factory from
// the template identified by templateHash (the hash of the relay's
// deployment bytecode).
func NewAddressPredictor(factory common.Address, templateHash common.Hash) *AddressPredictor {
	return &AddressPredictor{factory: factory, templateHash: templateHash}
}

// Predict returns the address that will host the relay owned by owner.
func (p *AddressPredictor) Predict(owner common.Address) common.Address {
	salt := common.Keccak256Hash(owner.Bytes())
	return common.CreateAddress2(p.factory, salt, p.templateHash.Bytes())
}

// Factory returns the relay-factory address, the target of the
// intermediate-domain invocation hop.
func (p *AddressPredictor) Factory() common.Address {
	return p.factory
}
