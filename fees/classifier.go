// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import "github.com/luxfi/geth/common"

// Classify determines the transfer mode from the root-domain identities of
// the principal token and the final domain's fee token. It is total,
// deterministic and idempotent: the zero address is the native sentinel, and
// the mapping of root identities to destination identities is the bridge
// router's concern, never duplicated here.
func Classify(token, feeToken common.Address) TransferMode {
	switch {
	case feeToken == NativeFeeToken:
		return ModeStandard
	case token == feeToken:
		return ModeFeeTokenIsPrincipal
	default:
		return ModeDistinctFeeToken
	}
}
