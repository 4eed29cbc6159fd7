// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package teleport

import (
	"math/big"
	"sync"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/teleporter/gateway"
)

// maxAllowance is the unlimited approval granted once per (token, gateway).
var maxAllowance = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

type approvalKey struct {
	token   common.Address
	spender common.Address
}

// ApprovalCache memoizes unlimited approvals per (token, gateway). Entries
// are monotone: once set they are never unset, so interleaved calls against
// the same gateway at worst approve twice, never under-approve.
type ApprovalCache struct {
	mu       sync.Mutex
	approved map[approvalKey]bool
}

// NewApprovalCache creates an empty cache.
func NewApprovalCache() *ApprovalCache {
	return &ApprovalCache{approved: make(map[approvalKey]bool)}
}

// Ensure grants spender an unlimited allowance on token for owner, unless a
// prior call already did. An existing non-zero on-chain allowance is adopted
// into the cache without re-approving.
func (c *ApprovalCache) Ensure(tok gateway.Token, owner, token, spender common.Address) error {
	key := approvalKey{token: token, spender: spender}

	c.mu.Lock()
	done := c.approved[key]
	c.mu.Unlock()
	if done {
		return nil
	}

	allowance, err := tok.Allowance(owner, spender)
	if err != nil {
		return err
	}
	if allowance.Sign() == 0 {
		if err := tok.Approve(owner, spender, maxAllowance); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.approved[key] = true
	c.mu.Unlock()
	return nil
}

// Approved reports whether the (token, gateway) pair has been ensured.
func (c *ApprovalCache) Approved(token, spender common.Address) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.approved[approvalKey{token: token, spender: spender}]
}
