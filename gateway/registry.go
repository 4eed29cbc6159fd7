// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gateway

import (
	"errors"
	"sync"

	"github.com/luxfi/geth/common"
)

// Errors
var (
	ErrRouterNotRegistered = errors.New("routing target does not resolve to a live bridge adapter")
	ErrTokenNotRegistered  = errors.New("token not registered")
	ErrAlreadyRegistered   = errors.New("address already registered")
)

// Registry resolves routing-target addresses to live bridge adapters and
// token addresses to token bindings. A teleport request is only valid if both
// of its routing targets resolve here.
type Registry struct {
	mu      sync.RWMutex
	routers map[common.Address]BridgeRouter
	tokens  map[common.Address]Token
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routers: make(map[common.Address]BridgeRouter),
		tokens:  make(map[common.Address]Token),
	}
}

// RegisterRouter binds a routing-target address to its bridge adapter.
func (r *Registry) RegisterRouter(target common.Address, router BridgeRouter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.routers[target]; exists {
		return ErrAlreadyRegistered
	}
	r.routers[target] = router
	return nil
}

// Router resolves a routing target to its bridge adapter.
func (r *Registry) Router(target common.Address) (BridgeRouter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	router, ok := r.routers[target]
	if !ok {
		return nil, ErrRouterNotRegistered
	}
	return router, nil
}

// RegisterToken binds a root-domain token address to its token contract.
func (r *Registry) RegisterToken(addr common.Address, token Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[addr]; exists {
		return ErrAlreadyRegistered
	}
	r.tokens[addr] = token
	return nil
}

// Token resolves a root-domain token address to its contract binding.
func (r *Registry) Token(addr common.Address) (Token, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[addr]
	if !ok {
		return nil, ErrTokenNotRegistered
	}
	return token, nil
}
