package types

import "cosmossdk.io/errors"

var (
	ErrTokenNotFound      = errors.Register(ModuleName, 1, "token not found")
	ErrSymbolTaken        = errors.Register(ModuleName, 2, "token symbol already issued")
	ErrInvalidTotalSupply = errors.Register(ModuleName, 3, "total supply must be positive")
	ErrInsufficientFree   = errors.Register(ModuleName, 4, "insufficient free balance")
	ErrInsufficientFrozen = errors.Register(ModuleName, 5, "insufficient frozen balance")
	ErrBalanceOverflow    = errors.Register(ModuleName, 6, "balance overflow")
	ErrInvalidAddress     = errors.Register(ModuleName, 7, "invalid address")
)
