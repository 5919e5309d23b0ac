package types

// RoutingKind selects which identity header, besides x-api-key, scopes a call
type RoutingKind int

const (
	APIKeyOnly RoutingKind = iota
	WalletAddress
	MultisigAddress
)

func (k RoutingKind) String() string {
	switch k {
	case APIKeyOnly:
		return "api_key_only"
	case WalletAddress:
		return "wallet_address"
	case MultisigAddress:
		return "multisig_address"
	}
	return "unknown"
}

// Routing is the identity a request is scoped to
type Routing struct {
	Kind  RoutingKind
	Value string
}

// Routed is implemented by every routing group embedded in a request
type Routed interface {
	Routing() Routing
}

// WalletRouting scopes identity calls to a user wallet
type WalletRouting struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
}

func (r WalletRouting) Routing() Routing {
	return Routing{Kind: WalletAddress, Value: r.WalletAddress}
}

// ConsumerRouting scopes consumer card calls to the card holder's wallet
type ConsumerRouting struct {
	CardHolderWalletAddress string `json:"cardHolderWalletAddress" validate:"required"`
}

func (r ConsumerRouting) Routing() Routing {
	return Routing{Kind: WalletAddress, Value: r.CardHolderWalletAddress}
}

// CorporateRouting scopes corporate card calls to the DAO multisig
type CorporateRouting struct {
	DAOMultisigAddress string `json:"daoMultisigAddress" validate:"required"`
}

func (r CorporateRouting) Routing() Routing {
	return Routing{Kind: MultisigAddress, Value: r.DAOMultisigAddress}
}

// MultisigRouting scopes DAO identity calls to the DAO multisig
type MultisigRouting struct {
	MultisigAddress string `json:"multisigAddress" validate:"required"`
}

func (r MultisigRouting) Routing() Routing {
	return Routing{Kind: MultisigAddress, Value: r.MultisigAddress}
}
