package nucleus

import "github.com/paycrest/nucleus-go/types"

const (
	headerAPIKey          = "x-api-key"
	headerWalletAddress   = "x-wallet-address"
	headerMultisigAddress = "x-multisig-address"
)

// routingHeaders returns the single identity header for a call, if any
func routingHeaders(kind types.RoutingKind, value string) map[string]string {
	switch kind {
	case types.WalletAddress:
		return map[string]string{headerWalletAddress: value}
	case types.MultisigAddress:
		return map[string]string{headerMultisigAddress: value}
	}
	return map[string]string{}
}
