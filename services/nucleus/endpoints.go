package nucleus

import (
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/paycrest/nucleus-go/types"
)

// Operation names one remote capability
type Operation string

const (
	// Identity
	OpSubmitKYC               Operation = "SubmitKYC"
	OpSubmitDAOMemberKYC      Operation = "SubmitDAOMemberKYC"
	OpGetKYCStatus            Operation = "GetKYCStatus"
	OpSubmitIDV               Operation = "SubmitIDV"
	OpGetIDV                  Operation = "GetIDV"
	OpGetUser                 Operation = "GetUser"
	OpGetUserStatus           Operation = "GetUserStatus"
	OpAssociateUserToBusiness Operation = "AssociateUserToBusiness"
	OpRegisterDAO             Operation = "RegisterDAO"
	OpUpdateDAO               Operation = "UpdateDAO"
	OpSubmitKYB               Operation = "SubmitKYB"
	OpGetKYBStatus            Operation = "GetKYBStatus"
	OpGetDAO                  Operation = "GetDAO"
	OpGetDAOStatus            Operation = "GetDAOStatus"

	// Consumer cards
	OpCreateConsumerCard              Operation = "CreateConsumerCard"
	OpCreateConsumerCardToken         Operation = "CreateConsumerCardToken"
	OpGetConsumerCard                 Operation = "GetConsumerCard"
	OpListConsumerCards               Operation = "ListConsumerCards"
	OpListConsumerCardTransactions    Operation = "ListConsumerCardTransactions"
	OpUpdateConsumerCard              Operation = "UpdateConsumerCard"
	OpDeleteConsumerCard              Operation = "DeleteConsumerCard"
	OpSimulateConsumerCardTransaction Operation = "SimulateConsumerCardTransaction"

	// Corporate cards
	OpCreateCorporateCard              Operation = "CreateCorporateCard"
	OpCreateCorporateCardToken         Operation = "CreateCorporateCardToken"
	OpGetCorporateCard                 Operation = "GetCorporateCard"
	OpListCorporateCards               Operation = "ListCorporateCards"
	OpListCorporateCardTransactions    Operation = "ListCorporateCardTransactions"
	OpListDAOCardTransactions          Operation = "ListDAOCardTransactions"
	OpUpdateCorporateCard              Operation = "UpdateCorporateCard"
	OpFundCorporateCard                Operation = "FundCorporateCard"
	OpWithdrawCorporateCard            Operation = "WithdrawCorporateCard"
	OpDeleteCorporateCard              Operation = "DeleteCorporateCard"
	OpSimulateCorporateCardTransaction Operation = "SimulateCorporateCardTransaction"
	OpGetDAOCardsBalance               Operation = "GetDAOCardsBalance"
	OpWithdraw                         Operation = "Withdraw"
)

// JSON names of the request fields that carry routing values
const (
	fieldWalletAddress           = "walletAddress"
	fieldCardHolderWalletAddress = "cardHolderWalletAddress"
	fieldMultisigAddress         = "multisigAddress"
	fieldDAOMultisigAddress      = "daoMultisigAddress"
)

// Descriptor is the immutable routing rule for one operation
type Descriptor struct {
	Method       string
	PathTemplate string
	Routing      types.RoutingKind
	RoutingField string
}

func apiKeyOnly(method, path string) Descriptor {
	return Descriptor{Method: method, PathTemplate: path, Routing: types.APIKeyOnly}
}

func byWallet(method, path, field string) Descriptor {
	return Descriptor{Method: method, PathTemplate: path, Routing: types.WalletAddress, RoutingField: field}
}

func byMultisig(method, path, field string) Descriptor {
	return Descriptor{Method: method, PathTemplate: path, Routing: types.MultisigAddress, RoutingField: field}
}

// endpoints is the single source of truth for method, path and routing header of every operation
var endpoints = map[Operation]Descriptor{
	OpSubmitKYC:               apiKeyOnly(http.MethodPost, "/identity/kyc"),
	OpSubmitDAOMemberKYC:      apiKeyOnly(http.MethodPost, "/identity/dao/kyc"),
	OpGetKYCStatus:            byWallet(http.MethodGet, "/identity/kyc/status", fieldWalletAddress),
	OpSubmitIDV:               byWallet(http.MethodPost, "/identity/idv", fieldWalletAddress),
	OpGetIDV:                  byWallet(http.MethodGet, "/identity/idv", fieldWalletAddress),
	OpGetUser:                 byWallet(http.MethodGet, "/identity/user", fieldWalletAddress),
	OpGetUserStatus:           byWallet(http.MethodGet, "/identity/user/status", fieldWalletAddress),
	OpAssociateUserToBusiness: apiKeyOnly(http.MethodPost, "/identity/associateUserToBusiness"),
	OpRegisterDAO:             apiKeyOnly(http.MethodPost, "/identity/dao"),
	OpUpdateDAO:               byMultisig(http.MethodPatch, "/identity/dao", fieldMultisigAddress),
	OpSubmitKYB:               apiKeyOnly(http.MethodPost, "/identity/kyb"),
	OpGetKYBStatus:            byMultisig(http.MethodGet, "/identity/kyb/status", fieldMultisigAddress),
	OpGetDAO:                  byMultisig(http.MethodGet, "/identity/dao", fieldMultisigAddress),
	OpGetDAOStatus:            byMultisig(http.MethodGet, "/identity/dao/status", fieldMultisigAddress),

	OpCreateConsumerCard:              byWallet(http.MethodPost, "/card/consumer/create", fieldCardHolderWalletAddress),
	OpCreateConsumerCardToken:         byWallet(http.MethodPost, "/card/consumer/cardToken", fieldCardHolderWalletAddress),
	OpGetConsumerCard:                 byWallet(http.MethodGet, "/card/consumer/{cardId}", fieldCardHolderWalletAddress),
	OpListConsumerCards:               byWallet(http.MethodGet, "/card/consumer/list", fieldCardHolderWalletAddress),
	OpListConsumerCardTransactions:    byWallet(http.MethodGet, "/card/consumer/transactions/list/{cardId}", fieldCardHolderWalletAddress),
	OpUpdateConsumerCard:              byWallet(http.MethodPatch, "/card/consumer/update", fieldCardHolderWalletAddress),
	OpDeleteConsumerCard:              byWallet(http.MethodDelete, "/card/consumer/{cardId}", fieldCardHolderWalletAddress),
	OpSimulateConsumerCardTransaction: byWallet(http.MethodPost, "/card/consumer/transactions/simulate", fieldCardHolderWalletAddress),

	OpCreateCorporateCard:              byMultisig(http.MethodPost, "/card/corporate/create", fieldDAOMultisigAddress),
	OpCreateCorporateCardToken:         byMultisig(http.MethodPost, "/card/corporate/cardToken", fieldDAOMultisigAddress),
	OpGetCorporateCard:                 byMultisig(http.MethodGet, "/card/corporate/{cardId}", fieldDAOMultisigAddress),
	OpListCorporateCards:               byMultisig(http.MethodGet, "/card/corporate/list", fieldDAOMultisigAddress),
	OpListCorporateCardTransactions:    byMultisig(http.MethodGet, "/card/corporate/transactions/list/{cardId}", fieldDAOMultisigAddress),
	OpListDAOCardTransactions:          byMultisig(http.MethodGet, "/card/corporate/transactions/list", fieldDAOMultisigAddress),
	OpUpdateCorporateCard:              byMultisig(http.MethodPatch, "/card/corporate/{cardId}", fieldDAOMultisigAddress),
	OpFundCorporateCard:                byMultisig(http.MethodPost, "/card/corporate/fund/{cardId}", fieldDAOMultisigAddress),
	OpWithdrawCorporateCard:            byMultisig(http.MethodPost, "/card/corporate/withdraw/{cardId}", fieldDAOMultisigAddress),
	OpDeleteCorporateCard:              byMultisig(http.MethodDelete, "/card/corporate/{cardId}", fieldDAOMultisigAddress),
	OpSimulateCorporateCardTransaction: byMultisig(http.MethodPost, "/card/corporate/transactions/simulate", fieldDAOMultisigAddress),
	OpGetDAOCardsBalance:               byMultisig(http.MethodGet, "/card/corporate/balance", fieldDAOMultisigAddress),
	OpWithdraw:                         byMultisig(http.MethodPost, "/card/corporate/withdraw", fieldDAOMultisigAddress),
}

// Lookup returns the descriptor for op
func Lookup(op Operation) (Descriptor, error) {
	desc, ok := endpoints[op]
	if !ok {
		return Descriptor{}, programmingError(op, "unsupported operation")
	}
	return desc, nil
}

// Operations lists every supported operation
func Operations() []Operation {
	ops := make([]Operation, 0, len(endpoints))
	for op := range endpoints {
		ops = append(ops, op)
	}
	return ops
}

// HasBody reports whether requests with this method carry a JSON body
func (d Descriptor) HasBody() bool {
	switch d.Method {
	case http.MethodPost, http.MethodPatch, http.MethodPut:
		return true
	}
	return false
}

var pathParam = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// resolvePath substitutes every {param} in the template with the request field of the same JSON name
func resolvePath(op Operation, template string, fields map[string]json.RawMessage) (string, error) {
	var resolveErr error

	path := pathParam.ReplaceAllStringFunc(template, func(placeholder string) string {
		if resolveErr != nil {
			return placeholder
		}
		name := placeholder[1 : len(placeholder)-1]

		raw, ok := fields[name]
		if !ok {
			resolveErr = programmingError(op, "path parameter %q is not a request field", name)
			return placeholder
		}

		value, err := scalarValue(raw)
		if err != nil || value == "" {
			resolveErr = programmingError(op, "path parameter %q has no usable value", name)
			return placeholder
		}
		return url.PathEscape(value)
	})
	if resolveErr != nil {
		return "", resolveErr
	}

	if strings.ContainsAny(path, "{}") {
		return "", programmingError(op, "malformed path template %q", template)
	}

	return path, nil
}

// scalarValue renders a JSON string or number as plain text
func scalarValue(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
