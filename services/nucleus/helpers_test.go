package nucleus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/paycrest/nucleus-go/config"
	"github.com/paycrest/nucleus-go/types"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// recordingTransport captures every request and answers with respond, or 200 {} by default
type recordingTransport struct {
	mu      sync.Mutex
	calls   []*Request
	respond func(req *Request) (*Response, error)
}

func (t *recordingTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	t.mu.Lock()
	t.calls = append(t.calls, req)
	t.mu.Unlock()

	if t.respond != nil {
		return t.respond(req)
	}
	return &Response{StatusCode: 200, Body: []byte(`{}`)}, nil
}

func (t *recordingTransport) last() *Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.calls) == 0 {
		return nil
	}
	return t.calls[len(t.calls)-1]
}

func (t *recordingTransport) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}

func respondWith(status int, body string) func(*Request) (*Response, error) {
	return func(*Request) (*Response, error) {
		res := &Response{StatusCode: status, Body: []byte(body)}
		if status < 200 || status > 299 {
			return res, &RemoteError{StatusCode: status, Body: res.Body}
		}
		return res, nil
	}
}

func testConfig() config.NucleusConfiguration {
	return config.NucleusConfiguration{
		APIKey:      testAPIKey,
		Environment: config.Sandbox,
		Timeout:     5 * time.Second,
	}
}

func newTestClient(t *testing.T, transport Transport, opts ...Option) *Client {
	t.Helper()
	client, err := NewClient(testConfig(), append([]Option{WithTransport(transport)}, opts...)...)
	require.NoError(t, err)
	return client
}

var (
	consumer  = types.ConsumerRouting{CardHolderWalletAddress: "0xB"}
	corporate = types.CorporateRouting{DAOMultisigAddress: "0xC"}
	address   = types.Address{Line1: "1 Main St", City: "Springfield", State: "IL", Country: "US", PostalCode: "62701"}
)

func kycRequest() types.KYCRequest {
	return types.KYCRequest{
		WalletAddress: "0xB",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Phone:         "+15555550100",
		Email:         "ada@example.com",
		DateOfBirth:   "1990-01-01",
		IDType:        "passport",
		IDNumber:      "X123",
		Address:       &address,
	}
}

// sampleRequests holds one valid request per operation
func sampleRequests() map[Operation]interface{} {
	return map[Operation]interface{}{
		OpSubmitKYC:               kycRequest(),
		OpSubmitDAOMemberKYC:      types.KYCDAOMemberRequest{KYCRequest: kycRequest()},
		OpGetKYCStatus:            types.WalletRouting{WalletAddress: "0xB"},
		OpSubmitIDV:               types.WalletRouting{WalletAddress: "0xB"},
		OpGetIDV:                  types.WalletRouting{WalletAddress: "0xB"},
		OpGetUser:                 types.WalletRouting{WalletAddress: "0xB"},
		OpGetUserStatus:           types.WalletRouting{WalletAddress: "0xB"},
		OpAssociateUserToBusiness: types.AssociateRequest{DAOID: 3, UserID: 7},
		OpRegisterDAO:             types.RegisterDAORequest{MultisigAddress: "0xA", OwnerUserID: 7},
		OpUpdateDAO: types.UpdateDAORequest{
			MultisigRouting:    types.MultisigRouting{MultisigAddress: "0xA"},
			NewMultisigAddress: "0xD",
		},
		OpSubmitKYB: types.KYBRequest{
			AssociatedDAOID: 3, LegalName: "Acme DAO LLC", EntityType: "llc", Email: "ops@acme.xyz",
			IDType: "ein", IDNumber: "12-3456789", FormationDate: "2021-05-01", Address: &address, Phone: "+15555550101",
		},
		OpGetKYBStatus: types.MultisigRouting{MultisigAddress: "0xA"},
		OpGetDAO:       types.MultisigRouting{MultisigAddress: "0xA"},
		OpGetDAOStatus: types.MultisigRouting{MultisigAddress: "0xA"},

		OpCreateConsumerCard:              types.CreateConsumerCardRequest{ConsumerRouting: consumer, Type: types.CardTypeVirtual, Label: "groceries"},
		OpCreateConsumerCardToken:         types.CreateConsumerCardTokenRequest{ConsumerRouting: consumer},
		OpGetConsumerCard:                 types.GetConsumerCardRequest{ConsumerRouting: consumer, CardID: 42},
		OpListConsumerCards:               types.ListConsumerCardsRequest{ConsumerRouting: consumer},
		OpListConsumerCardTransactions:    types.ListConsumerCardTransactionsRequest{ConsumerRouting: consumer, CardID: 42},
		OpUpdateConsumerCard:              types.UpdateConsumerCardRequest{ConsumerRouting: consumer, CardID: 42, Label: "travel"},
		OpDeleteConsumerCard:              types.DeleteConsumerCardRequest{ConsumerRouting: consumer, CardID: 42},
		OpSimulateConsumerCardTransaction: types.SimulateConsumerCardTransactionRequest{ConsumerRouting: consumer, CardID: 42, Amount: types.NewAmount(5)},

		OpCreateCorporateCard:              types.CreateCorporateCardRequest{CorporateRouting: corporate, CardHolderUserID: 7, Label: "ops"},
		OpCreateCorporateCardToken:         types.CreateCorporateCardTokenRequest{CorporateRouting: corporate, CardID: 9},
		OpGetCorporateCard:                 types.GetCorporateCardRequest{CorporateRouting: corporate, CardID: 9},
		OpListCorporateCards:               types.ListCorporateCardsRequest{CorporateRouting: corporate},
		OpListCorporateCardTransactions:    types.ListCorporateCardTransactionsRequest{CorporateRouting: corporate, CardID: 9},
		OpListDAOCardTransactions:          types.ListDAOCardTransactionsRequest{CorporateRouting: corporate},
		OpUpdateCorporateCard:              types.UpdateCorporateCardRequest{CorporateRouting: corporate, CardID: 9, Label: "ops-2"},
		OpFundCorporateCard:                types.FundCorporateCardRequest{CorporateRouting: corporate, CardID: 9, Amount: types.NewAmount(100)},
		OpWithdrawCorporateCard:            types.WithdrawCorporateCardRequest{CorporateRouting: corporate, CardID: 9, Amount: types.NewAmount(40)},
		OpDeleteCorporateCard:              types.DeleteCorporateCardRequest{CorporateRouting: corporate, CardID: 9},
		OpSimulateCorporateCardTransaction: types.SimulateCorporateCardTransactionRequest{CorporateRouting: corporate, CardID: 9, Amount: types.NewAmount(12)},
		OpGetDAOCardsBalance:               types.GetDAOCardsBalanceRequest{CorporateRouting: corporate},
		OpWithdraw:                         types.WithdrawRequest{CorporateRouting: corporate, Amount: types.NewAmount(250)},
	}
}
