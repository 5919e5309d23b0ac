package types

// CardType is the physical form of a consumer card
type CardType string

const (
	CardTypePhysical CardType = "PHYSICAL"
	CardTypeVirtual  CardType = "VIRTUAL"
)

// Card is a consumer or corporate card record
type Card struct {
	CardID             string  `json:"cardId"`
	WalletAddress      string  `json:"walletAddress"`
	Label              string  `json:"label"`
	Last4              string  `json:"last4"`
	ExpiryYear         int     `json:"expiryYear"`
	ExpiryMonth        int     `json:"expiryMonth"`
	SpendLimit         *Amount `json:"spendLimit,omitempty"`
	SpendLimitDuration string  `json:"spendLimitDuration,omitempty"`
}

type Merchant struct {
	MerchantName         string `json:"merchantName"`
	MerchantCity         string `json:"merchantCity"`
	MerchantState        int    `json:"merchantState"`
	MerchantCountry      string `json:"merchantCountry"`
	MerchantCategory     string `json:"merchantCategory"`
	MerchantCategoryCode string `json:"merchantCategoryCode"`
}

// CardTransaction is one entry of a card transaction listing
type CardTransaction struct {
	TxnType   string   `json:"txnType"`
	Merchant  Merchant `json:"merchant"`
	Amount    Amount   `json:"amount"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"createdAt"`
	TxnDate   string   `json:"txnDate"`
}

// Consumer cards

type CreateConsumerCardRequest struct {
	ConsumerRouting
	Type            CardType `json:"type,omitempty" validate:"omitempty,oneof=PHYSICAL VIRTUAL"`
	Label           string   `json:"label,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

type CreateConsumerCardTokenRequest struct {
	ConsumerRouting
}

type GetConsumerCardRequest struct {
	ConsumerRouting
	CardID int64 `json:"cardId" validate:"required"`
}

type ListConsumerCardsRequest struct {
	ConsumerRouting
}

type ListConsumerCardTransactionsRequest struct {
	ConsumerRouting
	CardID int64 `json:"cardId" validate:"required"`
}

type UpdateConsumerCardRequest struct {
	ConsumerRouting
	CardID int64  `json:"cardId" validate:"required"`
	Label  string `json:"label,omitempty"`
	Status string `json:"status,omitempty"`
}

type DeleteConsumerCardRequest struct {
	ConsumerRouting
	CardID int64 `json:"cardId" validate:"required"`
}

type SimulateConsumerCardTransactionRequest struct {
	ConsumerRouting
	CardID   int64     `json:"cardId" validate:"required"`
	Amount   Amount    `json:"amount"`
	TxnType  string    `json:"txnType,omitempty"`
	Merchant *Merchant `json:"merchant,omitempty"`
}

// Corporate cards

type CreateCorporateCardRequest struct {
	CorporateRouting
	CardHolderUserID   int64   `json:"cardHolderUserId" validate:"required"`
	Label              string  `json:"label"`
	SpendLimit         *Amount `json:"spendLimit,omitempty"`
	SpendLimitDuration string  `json:"spendLimitDuration,omitempty"`
}

type CreateCorporateCardTokenRequest struct {
	CorporateRouting
	CardID int64 `json:"cardId" validate:"required"`
}

type GetCorporateCardRequest struct {
	CorporateRouting
	CardID int64 `json:"cardId" validate:"required"`
}

type ListCorporateCardsRequest struct {
	CorporateRouting
}

type ListCorporateCardTransactionsRequest struct {
	CorporateRouting
	CardID int64 `json:"cardId" validate:"required"`
}

type ListDAOCardTransactionsRequest struct {
	CorporateRouting
}

type UpdateCorporateCardRequest struct {
	CorporateRouting
	CardID             int64   `json:"cardId" validate:"required"`
	Label              string  `json:"label,omitempty"`
	SpendLimit         *Amount `json:"spendLimit,omitempty"`
	SpendLimitDuration string  `json:"spendLimitDuration,omitempty"`
}

type FundCorporateCardRequest struct {
	CorporateRouting
	CardID int64  `json:"cardId" validate:"required"`
	Amount Amount `json:"amount"`
}

type WithdrawCorporateCardRequest struct {
	CorporateRouting
	CardID int64  `json:"cardId" validate:"required"`
	Amount Amount `json:"amount"`
}

type DeleteCorporateCardRequest struct {
	CorporateRouting
	CardID int64 `json:"cardId" validate:"required"`
}

type SimulateCorporateCardTransactionRequest struct {
	CorporateRouting
	CardID   int64     `json:"cardId" validate:"required"`
	Amount   Amount    `json:"amount"`
	TxnType  string    `json:"txnType,omitempty"`
	Merchant *Merchant `json:"merchant,omitempty"`
}

type GetDAOCardsBalanceRequest struct {
	CorporateRouting
}

type CardsBalanceResponse struct {
	Balance  Amount `json:"balance"`
	Currency string `json:"currency,omitempty"`
}

// WithdrawRequest moves funds from the DAO card program back to the DAO
type WithdrawRequest struct {
	CorporateRouting
	Amount             Amount `json:"amount"`
	DestinationAddress string `json:"destinationAddress,omitempty"`
}

type WithdrawResponse struct {
	TransactionHash string `json:"transactionHash,omitempty"`
	Status          string `json:"status,omitempty"`
}
