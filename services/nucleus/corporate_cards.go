package nucleus

import (
	"context"
	"encoding/json"

	"github.com/paycrest/nucleus-go/types"
)

func (c *Client) CreateCorporateCard(ctx context.Context, req types.CreateCorporateCardRequest) (*types.Card, error) {
	return invoke[types.Card](ctx, c, OpCreateCorporateCard, req)
}

func (c *Client) CreateCorporateCardToken(ctx context.Context, req types.CreateCorporateCardTokenRequest) (string, error) {
	return invokeString(ctx, c, OpCreateCorporateCardToken, req)
}

func (c *Client) GetCorporateCard(ctx context.Context, req types.GetCorporateCardRequest) (*types.Card, error) {
	return invoke[types.Card](ctx, c, OpGetCorporateCard, req)
}

func (c *Client) ListCorporateCards(ctx context.Context, req types.ListCorporateCardsRequest) ([]types.Card, error) {
	res, err := invoke[[]types.Card](ctx, c, OpListCorporateCards, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// ListCorporateCardTransactions lists the transactions of one corporate card
func (c *Client) ListCorporateCardTransactions(ctx context.Context, req types.ListCorporateCardTransactionsRequest) ([]types.CardTransaction, error) {
	res, err := invoke[[]types.CardTransaction](ctx, c, OpListCorporateCardTransactions, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// ListDAOCardTransactions lists the transactions of every card the DAO owns
func (c *Client) ListDAOCardTransactions(ctx context.Context, req types.ListDAOCardTransactionsRequest) ([]types.CardTransaction, error) {
	res, err := invoke[[]types.CardTransaction](ctx, c, OpListDAOCardTransactions, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) UpdateCorporateCard(ctx context.Context, req types.UpdateCorporateCardRequest) (string, error) {
	return invokeString(ctx, c, OpUpdateCorporateCard, req)
}

// FundCorporateCard moves funds from the DAO program onto a card
func (c *Client) FundCorporateCard(ctx context.Context, req types.FundCorporateCardRequest) (string, error) {
	return invokeString(ctx, c, OpFundCorporateCard, req)
}

// WithdrawCorporateCard moves funds from a card back to the DAO program
func (c *Client) WithdrawCorporateCard(ctx context.Context, req types.WithdrawCorporateCardRequest) (string, error) {
	return invokeString(ctx, c, OpWithdrawCorporateCard, req)
}

func (c *Client) DeleteCorporateCard(ctx context.Context, req types.DeleteCorporateCardRequest) (string, error) {
	return invokeString(ctx, c, OpDeleteCorporateCard, req)
}

func (c *Client) SimulateCorporateCardTransaction(ctx context.Context, req types.SimulateCorporateCardTransactionRequest) (json.RawMessage, error) {
	res, err := invoke[json.RawMessage](ctx, c, OpSimulateCorporateCardTransaction, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

// GetDAOCardsBalance returns the aggregate balance across the DAO's cards
func (c *Client) GetDAOCardsBalance(ctx context.Context, req types.GetDAOCardsBalanceRequest) (*types.CardsBalanceResponse, error) {
	return invoke[types.CardsBalanceResponse](ctx, c, OpGetDAOCardsBalance, req)
}

// Withdraw moves funds out of the DAO card program
func (c *Client) Withdraw(ctx context.Context, req types.WithdrawRequest) (*types.WithdrawResponse, error) {
	return invoke[types.WithdrawResponse](ctx, c, OpWithdraw, req)
}
