package nucleus

import (
	"context"
	"encoding/json"

	"github.com/paycrest/nucleus-go/types"
)

func (c *Client) CreateConsumerCard(ctx context.Context, req types.CreateConsumerCardRequest) (*types.Card, error) {
	return invoke[types.Card](ctx, c, OpCreateConsumerCard, req)
}

// CreateConsumerCardToken returns a short-lived token for revealing card details
func (c *Client) CreateConsumerCardToken(ctx context.Context, req types.CreateConsumerCardTokenRequest) (string, error) {
	return invokeString(ctx, c, OpCreateConsumerCardToken, req)
}

func (c *Client) GetConsumerCard(ctx context.Context, req types.GetConsumerCardRequest) (*types.Card, error) {
	return invoke[types.Card](ctx, c, OpGetConsumerCard, req)
}

func (c *Client) ListConsumerCards(ctx context.Context, req types.ListConsumerCardsRequest) ([]types.Card, error) {
	res, err := invoke[[]types.Card](ctx, c, OpListConsumerCards, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) ListConsumerCardTransactions(ctx context.Context, req types.ListConsumerCardTransactionsRequest) ([]types.CardTransaction, error) {
	res, err := invoke[[]types.CardTransaction](ctx, c, OpListConsumerCardTransactions, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) UpdateConsumerCard(ctx context.Context, req types.UpdateConsumerCardRequest) (string, error) {
	return invokeString(ctx, c, OpUpdateConsumerCard, req)
}

func (c *Client) DeleteConsumerCard(ctx context.Context, req types.DeleteConsumerCardRequest) (string, error) {
	return invokeString(ctx, c, OpDeleteConsumerCard, req)
}

// SimulateConsumerCardTransaction creates a test transaction. Sandbox only on the provider side.
func (c *Client) SimulateConsumerCardTransaction(ctx context.Context, req types.SimulateConsumerCardTransactionRequest) (json.RawMessage, error) {
	res, err := invoke[json.RawMessage](ctx, c, OpSimulateConsumerCardTransaction, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func invokeString(ctx context.Context, c *Client, op Operation, req interface{}) (string, error) {
	res, err := invoke[string](ctx, c, op, req)
	if err != nil {
		return "", err
	}
	return *res, nil
}
