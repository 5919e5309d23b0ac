package nucleus

import (
	"context"
	"encoding/json"

	"github.com/paycrest/nucleus-go/types"
)

// SubmitKYC submits an individual for KYC
func (c *Client) SubmitKYC(ctx context.Context, req types.KYCRequest) (*types.KYCResponse, error) {
	return invoke[types.KYCResponse](ctx, c, OpSubmitKYC, req)
}

// SubmitDAOMemberKYC submits a DAO member for KYC
func (c *Client) SubmitDAOMemberKYC(ctx context.Context, req types.KYCDAOMemberRequest) (*types.KYCResponse, error) {
	return invoke[types.KYCResponse](ctx, c, OpSubmitDAOMemberKYC, req)
}

func (c *Client) GetKYCStatus(ctx context.Context, walletAddress string) (*types.KYCStatusResponse, error) {
	return invoke[types.KYCStatusResponse](ctx, c, OpGetKYCStatus, types.WalletRouting{WalletAddress: walletAddress})
}

// SubmitIDV starts document verification and returns the hosted verification link
func (c *Client) SubmitIDV(ctx context.Context, walletAddress string) (*types.SubmitIDVResponse, error) {
	return invoke[types.SubmitIDVResponse](ctx, c, OpSubmitIDV, types.WalletRouting{WalletAddress: walletAddress})
}

func (c *Client) GetIDV(ctx context.Context, walletAddress string) (*types.GetIDVResponse, error) {
	return invoke[types.GetIDVResponse](ctx, c, OpGetIDV, types.WalletRouting{WalletAddress: walletAddress})
}

func (c *Client) GetUser(ctx context.Context, walletAddress string) (*types.UserResponse, error) {
	return invoke[types.UserResponse](ctx, c, OpGetUser, types.WalletRouting{WalletAddress: walletAddress})
}

func (c *Client) GetUserStatus(ctx context.Context, walletAddress string) (*types.UserStatusResponse, error) {
	return invoke[types.UserStatusResponse](ctx, c, OpGetUserStatus, types.WalletRouting{WalletAddress: walletAddress})
}

// AssociateUserToBusiness links a verified user to a DAO. The provider's answer is returned as sent.
func (c *Client) AssociateUserToBusiness(ctx context.Context, req types.AssociateRequest) (json.RawMessage, error) {
	res, err := invoke[json.RawMessage](ctx, c, OpAssociateUserToBusiness, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) RegisterDAO(ctx context.Context, req types.RegisterDAORequest) (*types.RegisterDAOResponse, error) {
	return invoke[types.RegisterDAOResponse](ctx, c, OpRegisterDAO, req)
}

// UpdateDAO moves the DAO identified by req.MultisigAddress to req.NewMultisigAddress
func (c *Client) UpdateDAO(ctx context.Context, req types.UpdateDAORequest) (json.RawMessage, error) {
	res, err := invoke[json.RawMessage](ctx, c, OpUpdateDAO, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) SubmitKYB(ctx context.Context, req types.KYBRequest) (json.RawMessage, error) {
	res, err := invoke[json.RawMessage](ctx, c, OpSubmitKYB, req)
	if err != nil {
		return nil, err
	}
	return *res, nil
}

func (c *Client) GetKYBStatus(ctx context.Context, multisigAddress string) (*types.KYBStatusResponse, error) {
	return invoke[types.KYBStatusResponse](ctx, c, OpGetKYBStatus, types.MultisigRouting{MultisigAddress: multisigAddress})
}

func (c *Client) GetDAO(ctx context.Context, multisigAddress string) (*types.DAOResponse, error) {
	return invoke[types.DAOResponse](ctx, c, OpGetDAO, types.MultisigRouting{MultisigAddress: multisigAddress})
}

func (c *Client) GetDAOStatus(ctx context.Context, multisigAddress string) (*types.DAOStatusResponse, error) {
	return invoke[types.DAOStatusResponse](ctx, c, OpGetDAOStatus, types.MultisigRouting{MultisigAddress: multisigAddress})
}
