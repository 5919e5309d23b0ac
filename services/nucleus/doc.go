// Package nucleus is a typed client for the Nucleus identity-verification and card-issuance API.
//
// # Quick use
//
//	client, err := nucleus.NewClient(config.NucleusConfiguration{
//		APIKey:      key,
//		Environment: config.Sandbox,
//		Timeout:     30 * time.Second,
//	})
//	card, err := client.GetConsumerCard(ctx, types.GetConsumerCardRequest{
//		ConsumerRouting: types.ConsumerRouting{CardHolderWalletAddress: wallet},
//		CardID:          42,
//	})
//
// # Identity APIs
//
// - [Client.SubmitKYC], [Client.SubmitDAOMemberKYC], [Client.GetKYCStatus]
//
// - [Client.SubmitIDV], [Client.GetIDV], [Client.GetUser], [Client.GetUserStatus]
//
// - [Client.AssociateUserToBusiness], [Client.RegisterDAO], [Client.UpdateDAO]
//
// - [Client.SubmitKYB], [Client.GetKYBStatus], [Client.GetDAO], [Client.GetDAOStatus]
//
// # Consumer card APIs
//
// - [Client.CreateConsumerCard], [Client.CreateConsumerCardToken], [Client.GetConsumerCard]
//
// - [Client.ListConsumerCards], [Client.ListConsumerCardTransactions]
//
// - [Client.UpdateConsumerCard], [Client.DeleteConsumerCard], [Client.SimulateConsumerCardTransaction]
//
// # Corporate card APIs
//
// - [Client.CreateCorporateCard], [Client.CreateCorporateCardToken], [Client.GetCorporateCard]
//
// - [Client.ListCorporateCards], [Client.ListCorporateCardTransactions], [Client.ListDAOCardTransactions]
//
// - [Client.UpdateCorporateCard], [Client.FundCorporateCard], [Client.WithdrawCorporateCard]
//
// - [Client.DeleteCorporateCard], [Client.SimulateCorporateCardTransaction]
//
// - [Client.GetDAOCardsBalance], [Client.Withdraw]
//
// # Routing
//
// Every request carries x-api-key. Wallet-scoped calls add x-wallet-address and DAO-scoped calls add
// x-multisig-address, taken from the routing group embedded in the request; that field is never sent
// in the body.
//
// # Errors
//
// Failures are logged and returned unchanged: a *RemoteError for non-2xx answers, the transport's own
// error for network failures and timeouts. Nothing is retried.
package nucleus
