package types

// Address is a postal address used by KYC, KYB and card shipping.
// Its fields are checked by the provider, not before dispatch.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// KYCRequest submits an individual for identity verification.
// walletAddress travels in the body here: the call is authenticated by API key only.
type KYCRequest struct {
	WalletAddress string   `json:"walletAddress" validate:"required"`
	FirstName     string   `json:"firstName" validate:"required"`
	MiddleName    string   `json:"middleName,omitempty"`
	LastName      string   `json:"lastName" validate:"required"`
	Phone         string   `json:"phone" validate:"required"`
	Email         string   `json:"email" validate:"required"`
	DateOfBirth   string   `json:"dateOfBirth" validate:"required"`
	IDType        string   `json:"idType" validate:"required"`
	IDNumber      string   `json:"idNumber" validate:"required"`
	Address       *Address `json:"address,omitempty"`
}

// KYCDAOMemberRequest submits a DAO member for identity verification
type KYCDAOMemberRequest struct {
	KYCRequest
}

type KYCResponse struct {
	UserID int64 `json:"userId"`
}

type KYCStatusResponse struct {
	Status string `json:"status"`
}

type SubmitIDVResponse struct {
	Link string `json:"link,omitempty"`
}

type GetIDVResponse struct {
	Link      string `json:"link,omitempty"`
	Submitted *bool  `json:"submitted,omitempty"`
}

type UserResponse struct {
	ID                  int64  `json:"id"`
	WalletAddress       string `json:"walletAddress"`
	ConsumerCardHolder  bool   `json:"consumerCardHolder"`
	CorporateCardHolder bool   `json:"corporateCardHolder"`
}

type ProvisioningStatus struct {
	IndividualDAOCard *bool `json:"individualDAOCard,omitempty"`
	CorporateDAOCard  *bool `json:"corporateDAOCard,omitempty"`
	ConsumerCard      *bool `json:"consumerCard,omitempty"`
}

type UserStatusResponse struct {
	KYC                string             `json:"kyc"`
	ProvisioningStatus ProvisioningStatus `json:"provisioningStatus"`
}

// AssociateRequest links a verified user to a registered DAO
type AssociateRequest struct {
	DAOID  int64 `json:"daoId" validate:"required"`
	UserID int64 `json:"userId" validate:"required"`
}

// RegisterDAORequest registers a DAO by its multisig.
// multisigAddress is payload here, not routing: registration is API key only.
type RegisterDAORequest struct {
	MultisigAddress string `json:"multisigAddress" validate:"required"`
	OwnerUserID     int64  `json:"ownerUserId" validate:"required"`
}

type RegisterDAOResponse struct {
	DAOID int64 `json:"daoId"`
}

// UpdateDAORequest moves a DAO to a new multisig
type UpdateDAORequest struct {
	MultisigRouting
	NewMultisigAddress string `json:"newMultisigAddress" validate:"required"`
}

// KYBRequest submits a business for verification
type KYBRequest struct {
	AssociatedDAOID int64    `json:"associatedDAOId" validate:"required"`
	LegalName       string   `json:"legalName" validate:"required"`
	EntityType      string   `json:"entityType" validate:"required"`
	Email           string   `json:"email" validate:"required"`
	IDType          string   `json:"idType" validate:"required"`
	IDNumber        string   `json:"idNumber" validate:"required"`
	FormationDate   string   `json:"formationDate" validate:"required"`
	Address         *Address `json:"address" validate:"required"`
	Phone           string   `json:"phone" validate:"required"`
}

type KYBStatusResponse struct {
	Status string `json:"status"`
}

type DAOResponse struct {
	ID                        int64  `json:"id"`
	MultisigAddress           string `json:"multisigAddress"`
	HasSupportedIncorporation bool   `json:"hasSuportedIncorporation"`
	OwnerUserID               int64  `json:"ownerUserId"`
}

type DAOStatusResponse struct {
	KYB                string `json:"kyb"`
	ProvisioningStatus bool   `json:"provisioningStatus"`
}
