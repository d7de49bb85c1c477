package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocType string

const (
	DocDNI      DocType = "DNI"
	DocNIE      DocType = "NIE"
	DocPassport DocType = "PASSPORT"
	DocOther    DocType = "OTHER"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type MaritalStatus string

const (
	MaritalSingle          MaritalStatus = "Single"
	MaritalMarried         MaritalStatus = "Married"
	MaritalDivorced        MaritalStatus = "Divorced"
	MaritalWidowed         MaritalStatus = "Widowed"
	MaritalSeparated       MaritalStatus = "Separated"
	MaritalDomesticPartner MaritalStatus = "DomesticPartner"
)

type ExitReason string

const (
	ExitVoluntary ExitReason = "Voluntary"
	ExitBreach    ExitReason = "Breach"
	ExitDeceased  ExitReason = "Deceased"
)

type HolderRole string

const (
	RoleHolder             HolderRole = "Holder"
	RoleCoHolder           HolderRole = "CoHolder"
	RoleAuthorized         HolderRole = "Authorized"
	RoleRepresentative     HolderRole = "Representative"
	RoleAttorney           HolderRole = "Attorney"
	RoleGuardian           HolderRole = "Guardian"
	RoleCourtAdministrator HolderRole = "CourtAdministrator"
	RoleAdministrator      HolderRole = "Administrator"
	RoleHeir               HolderRole = "Heir"
)

type ContractStatus string

const (
	StatusActive    ContractStatus = "Active"
	StatusCancelled ContractStatus = "Cancelled"
	StatusExpired   ContractStatus = "Expired"
	StatusRescinded ContractStatus = "Rescinded"
)

type ContactType string

const (
	ContactEmail ContactType = "email"
	ContactPhone ContactType = "phone"
	ContactFax   ContactType = "fax"
	ContactWeb   ContactType = "web"
)

type TransferReason string

const (
	ReasonPayment  TransferReason = "Payment"
	ReasonGift     TransferReason = "Gift"
	ReasonTransfer TransferReason = "Transfer"
	ReasonRefund   TransferReason = "Refund"
	ReasonOther    TransferReason = "Other"
)

type FraudType string

const (
	FraudPhishing               FraudType = "Phishing"
	FraudIdentityTheft          FraudType = "IdentityTheft"
	FraudSuspiciousTransactions FraudType = "SuspiciousTransactions"
	FraudCard                   FraudType = "CardFraud"
	FraudMoneyLaundering        FraudType = "MoneyLaundering"
	FraudUnauthorizedAccess     FraudType = "UnauthorizedAccess"
)

type FraudStatus string

const (
	FraudUnderInvestigation FraudStatus = "UnderInvestigation"
	FraudBlocked            FraudStatus = "Blocked"
)

// Customer is a live bank customer. Dates are UTC midnight.
type Customer struct {
	ID             string
	DocType        DocType
	DocCode        string
	GivenName      string
	Surname1       string
	Surname2       *string
	Nationality    string
	BirthDate      time.Time
	EnrollmentDate time.Time
	Gender         Gender
	MaritalStatus  MaritalStatus
	EducationLevel string // "01".."06"
	LanguageCode   string // E, C, G, H, A, F
}

// ExCustomer is a former customer; its id never collides with a live one.
type ExCustomer struct {
	Customer
	ExitReason       ExitReason
	ExclusionDate    time.Time
	ReactivationDate *time.Time
}

type Contract struct {
	CustomerID     string
	CompanyCode    string
	BranchCode     string
	ProductCode    string
	SubproductCode string // NoSubproduct unless the product has subproducts
	ContractNumber string
	HolderRole     HolderRole
	OpenDate       time.Time
	CloseDate      time.Time // synth.SentinelDate while Active
	Status         ContractStatus
}

type Contact struct {
	CustomerID  string
	ContactType ContactType
	Value       string
	OpenDate    time.Time
	CloseDate   time.Time // synth.SentinelDate while active
}

type Address struct {
	CustomerID     string
	SequenceNumber int
	Street         string
	City           string
	Region         string
	PostalCode     string
	Country        string
}

type Transfer struct {
	SenderID   string
	ReceiverID string
	Amount     decimal.Decimal
	Timestamp  time.Time
	Reason     TransferReason
}

type FraudHold struct {
	CustomerID         string
	FraudType          FraudType
	Status             FraudStatus
	InclusionTimestamp time.Time
	BlockTimestamp     *time.Time // set iff Status == FraudBlocked
	Note               string
}

// Dataset is the output of one generation run.
type Dataset struct {
	Customers   []Customer
	ExCustomers []ExCustomer
	Contracts   []Contract
	Contacts    []Contact
	Addresses   []Address
	Transfers   []Transfer
	FraudHolds  []FraudHold

	Catalog *Catalog

	Seed           int64
	SeedConfigured bool
	ReferenceDate  time.Time
}
