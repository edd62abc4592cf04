package outseta

import "strconv"

// Filter is a typed, resource-specific list filter. Its name and wire value
// are contracts of the remote API.
type Filter interface {
	FilterName() string
	WireValue() string
}

// AccountStage filters accounts by lifecycle stage.
type AccountStage int

// Account stages as numbered by the remote API.
const (
	AccountStageDemo         AccountStage = 1
	AccountStageTrialing     AccountStage = 2
	AccountStageSubscribing  AccountStage = 3
	AccountStageCancelling   AccountStage = 4
	AccountStageExpired      AccountStage = 5
	AccountStageTrialExpired AccountStage = 6
	AccountStagePastDue      AccountStage = 7
)

// FilterName implements Filter.
func (AccountStage) FilterName() string { return "AccountStage" }

// WireValue implements Filter.
func (s AccountStage) WireValue() string { return strconv.Itoa(int(s)) }

// ActivityType filters activities by what happened.
type ActivityType int

// Activity types as numbered by the remote API.
const (
	ActivityTypeAccountCreated      ActivityType = 1
	ActivityTypeAccountUpdated      ActivityType = 2
	ActivityTypePersonCreated       ActivityType = 3
	ActivityTypePersonUpdated       ActivityType = 4
	ActivityTypeSubscriptionAdded   ActivityType = 5
	ActivityTypeSubscriptionChanged ActivityType = 6
	ActivityTypeEmailSent           ActivityType = 7
	ActivityTypeCustom              ActivityType = 8
)

// FilterName implements Filter.
func (ActivityType) FilterName() string { return "ActivityType" }

// WireValue implements Filter.
func (t ActivityType) WireValue() string { return strconv.Itoa(int(t)) }

// EntityType filters activities by the kind of entity they concern.
type EntityType int

// Entity types as numbered by the remote API.
const (
	EntityTypeAccount EntityType = 1
	EntityTypePerson  EntityType = 2
	EntityTypeDeal    EntityType = 3
)

// FilterName implements Filter.
func (EntityType) FilterName() string { return "EntityType" }

// WireValue implements Filter.
func (t EntityType) WireValue() string { return strconv.Itoa(int(t)) }

// BillingTransactionType filters billing transactions.
type BillingTransactionType string

// Billing transaction types.
const (
	BillingTransactionInvoice    BillingTransactionType = "Invoice"
	BillingTransactionPayment    BillingTransactionType = "Payment"
	BillingTransactionCredit     BillingTransactionType = "Credit"
	BillingTransactionRefund     BillingTransactionType = "Refund"
	BillingTransactionChargeback BillingTransactionType = "Chargeback"
)

// FilterName implements Filter.
func (BillingTransactionType) FilterName() string { return "BillingTransactionType" }

// WireValue implements Filter.
func (t BillingTransactionType) WireValue() string { return string(t) }
