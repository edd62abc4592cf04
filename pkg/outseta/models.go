package outseta

// Resource carries the fields every remote entity has.
type Resource struct {
	UID     string `json:"Uid,omitempty" yaml:"uid,omitempty"`
	Created Time   `json:"Created"       yaml:"created"`
	Updated Time   `json:"Updated"       yaml:"updated"`
}

// Address is a postal address.
type Address struct {
	Resource `yaml:",inline"`

	AddressLine1 string `json:"AddressLine1,omitempty" yaml:"address_line1,omitempty"`
	AddressLine2 string `json:"AddressLine2,omitempty" yaml:"address_line2,omitempty"`
	AddressLine3 string `json:"AddressLine3,omitempty" yaml:"address_line3,omitempty"`
	City         string `json:"City,omitempty"         yaml:"city,omitempty"`
	State        string `json:"State,omitempty"        yaml:"state,omitempty"`
	PostalCode   string `json:"PostalCode,omitempty"   yaml:"postal_code,omitempty"`
	Country      string `json:"Country,omitempty"      yaml:"country,omitempty"`
}

// Account is a customer organization.
type Account struct {
	Resource `yaml:",inline"`

	Name                string          `json:"Name"                          yaml:"name"`
	ClientIdentifier    string          `json:"ClientIdentifier,omitempty"    yaml:"client_identifier,omitempty"`
	IsDemo              bool            `json:"IsDemo"                        yaml:"is_demo"`
	AccountStage        AccountStage    `json:"AccountStage,omitempty"        yaml:"account_stage,omitempty"`
	AccountStageLabel   string          `json:"AccountStageLabel,omitempty"   yaml:"account_stage_label,omitempty"`
	BillingAddress      *Address        `json:"BillingAddress,omitempty"      yaml:"billing_address,omitempty"`
	MailingAddress      *Address        `json:"MailingAddress,omitempty"      yaml:"mailing_address,omitempty"`
	PersonAccount       []PersonAccount `json:"PersonAccount,omitempty"       yaml:"person_account,omitempty"`
	CurrentSubscription *Subscription   `json:"CurrentSubscription,omitempty" yaml:"current_subscription,omitempty"`
	Subscriptions       []Subscription  `json:"Subscriptions,omitempty"       yaml:"subscriptions,omitempty"`
}

// PersonAccount links a person to an account.
type PersonAccount struct {
	Resource `yaml:",inline"`

	Person    *Person  `json:"Person,omitempty"  yaml:"person,omitempty"`
	Account   *Account `json:"Account,omitempty" yaml:"account,omitempty"`
	IsPrimary bool     `json:"IsPrimary"         yaml:"is_primary"`
}

// Person is an individual contact.
type Person struct {
	Resource `yaml:",inline"`

	Email            string          `json:"Email"                    yaml:"email"`
	FirstName        string          `json:"FirstName,omitempty"      yaml:"first_name,omitempty"`
	LastName         string          `json:"LastName,omitempty"       yaml:"last_name,omitempty"`
	FullName         string          `json:"FullName,omitempty"       yaml:"full_name,omitempty"`
	PhoneMobile      string          `json:"PhoneMobile,omitempty"    yaml:"phone_mobile,omitempty"`
	PhoneWork        string          `json:"PhoneWork,omitempty"      yaml:"phone_work,omitempty"`
	Title            string          `json:"Title,omitempty"          yaml:"title,omitempty"`
	Timezone         string          `json:"Timezone,omitempty"       yaml:"timezone,omitempty"`
	Language         string          `json:"Language,omitempty"       yaml:"language,omitempty"`
	IPAddress        string          `json:"IPAddress,omitempty"      yaml:"ip_address,omitempty"`
	OptInToEmailList bool            `json:"OptInToEmailList"         yaml:"opt_in_to_email_list"`
	MailingAddress   *Address        `json:"MailingAddress,omitempty" yaml:"mailing_address,omitempty"`
	Account          *Account        `json:"Account,omitempty"        yaml:"account,omitempty"`
	PersonAccount    []PersonAccount `json:"PersonAccount,omitempty"  yaml:"person_account,omitempty"`
}

// Activity is one entry of an entity's timeline.
type Activity struct {
	Resource `yaml:",inline"`

	Title        string       `json:"Title"                  yaml:"title"`
	Description  string       `json:"Description,omitempty"  yaml:"description,omitempty"`
	ActivityData string       `json:"ActivityData,omitempty" yaml:"activity_data,omitempty"`
	ActivityType ActivityType `json:"ActivityType"           yaml:"activity_type"`
	EntityType   EntityType   `json:"EntityType"             yaml:"entity_type"`
	EntityUID    string       `json:"EntityUid,omitempty"    yaml:"entity_uid,omitempty"`
	Timestamp    Time         `json:"Timestamp"              yaml:"timestamp"`
}

// PlanFamily groups related plans.
type PlanFamily struct {
	Resource `yaml:",inline"`

	Name     string `json:"Name"     yaml:"name"`
	IsActive bool   `json:"IsActive" yaml:"is_active"`
}

// Plan is a subscription plan.
type Plan struct {
	Resource `yaml:",inline"`

	Name            string      `json:"Name"                  yaml:"name"`
	Description     string      `json:"Description,omitempty" yaml:"description,omitempty"`
	IsActive        bool        `json:"IsActive"              yaml:"is_active"`
	IsPerUser       bool        `json:"IsPerUser"             yaml:"is_per_user"`
	TrialPeriodDays int         `json:"TrialPeriodDays"       yaml:"trial_period_days"`
	MonthlyRate     float64     `json:"MonthlyRate"           yaml:"monthly_rate"`
	QuarterlyRate   float64     `json:"QuarterlyRate"         yaml:"quarterly_rate"`
	AnnualRate      float64     `json:"AnnualRate"            yaml:"annual_rate"`
	SetupFee        float64     `json:"SetupFee"              yaml:"setup_fee"`
	PlanFamily      *PlanFamily `json:"PlanFamily,omitempty"  yaml:"plan_family,omitempty"`
}

// Subscription attaches a plan to an account.
type Subscription struct {
	Resource `yaml:",inline"`

	BillingRenewalTerm int      `json:"BillingRenewalTerm" yaml:"billing_renewal_term"`
	Quantity           int      `json:"Quantity,omitempty" yaml:"quantity,omitempty"`
	StartDate          Time     `json:"StartDate"          yaml:"start_date"`
	EndDate            Time     `json:"EndDate"            yaml:"end_date"`
	RenewalDate        Time     `json:"RenewalDate"        yaml:"renewal_date"`
	Account            *Account `json:"Account,omitempty"  yaml:"account,omitempty"`
	Plan               *Plan    `json:"Plan,omitempty"     yaml:"plan,omitempty"`
}

// Transaction is a billing ledger entry.
type Transaction struct {
	Resource `yaml:",inline"`

	TransactionDate         Time                   `json:"TransactionDate"         yaml:"transaction_date"`
	TransactionType         BillingTransactionType `json:"TransactionType"         yaml:"transaction_type"`
	Amount                  float64                `json:"Amount"                  yaml:"amount"`
	Description             string                 `json:"Description,omitempty"   yaml:"description,omitempty"`
	IsElectronicTransaction bool                   `json:"IsElectronicTransaction" yaml:"is_electronic_transaction"`
	Account                 *Account               `json:"Account,omitempty"       yaml:"account,omitempty"`
}

// Case is a support ticket.
type Case struct {
	Resource `yaml:",inline"`

	Subject    string  `json:"Subject"              yaml:"subject"`
	Body       string  `json:"Body,omitempty"       yaml:"body,omitempty"`
	Status     int     `json:"Status"               yaml:"status"`
	Source     int     `json:"Source,omitempty"     yaml:"source,omitempty"`
	FromPerson *Person `json:"FromPerson,omitempty" yaml:"from_person,omitempty"`
}

// EmailList is a marketing list.
type EmailList struct {
	Resource `yaml:",inline"`

	Name               string `json:"Name"                  yaml:"name"`
	Description        string `json:"Description,omitempty" yaml:"description,omitempty"`
	CountSubscriptions int    `json:"CountSubscriptions"    yaml:"count_subscriptions"`
}

// EmailListSubscription puts a person on an email list.
type EmailListSubscription struct {
	Resource `yaml:",inline"`

	EmailList        *EmailList `json:"EmailList,omitempty"  yaml:"email_list,omitempty"`
	Subscriber       *Person    `json:"Subscriber,omitempty" yaml:"subscriber,omitempty"`
	SubscribedDate   Time       `json:"SubscribedDate"       yaml:"subscribed_date"`
	UnsubscribedDate Time       `json:"UnsubscribedDate"     yaml:"unsubscribed_date"`
}
