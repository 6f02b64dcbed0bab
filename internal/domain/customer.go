package domain

import "time"

// Rent status values commonly assigned to customers. The column is free text;
// these are the values the system itself writes.
const (
	RentStatusActive = "ACTIVE"
	RentStatusClosed = "CLOSED"
)

// CustomerResolution selects how CreateOrder resolves the customer row.
type CustomerResolution string

const (
	// CustomerAlwaysInsert creates a new customer row unconditionally, even
	// when the phone number matches an existing one. Duplicate rows are
	// accepted on this path.
	CustomerAlwaysInsert CustomerResolution = "ALWAYS_INSERT"
	// CustomerFindOrCreateByPhone looks up an existing customer by exact
	// phone match and updates its mutable fields in place; inserts only when
	// no match exists.
	CustomerFindOrCreateByPhone CustomerResolution = "FIND_OR_CREATE_BY_PHONE"
)

type Customer struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	AltPhone   string    `json:"alt_phone"`
	Address    string    `json:"address"`
	RentStatus string    `json:"rent_status"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}
