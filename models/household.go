package models

// Household groups users and chores. The name is free text and not unique.
type Household struct {
	// HouseholdID is the internal unique identifier of the household.
	HouseholdID int64 `json:"householdid"`

	// Name is the display name of the household.
	Name string `json:"householdname"`
}

// TableName returns the name of the database table
// associated with the Household model.
func (h Household) TableName() string {
	return "fs_households"
}
