package models

// Chore is a unit of household work. Every chore belongs to exactly one
// household; assignment to a user is optional — an unassigned chore has a
// nil AssignedUser.
type Chore struct {
	// ChoreID is the internal unique identifier of the chore.
	ChoreID int64 `json:"choreid"`

	// Name is the display name of the chore.
	Name string `json:"chorename"`

	// Household is the identifier of the owning household. Required.
	Household int64 `json:"chorehousehold"`

	// AssignedUser is the identifier of the user the chore is assigned to,
	// or nil while unassigned.
	AssignedUser *int64 `json:"choreuser"`
}

// TableName returns the name of the database table
// associated with the Chore model.
func (c Chore) TableName() string {
	return "fs_chores"
}
