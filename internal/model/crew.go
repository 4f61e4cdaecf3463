package model

// Crew is a crew member who can be assigned to any number of
// journeys.  Membership lives in the `journey_crew` join table
// and is mutable independently of either side.  Corresponds to
// a row in the `crew` table.
//
// Fields:
//  ID        – primary key identifier.
//  FirstName – given name.
//  LastName  – family name.
type Crew struct {
	ID        uint64 // crew.id
	FirstName string // crew.first_name
	LastName  string // crew.last_name
}

// FullName returns the crew member's display name.
func (c Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
