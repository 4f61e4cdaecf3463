package model

// Station represents a railway station with its geographic
// position.  Coordinates are stored as floating point degrees
// and are used when validating route distances.  This struct
// corresponds to a row in the `stations` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the station.
//  Latitude  – latitude in degrees.
//  Longitude – longitude in degrees.
type Station struct {
	ID        uint64  // stations.id
	Name      string  // stations.name
	Latitude  float64 // stations.latitude
	Longitude float64 // stations.longitude
}
