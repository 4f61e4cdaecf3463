package model

// Route connects a source station to a destination station.
// Source and destination must differ, and the stored distance
// must be at least the straight-line distance between the two
// stations.  This struct corresponds to a row in the `routes`
// table.
//
// Fields:
//  ID            – primary key identifier.
//  SourceID      – station the route starts from.
//  DestinationID – station the route ends at.
//  Distance      – length of the route in kilometres.
type Route struct {
	ID            uint64 // routes.id
	SourceID      uint64 // routes.source_station_id
	DestinationID uint64 // routes.destination_station_id
	Distance      int64  // routes.distance
}

// RouteLabel builds the display label for a route from its
// endpoint station names, e.g. "Kyiv-Lviv".
func RouteLabel(source, destination string) string {
	return source + "-" + destination
}
