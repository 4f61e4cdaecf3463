package model

// TrainType categorises trains (e.g. express, intercity).
// Names are unique.  Corresponds to a row in the
// `train_types` table.
//
// Fields:
//  ID   – primary key identifier.
//  Name – unique type name.
type TrainType struct {
	ID   uint64 // train_types.id
	Name string // train_types.name
}

// Train describes a physical train composed of a number of
// cargos (cars) with a fixed number of places per cargo.  The
// total seat count is derived, never stored.  Corresponds to a
// row in the `trains` table.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the train.
//  CargoNum      – number of cargos; unique across trains.
//  PlacesInCargo – seats per cargo.
//  TrainTypeID   – reference into train_types.
//  ImagePath     – stored image location (null when absent).
type Train struct {
	ID            uint64  // trains.id
	Name          string  // trains.name
	CargoNum      int64   // trains.cargo_num
	PlacesInCargo int64   // trains.places_in_cargo
	TrainTypeID   uint64  // trains.train_type_id
	ImagePath     *string // trains.image_path (nullable)
}

// SeatsInTrain returns the total seat capacity of the train.
func (t Train) SeatsInTrain() int64 {
	return t.CargoNum * t.PlacesInCargo
}
