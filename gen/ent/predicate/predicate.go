// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FishSpecies is the predicate function for fishspecies builders.
type FishSpecies func(*sql.Selector)

// FishingRegulation is the predicate function for fishingregulation builders.
type FishingRegulation func(*sql.Selector)

// RegulationDocument is the predicate function for regulationdocument builders.
type RegulationDocument func(*sql.Selector)

// WaterBody is the predicate function for waterbody builders.
type WaterBody func(*sql.Selector)
