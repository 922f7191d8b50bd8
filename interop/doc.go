// Package interop bridges setting trees and common document formats.
//
// The conversions are value-level: YAML mappings and TOML tables become
// groups, sequences become arrays or lists depending on element
// homogeneity, and scalars map to the corresponding setting kinds.
// Display hints such as hex integer formatting do not survive the trip
// through a foreign document format.
package interop
