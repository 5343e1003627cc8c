// Package union gives declared error sets a runtime representation so
// partial handlers over them can be checked for coverage when they are
// registered.
//
// A Set enumerates the concrete variants a sealed error interface admits,
// witnessed by example values. A handler built over a Set resolves some
// variants and defers the rest into a remaining set:
// - Declare: enumerate the variants of a set, one witness per variant
// - NewHandler/On/Build: bind resolutions per variant, verify coverage
// - Set.Describe: render the set as a tree for diagnostics
//
// Build faults immediately, as a trop violation, if any declared variant is
// neither resolved nor a member of the remaining set. The built handler
// plugs directly into trop.HandleSome.
package union
