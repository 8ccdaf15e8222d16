// Package catalog owns the rule tables shared by the turn engine: hazard
// tiers and their difficulty classes, encounter chances, loot pools, the
// scenario list and the starting area.
//
// Tables are embedded as YAML and parsed once. Callers read them through the
// package-level helpers, which consult Default.
package catalog
