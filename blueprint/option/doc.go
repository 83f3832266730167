// Package option provides fluent builders for declaring blueprint options.
//
// Each option has a container shape that decides the accessor surface the
// compiler synthesizes for it:
//
//	option.String("host")                                // scalar
//	option.Strings("lines")                              // ordered sequence
//	option.SetOf("tags", option.TypeString)              // set
//	option.MapOf("headers", option.TypeString, option.TypeString) // mapping
//
// Sequence and set options additionally get a singular adder, named from the
// derived singular form of the option name ("lines" -> AddLine). When the
// heuristic derivation is wrong, override it:
//
//	option.Strings("data").Singular("datum")
//	option.Strings("aliases").SingularMethod("AddAlias")
//
// Provider-driven options discover their values through a provider lookup
// instead of literal assignment:
//
//	option.Strings("certificates").Provider()
package option
