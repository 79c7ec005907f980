// Package eager maintains profile-scoped mappings between struct
// properties and uses them to build dotted eager-load include paths
// for a query.
//
// A caller registers, once per profile, that a property on one type
// corresponds to a property on another type. When issuing a query, a
// flat list of property selectors is walked against those mappings and
// each resolved counterpart is appended to a chained include directive
// on the query. Executing the query, and honoring the include paths,
// is the job of the query implementation, not of this package.
package eager

// DefaultProfile is the profile used by every operation that is not
// given an explicit profile name. It is always addressable, even when
// no mapping was ever added to it.
const DefaultProfile = "Default"

// MaxRecursionLevel bounds how many levels deep an [IncludeBuilder]
// follows matched selectors when the builder does not set its own
// MaxDepth. Change it before building includes, not concurrently with.
var MaxRecursionLevel = 3
