// Package gen provides deterministic Go code generation for per-target cast
// functions.
//
// Generation approach uses text/template + go/format. Each requested target
// type gets one function, generic in its source type:
//
//	func ToUint8[From Integer](v From) option.Option[uint8]
//
// The functions are thin wrappers over cast.To, so the bound logic stays in one
// place while callers get a named entry point per target type. The output can
// live inside package cast itself or in any other package importing it.
package gen
