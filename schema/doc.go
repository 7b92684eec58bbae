// Package schema declares, compiles, and validates configuration
// schemas.
//
// A schema starts as a declaration: a named object with an ordered list
// of fields, each carrying a type shape built from the Type
// constructors (String, Int, List, Union, Literal, ...). Declarations
// are pure data; Compile turns them into an immutable tree of Nodes
// that can validate raw decoded input, coerce it to canonical Go types,
// and synthesize defaults for anything absent.
//
//	nested := schema.NewObject("Nested",
//	    schema.Field("port", schema.Int()).Default(8081).Doc("Server port."),
//	)
//	cfg := schema.NewObject("Config",
//	    schema.Field("unique", schema.String()).Required(),
//	    schema.Field("nested", nested),
//	    schema.Field("mode", schema.Literal("dev", "prod")),
//	)
//	compiled, err := schema.Compile(cfg, nil)
//
// Forward references between named schemas go through a Registry;
// cyclic references are rejected when the schema is compiled, never at
// validation time.
//
// Validation is synchronous and performs no I/O. A compiled Schema is
// read-only and safe to share across goroutines; raw input is never
// mutated, and every error carries the full fieldpath to the offending
// value.
package schema
