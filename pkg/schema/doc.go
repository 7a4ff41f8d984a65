// Package schema provides the small type system used to validate wire values
// before they are assigned to value objects.
//
// It defines built-in types for strings, non-blank strings, strict booleans,
// enumerations and nested objects. A Schema maps wire keys to types:
//
//	s := schema.Schema{
//	    "level": schema.Enum("read", "write"),
//	    "type":  schema.Enum("user", "group"),
//	    "name":  schema.NonBlank(),
//	}
//
//	if err := schema.ValidatePresent(s, payload); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // ...
//	    }
//	}
//
// Validate treats every key as required and ValidateFields only the named
// ones. ValidatePresent skips absent and null keys, which matches how optional
// wire attributes behave.
//
// The package depends only on the standard library.
package schema
