// Package wire models the plain payload shapes exchanged with the remote
// content-management service.
//
// The service speaks two dialects. SOAP nests a lone repeated value inside a
// named wrapper object and sends a sequence under the same wrapper when there
// are several; REST always sends a bare sequence. The Cardinal type captures
// the "absent / single / many" distinction at the decoding boundary so value
// objects can normalise immediately to an ordered slice, and Expand re-creates
// the mode-specific shape on export.
//
//	c := wire.Classify(payload["fieldValues"], "fieldValue")
//	for _, item := range c.Items {
//	    // ...
//	}
//	out := wire.Expand(wire.SOAP, "fieldValue", items)
//
// The mode is always an explicit argument. Nothing in this package keeps it
// as ambient state.
package wire
