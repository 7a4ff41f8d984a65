/*
Package cascade converts the asset properties of a content management web
service between raw wire payloads and validated value objects.

The service speaks two dialects. SOAP wraps a single repeated value in a
named object ({"fieldValue": {...}}) and several in a named sequence
({"fieldValue": [...]}); REST always uses a bare sequence. Every value
object accepts either shape on input and exports the shape of the
configured mode.

# Packages

  - pkg/property: scalar and collection value objects (Path, Child,
    PossibleValue, AclEntry, FieldValue, DynamicField, Step, ...).
  - pkg/definition: workflow definition XML (steps, actions, triggers).
  - pkg/wire: the SOAP/REST mode and the cardinality helpers.
  - pkg/adapters: an in-memory transport and a Loam fixture source.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/cascade"
		"github.com/aretw0/cascade/pkg/property"
		"github.com/aretw0/cascade/pkg/wire"
	)

	func main() {
		conv, err := cascade.New("", cascade.WithMode(wire.REST))
		if err != nil {
			log.Fatal(err)
		}

		out, err := conv.Convert(property.KindDynamicField, map[string]any{
			"name":        "color",
			"fieldValues": map[string]any{"fieldValue": map[string]any{"value": "red"}},
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
	}
*/
package cascade
