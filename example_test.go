package cascade_test

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/aretw0/cascade"
	"github.com/aretw0/cascade/pkg/property"
	"github.com/aretw0/cascade/pkg/wire"
)

// ExampleConverter_Convert turns a SOAP dynamic field into its REST shape.
func ExampleConverter_Convert() {
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

	data, _ := json.Marshal(out)
	fmt.Println(string(data))
	// Output: {"fieldValues":[{"value":"red"}],"name":"color"}
}
