/*
Package domain contains the shared vocabulary of the conversion layer.

It defines the error kinds raised while converting wire payloads into value
objects and the Asset handle returned by transports. The package has no
dependencies so every other package can import it.

# Error Kinds

  - ErrEmptyValue: a required field is blank or absent.
  - ErrUnacceptableValue: a value is outside its enumerated or typed domain.
  - ErrNonUniqueValue: a duplicate inside a collection that forbids them.
  - ErrNullReference: a required collaborator (e.g. the transport) is nil.

Failures are reported as *ValueError, which unwraps to the kind:

	if errors.Is(err, domain.ErrEmptyValue) {
		// ...
	}
*/
package domain
