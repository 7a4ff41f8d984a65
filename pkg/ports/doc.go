/*
Package ports defines the driven ports (interfaces) of the conversion layer.

These interfaces keep the value objects decoupled from the remote service
client and from wherever raw payloads come from.

# Key Interfaces

  - Transport: the remote service collaborator. The conversion layer only asks
    it for the wire dialect (SOAP or REST) and to resolve asset references.
  - PayloadSource: supplies raw wire payloads by ID (e.g. Loam fixtures, Memory).
*/
package ports
