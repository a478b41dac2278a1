// Package types defines the identity contract shared by every stored entity,
// the entity types themselves (clients, services, expenses, appointments and
// revenues), the field parsers that validate user-supplied values, and the
// standard error values for homebiz.
package types
