// Package index provides Index and CompositeIndex, thin composition
// layers over btree.Tree that associate an ordered key — extracted from
// a caller-supplied record type — with the record itself, the Go
// analogue of the teacher's attribute Index Manager
// (internal/storage/index) generalized to arbitrary record and key
// types instead of one fixed LDAP entry shape.
package index
