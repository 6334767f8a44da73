// Package compositekey implements ordered, multi-component keys for
// CompositeIndex, the Go analogue of the teacher's C++ origin's
// CompositeKey<Keys...> variadic template. Go has no variadic generic
// tuple types, so a composite key here is a slice of Component values
// compared component by component in declared order, rather than a
// fixed-arity templated struct.
package compositekey
