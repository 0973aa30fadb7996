// Package conv provides small, reflection-based helpers that turn arbitrary Go
// values into key/value pairs and convert between maps and structs. Convert
// performs a best-effort JSON marshal/unmarshal round-trip which is sufficient
// for coercing entries into user defined structs.
package conv
