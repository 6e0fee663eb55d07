/*
Package orm maps protobuf models onto the key value store.

A ModelBucket owns every key starting with its name and a colon. It
serializes models with proto.Marshal, validates them before every write and
can expose its content to the query router. Sequence is a monotonic counter
stored under its own key, used both for generating identifiers and for
tracking the length of an append only collection.
*/
package orm
