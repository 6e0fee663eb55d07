/*
Package store provides the in-memory building blocks of the state layer.

BTreeCacheWrap keeps uncommitted writes in a btree on top of any read only
store and either writes them through a Batch or drops them. Every
transaction runs inside one, which is what makes a failed transaction leave
no trace. MemStore is a cache wrap over an empty store and is what most
tests use as a database.
*/
package store
