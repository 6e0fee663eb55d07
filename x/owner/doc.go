/*
Package owner keeps the identity of the chain administrator.

The owner is stored as a gconf configuration. It is set from the genesis
file and can only be handed over by the current owner.
*/
package owner
