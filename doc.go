/*
Package hodl defines the interfaces shared by every part of the time-locked
deposit vault application, as well as implementations of the simpler
components (when interfaces would be too much overhead).

Context is passed through context.Context between the ABCI application,
decorators and handlers. This package defines the keys used to store block
information, such as height, time and chain id, as well as the logger. Each
extension may add its own keys to enrich the context.

For every value XYZ of type T stored in the context there are two functions:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting it.
*/
package hodl
