/*
Package x contains the extensions of the hodl chain.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together in the app package to construct
the application.

This package itself only defines how an extension learns who signed the
transaction it is processing. Handlers take an Authenticator in their
constructor so that tests can plug in a mock instead of real signatures.
*/
package x
