/*
Package hodltest provides mocks and helpers for testing hodl extensions.

It contains no assertions of its own, see the assert sub package.
*/
package hodltest
