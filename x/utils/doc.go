/*
Package utils contains the decorators every hodl transaction passes
through: panic recovery, logging, action tagging and savepoints.
*/
package utils
