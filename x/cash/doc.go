/*
Package cash implements the native currency of the chain.

Every address owns at most one wallet holding a balance of the native coin.
The balance may never go below zero. Thus, this implementation is referred
to as cash. Simple and safe.

An address can register a receive hook with the controller. The hook runs
every time native coins land in that address and may execute arbitrary
code, including sending further messages through other handlers.
*/
package cash
