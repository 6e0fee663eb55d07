/*
Package vault implements time-locked deposits.

A depositor locks an amount of either the native currency or a token for a
chosen duration. Every deposit is recorded as a Bank in a per-depositor
ledger, addressed by a sequential index. The funds can be withdrawn once the
bank matures, or at any time while the owner enabled the emergency unlock
override.

Deposited funds are kept by the vault custody address. The withdrawn flag of
a bank is persisted before the funds leave the custody, so code run by the
recipient during the transfer cannot withdraw the same bank twice.
*/
package vault
