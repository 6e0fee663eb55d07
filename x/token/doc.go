/*
Package token implements fungible token contracts.

Each contract is identified by an address derived from its sequence number
and tracks balances and allowances of holders. The semantics follow the
ERC-20 standard: a holder can transfer its balance, approve a spender, and
a spender can transfer up to the approved amount from the holder's balance.
*/
package token
