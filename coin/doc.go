/*
Package coin defines Amount, the quantity type used by every balance and
deposit on the chain.

An amount is an unsigned integer of up to 256 bits, counted in the smallest
unit of the asset it measures. It is kept as a canonical decimal string so
that it serializes to protobuf and JSON without loss, and all arithmetic is
done on github.com/holiman/uint256 values.
*/
package coin
