// Package bitset provides a fixed-capacity packed bitset for sieve masks.
//
// Architecture:
//   - One segment of 32768 bits (512 uint64 words = 4096 bytes)
//   - Value type: a Mask can be embedded or allocated once and reused
//   - Not thread-safe: each Mask has a single writer; concurrent readers
//     are fine once writes stop
//
// Used internally for:
//   - The divisor mask (compositeness of odd integers below 65536)
//   - Per-block prime masks of the segmented sieve
package bitset
