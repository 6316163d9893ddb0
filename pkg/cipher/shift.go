/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: shift.go
Description: Single-byte rotation primitives. Letters are rotated inside their own
case, everything else is returned unchanged.
*/

package cipher

// ShiftForward rotates a letter key positions forward, preserving case.
// Non-letters are returned unchanged.
func ShiftForward(c byte, key int) byte {
	i, ok := Index(c)
	if !ok {
		return c
	}
	return byte(mod(i+key, AlphabetSize)) + base(c)
}

// ShiftBackward rotates a letter key positions backward, preserving case.
// Non-letters are returned unchanged.
func ShiftBackward(c byte, key int) byte {
	i, ok := Index(c)
	if !ok {
		return c
	}
	return byte(mod(i-key, AlphabetSize)) + base(c)
}

// mod is the floored modulus; the result is always in [0,m)
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		return r + m
	}
	return r
}
