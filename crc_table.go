// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package multicrc

import "github.com/klauspost/crc32"

// castagnoliTable is shared with the crc32 package so Update can use its
// hardware-accelerated path.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// Table is a 256-word table representing a reflected polynomial for
// byte-at-a-time processing.
type Table[T Register] [256]T

// MakeTable allocates and constructs a Table for the specified reflected
// polynomial.
func MakeTable[T Register](poly T) *Table[T] {
	t := new(Table[T])
	populateTable(poly, t)
	return t
}

// populateTable fills t with the bit-serial reduction of every byte value.
func populateTable[T Register](poly T, t *Table[T]) {
	for i := 0; i < 256; i++ {
		t[i] = Update(0, poly, []byte{byte(i)})
	}
}

// UpdateTable updates crc with p using a table previously built by MakeTable.
// The result is the same as Update with the table's polynomial.
func UpdateTable[T Register](crc T, tab *Table[T], p []byte) T {
	c := uint32(crc)
	for _, v := range p {
		c = uint32(tab[byte(c)^v]) ^ (c >> 8)
	}
	return T(c)
}

// updateTable32 is the table-driven 32-bit path. The IEEE and Castagnoli
// polynomials go through the crc32 package, which inverts the register on
// entry and exit.
func updateTable32(crc, poly uint32, p []byte) uint32 {
	switch poly {
	case crc32.IEEE:
		return ^crc32.Update(^crc, crc32.IEEETable, p)
	case crc32.Castagnoli:
		return ^crc32.Update(^crc, castagnoliTable, p)
	}
	return UpdateTable(crc, MakeTable(poly), p)
}
