// SPDX-License-Identifier: MIT

package matrix

// Test bridge for matrix_test.
//
// Production code only ever grows a Dense from 0×0 and writes mirror pairs, so
// it has no way to build an arbitrary (possibly asymmetric or rectangular)
// grid. The validator tests need exactly those, so this file builds them from
// rows without widening the package API.

// FromRows_TestOnly copies rows into a new Dense. All rows must share one length.
func FromRows_TestOnly(rows [][]float64) *Dense {
	m := &Dense{r: len(rows)}
	if m.r > 0 {
		m.c = len(rows[0])
	}
	m.data = make([]float64, 0, m.r*m.c)
	for _, row := range rows {
		m.data = append(m.data, row...)
	}

	return m
}
