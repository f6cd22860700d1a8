// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package symmetry provides compact storage layouts for tensors with
// symmetric and antisymmetric index groups.
//
// # Overview
//
// A tensor of rank R over dimension D has D^R elements. When groups of its
// indices are symmetric (value order irrelevant) or antisymmetric (value order
// matters up to sign, repeated values force zero), only a fraction of those
// elements are independent. This package:
//   - Enumerates every way to partition R index positions into symmetric and
//     antisymmetric blocks plus free axes (Enumerate, All)
//   - Computes the compact storage length (TotalSize, SizeExpression)
//   - Maps an index tuple to a signed storage offset (Layout.Rank)
//   - Stores tensors compactly (Storage) and persists them (Save, Load)
//
// # Basic Usage
//
//	c, _ := symmetry.NewConfiguration(3,
//	    symmetry.Group{Positions: []int{0, 1}, Kind: symmetry.Antisymmetric},
//	    symmetry.Group{Positions: []int{2}, Kind: symmetry.Free},
//	)
//	layout, _ := symmetry.NewLayout(c, 4)
//	fmt.Println(layout.Size()) // C(4,2) * 4 = 24
//
//	off, _ := layout.Rank(2, 1, 3)
//	fmt.Println(off.Index(), off.Sign()) // slot and orientation
//
// # Offsets
//
// An Offset is either Zero, for elements that are identically zero because an
// antisymmetric block repeats a value, or a slot with a sign. Offset.Encode
// gives the signed integer form used by generated code: 0 for Zero and
// ±(slot+1) otherwise.
//
// # Persistence
//
// Save and Write store a Storage in the .sym format: a fixed header with a
// SHA-256 checksum of the data, a JSON header recording the configuration,
// dimension and element type, then the compact slots. Load and Read rebuild
// the layout from the file, so only the element type must be known.
//
// # Generated Code
//
// The symgen command renders one generic storage type per configuration.
// Generated code depends only on this package (Scalar, Canonicalize, Choose,
// CheckIndices and ErrZeroSlot).
package symmetry
