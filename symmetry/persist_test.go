// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package symmetry_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symtensor/symmetry"
)

func TestSaveLoad(t *testing.T) {
	c, err := symmetry.NewConfiguration(4,
		symmetry.Group{Positions: []int{0, 1}, Kind: symmetry.Antisymmetric},
		symmetry.Group{Positions: []int{2, 3}, Kind: symmetry.Antisymmetric},
	)
	require.NoError(t, err)
	l, err := symmetry.NewLayout(c, 4)
	require.NoError(t, err)

	s := symmetry.NewStorage[float64](l)
	require.NoError(t, s.Set(1.5, 1, 0, 3, 2))
	require.NoError(t, s.Set(-2, 0, 2, 1, 3))

	path := filepath.Join(t.TempDir(), "riemann.sym")
	require.NoError(t, symmetry.Save(path, s, map[string]string{"name": "riemann"}))

	got, h, err := symmetry.Load[float64](path)
	require.NoError(t, err)
	assert.Equal(t, "riemann", h.Metadata["name"])
	want, err := s.Dense()
	require.NoError(t, err)
	have, err := got.Dense()
	require.NoError(t, err)
	assert.Equal(t, want, have)

	v, err := got.At(0, 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.5, v)
}

func TestWriteRead_WrongType(t *testing.T) {
	c, err := symmetry.NewConfiguration(1, symmetry.Group{Positions: []int{0}, Kind: symmetry.Free})
	require.NoError(t, err)
	l, err := symmetry.NewLayout(c, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, symmetry.Write(&buf, symmetry.NewStorage[int32](l), nil))
	_, _, err = symmetry.Read[float32](&buf)
	assert.ErrorIs(t, err, symmetry.ErrDTypeMismatch)
}

func TestStorageFrom(t *testing.T) {
	c, err := symmetry.NewConfiguration(2, symmetry.Group{Positions: []int{0, 1}, Kind: symmetry.Symmetric})
	require.NoError(t, err)
	l, err := symmetry.NewLayout(c, 2)
	require.NoError(t, err)

	data := []int{1, 2, 3}
	s, err := symmetry.StorageFrom(l, data)
	require.NoError(t, err)
	v01, err := s.At(0, 1)
	require.NoError(t, err)
	v10, err := s.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, v01, v10)

	_, err = symmetry.StorageFrom(l, []int{1, 2})
	assert.ErrorIs(t, err, symmetry.ErrDataLength)
}
