// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode int

func (m *mode) UnmarshalText(text []byte) error {
	*m = mode(len(text))
	return nil
}

type inner struct {
	Scale float32 `default:"1.5"`
}

type testConfig struct {
	Name       string `default:"mesh"`
	Resolution int    `default:"8"`
	Verbose    bool   `default:"true"`
	Mode       mode   `default:"abc"`
	Count      uint16 `default:"3"`
	Untagged   int
	Inner      inner
}

func TestSetFromDefaultTags(t *testing.T) {
	cfg := &testConfig{Untagged: 7}
	require.NoError(t, SetFromDefaultTags(cfg))
	assert.Equal(t, "mesh", cfg.Name)
	assert.Equal(t, 8, cfg.Resolution)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, mode(3), cfg.Mode)
	assert.Equal(t, uint16(3), cfg.Count)
	assert.Equal(t, 7, cfg.Untagged)
	assert.Equal(t, float32(1.5), cfg.Inner.Scale)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(nil))
	assert.Error(t, SetFromDefaultTags(testConfig{}))
	n := 3
	assert.Error(t, SetFromDefaultTags(&n))

	type bad struct {
		Resolution int `default:"eight"`
	}
	err := SetFromDefaultTags(&bad{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Resolution"))
}

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))
	assert.Nil(t, NonPointerType(nil))
}
