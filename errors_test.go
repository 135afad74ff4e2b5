//
//  Copyright 2026 The uvfs authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//  	http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package uvfs_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unionvfs/uvfs"
)

func TestKindIsFsSentinels(t *testing.T) {
	assert.True(t, errors.Is(uvfs.ErrNotFound, fs.ErrNotExist))
	assert.False(t, errors.Is(uvfs.ErrIsADirectory, fs.ErrNotExist))
	assert.True(t, errors.Is(uvfs.ErrOther, fs.ErrInvalid))
}

func TestKindErrorStrings(t *testing.T) {
	assert.Equal(t, "not found", uvfs.ErrNotFound.Error())
	assert.Equal(t, "read-only filesystem", uvfs.ErrReadOnlyFilesystem.Error())
}

func TestPathErrorStrings(t *testing.T) {
	assert.Equal(t, "double slash in path", uvfs.DoubleSlash.Error())
	assert.Equal(t, "called join with a path that was not relative", uvfs.PathNotRelative.Error())
}
