// Copyright (c) 2025, FSG Modding.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package thumb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	out, ok := Noop().Convert(context.Background(), []byte{0x01})
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestConverterFunc(t *testing.T) {
	c := ConverterFunc(func(_ context.Context, raw []byte) (string, bool) {
		return DataURI("image/webp", raw), true
	})

	out, ok := c.Convert(context.Background(), []byte("abc"))
	assert.True(t, ok)
	assert.Equal(t, "data:image/webp;base64, YWJj", out)
}
