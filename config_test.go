/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

package sl1scheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobConfigPlain(t *testing.T) {
	config, err := ParseJobConfig([]byte(testConfig))
	require.NoError(t, err)

	jobDir, ok := config.Lookup("jobDir")
	assert.True(t, ok)
	assert.Equal(t, "tower", jobDir)

	numFast, err := config.Int("numFast")
	require.NoError(t, err)
	assert.Equal(t, 3, numFast)
}

func TestParseJobConfigSectioned(t *testing.T) {
	content := `[layerRenderParams]
jobDir = my_print
numFast = 5
`
	config, err := ParseJobConfig([]byte(content))
	require.NoError(t, err)

	jobDir, ok := config.Lookup("jobDir")
	assert.True(t, ok)
	assert.Equal(t, "my_print", jobDir)

	numFast, err := config.Int("numFast")
	require.NoError(t, err)
	assert.Equal(t, 5, numFast)
}

func TestJobConfigLookupInsensitive(t *testing.T) {
	config, err := ParseJobConfig([]byte("NumFast = 7\n"))
	require.NoError(t, err)

	numFast, err := config.Int("numFast")
	require.NoError(t, err)
	assert.Equal(t, 7, numFast)
}

func TestJobConfigLookupMissing(t *testing.T) {
	config, err := ParseJobConfig([]byte(testConfig))
	require.NoError(t, err)

	_, ok := config.Lookup("missingKey")
	assert.False(t, ok)

	_, err = config.Int("missingKey")
	assert.Error(t, err)
}

func TestJobConfigIntInvalid(t *testing.T) {
	config, err := ParseJobConfig([]byte("numFast = many\n"))
	require.NoError(t, err)

	_, err = config.Int("numFast")
	assert.Error(t, err)
}

func TestJobConfigAll(t *testing.T) {
	config, err := ParseJobConfig([]byte("jobDir = tower\nnumFast = 3\n"))
	require.NoError(t, err)

	assert.Equal(t, []KeyValue{
		{"jobDir", "tower"},
		{"numFast", "3"},
	}, config.All())
}
