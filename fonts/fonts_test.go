package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	for _, name := range []FontName{Regular, Title, Mono} {
		assert.NotNil(t, name.Get(), "font %s", name)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
	assert.Panics(t, func() { FontName("broken").Get() })
}
