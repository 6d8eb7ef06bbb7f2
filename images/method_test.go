package images

import (
	"testing"

	"github.com/nfnt/resize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name string
		want Method
	}{
		{"NEAREST", Nearest},
		{"BILINEAR", Bilinear},
		{"BICUBIC", Bicubic},
		{"LANCZOS", Lanczos},
		{"ANTIALIAS", Lanczos},
		{"lanczos", Lanczos},
		{"Bicubic", Bicubic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMethodUnknown(t *testing.T) {
	_, err := ParseMethod("BOX")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BOX")
}

func TestMethodFilter(t *testing.T) {
	assert.Equal(t, resize.NearestNeighbor, Nearest.Filter())
	assert.Equal(t, resize.Bilinear, Bilinear.Filter())
	assert.Equal(t, resize.Bicubic, Bicubic.Filter())
	assert.Equal(t, resize.Lanczos3, Lanczos.Filter())
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "LANCZOS", Lanczos.String())
	assert.Equal(t, "NEAREST", Nearest.String())
}
