package transforms

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/gomlx/pkg/core/tensors/images"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/sketchdata/pkg/imagedata"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestResizeCrop(t *testing.T) {
	for _, size := range []image.Point{{40, 20}, {20, 40}, {16, 16}, {7, 13}} {
		out := ResizeCrop(8)(newImage(size.X, size.Y, color.White))
		assert.Equalf(t, image.Pt(8, 8), out.Bounds().Size(), "input size %s", size)
	}
}

func TestResizeAndGrayscale(t *testing.T) {
	out := Resize(6, 4)(newImage(3, 3, color.White))
	assert.Equal(t, image.Pt(6, 4), out.Bounds().Size())

	gray := Grayscale()(newImage(2, 2, color.NRGBA{R: 255, A: 255}))
	r, g, b, _ := gray.At(0, 0).RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestChainAndThen(t *testing.T) {
	var order []string
	step := func(name string) Step {
		return func(img image.Image) image.Image {
			order = append(order, name)
			return img
		}
	}
	img := newImage(2, 2, color.White)
	got, err := Chain(step("a"), step("b"))(img)
	require.NoError(t, err)
	assert.Same(t, img, got)
	assert.Equal(t, []string{"a", "b"}, order)

	width := func(img image.Image) (int, error) { return img.Bounds().Dx(), nil }
	w, err := Then(Chain(Resize(5, 5)), width)(img)
	require.NoError(t, err)
	assert.Equal(t, 5, w)

	failing := func(image.Image) (image.Image, error) { return nil, errors.New("first failed") }
	_, err = Then[int](failing, width)(img)
	require.Error(t, err)
}

func TestToTensor(t *testing.T) {
	toTensor := ToTensor(images.ToTensor(dtypes.Float32))
	tensor, err := toTensor(newImage(4, 2, color.White))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3}, tensor.Shape().Dimensions)
	assert.Equal(t, dtypes.Float32, tensor.DType())
	values := tensor.Value().([][][]float32)
	assert.InDelta(t, 1.0, values[1][3][2], 1e-6)

	// Alpha channel.
	tensor, err = ToTensor(images.ToTensor(dtypes.Float32).WithAlpha())(newImage(1, 1, color.Black))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 4}, tensor.Shape().Dimensions)
}

func TestFolderWithTensors(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.png", "a.png"} {
		f, err := os.Create(filepath.Join(root, name))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, newImage(10, 6, color.White)))
		require.NoError(t, f.Close())
	}
	ds, err := imagedata.NewFolderDataset(
		imagedata.Folder(root).WithExtension("png"),
		Then(Chain(ResizeCrop(4)), ToTensor(images.ToTensor(dtypes.Float32))))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	tensor, err := ds.At(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 3}, tensor.Shape().Dimensions)

	// The datasets of tensors can be fed to the GoMLX adapter.
	td := imagedata.NewTrainDataset("sketches", ds)
	_, inputs, _, err := td.Yield()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4, 3}, inputs[0].Shape().Dimensions)
}
