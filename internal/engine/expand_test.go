package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printlab/internal/catalog"
	"github.com/piwi3910/printlab/internal/model"
)

func testEngine() *Engine {
	return New(catalog.Default())
}

func TestExpand_LargePrintQuantity(t *testing.T) {
	e := testEngine()
	items, err := e.Expand(model.OrderLine{Code: "810", Quantity: 3, Images: []string{"12"}})

	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, 1, item.Quantity, "multiplicity is repeated items, not a counter")
		assert.Equal(t, model.KindLargePrint, item.Kind)
		assert.Equal(t, "8x10", item.Size)
		assert.Equal(t, []string{"0012"}, item.Images)
		assert.Equal(t, "810-matte", item.Slug)
	}
	assert.NotEqual(t, items[0].ID, items[1].ID, "expanded items are independent values")
}

func TestExpand_WalletSheetOneItemPerSheet(t *testing.T) {
	e := testEngine()
	items, err := e.Expand(model.OrderLine{Code: "WAL", Quantity: 3, Images: []string{"7"}})

	require.NoError(t, err)
	require.Len(t, items, 3, "one item per sheet, never per print inside it")
	assert.Equal(t, model.SheetMulti, items[0].SheetType)
}

func TestExpand_PairSheetKeepsOneRepresentativeCode(t *testing.T) {
	e := testEngine()
	items, err := e.Expand(model.OrderLine{Code: "57P", Quantity: 2, Images: []string{"31", "32"}})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, model.SheetPair, items[0].SheetType)
	assert.Equal(t, []string{"0031"}, items[0].Images)
}

func TestExpand_TrioPadsAndTruncatesToThree(t *testing.T) {
	e := testEngine()

	short, err := e.Expand(model.OrderLine{Code: "TRIO", Quantity: 1, Images: []string{"1"}})
	require.NoError(t, err)
	require.Len(t, short, 1)
	assert.Equal(t, []string{"0001", "", ""}, short[0].Images)

	long, err := e.Expand(model.OrderLine{Code: "TRIO", Quantity: 1, Images: []string{"1", "2", "3", "4"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"0001", "0002", "0003"}, long[0].Images)
}

func TestExpand_TrioColorsComeFromCatalogOnly(t *testing.T) {
	e := testEngine()
	items, err := e.Expand(model.OrderLine{Code: "TRIO", Quantity: 1, Images: []string{"1", "2", "3"}})

	require.NoError(t, err)
	assert.Equal(t, "gray", items[0].MatColor)
	assert.Equal(t, "black", items[0].FrameColor)
	assert.False(t, items[0].Framed, "trio frame color is a catalog default, not an allocation")
}

func TestExpand_ComplimentaryFlagged(t *testing.T) {
	e := testEngine()
	items, err := e.Expand(model.OrderLine{Code: "DIR", Quantity: 1, Images: []string{"5"}})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Complimentary)
}

func TestExpand_CarriesArtistAndRetouchFlags(t *testing.T) {
	e := testEngine()
	items, err := e.Expand(model.OrderLine{Code: "810", Quantity: 1, Images: []string{"9"}, Artist: true, Retouch: true})

	require.NoError(t, err)
	assert.True(t, items[0].Artist)
	assert.True(t, items[0].Retouch)
}

func TestExpand_UnknownCodeSkipPolicy(t *testing.T) {
	e := testEngine()
	items, err := e.Expand(model.OrderLine{Code: "NOPE", Quantity: 1})

	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestExpand_UnknownCodeFailPolicy(t *testing.T) {
	e := testEngine()
	e.Settings.UnknownCode = UnknownFail

	_, err := e.Expand(model.OrderLine{Code: "NOPE", Quantity: 1})
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestExpand_MalformedLine(t *testing.T) {
	e := testEngine()
	_, err := e.Expand(model.OrderLine{Code: "810", Quantity: 0})
	assert.Error(t, err)
}

func TestExpandAll_DropsBadLinesWithWarnings(t *testing.T) {
	e := testEngine()
	items, warnings, err := e.expandAll([]model.OrderLine{
		{Code: "810", Quantity: 1, Images: []string{"1"}},
		{Code: "810", Quantity: 0},
		{Code: "NOPE", Quantity: 2},
		{Code: "WAL", Quantity: 2, Images: []string{"2"}},
	})

	require.NoError(t, err)
	assert.Len(t, items, 3, "good lines survive bad neighbors")
	assert.Len(t, warnings, 2)
}

func TestDirectoryPoseInjection(t *testing.T) {
	e := testEngine()

	line, ok := e.directoryPoseLine("17")
	require.True(t, ok)
	assert.Equal(t, "DIR", line.Code)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, []string{"0017"}, line.Images)

	_, ok = e.directoryPoseLine("")
	assert.False(t, ok, "no pose reference, no injection")
}

func TestDirectoryPoseRequiresComplimentaryKind(t *testing.T) {
	e := New(catalog.New([]model.ProductSpec{
		{Code: "DIR", Kind: model.KindLargePrint, Group: "8x10"},
	}))

	_, ok := e.directoryPoseLine("17")
	assert.False(t, ok, "pose product must be a complimentary kind in the catalog")
}
