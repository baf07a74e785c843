package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printlab/internal/catalog"
	"github.com/piwi3910/printlab/internal/model"
)

func TestAssemble_ComplimentaryLargePrintsSortLast(t *testing.T) {
	e := testEngine()

	a := largePrint("8x10")
	a.Complimentary = true
	a.Kind = model.KindComplimentary
	a.DisplayName = "A"
	b := largePrint("8x10")
	b.DisplayName = "B"
	c := largePrint("8x10")
	c.Complimentary = true
	c.Kind = model.KindComplimentary
	c.DisplayName = "C"
	d := largePrint("8x10")
	d.DisplayName = "D"

	out := e.Assemble([]model.PrintItem{a, b, c, d})

	require.Len(t, out, 4)
	names := []string{out[0].DisplayName, out[1].DisplayName, out[2].DisplayName, out[3].DisplayName}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names, "stable partition, complimentary last")
}

func TestAssemble_OthersPrecedeLargePrints(t *testing.T) {
	e := testEngine()

	wallet := model.NewPrintItem("WAL", "wal-glossy", model.KindWalletSheet, []string{"0001"})
	wallet.SheetType = model.SheetMulti
	wallet.DisplayName = "Wallet"
	large := largePrint("8x10")
	large.DisplayName = "Large"

	out := e.Assemble([]model.PrintItem{large, wallet})

	assert.Equal(t, "Wallet", out[0].DisplayName)
	assert.Equal(t, "Large", out[1].DisplayName)
}

func TestAssemble_FallbackDisplayName(t *testing.T) {
	e := testEngine()
	item := largePrint("8x10")
	item.DisplayName = ""

	out := e.Assemble([]model.PrintItem{item})

	assert.Equal(t, e.Settings.FallbackDisplayName, out[0].DisplayName)
}

func TestRun_FullOrderFlow(t *testing.T) {
	e := New(catalog.Default())

	result, err := e.Run(Order{
		Lines: []model.OrderLine{
			{Code: "810", Quantity: 2, Images: []string{"12"}},
			{Code: "57P", Quantity: 2, Images: []string{"31"}},
			{Code: "WAL", Quantity: 1, Images: []string{"12"}},
		},
		DirectoryPose: "44",
		Frames: []model.FrameRequest{
			{FrameNo: "F1", Quantity: 1, Description: "8x10 cherry"},
			{FrameNo: "F2", Quantity: 1, Description: "5x7 white"},
		},
	})

	require.NoError(t, err)
	// 1 injected complimentary + 2 large + 1 wallet + 5x7 group
	// (4 exploded singles -> 1 framed + 1 repacked pair + 1 leftover).
	require.Len(t, result.Items, 7)

	var framed, comp int
	for _, item := range result.Items {
		if item.Framed {
			framed++
		}
		if item.Complimentary {
			comp++
		}
	}
	assert.Equal(t, 2, framed, "one 8x10 and one 5x7 single framed")
	assert.Equal(t, 1, comp)

	// Complimentary directory print sorts last.
	last := result.Items[len(result.Items)-1]
	assert.True(t, last.Complimentary)
	assert.Equal(t, []string{"0044"}, last.Images)

	assert.Empty(t, result.UnmetDemands())
	assert.Empty(t, result.Warnings)
}

func TestRun_BestEffortWithBadInput(t *testing.T) {
	e := New(catalog.Default())

	result, err := e.Run(Order{
		Lines: []model.OrderLine{
			{Code: "810", Quantity: 1, Images: []string{"1"}},
			{Code: "MYSTERY", Quantity: 1},
			{Code: "", Quantity: 3},
		},
		Frames: []model.FrameRequest{
			{FrameNo: "F1", Quantity: 2, Description: "no size here"},
			{FrameNo: "F2", Quantity: 9, Description: "8x10 cherry"},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1, "order continues past bad lines")
	assert.Len(t, result.Warnings, 3)

	unmet := result.UnmetDemands()
	require.Len(t, unmet, 1)
	assert.Equal(t, 8, unmet[0].Residual())
}

func TestRun_UnknownCodeFailPolicySurfaces(t *testing.T) {
	e := NewWithSettings(catalog.Default(), Settings{
		UnknownCode:         UnknownFail,
		PairSize:            "5x7",
		FallbackDisplayName: "Print Item",
	})

	_, err := e.Run(Order{
		Lines: []model.OrderLine{{Code: "MYSTERY", Quantity: 1}},
	})

	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestRun_SecondRunWithExhaustedDemandsIsNoop(t *testing.T) {
	e := New(catalog.Default())

	order := Order{
		Lines: []model.OrderLine{{Code: "810", Quantity: 1, Images: []string{"1"}}},
		Frames: []model.FrameRequest{
			{FrameNo: "F1", Quantity: 1, Description: "8x10 cherry"},
		},
	}

	first, err := e.Run(order)
	require.NoError(t, err)

	// The caller's frame requests were never mutated, so an independent
	// second run reproduces the same allocation.
	second, err := e.Run(order)
	require.NoError(t, err)

	require.Len(t, second.Items, len(first.Items))
	assert.Equal(t, first.Demands[0].Assigned, second.Demands[0].Assigned)

	// Re-running allocation against the already exhausted demand set
	// changes nothing.
	items := append([]model.PrintItem(nil), first.Items...)
	e.Allocate(items, first.Demands, first.Inventory)
	assert.Equal(t, first.Items, items)
}

func TestRun_NoFramesPassesThrough(t *testing.T) {
	e := New(catalog.Default())

	result, err := e.Run(Order{
		Lines: []model.OrderLine{{Code: "57P", Quantity: 3, Images: []string{"7"}}},
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 3)
	for _, item := range result.Items {
		assert.Equal(t, model.SheetPair, item.SheetType, "no demand, pairs stay pairs")
	}
}
