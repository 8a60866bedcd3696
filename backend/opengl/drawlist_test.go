package opengl

import (
	"testing"

	"github.com/go-theft-auto/nk"
	"github.com/google/go-cmp/cmp"
)

func newList(t *testing.T) *DrawList {
	t.Helper()
	dl := AcquireDrawList()
	t.Cleanup(func() { ReleaseDrawList(dl) })
	return dl
}

func positions(verts []Vertex) [][2]float32 {
	out := make([][2]float32, len(verts))
	for i, v := range verts {
		out[i] = v.Pos
	}
	return out
}

func TestDrawListFilledRect(t *testing.T) {
	dl := newList(t)
	dl.AddCommand(nk.Command{Type: nk.CommandRectFilled, Rect: nk.Rect{X: 1, Y: 2, W: 3, H: 4}, Color: nk.ColorRed})
	dl.Finalize()

	want := [][2]float32{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	if diff := cmp.Diff(want, positions(dl.VtxBuffer)); diff != "" {
		t.Errorf("Vertex mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer); diff != "" {
		t.Errorf("Index mismatch (-want +got):\n%s", diff)
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("Expected one draw call of 6 indices, got %+v", dl.CmdBuffer)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := newList(t)
	dl.AddCommand(nk.Command{Type: nk.CommandRectFilled, Rect: nk.Rect{W: 3, H: 4}})
	dl.AddCommand(nk.Command{Type: nk.CommandLine, Points: []nk.Vec2{{}, {X: 5}}, LineThickness: 1})
	dl.Finalize()
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("Expected nothing drawn for transparent colors, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawListScissorSplitsCommands(t *testing.T) {
	dl := newList(t)
	rect := nk.Command{Type: nk.CommandRectFilled, Rect: nk.Rect{W: 5, H: 5}, Color: nk.ColorWhite}
	dl.AddCommand(rect)
	dl.AddCommand(nk.Command{Type: nk.CommandScissor, Rect: nk.Rect{W: 10, H: 20}})
	dl.AddCommand(rect)
	dl.AddCommand(nk.Command{Type: nk.CommandScissor, Rect: nk.Rect{W: 10, H: 20}})
	dl.AddCommand(rect)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 draw calls, got %d", len(dl.CmdBuffer))
	}
	second := dl.CmdBuffer[1]
	if second.ClipRect != [4]float32{0, 0, 10, 20} {
		t.Errorf("Expected the scissor as clip rect, got %v", second.ClipRect)
	}
	if dl.CmdBuffer[0].ElemCount != 6 || second.ElemCount != 12 || second.IndexOffset != 6 {
		t.Errorf("Unexpected index ranges: %+v", dl.CmdBuffer)
	}
	// indices restart for every draw call
	if dl.IdxBuffer[6] != 0 {
		t.Errorf("Expected indices relative to the draw call, got %d", dl.IdxBuffer[6])
	}
}

func TestDrawListText(t *testing.T) {
	dl := newList(t)
	dl.Atlas = NewAtlasImage()
	dl.AddCommand(nk.Command{
		Type:   nk.CommandText,
		Rect:   nk.Rect{X: 10, Y: 20, W: 100, H: 13},
		Text:   "A→",
		Height: 13,
		Color:  nk.ColorWhite,
	})
	dl.Finalize()

	if len(dl.VtxBuffer) != 8 {
		t.Fatalf("Expected two glyph quads, got %d vertices", len(dl.VtxBuffer))
	}
	if got := dl.VtxBuffer[4].Pos; got != [2]float32{17, 20} {
		t.Errorf("Expected the second glyph one cell to the right, got %v", got)
	}
	u0, v0, _, _ := dl.Atlas.UV('A')
	if got := dl.VtxBuffer[0].TexCoord; got != [2]float32{u0, v0} {
		t.Errorf("Expected the UV of 'A', got %v", got)
	}
	if u0 != 1.0/16 || v0 != 2.0/6 {
		t.Errorf("Expected 'A' in column 1 row 2, got (%v, %v)", u0, v0)
	}
}

func TestDrawListTextWithoutAtlas(t *testing.T) {
	dl := newList(t)
	dl.AddCommand(nk.Command{Type: nk.CommandText, Text: "hi", Height: 13, Color: nk.ColorWhite})
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("Expected text to be skipped without an atlas")
	}
}

func TestDrawListImageRegion(t *testing.T) {
	dl := newList(t)
	dl.AddCommand(nk.Command{
		Type:  nk.CommandImage,
		Rect:  nk.Rect{W: 16, H: 8},
		Color: nk.ColorWhite,
		Image: nk.Image{Handle: 5, W: 64, H: 32, Region: [4]uint16{16, 8, 16, 8}},
	})
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].TextureID != 5 {
		t.Fatalf("Expected one draw call on texture 5, got %+v", dl.CmdBuffer)
	}
	want := [][2]float32{{0.25, 0.25}, {0.5, 0.25}, {0.5, 0.5}, {0.25, 0.5}}
	var got [][2]float32
	for _, v := range dl.VtxBuffer {
		got = append(got, v.TexCoord)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UV mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawListCustomCallback(t *testing.T) {
	dl := newList(t)
	cb := func(nk.Rect, any) {}
	dl.AddCommand(nk.Command{Type: nk.CommandCustom, Rect: nk.Rect{W: 4, H: 4}, Callback: cb, UserData: "scene"})
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("Expected the callback to survive Finalize, got %d commands", len(dl.CmdBuffer))
	}
	if c := dl.CmdBuffer[0]; c.Callback == nil || c.UserData != "scene" || c.ElemCount != 0 {
		t.Errorf("Unexpected callback command %+v", c)
	}
}

func TestDrawListFromContext(t *testing.T) {
	ctx := nk.New(nk.WithFont(nk.MonoFont{CellWidth: 7, LineHeight: 13}))
	defer ctx.Free()

	ctx.InputBegin()
	ctx.InputEnd()
	if ctx.Begin("demo", nk.Rect{W: 200, H: 100}, nk.WindowBorder|nk.WindowTitle) {
		ctx.LayoutRowDynamic(30, 1)
		ctx.Button("ok")
	}
	ctx.End()

	dl := newList(t)
	dl.Atlas = NewAtlasImage()
	dl.AddCommands(ctx.Commands())
	dl.Finalize()
	ctx.Clear()

	if len(dl.IdxBuffer) == 0 || len(dl.CmdBuffer) == 0 {
		t.Fatalf("Expected triangles for the frame")
	}
	var total uint32
	for _, c := range dl.CmdBuffer {
		total += c.ElemCount
	}
	if int(total) != len(dl.IdxBuffer) {
		t.Errorf("Expected draw calls to cover all %d indices, got %d", len(dl.IdxBuffer), total)
	}
}
