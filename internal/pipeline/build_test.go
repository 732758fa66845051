package pipeline

import (
	"image"
	"testing"

	"github.com/ironsheep/sprite-tools/internal/imaging"
	"github.com/ironsheep/sprite-tools/internal/matte"
	"github.com/ironsheep/sprite-tools/internal/segment"
)

func TestBuild_BlankPlaceholders(t *testing.T) {
	img := createSpriteRows([]int{8, 2}, transparent)
	c := Composite{
		Input:  "test.png",
		Layout: segment.Layout{MinStrips: 1, GridRows: 1, GridCols: 8},
		Assets: []Asset{
			{Strip: 0, Kind: KindSheet, Names: []string{"present"}},
			{Strip: 1, Kind: KindIcons, Names: []string{"a", "b", "c"}},
			{Strip: 5, Kind: KindSheet, Names: []string{"absent"}, Frames: 4},
			{Strip: 7, Kind: KindIcons, Names: []string{"d"}},
		},
	}

	staged := Build(img, c, matte.Options{})
	if staged.Matte.Mode != matte.ModeExisting {
		t.Errorf("mode: got %s, want existing", staged.Matte.Mode)
	}
	if len(staged.Segments.Strips) != 2 {
		t.Fatalf("strips: got %d, want 2", len(staged.Segments.Strips))
	}

	tests := []struct {
		name  string
		size  image.Point
		blank bool
	}{
		{"present", image.Pt(2048, 256), false},
		{"a", image.Pt(128, 128), false},
		{"b", image.Pt(128, 128), false},
		{"c", image.Pt(128, 128), true},
		{"absent", image.Pt(1024, 256), true},
		{"d", image.Pt(128, 128), true},
	}
	if len(staged.Assets) != len(tests) {
		t.Fatalf("assets: got %d, want %d", len(staged.Assets), len(tests))
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := staged.Assets[i]
			if a.Name != tt.name {
				t.Fatalf("name: got %s, want %s", a.Name, tt.name)
			}
			if a.Image.Bounds().Size() != tt.size {
				t.Errorf("size: got %v, want %v", a.Image.Bounds().Size(), tt.size)
			}
			if a.Blank != tt.blank {
				t.Errorf("Blank: got %v, want %v", a.Blank, tt.blank)
			}
			if _, visible := imaging.AlphaBounds(a.Image); visible == tt.blank {
				t.Errorf("visible content: got %v, want %v", visible, !tt.blank)
			}
		})
	}
}
