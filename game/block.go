// File: game/block.go
package game

import (
	"github.com/lguibr/dxball/utils"
)

// Color is display-only, channels in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type Block struct {
	Rect
	Alive bool  `json:"alive"`
	Color Color `json:"color"`
}

// NewBlocks lays out the grid row-major, first row closest to the top wall.
// The slice order is the scan order used by collision resolution.
func NewBlocks(cfg utils.Config) []Block {
	rows, cols := cfg.BlockRows, cfg.BlockCols
	width := cfg.BlockWidth()
	blocks := make([]Block, 0, rows*cols)

	colSpan := float64(max(1, cols-1))
	rowSpan := float64(max(1, rows-1))

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			blocks = append(blocks, Block{
				Rect: Rect{
					X: cfg.BlockMarginX + float64(c)*(width+cfg.BlockGapX),
					Y: cfg.WorldHeight - cfg.BlockMarginY - float64(r+1)*(cfg.BlockHeight+cfg.BlockGapY),
					W: width,
					H: cfg.BlockHeight,
				},
				Alive: true,
				// Hue drifts with the column, green cycles diagonally, blue deepens per row
				Color: Color{
					R: utils.Lerp(0.15, 0.85, float64(c)/colSpan),
					G: utils.Lerp(0.15, 0.75, float64((r+c)%cols)/colSpan),
					B: utils.Lerp(0.35, 0.85, float64(r)/rowSpan),
				},
			})
		}
	}
	return blocks
}

// AliveCount returns how many blocks are still standing.
func AliveCount(blocks []Block) int {
	count := 0
	for i := range blocks {
		if blocks[i].Alive {
			count++
		}
	}
	return count
}
