package engine

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sapphirepp/sapphireplot-go/pkg/sapphireplot/models"
)

// pixels converts a pixel count to a canvas length at 96 dpi.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

func rgb(c [3]float64) color.Color {
	return color.RGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: 255,
	}
}

// RenderLineChart renders the series as a line chart PNG at path.
func (l *Local) RenderLineChart(spec ChartSpec, series *models.SampledSeries, path string) error {
	if series.Empty() {
		return fmt.Errorf("line chart %q over empty series: %w", path, models.ErrEmpty)
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	applyFontSize(&p.Title.TextStyle.Font.Size, spec.TitleFontSize)
	applyFontSize(&p.X.Label.TextStyle.Font.Size, spec.AxisTitleFontSize)
	applyFontSize(&p.Y.Label.TextStyle.Font.Size, spec.AxisTitleFontSize)
	applyFontSize(&p.X.Tick.Label.Font.Size, spec.AxisLabelFontSize)
	applyFontSize(&p.Y.Tick.Label.Font.Size, spec.AxisLabelFontSize)
	applyFontSize(&p.Legend.TextStyle.Font.Size, spec.LegendFontSize)
	if spec.LegendSymbolWidth > 0 {
		p.Legend.ThumbnailWidth = vg.Points(spec.LegendSymbolWidth)
	}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	if spec.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for _, style := range spec.Series {
		column, err := series.Column(style.Name)
		if err != nil {
			return err
		}
		var xys plotter.XYs
		for i := range series.X {
			if spec.LogY && column[i] <= 0 {
				continue
			}
			xys = append(xys, plotter.XY{X: series.X[i], Y: column[i]})
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = rgb(style.Color)
		if style.Dashed {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		label := style.Label
		if label == "" {
			label = style.Name
		}
		p.Legend.Add(label, line)
	}

	// Adding a line expands the axis range to fit its data, so a fixed
	// range must be applied after all series are in.
	if spec.YMin != nil {
		p.Y.Min = *spec.YMin
	}
	if spec.YMax != nil {
		p.Y.Max = *spec.YMax
	}

	Logger().Info("save screenshot", "path", path)
	return p.Save(pixels(spec.Width), pixels(spec.Height), path)
}

func applyFontSize(size *vg.Length, points float64) {
	if points > 0 {
		*size = vg.Points(points)
	}
}

// fieldGrid adapts gridded field values to the heat map plotter.
type fieldGrid struct {
	xs, ys []float64
	z      []float64
}

func (g *fieldGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g *fieldGrid) X(c int) float64    { return g.xs[c] }
func (g *fieldGrid) Y(r int) float64    { return g.ys[r] }
func (g *fieldGrid) Z(c, r int) float64 { return g.z[r*len(g.xs)+c] }

// RenderField2D renders the named field as a 2D pseudocolor PNG at path.
func (l *Local) RenderField2D(spec FieldSpec, table *models.PointTable, field, path string) error {
	if table.NumRows() == 0 {
		return fmt.Errorf("field render %q over empty table: %w", path, models.ErrEmpty)
	}
	values, err := table.Field(field)
	if err != nil {
		return err
	}

	grid := gridField(table, values)
	zMin, zMax := grid.z[0], grid.z[0]
	for _, z := range grid.z {
		zMin = math.Min(zMin, z)
		zMax = math.Max(zMax, z)
	}
	if spec.ValueMin != nil {
		zMin = *spec.ValueMin
	}
	if spec.ValueMax != nil {
		zMax = *spec.ValueMax
	}
	if spec.LogScale {
		// Color in log10 space; the color bar shows log10 values.
		floor := smallestPositive(grid.z)
		for i, z := range grid.z {
			grid.z[i] = math.Log10(math.Max(z, floor))
		}
		zMin = math.Log10(math.Max(zMin, floor))
		zMax = math.Log10(math.Max(zMax, floor))
	}
	if zMax <= zMin {
		zMax = zMin + 1
	}

	cm := colorMapByName(spec.ColorMap)
	cm.SetMin(zMin)
	cm.SetMax(zMax)

	heatMap := plotter.NewHeatMap(grid, sampleColorMap(cm, 255))
	heatMap.Min = zMin
	heatMap.Max = zMax

	p := plot.New()
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Add(heatMap)

	if spec.Annotation != "" {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: grid.xs[0], Y: grid.ys[len(grid.ys)-1]}},
			Labels: []string{spec.Annotation},
		})
		if err != nil {
			return err
		}
		p.Add(labels)
	}

	width := pixels(spec.Width)
	height := pixels(spec.Height)
	background := color.Color(rgb(spec.Background))
	if spec.Transparent {
		background = color.NRGBA{}
	}
	img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseBackgroundColor(background))
	canvas := draw.New(img)

	if spec.ColorBar.Show {
		bar := &plotter.ColorBar{ColorMap: cm}
		barPlot := plot.New()
		barPlot.Title.Text = spec.ColorBar.Title
		bar.Vertical = !spec.ColorBar.Horizontal
		barPlot.Add(bar)
		if bar.Vertical {
			barPlot.HideX()
			barWidth := width / 6
			p.Draw(draw.Crop(canvas, 0, -barWidth, 0, 0))
			barPlot.Draw(draw.Crop(canvas, width-barWidth, 0, 0, 0))
		} else {
			barPlot.HideY()
			barHeight := height / 6
			p.Draw(draw.Crop(canvas, 0, 0, barHeight, 0))
			barPlot.Draw(draw.Crop(canvas, 0, 0, 0, barHeight-height))
		}
	} else {
		p.Draw(canvas)
	}

	Logger().Info("save screenshot", "path", path)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return nil
}

// gridField bins the point cloud onto the regular grid spanned by the
// distinct x and y coordinates, assigning each point's value to its cell.
// Cells without a point fall back to the smallest assigned value.
func gridField(table *models.PointTable, values []float64) *fieldGrid {
	var xs, ys []float64
	for i := 0; i < table.NumRows(); i++ {
		p := table.Point(i)
		xs = append(xs, p[0])
		ys = append(ys, p[1])
	}
	xs = uniqueSorted(xs)
	ys = uniqueSorted(ys)

	z := make([]float64, len(xs)*len(ys))
	assigned := make([]bool, len(z))
	for i := 0; i < table.NumRows(); i++ {
		p := table.Point(i)
		cell := nearestIndex(ys, p[1])*len(xs) + nearestIndex(xs, p[0])
		z[cell] = values[i]
		assigned[cell] = true
	}

	fill := math.Inf(1)
	for i, ok := range assigned {
		if ok {
			fill = math.Min(fill, z[i])
		}
	}
	if math.IsInf(fill, 1) {
		fill = 0
	}
	for i, ok := range assigned {
		if !ok {
			z[i] = fill
		}
	}
	return &fieldGrid{xs: xs, ys: ys, z: z}
}

// uniqueSorted sorts values and collapses near-duplicates.
func uniqueSorted(values []float64) []float64 {
	sort.Float64s(values)
	eps := 1e-12
	if n := len(values); n > 1 {
		eps = math.Max(eps, (values[n-1]-values[0])*1e-9)
	}
	out := values[:0]
	for _, v := range values {
		if len(out) == 0 || v-out[len(out)-1] > eps {
			out = append(out, v)
		}
	}
	return out
}

// nearestIndex returns the index of the sorted slice entry closest to v.
func nearestIndex(sorted []float64, v float64) int {
	i := sort.SearchFloat64s(sorted, v)
	if i == len(sorted) {
		return len(sorted) - 1
	}
	if i > 0 && v-sorted[i-1] < sorted[i]-v {
		return i - 1
	}
	return i
}

func smallestPositive(values []float64) float64 {
	smallest := math.Inf(1)
	for _, v := range values {
		if v > 0 && v < smallest {
			smallest = v
		}
	}
	if math.IsInf(smallest, 1) {
		return 1e-300
	}
	return smallest
}

// colorMapByName maps a color map name to its implementation. Unknown names
// fall back to the perceptually uniform default.
func colorMapByName(name string) palette.ColorMap {
	switch strings.ToLower(name) {
	case "", "kindlmann":
		return moreland.Kindlmann()
	case "extended-kindlmann":
		return moreland.ExtendedKindlmann()
	case "black-body":
		return moreland.BlackBody()
	case "extended-black-body":
		return moreland.ExtendedBlackBody()
	case "blue-red", "smooth-blue-red":
		return moreland.SmoothBlueRed()
	default:
		Logger().Warn("unknown color map, using kindlmann", "name", name)
		return moreland.Kindlmann()
	}
}

// sampledPalette is a fixed color list sampled from a color map.
type sampledPalette struct {
	colors []color.Color
}

func (p sampledPalette) Colors() []color.Color { return p.colors }

func sampleColorMap(cm palette.ColorMap, n int) palette.Palette {
	min, max := cm.Min(), cm.Max()
	colors := make([]color.Color, n)
	for i := range colors {
		v := min + (max-min)*float64(i)/float64(n-1)
		c, err := cm.At(v)
		if err != nil {
			c = color.Black
		}
		colors[i] = c
	}
	return sampledPalette{colors: colors}
}
