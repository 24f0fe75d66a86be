package render

import (
	"bufio"
	"io"

	"github.com/midbel/plot"
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const currentColour = "currentColor"

// Canvas paints the geometry produced by a plot.Chart of the same size
// and padding as an SVG document.
type Canvas struct {
	Title   string
	Width   float64
	Height  float64
	Padding plot.Padding
	Palette Palette

	WithValues bool
	WithLegend bool
	Marker     Marker
	MarkerSize float64
}

func FromChart(c plot.Chart) Canvas {
	return Canvas{
		Width:      c.Width,
		Height:     c.Height,
		Padding:    c.Padding,
		Palette:    Tableau10,
		MarkerSize: DefaultMarkerSize,
	}
}

func (c Canvas) markerSize() float64 {
	if c.MarkerSize <= 0 {
		return DefaultMarkerSize
	}
	return c.MarkerSize
}

func (c Canvas) drawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Canvas) drawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Canvas) Pie(w io.Writer, ch plot.PieChart) error {
	area := c.getArea("pie")
	for i, s := range ch.Sectors {
		if s.Empty() {
			continue
		}
		pat := getPath(s.Path)
		pat.Title = s.Label
		pat.Fill = svg.NewFill(c.Palette.Color(s.Style, i))
		if s.Full && ch.Pie.InnerRadius > 0 {
			pat.Fill.Rule = "evenodd"
		}
		area.Append(pat.AsElement())
	}
	if c.WithValues {
		for _, v := range ch.Values {
			s := ch.Sectors[v.Index]
			if s.Empty() {
				continue
			}
			txt := getValueText(v.Text, s.Anchor.X, s.Anchor.Y)
			area.Append(txt.AsElement())
		}
	}
	if c.WithLegend {
		var names []legendItem
		for i, s := range ch.Sectors {
			names = append(names, legendItem{Name: s.Style.Name, Color: c.Palette.Color(s.Style, i)})
		}
		area.Append(c.drawLegend(names))
	}
	return c.render(w, area)
}

func (c Canvas) Bar(w io.Writer, ch plot.BarChart) error {
	area := c.getArea("bar")
	grouped := len(ch.Bars) > len(ch.Categories)
	for _, b := range ch.Bars {
		var (
			el    svg.Rect
			index = b.Index
		)
		if grouped {
			index = b.Serie
		}
		el.Title = b.Label
		el.Pos = svg.NewPos(b.X, b.Y)
		el.Dim = svg.NewDim(b.Width, b.Height)
		el.Fill = svg.NewFill(c.Palette.Color(b.Style, index))
		area.Append(el.AsElement())
	}
	if c.WithValues {
		for _, v := range ch.Values {
			b := ch.Bars[v.Index]
			txt := getValueText(v.Text, b.X+b.Width/2, v.Position-FontSize*0.4)
			txt.Baseline = "auto"
			area.Append(txt.AsElement())
		}
	}
	base := ch.Scale.Baseline()
	line := svg.NewLine(svg.NewPos(0, base), svg.NewPos(c.drawingWidth(), base))
	line.Stroke = svg.NewStroke("black", 1)
	area.Append(line.AsElement())

	doc := c.getDocument()
	doc.Append(c.drawAxis(ch.Grid, ch.Categories))
	doc.Append(area.AsElement())
	return c.flush(w, doc)
}

func (c Canvas) Line(w io.Writer, ch plot.LineChart) error {
	var (
		area  = c.getArea("line")
		items []legendItem
	)
	for i, ln := range ch.Lines {
		var (
			color = c.Palette.Color(ln.Style, i)
			grp   = getBaseGroup(color, "line")
			pat   = getPath(ln.Path)
		)
		grp.Id = ln.Style.Name
		pat.Fill = svg.NewFill("none")
		pat.Stroke = svg.NewStroke(color, 1)
		grp.Append(pat.AsElement())
		if c.Marker != nil {
			for _, pt := range ln.Points {
				grp.Append(c.Marker(svg.NewPos(pt.X, pt.Y), c.markerSize(), color))
			}
		}
		if ln.Style.Name != "" && len(ln.Points) > 0 {
			pt := slices.Lst(ln.Points)
			txt := getLineText(ln.Style.Name, pt.X, pt.Y)
			grp.Append(txt.AsElement())
		}
		area.Append(grp.AsElement())
		items = append(items, legendItem{Name: ln.Style.Name, Color: color})
	}
	if c.WithLegend {
		area.Append(c.drawLegend(items))
	}
	doc := c.getDocument()
	doc.Append(c.drawAxis(ch.Grid, ch.Categories))
	doc.Append(area.AsElement())
	return c.flush(w, doc)
}

func (c Canvas) render(w io.Writer, area svg.Group) error {
	doc := c.getDocument()
	doc.Append(area.AsElement())
	return c.flush(w, doc)
}

func (c Canvas) flush(w io.Writer, doc svg.SVG) error {
	bw := bufio.NewWriter(w)
	doc.Render(bw)
	return bw.Flush()
}

func (c Canvas) getDocument() svg.SVG {
	doc := svg.NewSVG()
	doc.Dim = svg.NewDim(c.Width, c.Height)
	doc.OmitProlog = true
	if c.Title != "" {
		doc.Title = c.Title
	}
	return doc
}

func (c Canvas) getArea(class string) svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area", class)
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Canvas) drawAxis(grid, categories []plot.Label) svg.Element {
	var g svg.Group
	g.Id = "axis"

	left := Axis{
		Orientation:    OrientLeft,
		Labels:         grid,
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithOuterTicks: true,
	}
	bottom := Axis{
		Orientation:    OrientBottom,
		Labels:         categories,
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
	el := left.Render(c.drawingHeight(), c.drawingWidth(), c.Padding.Left, c.Padding.Top)
	g.Append(el)
	el = bottom.Render(c.drawingWidth(), c.drawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
	g.Append(el)
	return g.AsElement()
}

type legendItem struct {
	Name  string
	Color string
}

func (c Canvas) drawLegend(items []legendItem) svg.Element {
	var (
		offset = FontSize * 1.4
		width  float64
		grp    svg.Group
	)
	grp.Class = append(grp.Class, "legend")
	for i, it := range items {
		if n := float64(len(it.Name)); n > width {
			width = n
		}
		var g svg.Group
		g.Transform = svg.Translate(0, float64(i)*offset)
		li := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(20, 0))
		li.Stroke = svg.NewStroke(it.Color, 2)

		tx := svg.NewText(it.Name)
		tx.Pos = svg.NewPos(30, 0)
		tx.Font = svg.NewFont(FontSize)
		tx.Baseline = "middle"

		g.Append(li.AsElement())
		g.Append(tx.AsElement())
		grp.Append(g.AsElement())
	}
	width = width*FontSize*0.6 + 30
	grp.Transform = svg.Translate(c.drawingWidth()-width, offset/2)
	return grp.AsElement()
}

func getPath(p plot.Path) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	for _, s := range p {
		pos := svg.NewPos(s.To.X, s.To.Y)
		switch s.Op {
		case plot.OpMove:
			pat.AbsMoveTo(pos)
		case plot.OpLine:
			pat.AbsLineTo(pos)
		case plot.OpArc:
			pat.AbsArcTo(pos, s.RX, s.RY, 0, s.Large, s.Sweep)
		case plot.OpClose:
			pat.ClosePath()
		}
	}
	return pat
}

func getValueText(str string, x, y float64) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x, y)
	txt.Anchor = "middle"
	txt.Baseline = "middle"
	return txt
}

func getLineText(str string, x, y float64) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x+FontSize*0.4, y)
	txt.Anchor = "start"
	txt.Baseline = "middle"
	return txt
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
