package chart

import (
	"encoding/json"
	"fmt"
)

type jsonChart struct {
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle"`
	Mode       string        `json:"mode"`
	Categories []string      `json:"categories"`
	Palette    Palette       `json:"palette"`
	Outline    []jsonPoint   `json:"outline"`
	Labels     []jsonLabel   `json:"labels"`
	Ticks      []jsonTick    `json:"ticks"`
	Plot       jsonPlotFrame `json:"plot"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonLabel struct {
	ID       string  `json:"id"`
	Index    int     `json:"index"`
	Text     string  `json:"text"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	X        float64 `json:"x"` // chart coordinates
	Y        float64 `json:"y"`
	PX       float64 `json:"px"` // pixel center
	PY       float64 `json:"py"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

type jsonTick struct {
	Value float64 `json:"value"`
	PY    float64 `json:"py"`
}

type jsonPlotFrame struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// RenderJSON describes the drawn chart in pixel space, for clients that
// draw it themselves.
func RenderJSON(c Chart, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(c, opts...)
	f := newFrame(c.bounds(), r.width, r.height)

	out := jsonChart{
		Width:      r.width,
		Height:     r.height,
		Title:      r.title,
		Subtitle:   c.Subtitle(),
		Mode:       string(c.Mode),
		Categories: c.Categories,
		Palette:    r.palette,
		Outline:    make([]jsonPoint, 0, len(c.Outline)),
		Labels:     make([]jsonLabel, 0, len(c.Labels)),
		Plot:       jsonPlotFrame{f.plot.MinX, f.plot.MinY, f.plot.MaxX, f.plot.MaxY},
	}
	for _, p := range outlinePoints(c, f) {
		out.Outline = append(out.Outline, jsonPoint{X: p.X, Y: p.Y})
	}
	for i, b := range r.boxes(c, f) {
		l := c.Labels[i]
		out.Labels = append(out.Labels, jsonLabel{
			ID: b.ID, Index: l.Index, Text: b.Text, Category: b.Category, Color: b.Color,
			X: l.X, Y: l.Y, PX: b.CX, PY: b.CY, Width: b.W, Height: b.H,
		})
	}
	for _, v := range f.ticks() {
		out.Ticks = append(out.Ticks, jsonTick{Value: v, PY: f.y(v)})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}
