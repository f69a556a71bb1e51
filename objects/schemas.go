// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objects

import (
	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/props"
)

const (
	defaultFontName = "*"

	lineStyles = "{-}|--|:|-.|none"
	markers    = "{none}|s|o|x|+|.|*|<|>|v|^|d|p|h|@"
	fontAngles = "{normal}|italic|oblique"
	eraseModes = "{normal}|none|xor|background"
	autoManual = "{auto}|manual"
)

func shaped(name string, a *array.Array, dims ...int) Spec {
	return spec(name, func() props.Value { return props.NewArray(a).AddShape(dims...) })
}

func mustMatrix(rows [][]float64) *array.Array {
	a, err := array.Matrix(rows)
	if err != nil {
		panic(err)
	}
	return a
}

// jet returns the n-entry jet colormap as an nx3 array.
func jet(n int) *array.Array {
	a := array.New(array.Double, n, 3)
	clamp := func(v float64) float64 { return min(1, max(0, v)) }
	for i := range n {
		x := float64(i) / float64(max(n-1, 1))
		a.Set(i, clamp(1.5-abs(4*x-3)))
		a.Set(n+i, clamp(1.5-abs(4*x-2)))
		a.Set(2*n+i, clamp(1.5-abs(4*x-1)))
	}
	return a
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

var defaultColorOrder = mustMatrix([][]float64{
	{0, 0, 1}, {0, 0.5, 0}, {1, 0, 0}, {0, 0.75, 0.75},
	{0.75, 0, 0.75}, {0.75, 0.75, 0}, {0.25, 0.25, 0.25},
})

func baseSpecs() []Spec {
	return []Spec{
		boolean("beingdeleted", false),
		radio("busyaction", "{queue}|cancel"),
		callback("buttondownfcn", nil),
		spec("children", func() props.Value { return props.NewChildren(nil) }),
		boolean("clipping", true),
		callback("createfcn", nil),
		callback("deletefcn", nil),
		radio("handlevisibility", "{on}|callback|off"),
		boolean("hittest", true),
		boolean("interruptible", true),
		hnd("parent"),
		boolean("selected", false),
		boolean("selectionhighlight", true),
		str("tag", ""),
		str("type", "").With(ReadOnly),
		anyValue("userdata", nil),
		boolean("visible", true),
		boolean("__modified__", true).With(Hidden | NoToolkit),
		hnd("__myhandle__").With(Hidden | ReadOnly | NoToolkit),
		hnd("uicontextmenu"),
	}
}

func kindSpecs(k Kind) []Spec {
	switch k {
	case KindRoot:
		return rootSpecs()
	case KindFigure:
		return figureSpecs()
	case KindAxes:
		return axesSpecs()
	case KindLine:
		return lineSpecs()
	case KindText:
		return textSpecs()
	case KindImage:
		return imageSpecs()
	case KindPatch:
		return patchSpecs()
	case KindSurface:
		return surfaceSpecs()
	case KindGroup:
		return groupSpecs()
	case KindUIMenu:
		return []Spec{
			anyValue("__object__", nil),
			str("accelerator", ""),
			callback("callback", nil),
			boolean("checked", false),
			boolean("enable", true),
			color("foregroundcolor", 0, 0, 0, ""),
			str("label", ""),
			double("position", 9),
			boolean("separator", false),
			str("fltk_label", "").With(Hidden),
		}
	case KindUIContextMenu:
		return []Spec{
			anyValue("__object__", nil),
			callback("callback", nil),
			shaped("position", zeros(1, 2), 1, 2),
		}
	case KindUIControl:
		return uicontrolSpecs()
	case KindUIPanel:
		return uipanelSpecs()
	case KindUIToolbar:
		return []Spec{
			anyValue("__object__", nil),
		}
	case KindUIPushTool:
		return []Spec{
			anyValue("__object__", nil),
			arr("cdata", array.Empty()),
			callback("clickedcallback", nil),
			boolean("enable", true),
			boolean("separator", false),
			str("tooltipstring", ""),
		}
	case KindUIToggleTool:
		return []Spec{
			anyValue("__object__", nil),
			arr("cdata", array.Empty()),
			callback("clickedcallback", nil),
			boolean("enable", true),
			callback("offcallback", nil),
			callback("oncallback", nil),
			boolean("separator", false),
			boolean("state", false),
			str("tooltipstring", ""),
		}
	}
	return nil
}

func rootSpecs() []Spec {
	return []Spec{
		hnd("callbackobject").With(ReadOnly),
		arr("commandwindowsize", zeros(1, 2)).With(ReadOnly),
		hnd("currentfigure"),
		boolean("diary", false),
		str("diaryfile", "diary"),
		boolean("echo", false),
		radio("format", "+|bank|bit|debug|hex|long|longe|longeng|longg|native-bit|native-hex|rational|{short}|shorte|shorteng|shortg"),
		radio("formatspacing", "{loose}|compact"),
		str("language", "ascii"),
		arr("monitorpositions", zeros(1, 4)),
		arr("pointerlocation", zeros(1, 2)),
		double("pointerwindow", 0),
		double("recursionlimit", 256),
		double("screendepth", 24).With(ReadOnly),
		double("screenpixelsperinch", 96).With(ReadOnly),
		arr("screensize", array.Row(1, 1, 1920, 1080)).With(ReadOnly),
		boolean("showhiddenhandles", false),
		radio("units", "inches|centimeters|normalized|points|{pixels}"),
	}
}

func figureSpecs() []Spec {
	return []Spec{
		anyValue("__plot_stream__", nil).With(Hidden),
		boolean("__enhanced__", true).With(Hidden),
		radio("nextplot", "new|{add}|replacechildren|replace"),
		callback("closerequestfcn", "closereq"),
		hnd("currentaxes"),
		shaped("colormap", jet(64), -1, 3),
		radio("paperorientation", "{portrait}|landscape|rotated"),
		color("color", 1, 1, 1, "none"),
		arr("alphamap", ones(64, 1)),
		str("currentcharacter", "").With(ReadOnly),
		hnd("currentobject").With(ReadOnly),
		arr("currentpoint", zeros(2, 1)).With(ReadOnly),
		boolean("dockcontrols", false),
		boolean("doublebuffer", true),
		str("filename", ""),
		boolean("integerhandle", true),
		boolean("inverthardcopy", false),
		callback("keypressfcn", nil),
		callback("keyreleasefcn", nil),
		radio("menubar", "none|{figure}"),
		double("mincolormap", 64),
		str("name", ""),
		boolean("numbertitle", true),
		shaped("outerposition", array.Row(-1, -1, -1, -1), 1, 4),
		radio("paperunits", "{inches}|centimeters|normalized|points"),
		shaped("paperposition", array.Row(0.25, 2.5, 8, 6), 1, 4),
		radio("paperpositionmode", "auto|{manual}"),
		shaped("papersize", array.Row(8.5, 11), 1, 2),
		radio("papertype", "{usletter}|uslegal|a0|a1|a2|a3|a4|a5|b0|b1|b2|b3|b4|b5|arch-a|arch-b|arch-c|arch-d|arch-e|a|b|c|d|e|tabloid|<custom>"),
		radio("pointer", "crosshair|fullcrosshair|{arrow}|ibeam|watch|topl|topr|botl|botr|left|top|right|bottom|circle|cross|fleur|custom|hand"),
		arr("pointershapecdata", zeros(16, 16)),
		arr("pointershapehotspot", zeros(1, 2)),
		shaped("position", array.Row(300, 200, 560, 420), 1, 4),
		radio("renderer", "{painters}|zbuffer|opengl|none"),
		radio("renderermode", autoManual),
		boolean("resize", true),
		callback("resizefcn", nil),
		radio("selectiontype", "{normal}|open|alt|extend"),
		radio("toolbar", "none|{auto}|figure"),
		radio("units", "inches|centimeters|normalized|points|{pixels}|characters"),
		callback("windowbuttondownfcn", nil),
		callback("windowbuttonmotionfcn", nil),
		callback("windowbuttonupfcn", nil),
		callback("windowbuttonwheelfcn", nil),
		radio("windowstyle", "{normal}|modal|docked"),
		str("wvisual", ""),
		radio("wvisualmode", autoManual),
		str("xdisplay", ""),
		str("xvisual", ""),
		radio("xvisualmode", autoManual),
		str("__graphics_toolkit__", ""),
		anyValue("__guidata__", nil).With(Hidden),
	}
}

func axesSpecs() []Spec {
	gridStyles := "-|--|{:}|-.|none"
	ticks := []float64{0, 0.2, 0.4, 0.6, 0.8, 1}
	return []Spec{
		shaped("position", array.Row(0.13, 0.11, 0.775, 0.815), 1, 4),
		boolean("box", true),
		shaped("colororder", defaultColorOrder, -1, 3),
		shaped("dataaspectratio", array.Row(1, 1, 1), 1, 3).With(Mode),
		radio("dataaspectratiomode", autoManual),
		radio("layer", "{bottom}|top"),
		lim("xlim").With(Mode),
		lim("ylim").With(Mode),
		lim("zlim").With(Mode),
		lim("clim").With(Mode),
		lim("alim").With(Mode),
		radio("xlimmode", autoManual).With(Limits),
		radio("ylimmode", autoManual).With(Limits),
		radio("zlimmode", autoManual).With(Limits),
		radio("climmode", autoManual).With(Limits),
		radio("alimmode", autoManual),
		hnd("xlabel"),
		hnd("ylabel"),
		hnd("zlabel"),
		hnd("title"),
		boolean("xgrid", false),
		boolean("ygrid", false),
		boolean("zgrid", false),
		boolean("xminorgrid", false),
		boolean("yminorgrid", false),
		boolean("zminorgrid", false),
		row("xtick", ticks...).With(Mode),
		row("ytick", ticks...).With(Mode),
		row("ztick", ticks...).With(Mode),
		radio("xtickmode", autoManual),
		radio("ytickmode", autoManual),
		radio("ztickmode", autoManual),
		boolean("xminortick", false),
		boolean("yminortick", false),
		boolean("zminortick", false),
		anyValue("xticklabel", []string{}).With(Mode),
		anyValue("yticklabel", []string{}).With(Mode),
		anyValue("zticklabel", []string{}).With(Mode),
		radio("xticklabelmode", autoManual),
		radio("yticklabelmode", autoManual),
		radio("zticklabelmode", autoManual),
		radio("interpreter", "tex|{none}|latex"),
		color("color", 1, 1, 1, "none"),
		color("xcolor", 0, 0, 0, ""),
		color("ycolor", 0, 0, 0, ""),
		color("zcolor", 0, 0, 0, ""),
		radio("xscale", "{linear}|log").With(Limits),
		radio("yscale", "{linear}|log").With(Limits),
		radio("zscale", "{linear}|log").With(Limits),
		radio("xdir", "{normal}|reverse"),
		radio("ydir", "{normal}|reverse"),
		radio("zdir", "{normal}|reverse"),
		radio("yaxislocation", "{left}|right|zero"),
		radio("xaxislocation", "{bottom}|top|zero"),
		arr("view", array.Row(0, 90)),
		boolean("__hold_all__", false).With(Hidden),
		radio("nextplot", "new|add|replacechildren|{replace}"),
		shaped("outerposition", array.Row(0, 0, 1, 1), 1, 4),
		radio("activepositionproperty", "{outerposition}|position"),
		color("ambientlightcolor", 1, 1, 1, ""),
		shaped("cameraposition", zeros(1, 3), 1, 3).With(Mode),
		shaped("cameratarget", zeros(1, 3), 1, 3).With(Mode),
		arr("cameraupvector", array.Empty()).With(Mode),
		double("cameraviewangle", 10).With(Mode),
		radio("camerapositionmode", autoManual),
		radio("cameratargetmode", autoManual),
		radio("cameraupvectormode", autoManual),
		radio("cameraviewanglemode", autoManual),
		arr("currentpoint", zeros(2, 3)),
		radio("drawmode", "{normal}|fast"),
		radio("fontangle", fontAngles),
		str("fontname", defaultFontName),
		double("fontsize", 10),
		radio("fontunits", "{points}|normalized|inches|centimeters|pixels"),
		radio("fontweight", "{normal}|light|demi|bold"),
		radio("gridlinestyle", gridStyles),
		strArray("linestyleorder", "-"),
		double("linewidth", 0.5),
		radio("minorgridlinestyle", gridStyles),
		shaped("plotboxaspectratio", array.Row(1, 1, 1), 1, 3).With(Mode),
		radio("plotboxaspectratiomode", autoManual),
		radio("projection", "{orthographic}|perpective"),
		radio("tickdir", "{in}|out").With(Mode),
		radio("tickdirmode", autoManual),
		shaped("ticklength", array.Row(0.01, 0.025), 1, 2),
		arr("tightinset", zeros(1, 4)).With(ReadOnly),
		radio("units", "{normalized}|inches|centimeters|points|pixels|characters"),
		arr("x_viewtransform", zeros(4, 4)).With(Hidden),
		arr("x_projectiontransform", zeros(4, 4)).With(Hidden),
		arr("x_viewporttransform", zeros(4, 4)).With(Hidden),
		arr("x_normrendertransform", zeros(4, 4)).With(Hidden),
		arr("x_rendertransform", zeros(4, 4)).With(Hidden),
		row("xmtick").With(Hidden),
		row("ymtick").With(Hidden),
		row("zmtick").With(Hidden),
		shaped("looseinset", array.Row(0.13, 0.11, 0.095, 0.075), 1, 4).With(Hidden),
		radio("autopos_tag", "{none}|subplot").With(Hidden),
	}
}

// dataLimitSpecs are the hidden data limits of a plottable object,
// each a vector [min max minpos maxneg], and their include flags.
func dataLimitSpecs(axes string, include map[byte]bool) []Spec {
	var specs []Spec
	for i := range len(axes) {
		specs = append(specs, row(axes[i:i+1]+"lim").With(Hidden|ReadOnly|Limits))
	}
	for i := range len(axes) {
		specs = append(specs, boolean(axes[i:i+1]+"liminclude", include[axes[i]]).With(Hidden|Limits))
	}
	return specs
}

func lineSpecs() []Spec {
	return append([]Spec{
		row("xdata", 0, 1),
		row("ydata", 0, 1),
		row("zdata"),
		str("xdatasource", ""),
		str("ydatasource", ""),
		str("zdatasource", ""),
		color("color", 0, 0, 0, ""),
		radio("linestyle", lineStyles),
		double("linewidth", 0.5),
		radio("marker", markers),
		colorRadio("markeredgecolor", "{auto}|none"),
		colorRadio("markerfacecolor", "auto|{none}"),
		double("markersize", 6),
		radio("interpreter", "{tex}|none|latex"),
		str("displayname", ""),
		radio("erasemode", eraseModes),
	}, dataLimitSpecs("xyz", map[byte]bool{'x': true, 'y': true})...)
}

func textSpecs() []Spec {
	specs := []Spec{
		label("string"),
		radio("units", "{data}|pixels|normalized|inches|centimeters|points"),
		spec("position", func() props.Value {
			return props.NewArray(zeros(1, 3)).AddShape(1, 2).AddShape(1, 3).AddShape(2, 1).AddShape(3, 1)
		}).With(Mode),
		double("rotation", 0).With(Mode),
		radio("horizontalalignment", "{left}|center|right").With(Mode),
		color("color", 0, 0, 0, ""),
		str("fontname", defaultFontName),
		double("fontsize", 10),
		radio("fontangle", fontAngles),
		radio("fontweight", "light|{normal}|demi|bold"),
		radio("interpreter", "{tex}|none|latex"),
		colorRadio("backgroundcolor", "{none}"),
		str("displayname", ""),
		colorRadio("edgecolor", "{none}"),
		radio("erasemode", eraseModes),
		boolean("editing", false),
		radio("fontunits", "inches|centimeters|normalized|{points}|pixels"),
		radio("linestyle", lineStyles),
		double("linewidth", 0.5),
		double("margin", 1),
		radio("verticalalignment", "top|cap|{middle}|baseline|bottom").With(Mode),
		arr("extent", zeros(1, 4)).With(ReadOnly),
	}
	specs = append(specs, dataLimitSpecs("xyz", nil)...)
	return append(specs,
		radio("positionmode", autoManual).With(Hidden),
		radio("rotationmode", autoManual).With(Hidden),
		radio("horizontalalignmentmode", autoManual).With(Hidden),
		radio("verticalalignmentmode", autoManual).With(Hidden),
		radio("autopos_tag", "{none}|xlabel|ylabel|zlabel|title").With(Hidden),
	)
}

func imageSpecs() []Spec {
	return append([]Spec{
		row("xdata"),
		row("ydata"),
		arr("cdata", array.Empty()),
		radio("cdatamapping", "{scaled}|direct").With(Limits),
	}, dataLimitSpecs("xyc", map[byte]bool{'x': true, 'y': true, 'c': true})...)
}

func patchSpecs() []Spec {
	return append([]Spec{
		arr("xdata", array.Empty()),
		arr("ydata", array.Empty()),
		arr("zdata", array.Empty()),
		arr("cdata", array.Empty()),
		radio("cdatamapping", "{scaled}|direct").With(Limits),
		arr("faces", array.Empty()),
		arr("facevertexalphadata", array.Empty()),
		arr("facevertexcdata", array.Empty()),
		arr("vertices", array.Empty()),
		arr("vertexnormals", array.Empty()),
		radio("normalmode", autoManual),
		color("facecolor", 0, 0, 0, "flat|none|interp"),
		doubleRadio("facealpha", 1, "flat|interp"),
		radio("facelighting", "flat|{none}|gouraud|phong"),
		color("edgecolor", 0, 0, 0, "flat|none|interp"),
		doubleRadio("edgealpha", 1, "flat|interp"),
		radio("edgelighting", "{none}|flat|gouraud|phong"),
		radio("backfacelighting", "{reverselit}|unlit|lit"),
		double("ambientstrength", 0.3),
		double("diffusestrength", 0.6),
		double("specularstrength", 0.6),
		double("specularexponent", 10),
		double("specularcolorreflectance", 1),
		radio("erasemode", "{normal}|background|xor|none"),
		radio("linestyle", lineStyles),
		double("linewidth", 0.5),
		radio("marker", markers),
		colorRadio("markeredgecolor", "{auto}|none|flat"),
		colorRadio("markerfacecolor", "auto|{none}|flat"),
		double("markersize", 6),
		radio("interpreter", "{tex}|none|latex"),
		str("displayname", ""),
		radio("alphadatamapping", "none|{scaled}|direct").With(Limits),
	}, dataLimitSpecs("xyzca", map[byte]bool{'x': true, 'y': true, 'z': true, 'c': true, 'a': true})...)
}

func surfaceSpecs() []Spec {
	return append([]Spec{
		arr("xdata", array.Empty()),
		arr("ydata", array.Empty()),
		arr("zdata", array.Empty()),
		arr("cdata", array.Empty()),
		radio("cdatamapping", "{scaled}|direct").With(Limits),
		str("xdatasource", ""),
		str("ydatasource", ""),
		str("zdatasource", ""),
		str("cdatasource", ""),
		colorRadio("facecolor", "{flat}|none|interp|texturemap"),
		doubleRadio("facealpha", 1, "flat|interp"),
		color("edgecolor", 0, 0, 0, "flat|none|interp"),
		radio("linestyle", lineStyles),
		double("linewidth", 0.5),
		radio("marker", markers),
		colorRadio("markeredgecolor", "{auto}|none"),
		colorRadio("markerfacecolor", "auto|{none}"),
		double("markersize", 6),
		radio("interpreter", "{tex}|none|latex"),
		str("displayname", ""),
		arr("alphadata", array.Empty()),
		radio("alphadatamapping", "none|direct|{scaled}").With(Limits),
		double("ambientstrength", 0.3),
		radio("backfacelighting", "unlit|lit|{reverselit}"),
		double("diffusestrength", 0.6),
		doubleRadio("edgealpha", 1, "flat|interp"),
		radio("edgelighting", "{none}|flat|gouraud|phong"),
		radio("erasemode", eraseModes),
		radio("facelighting", "{none}|flat|gouraud|phong"),
		radio("meshstyle", "{both}|row|column"),
		radio("normalmode", autoManual),
		double("specularcolorreflectance", 1),
		double("specularexponent", 10),
		double("specularstrength", 0.9),
		arr("vertexnormals", array.Empty()),
	}, dataLimitSpecs("xyzca", map[byte]bool{'x': true, 'y': true, 'z': true, 'c': true, 'a': true})...)
}

func groupSpecs() []Spec {
	return dataLimitSpecs("xyzca", map[byte]bool{'x': true, 'y': true, 'z': true, 'c': true, 'a': true})
}

func uicontrolSpecs() []Spec {
	return []Spec{
		anyValue("__object__", nil),
		color("backgroundcolor", 1, 1, 1, ""),
		callback("callback", nil),
		arr("cdata", array.Empty()),
		radio("enable", "{on}|inactive|off"),
		arr("extent", zeros(1, 4)).With(ReadOnly),
		radio("fontangle", fontAngles),
		str("fontname", defaultFontName),
		double("fontsize", 10),
		radio("fontunits", "inches|centimeters|normalized|{points}|pixels"),
		radio("fontweight", "light|{normal}|demi|bold"),
		color("foregroundcolor", 0, 0, 0, ""),
		radio("horizontalalignment", "{left}|center|right"),
		callback("keypressfcn", nil),
		double("listboxtop", 1),
		double("max", 1),
		double("min", 0),
		shaped("position", array.Row(0, 0, 80, 30), 1, 4),
		shaped("sliderstep", array.Row(0.01, 0.1), 1, 2),
		strArray("string", ""),
		radio("style", "{pushbutton}|togglebutton|radiobutton|checkbox|edit|text|slider|frame|listbox|popupmenu"),
		str("tooltipstring", ""),
		radio("units", "normalized|inches|centimeters|points|{pixels}|characters"),
		row("value", 1),
		radio("verticalalignment", "top|{middle}|bottom"),
	}
}

func uipanelSpecs() []Spec {
	return []Spec{
		anyValue("__object__", nil),
		color("backgroundcolor", 1, 1, 1, ""),
		radio("bordertype", "none|{etchedin}|etchedout|beveledin|beveledout|line"),
		double("borderwidth", 1),
		radio("fontangle", fontAngles),
		str("fontname", defaultFontName),
		double("fontsize", 10),
		radio("fontunits", "inches|centimeters|normalized|{points}|pixels"),
		radio("fontweight", "light|{normal}|demi|bold"),
		color("foregroundcolor", 0, 0, 0, ""),
		color("highlightcolor", 1, 1, 1, ""),
		shaped("position", array.Row(0, 0, 1, 1), 1, 4),
		callback("resizefcn", nil),
		color("shadowcolor", 0, 0, 0, ""),
		str("title", ""),
		radio("titleposition", "{lefttop}|centertop|righttop|leftbottom|centerbottom|rightbottom"),
		radio("units", "{normalized}|inches|centimeters|points|pixels|characters"),
	}
}
