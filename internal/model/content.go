package model

import "encoding/json"

// ContentDisplayType selects how a content slot draws its data.
type ContentDisplayType string

const (
	DisplayBar         ContentDisplayType = "bar"
	DisplayText        ContentDisplayType = "text"
	DisplayGraph       ContentDisplayType = "graph"
	DisplayLevelBar    ContentDisplayType = "level_bar"
	DisplayCoreBars    ContentDisplayType = "core_bars"
	DisplayStatic      ContentDisplayType = "static"
	DisplayArc         ContentDisplayType = "arc"
	DisplaySpeedometer ContentDisplayType = "speedometer"
)

// DisplayTypes lists every display type in UI order.
var DisplayTypes = []ContentDisplayType{
	DisplayBar,
	DisplayText,
	DisplayGraph,
	DisplayLevelBar,
	DisplayCoreBars,
	DisplayStatic,
	DisplayArc,
	DisplaySpeedometer,
}

// DisplayTypeLabel returns the human-readable name of a display type.
func DisplayTypeLabel(t ContentDisplayType) string {
	switch t {
	case DisplayBar:
		return "Bar"
	case DisplayText:
		return "Text"
	case DisplayGraph:
		return "Graph"
	case DisplayLevelBar:
		return "Level Bar"
	case DisplayCoreBars:
		return "Core Bars"
	case DisplayStatic:
		return "Static"
	case DisplayArc:
		return "Arc"
	case DisplaySpeedometer:
		return "Speedometer"
	default:
		return string(t)
	}
}

// SuggestDisplayType picks a display type from the fields a slot's
// source publishes. Text-only sources (clocks, labels) read best as
// text; percentage values as bars.
func SuggestDisplayType(fields []FieldMetadata) ContentDisplayType {
	if len(fields) == 0 {
		return DisplayText
	}

	hasPercentage := false
	hasNumerical := false
	hasText := false
	hasValuePurpose := false
	allText := true
	for _, f := range fields {
		switch f.Type {
		case FieldTypePercentage:
			hasPercentage = true
			allText = false
		case FieldTypeNumerical:
			hasNumerical = true
			allText = false
		case FieldTypeText:
			hasText = true
		default:
			allText = false
		}
		if f.Purpose == PurposeValue {
			hasValuePurpose = true
		}
	}

	if allText {
		return DisplayText
	}
	if hasPercentage && hasValuePurpose {
		return DisplayBar
	}
	if hasNumerical && !hasPercentage && hasText {
		return DisplayText
	}
	return DisplayBar
}

// FillKind says how an area is filled.
type FillKind string

const (
	FillSolid       FillKind = "solid"
	FillGradient    FillKind = "gradient"
	FillTransparent FillKind = "transparent"
)

// FillConfig paints an area with a solid themed color or a gradient.
type FillConfig struct {
	Kind  FillKind       `json:"kind"`
	Color ColorSource    `json:"color,omitempty"`
	Stops []GradientStop `json:"stops,omitempty"`
	Angle float64        `json:"angle,omitempty"`
}

// SolidFill fills with one color source.
func SolidFill(c ColorSource) FillConfig {
	return FillConfig{Kind: FillSolid, Color: c}
}

// TransparentFill paints nothing.
func TransparentFill() FillConfig {
	return FillConfig{Kind: FillTransparent}
}

// BorderConfig outlines an element.
type BorderConfig struct {
	Enabled bool        `json:"enabled"`
	Color   ColorSource `json:"color"`
	Width   float64     `json:"width"`
}

// DefaultBorder is disabled and tracks theme color 2.
func DefaultBorder() BorderConfig {
	return BorderConfig{Enabled: false, Color: ThemeColor(2), Width: 1.0}
}

// TextPosition anchors text inside an item rectangle.
type TextPosition string

const (
	PosTopLeft      TextPosition = "top_left"
	PosTopCenter    TextPosition = "top_center"
	PosTopRight     TextPosition = "top_right"
	PosCenterLeft   TextPosition = "center_left"
	PosCenter       TextPosition = "center"
	PosCenterRight  TextPosition = "center_right"
	PosBottomLeft   TextPosition = "bottom_left"
	PosBottomCenter TextPosition = "bottom_center"
	PosBottomRight  TextPosition = "bottom_right"
)

// TextLine renders one field of the slot's data.
type TextLine struct {
	FieldID  string       `json:"field_id"`
	Font     FontSource   `json:"font"`
	Bold     bool         `json:"bold"`
	Italic   bool         `json:"italic"`
	Color    ColorSource  `json:"color"`
	Position TextPosition `json:"position"`
}

// TextConfig is an ordered list of text lines.
type TextConfig struct {
	Lines []TextLine `json:"lines"`
}

// DefaultTextConfig shows "caption value unit" across the item.
func DefaultTextConfig() TextConfig {
	white := CustomColor(NewColor(1.0, 1.0, 1.0))
	return TextConfig{Lines: []TextLine{
		{FieldID: FieldCaption, Font: ThemeFont(1), Color: white, Position: PosCenterLeft},
		{FieldID: FieldValue, Font: ThemeFont(1), Color: white, Position: PosCenter},
		{FieldID: FieldUnit, Font: ThemeFont(2), Color: white, Position: PosCenterRight},
	}}
}

// TextOverlayConfig toggles text drawn over another display.
type TextOverlayConfig struct {
	Enabled bool       `json:"enabled"`
	Text    TextConfig `json:"text_config"`
}

// DefaultTextOverlay is enabled with the standard three-line layout.
func DefaultTextOverlay() TextOverlayConfig {
	return TextOverlayConfig{Enabled: true, Text: DefaultTextConfig()}
}

// BarStyle selects the bar's body shape.
type BarStyle string

const (
	BarFull      BarStyle = "full"
	BarRectangle BarStyle = "rectangle"
	BarSegmented BarStyle = "segmented"
)

// Orientation of a bar's long axis.
type BarOrientation string

const (
	BarHorizontal BarOrientation = "horizontal"
	BarVertical   BarOrientation = "vertical"
)

// FillDirection says which way a bar fills as its value grows.
type FillDirection string

const (
	FillLeftToRight FillDirection = "left_to_right"
	FillRightToLeft FillDirection = "right_to_left"
	FillBottomToTop FillDirection = "bottom_to_top"
	FillTopToBottom FillDirection = "top_to_bottom"
)

// BarConfig styles the bar display. Level bars share this config.
type BarConfig struct {
	Style         BarStyle       `json:"style"`
	Orientation   BarOrientation `json:"orientation"`
	FillDirection FillDirection  `json:"fill_direction"`

	Foreground FillConfig `json:"foreground"`
	Background FillConfig `json:"background"`

	CornerRadius    float64 `json:"corner_radius"`
	Padding         float64 `json:"padding"`
	RectangleWidth  float64 `json:"rectangle_width"`  // fraction of item width
	RectangleHeight float64 `json:"rectangle_height"` // fraction of item height

	SegmentCount   int     `json:"segment_count"`
	SegmentSpacing float64 `json:"segment_spacing"`

	Border BorderConfig `json:"border"`

	TextOverlay TextOverlayConfig `json:"text_overlay"`

	SmoothAnimation bool    `json:"smooth_animation"`
	AnimationSpeed  float64 `json:"animation_speed"`
}

// DefaultBarConfig fills with theme color 1 over a transparent background.
func DefaultBarConfig() BarConfig {
	return BarConfig{
		Style:           BarFull,
		Orientation:     BarHorizontal,
		FillDirection:   FillLeftToRight,
		Foreground:      SolidFill(ThemeColor(1)),
		Background:      TransparentFill(),
		CornerRadius:    5.0,
		Padding:         4.0,
		RectangleWidth:  0.8,
		RectangleHeight: 0.6,
		SegmentCount:    10,
		SegmentSpacing:  2.0,
		Border:          DefaultBorder(),
		TextOverlay:     DefaultTextOverlay(),
		SmoothAnimation: true,
		AnimationSpeed:  0.5,
	}
}

// GraphFillMode says how the area under a graph line is painted.
type GraphFillMode string

const (
	GraphFillNone     GraphFillMode = "none"
	GraphFillSolid    GraphFillMode = "solid"
	GraphFillGradient GraphFillMode = "gradient"
)

// GraphConfig styles the scrolling history graph.
type GraphConfig struct {
	LineWidth float64     `json:"line_width"`
	LineColor ColorSource `json:"line_color"`

	FillMode          GraphFillMode `json:"fill_mode"`
	FillColor         ColorSource   `json:"fill_color"`
	FillGradientStart ColorSource   `json:"fill_gradient_start"`
	FillGradientEnd   ColorSource   `json:"fill_gradient_end"`

	MaxDataPoints int         `json:"max_data_points"`
	ShowPoints    bool        `json:"show_points"`
	PointRadius   float64     `json:"point_radius"`
	PointColor    ColorSource `json:"point_color"`

	AutoScale    bool    `json:"auto_scale"`
	MinValue     float64 `json:"min_value"`
	MaxValue     float64 `json:"max_value"`
	ValuePadding float64 `json:"value_padding"` // percent headroom when auto-scaling

	SmoothLines bool `json:"smooth_lines"`

	TextOverlay TextOverlayConfig `json:"text_overlay"`
}

// DefaultGraphConfig uses the stock green trace.
func DefaultGraphConfig() GraphConfig {
	green := Color{R: 0.2, G: 0.8, B: 0.4, A: 1.0}
	return GraphConfig{
		LineWidth:         2.0,
		LineColor:         CustomColor(green),
		FillMode:          GraphFillGradient,
		FillColor:         CustomColor(Color{R: 0.2, G: 0.8, B: 0.4, A: 0.3}),
		FillGradientStart: CustomColor(Color{R: 0.2, G: 0.8, B: 0.4, A: 0.6}),
		FillGradientEnd:   CustomColor(Color{R: 0.2, G: 0.8, B: 0.4, A: 0.0}),
		MaxDataPoints:     60,
		ShowPoints:        false,
		PointRadius:       3.0,
		PointColor:        CustomColor(green),
		AutoScale:         true,
		MinValue:          0.0,
		MaxValue:          100.0,
		ValuePadding:      10.0,
		SmoothLines:       true,
		TextOverlay:       DefaultTextOverlay(),
	}
}

// CoreBarsConfig styles the per-core bar strip.
type CoreBarsConfig struct {
	StartCore int `json:"start_core"`
	EndCore   int `json:"end_core"`

	Orientation   BarOrientation `json:"orientation"`
	FillDirection FillDirection  `json:"fill_direction"`
	Foreground    FillConfig     `json:"foreground"`
	Background    FillConfig     `json:"background"`
	CornerRadius  float64        `json:"corner_radius"`
	BarSpacing    float64        `json:"bar_spacing"`

	SegmentCount   int     `json:"segment_count"`
	SegmentSpacing float64 `json:"segment_spacing"`

	Border BorderConfig `json:"border"`

	ShowLabels    bool        `json:"show_labels"`
	LabelPrefix   string      `json:"label_prefix"`
	LabelFont     FontSource  `json:"label_font"`
	LabelColor    ColorSource `json:"label_color"`
	LabelBold     bool        `json:"label_bold"`

	Animate        bool    `json:"animate"`
	AnimationSpeed float64 `json:"animation_speed"`

	TextOverlay TextOverlayConfig `json:"text_overlay"`
}

// DefaultCoreBarsConfig shows cores 0-15 with theme color 3 labels.
func DefaultCoreBarsConfig() CoreBarsConfig {
	return CoreBarsConfig{
		StartCore:      0,
		EndCore:        15,
		Orientation:    BarHorizontal,
		FillDirection:  FillLeftToRight,
		Foreground:     SolidFill(ThemeColor(1)),
		Background:     TransparentFill(),
		CornerRadius:   3.0,
		BarSpacing:     4.0,
		SegmentCount:   10,
		SegmentSpacing: 1.0,
		Border:         DefaultBorder(),
		ShowLabels:     true,
		LabelFont:      CustomFont("Sans", 10.0),
		LabelColor:     ThemeColor(3),
		Animate:        true,
		AnimationSpeed: 8.0,
		TextOverlay:    DefaultTextOverlay(),
	}
}

// CoreCount returns how many cores the configured range covers.
func (c CoreBarsConfig) CoreCount() int {
	if c.EndCore < c.StartCore {
		return 0
	}
	return c.EndCore - c.StartCore + 1
}

// StaticConfig styles the static display: a filled block with an
// optional text overlay, for captions and decorative panels.
type StaticConfig struct {
	Background  FillConfig        `json:"background"`
	TextOverlay TextOverlayConfig `json:"text_overlay"`
}

// DefaultStaticConfig fills with theme color 1; the overlay starts
// disabled so a fresh static block is a plain swatch.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		Background:  SolidFill(ThemeColor(1)),
		TextOverlay: TextOverlayConfig{Enabled: false, Text: DefaultTextConfig()},
	}
}

// ArcConfig styles the arc gauge.
type ArcConfig struct {
	StartAngle    float64 `json:"start_angle"` // degrees, 0 = right, 90 = down
	EndAngle      float64 `json:"end_angle"`
	ArcWidth      float64 `json:"arc_width"`      // fraction of radius
	RadiusPercent float64 `json:"radius_percent"` // fraction of available space

	Segmented      bool    `json:"segmented"`
	SegmentCount   int     `json:"segment_count"`
	SegmentSpacing float64 `json:"segment_spacing"` // degrees

	ColorStops []GradientStop `json:"color_stops"`

	ShowBackgroundArc bool        `json:"show_background_arc"`
	BackgroundColor   ColorSource `json:"background_color"`

	Animate           bool    `json:"animate"`
	AnimationDuration float64 `json:"animation_duration"` // seconds

	TextOverlay TextOverlayConfig `json:"text_overlay"`
}

// trafficRamp is the default green/yellow/red value coloring. The
// duplicated positions give hard color switches at 60% and 80%.
func trafficRamp() []GradientStop {
	green := CustomColor(Color{R: 0.0, G: 0.8, B: 0.0, A: 1.0})
	yellow := CustomColor(Color{R: 1.0, G: 0.8, B: 0.0, A: 1.0})
	red := CustomColor(Color{R: 1.0, G: 0.0, B: 0.0, A: 1.0})
	return []GradientStop{
		{Position: 0.0, Color: green},
		{Position: 0.6, Color: green},
		{Position: 0.6, Color: yellow},
		{Position: 0.8, Color: yellow},
		{Position: 0.8, Color: red},
		{Position: 1.0, Color: red},
	}
}

// DefaultArcConfig sweeps 135° through the top to 45°.
func DefaultArcConfig() ArcConfig {
	return ArcConfig{
		StartAngle:        135.0,
		EndAngle:          45.0,
		ArcWidth:          0.15,
		RadiusPercent:     0.85,
		Segmented:         false,
		SegmentCount:      20,
		SegmentSpacing:    2.0,
		ColorStops:        trafficRamp(),
		ShowBackgroundArc: true,
		BackgroundColor:   CustomColor(Color{R: 0.2, G: 0.2, B: 0.2, A: 0.3}),
		Animate:           false,
		AnimationDuration: 0.3,
		TextOverlay:       DefaultTextOverlay(),
	}
}

// ValueZone marks a colored region on a gauge.
type ValueZone struct {
	StartPercent float64 `json:"start_percent"`
	EndPercent   float64 `json:"end_percent"`
	Color        Color   `json:"color"`
	Alpha        float64 `json:"alpha"`
}

// SpeedometerConfig styles the needle gauge.
type SpeedometerConfig struct {
	StartAngle    float64 `json:"start_angle"`
	EndAngle      float64 `json:"end_angle"`
	ArcWidth      float64 `json:"arc_width"`
	RadiusPercent float64 `json:"radius_percent"`

	ShowTrack       bool           `json:"show_track"`
	TrackColor      ColorSource    `json:"track_color"`
	TrackColorStops []GradientStop `json:"track_color_stops"`

	ShowMajorTicks  bool        `json:"show_major_ticks"`
	MajorTickCount  int         `json:"major_tick_count"`
	MajorTickLength float64     `json:"major_tick_length"` // fraction of radius
	MajorTickWidth  float64     `json:"major_tick_width"`
	MajorTickColor  ColorSource `json:"major_tick_color"`

	ShowMinorTicks     bool        `json:"show_minor_ticks"`
	MinorTicksPerMajor int         `json:"minor_ticks_per_major"`
	MinorTickLength    float64     `json:"minor_tick_length"`
	MinorTickWidth     float64     `json:"minor_tick_width"`
	MinorTickColor     ColorSource `json:"minor_tick_color"`

	ShowTickLabels bool        `json:"show_tick_labels"`
	TickLabelFont  FontSource  `json:"tick_label_font"`
	TickLabelColor ColorSource `json:"tick_label_color"`

	ShowNeedle   bool        `json:"show_needle"`
	NeedleLength float64     `json:"needle_length"` // fraction of radius
	NeedleWidth  float64     `json:"needle_width"`
	NeedleColor  ColorSource `json:"needle_color"`

	ShowCenterHub   bool        `json:"show_center_hub"`
	CenterHubRadius float64     `json:"center_hub_radius"` // fraction of radius
	CenterHubColor  ColorSource `json:"center_hub_color"`

	ShowBezel  bool        `json:"show_bezel"`
	BezelWidth float64     `json:"bezel_width"` // fraction of radius
	BezelColor ColorSource `json:"bezel_color"`

	Zones []ValueZone `json:"zones,omitempty"`

	Animate           bool    `json:"animate"`
	AnimationDuration float64 `json:"animation_duration"`

	TextOverlay TextOverlayConfig `json:"text_overlay"`
}

// DefaultSpeedometerConfig is a classic dial: 135° to 45°, red needle,
// gray hub and bezel, value zones off.
func DefaultSpeedometerConfig() SpeedometerConfig {
	tickColor := CustomColor(Color{R: 0.9, G: 0.9, B: 0.9, A: 1.0})
	return SpeedometerConfig{
		StartAngle:         135.0,
		EndAngle:           45.0,
		ArcWidth:           0.15,
		RadiusPercent:      0.85,
		ShowTrack:          true,
		TrackColor:         CustomColor(Color{R: 0.2, G: 0.2, B: 0.2, A: 1.0}),
		TrackColorStops:    speedometerRamp(),
		ShowMajorTicks:     true,
		MajorTickCount:     10,
		MajorTickLength:    0.15,
		MajorTickWidth:     2.0,
		MajorTickColor:     tickColor,
		ShowMinorTicks:     true,
		MinorTicksPerMajor: 5,
		MinorTickLength:    0.08,
		MinorTickWidth:     1.0,
		MinorTickColor:     tickColor,
		ShowTickLabels:     true,
		TickLabelFont:      CustomFont("Sans", 12.0),
		TickLabelColor:     tickColor,
		ShowNeedle:         true,
		NeedleLength:       0.75,
		NeedleWidth:        3.0,
		NeedleColor:        CustomColor(Color{R: 1.0, G: 0.0, B: 0.0, A: 1.0}),
		ShowCenterHub:      true,
		CenterHubRadius:    0.08,
		CenterHubColor:     CustomColor(Color{R: 0.3, G: 0.3, B: 0.3, A: 1.0}),
		ShowBezel:          true,
		BezelWidth:         0.05,
		BezelColor:         CustomColor(Color{R: 0.3, G: 0.3, B: 0.3, A: 1.0}),
		Animate:            true,
		AnimationDuration:  0.3,
		TextOverlay:        DefaultTextOverlay(),
	}
}

// speedometerRamp fades green through yellow to red along the track.
func speedometerRamp() []GradientStop {
	return []GradientStop{
		{Position: 0.0, Color: CustomColor(Color{R: 0.0, G: 0.8, B: 0.0, A: 1.0})},
		{Position: 0.7, Color: CustomColor(Color{R: 1.0, G: 0.8, B: 0.0, A: 1.0})},
		{Position: 0.9, Color: CustomColor(Color{R: 1.0, G: 0.0, B: 0.0, A: 1.0})},
	}
}

// ContentItemConfig is one slot's display configuration. Every
// per-type config is always present, so switching DisplayAs back and
// forth never loses settings made under another type. The text
// display draws the lines of Bar.TextOverlay on the item background;
// level bars also read Bar.
type ContentItemConfig struct {
	DisplayAs  ContentDisplayType `json:"display_as"`
	AutoHeight bool               `json:"auto_height"`
	ItemHeight float64            `json:"item_height"`

	Bar         BarConfig         `json:"bar_config"`
	Graph       GraphConfig       `json:"graph_config"`
	CoreBars    CoreBarsConfig    `json:"core_bars_config"`
	Static      StaticConfig      `json:"static_config"`
	Arc         ArcConfig         `json:"arc_config"`
	Speedometer SpeedometerConfig `json:"speedometer_config"`
}

// DefaultContentItem returns a bar item with every per-type config at
// its defaults.
func DefaultContentItem() ContentItemConfig {
	return ContentItemConfig{
		DisplayAs:   DisplayBar,
		AutoHeight:  true,
		ItemHeight:  60.0,
		Bar:         DefaultBarConfig(),
		Graph:       DefaultGraphConfig(),
		CoreBars:    DefaultCoreBarsConfig(),
		Static:      DefaultStaticConfig(),
		Arc:         DefaultArcConfig(),
		Speedometer: DefaultSpeedometerConfig(),
	}
}

// UnmarshalJSON decodes over the defaults, so items saved by older
// versions pick up sane values for fields they never wrote.
func (c *ContentItemConfig) UnmarshalJSON(data []byte) error {
	*c = DefaultContentItem()
	type plain ContentItemConfig
	return json.Unmarshal(data, (*plain)(c))
}

// Clone returns a deep copy. The per-type configs nest slices (stops,
// text lines, zones), so the copy goes through the JSON form rather
// than field-by-field.
func (c ContentItemConfig) Clone() ContentItemConfig {
	data, err := json.Marshal(c)
	if err != nil {
		return c
	}
	var out ContentItemConfig
	if err := json.Unmarshal(data, &out); err != nil {
		return c
	}
	return out
}
