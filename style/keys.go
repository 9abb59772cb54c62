package style

// None is the value that disables a colour or marker.
const None = "none"

// Style keys.
const (
	KeyShape                 = "shape"
	KeyFillColor             = "fillColor"
	KeyStrokeColor           = "strokeColor"
	KeyGradientColor         = "gradientColor"
	KeyGradientDirection     = "gradientDirection"
	KeyOpacity               = "opacity"
	KeyFillOpacity           = "fillOpacity"
	KeyStrokeOpacity         = "strokeOpacity"
	KeyTextOpacity           = "textOpacity"
	KeyStrokeWidth           = "strokeWidth"
	KeyDashed                = "dashed"
	KeyFixDash               = "fixDash"
	KeyDashPattern           = "dashPattern"
	KeyShadow                = "shadow"
	KeyRounded               = "rounded"
	KeyCurved                = "curved"
	KeyArcSize               = "arcSize"
	KeyAbsoluteArcSize       = "absoluteArcSize"
	KeyGlass                 = "glass"
	KeyRotation              = "rotation"
	KeyDirection             = "direction"
	KeyFlipH                 = "flipH"
	KeyFlipV                 = "flipV"
	KeyHorizontal            = "horizontal"
	KeyBackgroundOutline     = "backgroundOutline"
	KeyStartArrow            = "startArrow"
	KeyEndArrow              = "endArrow"
	KeyStartSize             = "startSize"
	KeyEndSize               = "endSize"
	KeyStartFill             = "startFill"
	KeyEndFill               = "endFill"
	KeySpacing               = "spacing"
	KeySpacingTop            = "spacingTop"
	KeySpacingLeft           = "spacingLeft"
	KeySpacingBottom         = "spacingBottom"
	KeySpacingRight          = "spacingRight"
	KeyAlign                 = "align"
	KeyVerticalAlign         = "verticalAlign"
	KeyFontColor             = "fontColor"
	KeyFontFamily            = "fontFamily"
	KeyFontSize              = "fontSize"
	KeyFontStyle             = "fontStyle"
	KeyLabelBackgroundColor  = "labelBackgroundColor"
	KeyLabelBorderColor      = "labelBorderColor"
	KeyTextDirection         = "textDirection"
	KeyWhiteSpace            = "whiteSpace"
	KeyOverflow              = "overflow"
	KeyImage                 = "image"
	KeyImageWidth            = "imageWidth"
	KeyImageHeight           = "imageHeight"
	KeyImageAlign            = "imageAlign"
	KeyImageVerticalAlign    = "imageVerticalAlign"
	KeyImageBackground       = "imageBackground"
	KeyImageBorder           = "imageBorder"
	KeyImageAspect           = "imageAspect"
	KeyImageFlipH            = "imageFlipH"
	KeyImageFlipV            = "imageFlipV"
	KeyIndicatorShape        = "indicatorShape"
	KeyIndicatorColor        = "indicatorColor"
	KeyIndicatorStrokeColor  = "indicatorStrokeColor"
	KeyIndicatorGradient     = "indicatorGradientColor"
	KeyIndicatorDirection    = "indicatorDirection"
	KeyIndicatorImage        = "indicatorImage"
	KeyIndicatorWidth        = "indicatorWidth"
	KeyIndicatorHeight       = "indicatorHeight"
	KeySwimlaneFillColor     = "swimlaneFillColor"
	KeySwimlaneLine          = "swimlaneLine"
	KeySeparatorColor        = "separatorColor"
	KeyMargin                = "margin"
	KeyPortConstraint        = "portConstraint"
	KeySourcePortConstraint  = "sourcePortConstraint"
	KeyTargetPortConstraint  = "targetPortConstraint"
	KeyPortConstraintRotated = "portConstraintRotation"
)

// Shared defaults.
const (
	ShadowOffsetX           = 2.0
	ShadowOffsetY           = 3.0
	ShadowColor             = "gray"
	ShadowOpacity           = 1.0
	LineArcSize             = 20.0
	RectangleRoundingFactor = 0.15
	DefaultStartSize        = 40.0
	DefaultMarkerSize       = 6.0
	DefaultImageSize        = 24.0
	DefaultFontSize         = 11.0
	DefaultFontFamily       = "Arial,Helvetica"
	DefaultTextDirection    = ""
	ArrowSpacing            = 0.0
	ArrowWidth              = 30.0
	ArrowSize               = 30.0
	LineHeight              = 1.2
)

// Text direction values.
const (
	TextDirectionAuto = "auto"
	TextDirectionLTR  = "ltr"
	TextDirectionRTL  = "rtl"
)

// Font style bits.
const (
	FontBold          = 1
	FontItalic        = 2
	FontUnderline     = 4
	FontStrikethrough = 8
)

// Marker names for startArrow and endArrow.
const (
	ArrowClassic     = "classic"
	ArrowClassicThin = "classicThin"
	ArrowBlock       = "block"
	ArrowBlockThin   = "blockThin"
	ArrowOpen        = "open"
	ArrowOpenThin    = "openThin"
	ArrowOval        = "oval"
	ArrowDiamond     = "diamond"
	ArrowDiamondThin = "diamondThin"
)
