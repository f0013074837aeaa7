package docgen

// Watermark selects the diagonal overlay printed beneath the document
// content. It is chosen by the caller, independent of the invoice's actual
// status, so a draft layout can be previewed for any invoice.
type Watermark string

const (
	WatermarkNone      Watermark = "none"
	WatermarkDraft     Watermark = "draft"
	WatermarkPaid      Watermark = "paid"
	WatermarkOverdue   Watermark = "overdue"
	WatermarkCancelled Watermark = "cancelled"
)

// PageFormat is one of the two supported fixed page sizes.
type PageFormat string

const (
	PageFormatA4     PageFormat = "A4"
	PageFormatLetter PageFormat = "Letter"
)

// Orientation is the page orientation.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// LayoutDensity selects between the full print layout and the compact
// card layout used for interactive previews. Both densities run through the
// same composition code so preview and artifact can never disagree.
type LayoutDensity string

const (
	DensityFull    LayoutDensity = "full"
	DensityCompact LayoutDensity = "compact"
)

// GenerationOptions configures one document generation call. Options are not
// persisted; they are validated once at the pipeline boundary.
type GenerationOptions struct {
	Watermark        Watermark   `json:"watermark"`
	IncludePaymentQR bool        `json:"include_payment_qr"`
	IncludeFooter    bool        `json:"include_footer"`
	PageFormat       PageFormat  `json:"page_format"`
	Orientation      Orientation `json:"orientation"`
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() GenerationOptions {
	return GenerationOptions{
		Watermark:        WatermarkNone,
		IncludePaymentQR: true,
		IncludeFooter:    true,
		PageFormat:       PageFormatA4,
		Orientation:      OrientationPortrait,
	}
}

// Normalize fills zero-valued fields with defaults.
func (o *GenerationOptions) Normalize() {
	if o.Watermark == "" {
		o.Watermark = WatermarkNone
	}
	if o.PageFormat == "" {
		o.PageFormat = PageFormatA4
	}
	if o.Orientation == "" {
		o.Orientation = OrientationPortrait
	}
}

// Validate checks that every enumerated field holds a recognized value.
func (o GenerationOptions) Validate() error {
	switch o.Watermark {
	case WatermarkNone, WatermarkDraft, WatermarkPaid, WatermarkOverdue, WatermarkCancelled:
	default:
		return validationError("unknown watermark %q", o.Watermark)
	}
	switch o.PageFormat {
	case PageFormatA4, PageFormatLetter:
	default:
		return validationError("unknown page format %q", o.PageFormat)
	}
	switch o.Orientation {
	case OrientationPortrait, OrientationLandscape:
	default:
		return validationError("unknown orientation %q", o.Orientation)
	}
	return nil
}

// PageGeometry is the physical page description handed to the converter.
type PageGeometry struct {
	Format      PageFormat  `json:"format"`
	Orientation Orientation `json:"orientation"`
	WidthMM     float64     `json:"width_mm"`
	HeightMM    float64     `json:"height_mm"`
}

// pageSizes are portrait dimensions in millimetres.
var pageSizes = map[PageFormat][2]float64{
	PageFormatA4:     {210, 297},
	PageFormatLetter: {215.9, 279.4},
}

// Geometry resolves the page dimensions for the configured format and
// orientation.
func (o GenerationOptions) Geometry() PageGeometry {
	size := pageSizes[o.PageFormat]
	w, h := size[0], size[1]
	if o.Orientation == OrientationLandscape {
		w, h = h, w
	}
	return PageGeometry{
		Format:      o.PageFormat,
		Orientation: o.Orientation,
		WidthMM:     w,
		HeightMM:    h,
	}
}
