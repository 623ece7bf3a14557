package deck

import (
	"fmt"

	"go.uber.org/zap"
)

// Relocate deep copies slide src (which may be detached or belong to any
// document) to the end of target. Copy uses target layout with the same name
// as source layout or, when there is none, the first target layout.
func Relocate(src *Slide, target *Document) (*Slide, error) {
	if len(target.layouts) == 0 {
		return nil, ErrNoLayouts
	}
	cp, err := src.clone()
	if err != nil {
		return nil, fmt.Errorf("unable to copy slide: %w", err)
	}

	layout := target.Layout(src.LayoutName())
	if layout == nil {
		layout = target.layouts[0]
		target.log.Debug("Layout not found, using first layout",
			zap.String("requested", src.LayoutName()),
			zap.String("used", layout.Name))
	}
	return target.RegisterContent(cp, layout)
}
