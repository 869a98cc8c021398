package fontsdf

import "errors"

// probe tries to build a Rasterizer from one font format. recognized is
// false when the data is not in the probe's format, which is not an error.
type probe struct {
	name   string
	create func(blob *Blob, size float32, read ReadFunc, o *options) (r *Rasterizer, recognized bool, err error)
}

// probes lists the supported formats in the order New tries them.
var probes = []probe{
	{name: "truetype", create: probeTrueType},
	{name: "bmfont", create: probeBMFont},
}

// create runs probes in order. It stops at the first probe that either
// recognizes the data or fails.
func create(probes []probe, blob *Blob, size float32, read ReadFunc, o *options) (*Rasterizer, error) {
	log := o.log()
	for _, p := range probes {
		r, recognized, err := p.create(blob, size, read, o)
		if err != nil {
			if errors.Is(err, ErrUnsupported) {
				log.Warn("font uses an unsupported feature", "probe", p.name, "err", err)
			} else {
				log.Debug("font load failed", "probe", p.name, "err", err)
			}
			return nil, err
		}
		if !recognized {
			log.Debug("format not recognized", "probe", p.name)
			continue
		}

		r.refs.Store(1)
		log.Debug("font loaded",
			"kind", r.face.kind().String(),
			"name", r.name,
			"size", r.size,
			"glyphs", r.face.glyphCount())
		return r, nil
	}
	return nil, ErrNotRecognized
}
