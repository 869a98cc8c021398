// Package msdf provides Multi-channel Signed Distance Field generation
// for high-quality, scalable text rendering on GPU.
//
// MSDF (Multi-channel Signed Distance Field) is a technique that encodes
// glyph shape information into RGB texture channels. Unlike traditional SDF
// which uses a single distance value, MSDF preserves sharp corners by encoding
// directional distance information in separate channels. MTSDF adds the true
// signed distance in the alpha channel for effects such as outlines and glow.
//
// # How MSDF Works
//
// 1. Build closed contours of linear, quadratic and cubic edges
// 2. Normalize and orient them so the inside has positive distance
// 3. Assign colors (RGB) to edges based on corner angles
// 4. For each pixel, find minimum signed distance to each color channel
// 5. Encode distances as d/range + 0.5 (0.5 = on edge)
//
// The median of RGB channels recovers the accurate signed distance for
// anti-aliased rendering. This approach maintains crisp edges even when
// the texture is scaled significantly.
//
// # Usage
//
//	shape := msdf.NewShape()
//	c := shape.AddContour()
//	c.AddLinear(msdf.Point{X: 0, Y: 0}, msdf.Point{X: 10, Y: 0})
//	c.AddLinear(msdf.Point{X: 10, Y: 0}, msdf.Point{X: 5, Y: 10})
//	c.AddLinear(msdf.Point{X: 5, Y: 10}, msdf.Point{X: 0, Y: 0})
//
//	shape.Normalize()
//	shape.OrientContours()
//	msdf.ColorEdgesSimple(shape, msdf.DefaultAngleThreshold, 0)
//
//	field := msdf.NewField(16, 16, 4)
//	field.Generate(shape, 1, 1, 3, 3)
//
// For fixed-size byte textures from glyph outlines, use Generator.
//
// # WGSL Shader Example
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
//	@fragment
//	fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
//	    let msdf = textureSample(msdf_tex, samp, uv).rgb;
//	    let sd = median3(msdf) - 0.5;
//	    let alpha = clamp(sd * px_range / length(fwidth(uv)) + 0.5, 0.0, 1.0);
//	    return vec4<f32>(color.rgb, color.a * alpha);
//	}
//
// # References
//
// - msdfgen: https://github.com/Chlumsky/msdfgen
// - MSDF paper: "Shape Decomposition for Multi-channel Distance Fields"
package msdf
