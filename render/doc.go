// Package render turns height maps and RGB buffers into images and writes
// them to disk.
//
//	res, _ := pipeline.Generate(pipeline.DefaultConfig())
//	img, _ := render.Color(res.RGB, res.Size)
//	_ = render.Save("terrain.png", render.Scale(img, 4))
//
// Supported encodings are PNG, BMP and TIFF, chosen from the file
// extension by Save.
package render
