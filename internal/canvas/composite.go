package canvas

// Composite blends the two color layers through the mask into dst, pixel by
// pixel: dst = (bottom*(255-alpha) + top*alpha) / 255 with truncating
// integer division on each channel. alpha 0 shows bottom exactly, 255 top.
func Composite(dst *Layer, bottom, top *Layer, mask *Mask) {
	for i := 0; i < Width*Height; i++ {
		alpha := int(mask.pix[i])
		p := i * 3
		for c := 0; c < 3; c++ {
			dst.pix[p+c] = uint8((int(bottom.pix[p+c])*(255-alpha) + int(top.pix[p+c])*alpha) / 255)
		}
	}
}
