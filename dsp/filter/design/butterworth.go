package design

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vitals/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade of the given order.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validFreq(freq, sampleRate) {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, Lowpass(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderLP(freq, sampleRate))
	}

	return sections
}

// ButterworthHP designs a highpass Butterworth cascade of the given order.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validFreq(freq, sampleRate) {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, Highpass(freq, butterworthQ(order, i), sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}

	return sections
}

// ButterworthBP designs a bandpass Butterworth cascade passing [low, high] Hz.
//
// The lowpass prototype of the given order is mapped to a bandpass with the
// analog LP-to-BP transform and then discretised with the bilinear
// transform, giving order sections and a total filter order of 2*order.
// Each section has zeros at z = +1 and z = -1 and is scaled to unit gain at
// the digital band centre, so the band edges sit at -3 dB.
func ButterworthBP(low, high float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validFreq(low, sampleRate) || !validFreq(high, sampleRate) || low >= high {
		return nil
	}

	wl := math.Tan(math.Pi * low / sampleRate)
	wh := math.Tan(math.Pi * high / sampleRate)
	bw := wh - wl
	w0sq := wl * wh
	centre := 2 * math.Atan(math.Sqrt(w0sq))

	sections := make([]biquad.Coefficients, 0, order)
	for k := range (order + 1) / 2 {
		theta := math.Pi * float64(2*k+1) / (2 * float64(order))
		p := complex(-math.Sin(theta), math.Cos(theta))

		half := p * complex(bw/2, 0)
		root := cmplx.Sqrt(half*half - complex(w0sq, 0))
		s1, s2 := half+root, half-root

		if 2*k+1 == order {
			// Real prototype pole: s1 and s2 are either a conjugate pair or
			// both real, and share one section.
			z1, z2 := bilinearPole(s1), bilinearPole(s2)
			sections = append(sections, bandpassSection(-real(z1+z2), real(z1*z2), centre))

			continue
		}

		for _, s := range []complex128{s1, s2} {
			z := bilinearPole(s)
			sections = append(sections, bandpassSection(-2*real(z), real(z)*real(z)+imag(z)*imag(z), centre))
		}
	}

	return sections
}

// bilinearPole maps an analog pole (prewarped, unit bilinear constant) to
// the z-plane: z = (1+s)/(1-s).
func bilinearPole(s complex128) complex128 {
	return (1 + s) / (1 - s)
}

// bandpassSection builds g*(1 - z^-2) / (1 + a1 z^-1 + a2 z^-2) with g chosen
// for unit magnitude at w rad/sample.
func bandpassSection(a1, a2, w float64) biquad.Coefficients {
	c := biquad.Coefficients{B0: 1, B2: -1, A1: a1, A2: a2}

	mag := cmplx.Abs(c.Response(w, 2*math.Pi))
	if mag == 0 || math.IsNaN(mag) {
		return c
	}

	c.B0 /= mag
	c.B2 /= mag

	return c
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

func butterworthFirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

func butterworthFirstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
