// Package window generates symmetric window functions together with their
// normalization sums S1 = sum(w) and S2 = sum(w^2).
//
// The set of window types is closed: rectangular, Bartlett, Welch, Hann,
// Hamming, seven Nuttall variants, eleven Kaiser shapes with alpha from 2.0
// to 7.0 and the HFT116D and HFT248D flat-top windows. Each type has a
// canonical uppercase name and an empirical overlap used for segmented
// spectral averaging.
package window
