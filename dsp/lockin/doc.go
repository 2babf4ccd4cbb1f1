// Package lockin implements a software dual-phase lock-in detector.
//
// The recording is multiplied by sine and cosine references at the lock
// frequency, both products are low-pass filtered with a windowed-sinc
// filter and averaged. The averages are the in-phase (X) and quadrature (Y)
// components of the signal at the lock frequency; R = sqrt(X^2+Y^2) is its
// amplitude and atan2(Y, X) its phase relative to a sine reference.
//
// The filter's DC gain scales X and Y. It is close to one when the
// transition frequency exceeds the kernel window's transition width, about
// 4*fs/N for the default Hamming window.
package lockin
